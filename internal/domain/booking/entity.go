package booking

import (
	"time"

	"github.com/skinlab011/salon-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(b *models.Booking) error {
	if err := CanConfirm(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusConfirmed)
	return nil
}

func Reject(b *models.Booking, reason string) error {
	if err := CanReject(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusRejected)
	b.CancelReason = reason
	return nil
}

func Cancel(b *models.Booking, reason string, now time.Time) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	b.CancelReason = reason
	b.CancelledAt = &now
	return nil
}
