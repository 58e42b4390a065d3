package booking

import (
	"context"

	"github.com/skinlab011/salon-booking/internal/audit"
	domain "github.com/skinlab011/salon-booking/internal/domain/booking"
	"github.com/skinlab011/salon-booking/internal/httperr"
	"github.com/skinlab011/salon-booking/internal/models"
	"github.com/skinlab011/salon-booking/internal/notify"
	"github.com/skinlab011/salon-booking/internal/timezone"
)

// UpdateBookingStatus drives admin transitions: pending -> confirmed,
// pending -> rejected, confirmed -> cancelled. Each transition sends
// the client a status notification; failures there never surface.
type UpdateBookingStatus struct {
	repo     domain.Repository
	notifier *notify.Dispatcher
	audit    *audit.Dispatcher
}

func NewUpdateBookingStatus(
	repo domain.Repository,
	notifier *notify.Dispatcher,
	auditDispatcher *audit.Dispatcher,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		repo:     repo,
		notifier: notifier,
		audit:    auditDispatcher,
	}
}

func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	actorEmail string,
	bookingID string,
	to domain.Status,
	reason string,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingByBookingID(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	var kind notify.Kind
	switch to {
	case domain.StatusConfirmed:
		err = domain.Confirm(b)
		kind = notify.KindBookingConfirmedClient
	case domain.StatusRejected:
		err = domain.Reject(b, reason)
		kind = notify.KindBookingRejectedClient
	case domain.StatusCancelled:
		err = domain.Cancel(b, reason, timezone.Now())
		kind = notify.KindBookingCancelledClient
	default:
		err = httperr.ErrBusiness("invalid_status_transition")
	}
	if err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	if b.ClientEmail != "" {
		uc.notifier.Dispatch(notify.Event{
			Kind: kind,
			To:   b.ClientEmail,
			Data: notificationData(b),
		})
	}

	uc.audit.Dispatch(audit.Event{
		ActorEmail: actorEmail,
		Action:     "booking_" + string(to),
		Entity:     "booking",
		EntityID:   &b.ID,
	})

	return b, nil
}
