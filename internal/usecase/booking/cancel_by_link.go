package booking

import (
	"context"

	domain "github.com/skinlab011/salon-booking/internal/domain/booking"
	"github.com/skinlab011/salon-booking/internal/httperr"
	"github.com/skinlab011/salon-booking/internal/models"
	"github.com/skinlab011/salon-booking/internal/notify"
	"github.com/skinlab011/salon-booking/internal/timezone"
)

// CancelByLink handles the one-time cancellation link from the client's
// confirmation email. Repeating the click on an already-cancelled
// booking is a success-with-notice, not an error, and does not
// re-notify the admin.
type CancelByLink struct {
	repo     domain.Repository
	notifier *notify.Dispatcher
}

func NewCancelByLink(repo domain.Repository, notifier *notify.Dispatcher) *CancelByLink {
	return &CancelByLink{repo: repo, notifier: notifier}
}

func (uc *CancelByLink) Execute(
	ctx context.Context,
	bookingID string,
) (b *models.Booking, alreadyCancelled bool, err error) {

	b, err = uc.repo.GetBookingByBookingID(ctx, bookingID)
	if err != nil {
		return nil, false, httperr.ErrBusiness("booking_not_found")
	}

	if domain.Status(b.Status) == domain.StatusCancelled {
		return b, true, nil
	}

	if err := domain.Cancel(b, "", timezone.Now()); err != nil {
		return nil, false, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, false, err
	}

	uc.notifier.DispatchAdmin(notify.KindClientCancelledAdmin, notificationData(b))

	return b, false, nil
}
