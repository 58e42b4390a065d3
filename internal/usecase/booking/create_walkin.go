package booking

import (
	"context"

	"github.com/skinlab011/salon-booking/internal/audit"
	domain "github.com/skinlab011/salon-booking/internal/domain/booking"
	"github.com/skinlab011/salon-booking/internal/httperr"
	"github.com/skinlab011/salon-booking/internal/models"
)

// CreateWalkIn is the admin direct-entry path: the booking starts out
// confirmed, contact fields are optional, no client notification goes
// out.
type CreateWalkIn struct {
	create *CreateBooking
	audit  *audit.Dispatcher
}

func NewCreateWalkIn(create *CreateBooking, auditDispatcher *audit.Dispatcher) *CreateWalkIn {
	return &CreateWalkIn{
		create: create,
		audit:  auditDispatcher,
	}
}

func (uc *CreateWalkIn) Execute(
	ctx context.Context,
	actorEmail string,
	in CreateBookingInput,
) (*models.Booking, error) {

	if in.ClientName == "" || in.TreatmentID == 0 || in.Date == "" || in.Time == "" {
		return nil, httperr.ErrBusiness("missing_fields")
	}

	b, err := uc.create.prepare(ctx, in, domain.StatusConfirmed)
	if err != nil {
		return nil, err
	}

	if err := uc.create.repo.CreateBookingInSlot(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorEmail: actorEmail,
		Action:     "walkin_booking_created",
		Entity:     "booking",
		EntityID:   &b.ID,
	})

	return b, nil
}
