package booking

import (
	"context"

	"github.com/skinlab011/salon-booking/internal/models"
)

type Repository interface {
	// -------- Treatment --------
	GetTreatment(
		ctx context.Context,
		id uint,
	) (*models.Treatment, error)

	UpdateTreatment(
		ctx context.Context,
		t *models.Treatment,
	) error

	// -------- Booking (availability / conflict) --------

	// ListActiveBookingsForDate returns the pending and confirmed
	// bookings on a date, ordered by start time. Rejected and
	// cancelled bookings never block a slot.
	ListActiveBookingsForDate(
		ctx context.Context,
		date string,
	) ([]models.Booking, error)

	// CreateBookingInSlot persists the booking after re-checking the
	// interval against active bookings inside a single store
	// transaction. Returns the slot_taken business error on conflict.
	CreateBookingInSlot(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (state change) --------
	GetBookingByBookingID(
		ctx context.Context,
		bookingID string,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (admin reads) --------
	ListBookingsForRange(
		ctx context.Context,
		from string,
		to string,
		status string,
		limit int,
	) ([]models.Booking, error)

	// ListConfirmedBookingsThrough returns confirmed bookings with
	// booking_date <= date, treatment preloaded for its price.
	ListConfirmedBookingsThrough(
		ctx context.Context,
		date string,
	) ([]models.Booking, error)
}
