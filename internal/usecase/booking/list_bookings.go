package booking

import (
	"context"
	"time"

	domain "github.com/skinlab011/salon-booking/internal/domain/booking"
	"github.com/skinlab011/salon-booking/internal/httperr"
	"github.com/skinlab011/salon-booking/internal/models"
)

// ListBookings backs the admin calendar: one day or one month at a
// time, optionally filtered by status.
type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

func (uc *ListBookings) ByDate(
	ctx context.Context,
	date string,
	status string,
	limit int,
) ([]models.Booking, error) {

	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	from := d.Format("2006-01-02")
	to := d.AddDate(0, 0, 1).Format("2006-01-02")

	return uc.repo.ListBookingsForRange(ctx, from, to, status, limit)
}

func (uc *ListBookings) ByMonth(
	ctx context.Context,
	year int,
	month int,
	status string,
	limit int,
) ([]models.Booking, error) {

	if month < 1 || month > 12 {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	from := start.Format("2006-01-02")
	to := start.AddDate(0, 1, 0).Format("2006-01-02")

	return uc.repo.ListBookingsForRange(ctx, from, to, status, limit)
}
