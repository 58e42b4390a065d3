package booking

import (
	"context"
	"time"

	domain "github.com/skinlab011/salon-booking/internal/domain/booking"
)

type RevenueBucket struct {
	Amount float64 `json:"amount"`
	Count  int     `json:"count"`
}

type RevenueSummary struct {
	Today RevenueBucket `json:"today"`
	Week  RevenueBucket `json:"week"`
	Month RevenueBucket `json:"month"`
	Total RevenueBucket `json:"total"`
}

// Revenue sums realized revenue: confirmed bookings with booking_date
// <= today, each joined to its treatment's numeric price. A treatment
// without a price contributes 0 but still counts.
type Revenue struct {
	repo domain.Repository
}

func NewRevenue(repo domain.Repository) *Revenue {
	return &Revenue{repo: repo}
}

func (uc *Revenue) Execute(ctx context.Context, now time.Time) (*RevenueSummary, error) {
	today := now.Format("2006-01-02")
	startOfWeek := mostRecentMonday(now).Format("2006-01-02")
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format("2006-01-02")

	bookings, err := uc.repo.ListConfirmedBookingsThrough(ctx, today)
	if err != nil {
		return nil, err
	}

	var summary RevenueSummary
	for _, b := range bookings {
		var price float64
		if b.Treatment.PriceValue != nil {
			price = *b.Treatment.PriceValue
		}

		summary.Total.Amount += price
		summary.Total.Count++

		// ISO dates compare correctly as strings.
		if b.BookingDate == today {
			summary.Today.Amount += price
			summary.Today.Count++
		}
		if b.BookingDate >= startOfWeek {
			summary.Week.Amount += price
			summary.Week.Count++
		}
		if b.BookingDate >= startOfMonth {
			summary.Month.Amount += price
			summary.Month.Count++
		}
	}

	return &summary, nil
}

// mostRecentMonday returns the Monday on or before t.
func mostRecentMonday(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}
