package booking

import (
	"context"
	"time"

	domain "github.com/skinlab011/salon-booking/internal/domain/booking"
	"github.com/skinlab011/salon-booking/internal/httperr"
	"github.com/skinlab011/salon-booking/internal/schedule"
)

type GetAvailability struct {
	repo  domain.Repository
	hours schedule.WeeklyHours
}

func NewGetAvailability(repo domain.Repository, hours schedule.WeeklyHours) *GetAvailability {
	return &GetAvailability{repo: repo, hours: hours}
}

// Execute is a pure read: the full candidate grid for the requested
// duration plus the subset already taken by pending/confirmed
// bookings.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (*domain.Availability, error) {

	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	day, open := uc.hours.For(date)
	if !open {
		// Closed day: short-circuit, existing bookings are irrelevant.
		return &domain.Availability{
			Slots:       []string{},
			BookedSlots: []string{},
			Closed:      true,
		}, nil
	}

	openMin, err := schedule.TimeToMinutes(day.Open)
	if err != nil {
		return nil, err
	}
	closeMin, err := schedule.TimeToMinutes(day.Close)
	if err != nil {
		return nil, err
	}

	duration := in.DurationMinutes
	if duration <= 0 {
		duration = schedule.DefaultDurationMinutes
	}

	slots := schedule.GenerateTimeSlots(openMin, closeMin, duration, schedule.SlotIntervalMinutes)

	bookings, err := uc.repo.ListActiveBookingsForDate(ctx, in.Date)
	if err != nil {
		return nil, err
	}

	bookedSlots := []string{}
	for _, slot := range slots {
		slotStart, err := schedule.TimeToMinutes(slot)
		if err != nil {
			continue
		}
		slotEnd := slotStart + duration

		for _, b := range bookings {
			if schedule.Overlaps(slotStart, slotEnd, b.StartMinute, b.EndMinute()) {
				bookedSlots = append(bookedSlots, slot)
				break
			}
		}
	}

	return &domain.Availability{
		Slots:       slots,
		BookedSlots: bookedSlots,
		Closed:      false,
		Hours:       &day,
	}, nil
}
