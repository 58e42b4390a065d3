package booking

import (
	"context"
	"time"

	domain "github.com/skinlab011/salon-booking/internal/domain/booking"
	"github.com/skinlab011/salon-booking/internal/httperr"
	"github.com/skinlab011/salon-booking/internal/models"
	"github.com/skinlab011/salon-booking/internal/notify"
	"github.com/skinlab011/salon-booking/internal/schedule"
	"github.com/skinlab011/salon-booking/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ClientName  string
	ClientEmail string
	ClientPhone string

	TreatmentID uint

	Date string // YYYY-MM-DD
	Time string // HH:MM

	Message string
	Locale  string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	hours    schedule.WeeklyHours
	notifier *notify.Dispatcher
	nowFn    func() time.Time
}

func NewCreateBooking(
	repo domain.Repository,
	hours schedule.WeeklyHours,
	notifier *notify.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		hours:    hours,
		notifier: notifier,
		nowFn:    timezone.Now,
	}
}

// ======================================================
// EXECUTE (public submission -> pending)
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	if in.ClientName == "" || in.ClientEmail == "" || in.ClientPhone == "" ||
		in.TreatmentID == 0 || in.Date == "" || in.Time == "" {
		return nil, httperr.ErrBusiness("missing_fields")
	}

	b, err := uc.prepare(ctx, in, domain.StatusPending)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.CreateBookingInSlot(ctx, b); err != nil {
		return nil, err
	}

	data := notificationData(b)
	uc.notifier.Dispatch(notify.Event{
		Kind: notify.KindBookingReceivedClient,
		To:   b.ClientEmail,
		Data: data,
	})
	uc.notifier.DispatchAdmin(notify.KindNewBookingAdmin, data)

	return b, nil
}

// ======================================================
// SHARED CREATION PATH
// ======================================================

// prepare validates date/time, resolves the treatment, gates against
// business hours, pre-checks the slot and assembles the booking row
// with its creation-time snapshots. The authoritative conflict check
// runs again inside the repository transaction.
func (uc *CreateBooking) prepare(
	ctx context.Context,
	in CreateBookingInput,
	status domain.Status,
) (*models.Booking, error) {

	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	startMinute, err := schedule.TimeToMinutes(in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	treatment, err := uc.repo.GetTreatment(ctx, in.TreatmentID)
	if err != nil || treatment == nil || !treatment.Active {
		return nil, httperr.ErrBusiness("treatment_not_found")
	}

	duration := treatment.EffectiveDuration()
	endMinute := startMinute + duration

	day, open := uc.hours.For(date)
	if !open {
		return nil, httperr.ErrBusiness("outside_business_hours")
	}
	openMin, _ := schedule.TimeToMinutes(day.Open)
	closeMin, _ := schedule.TimeToMinutes(day.Close)
	if startMinute < openMin || endMinute > closeMin {
		return nil, httperr.ErrBusiness("outside_business_hours")
	}

	// Availability snapshot the client saw may be stale; check again
	// before going anywhere near the write path.
	existing, err := uc.repo.ListActiveBookingsForDate(ctx, in.Date)
	if err != nil {
		return nil, err
	}
	for _, other := range existing {
		if schedule.Overlaps(startMinute, endMinute, other.StartMinute, other.EndMinute()) {
			return nil, httperr.ErrBusiness("slot_taken")
		}
	}

	locale := in.Locale
	if locale == "" {
		locale = "me"
	}

	treatmentID := treatment.ID
	categoryID := treatment.CategoryID
	durationCopy := duration

	return &models.Booking{
		BookingID: NewBookingID(uc.nowFn()),

		ClientName:  in.ClientName,
		ClientEmail: in.ClientEmail,
		ClientPhone: in.ClientPhone,

		TreatmentID:   &treatmentID,
		TreatmentName: treatment.LocalizedName(locale),
		CategoryID:    &categoryID,

		BookingDate:     in.Date,
		BookingTime:     schedule.MinutesToTime(startMinute),
		StartMinute:     startMinute,
		DurationMinutes: &durationCopy,

		Message: in.Message,
		Status:  string(status),
		Locale:  locale,
	}, nil
}

func notificationData(b *models.Booking) notify.BookingData {
	return notify.BookingData{
		BookingID:     b.BookingID,
		ClientName:    b.ClientName,
		ClientEmail:   b.ClientEmail,
		ClientPhone:   b.ClientPhone,
		TreatmentName: b.TreatmentName,
		Date:          b.BookingDate,
		Time:          b.BookingTime,
		Message:       b.Message,
		Reason:        b.CancelReason,
	}
}
