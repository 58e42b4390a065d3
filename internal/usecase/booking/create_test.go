package booking

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skinlab011/salon-booking/internal/httperr"
	"github.com/skinlab011/salon-booking/internal/models"
	"github.com/skinlab011/salon-booking/internal/schedule"
)

func validInput() CreateBookingInput {
	return CreateBookingInput{
		ClientName:  "Ana Petrović",
		ClientEmail: "ana@example.com",
		ClientPhone: "+382 67 123 456",
		TreatmentID: 1,
		Date:        "2026-03-24", // Tuesday
		Time:        "10:00",
	}
}

func newCreateUC(repo *fakeRepo, mailer *captureMailer) *CreateBooking {
	uc := NewCreateBooking(repo, schedule.DefaultWeeklyHours(), newTestNotifier(mailer))
	uc.nowFn = fixedNow("2026-03-20 12:00")
	return uc
}

func TestCreateBooking_MissingFields(t *testing.T) {
	uc := newCreateUC(newFakeRepo(), newCaptureMailer())

	for _, mutate := range []func(*CreateBookingInput){
		func(in *CreateBookingInput) { in.ClientName = "" },
		func(in *CreateBookingInput) { in.ClientEmail = "" },
		func(in *CreateBookingInput) { in.ClientPhone = "" },
		func(in *CreateBookingInput) { in.TreatmentID = 0 },
		func(in *CreateBookingInput) { in.Date = "" },
		func(in *CreateBookingInput) { in.Time = "" },
	} {
		in := validInput()
		mutate(&in)

		_, err := uc.Execute(context.Background(), in)
		assert.True(t, httperr.IsBusiness(err, "missing_fields"))
	}
}

func TestCreateBooking_InvalidDateAndTime(t *testing.T) {
	repo := newFakeRepo()
	repo.addTreatment(facialTreatment())
	uc := newCreateUC(repo, newCaptureMailer())

	in := validInput()
	in.Date = "24.03.2026"
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))

	in = validInput()
	in.Time = "25:00"
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_time"))
}

func TestCreateBooking_TreatmentNotFound(t *testing.T) {
	repo := newFakeRepo()
	inactive := facialTreatment()
	inactive.ID = 2
	inactive.Active = false
	repo.addTreatment(inactive)

	uc := newCreateUC(repo, newCaptureMailer())

	in := validInput()
	in.TreatmentID = 99
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "treatment_not_found"))

	in = validInput()
	in.TreatmentID = 2
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "treatment_not_found"))
}

func TestCreateBooking_OutsideBusinessHours(t *testing.T) {
	repo := newFakeRepo()
	repo.addTreatment(facialTreatment()) // 90 min
	uc := newCreateUC(repo, newCaptureMailer())

	cases := []struct {
		date string
		time string
	}{
		{"2026-03-24", "08:00"}, // before opening
		{"2026-03-24", "19:00"}, // would end 20:30, past the 20:00 close
		{"2026-03-01", "10:00"}, // Sunday
		{"2026-03-28", "14:00"}, // Saturday, would end 15:30
	}
	for _, tc := range cases {
		in := validInput()
		in.Date = tc.date
		in.Time = tc.time

		_, err := uc.Execute(context.Background(), in)
		assert.True(t, httperr.IsBusiness(err, "outside_business_hours"),
			"%s %s should be outside business hours", tc.date, tc.time)
	}
}

func TestCreateBooking_Success(t *testing.T) {
	repo := newFakeRepo()
	repo.addTreatment(facialTreatment())
	mailer := newCaptureMailer()
	uc := newCreateUC(repo, mailer)

	in := validInput()
	in.Message = "First visit"

	b, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(b.BookingID, "BOOK-"))
	assert.Equal(t, "pending", b.Status)
	assert.Equal(t, "Higijenski tretman lica", b.TreatmentName)
	assert.Equal(t, 600, b.StartMinute)
	assert.Equal(t, "10:00", b.BookingTime)
	require.NotNil(t, b.DurationMinutes)
	assert.Equal(t, 90, *b.DurationMinutes)
	assert.Equal(t, "me", b.Locale)

	// client acknowledgement first, then the admin alert
	first := mailer.waitMail(time.Second)
	second := mailer.waitMail(time.Second)
	assert.ElementsMatch(t,
		[]string{"ana@example.com", testAdminEmail},
		[]string{first.To, second.To},
	)
}

func TestCreateBooking_LocalizedSnapshot(t *testing.T) {
	repo := newFakeRepo()
	tr := repo.addTreatment(facialTreatment())
	uc := newCreateUC(repo, newCaptureMailer())

	in := validInput()
	in.Locale = "ru"

	b, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "Гигиеническая чистка лица", b.TreatmentName)

	// renaming the treatment later must not touch the stored snapshot
	tr.NameRu = "Новое имя"
	require.NoError(t, repo.UpdateTreatment(context.Background(), tr))

	stored := repo.get(b.BookingID)
	require.NotNil(t, stored)
	assert.Equal(t, "Гигиеническая чистка лица", stored.TreatmentName)
}

func TestCreateBooking_SlotTaken(t *testing.T) {
	repo := newFakeRepo()
	repo.addTreatment(facialTreatment()) // 90 min
	repo.addBooking(models.Booking{
		BookingDate:     "2026-03-24",
		StartMinute:     630, // [10:30, 11:30)
		DurationMinutes: minutes(60),
		Status:          "pending",
	})

	uc := newCreateUC(repo, newCaptureMailer())

	// [10:00, 11:30) crosses the pending booking
	_, err := uc.Execute(context.Background(), validInput())
	assert.True(t, httperr.IsBusiness(err, "slot_taken"))

	// [09:00, 10:30) ends exactly where it starts: fine
	in := validInput()
	in.Time = "09:00"
	_, err = uc.Execute(context.Background(), in)
	assert.NoError(t, err)
}

func TestCreateBooking_ConcurrentSameSlot(t *testing.T) {
	repo := newFakeRepo()
	repo.addTreatment(facialTreatment())
	uc := newCreateUC(repo, newCaptureMailer())

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), validInput())
		}(i)
	}
	wg.Wait()

	var ok, taken int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case httperr.IsBusiness(err, "slot_taken"):
			taken++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, taken)
}

func TestCreateBooking_MailerFailureDoesNotFailBooking(t *testing.T) {
	repo := newFakeRepo()
	repo.addTreatment(facialTreatment())

	uc := NewCreateBooking(repo, schedule.DefaultWeeklyHours(), newTestNotifier(failingMailer{}))
	uc.nowFn = fixedNow("2026-03-20 12:00")

	b, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)
	assert.NotNil(t, repo.get(b.BookingID))
}

// --------------------------------------------------
// Walk-in
// --------------------------------------------------

func TestCreateWalkIn_ContactOptional(t *testing.T) {
	repo := newFakeRepo()
	repo.addTreatment(facialTreatment())
	auditW := newMemAuditWriter()

	uc := NewCreateWalkIn(newCreateUC(repo, newCaptureMailer()), newTestAudit(auditW))

	in := CreateBookingInput{
		ClientName:  "Walk-in client",
		TreatmentID: 1,
		Date:        "2026-03-24",
		Time:        "12:00",
	}

	b, err := uc.Execute(context.Background(), testAdminEmail, in)
	require.NoError(t, err)

	assert.Equal(t, "confirmed", b.Status)
	assert.Empty(t, b.ClientEmail)
	assert.Equal(t, "walkin_booking_created", auditW.waitAction(time.Second))
}

func TestCreateWalkIn_StillRequiresCore(t *testing.T) {
	repo := newFakeRepo()
	repo.addTreatment(facialTreatment())

	uc := NewCreateWalkIn(newCreateUC(repo, newCaptureMailer()), newTestAudit(newMemAuditWriter()))

	_, err := uc.Execute(context.Background(), testAdminEmail, CreateBookingInput{
		ClientName: "No treatment",
		Date:       "2026-03-24",
		Time:       "12:00",
	})
	assert.True(t, httperr.IsBusiness(err, "missing_fields"))
}

func TestNewBookingID_Format(t *testing.T) {
	now := time.UnixMilli(1774000000000)
	id := NewBookingID(now)

	parts := strings.Split(id, "-")
	require.Len(t, parts, 3)
	assert.Equal(t, "BOOK", parts[0])
	assert.Equal(t, "1774000000000", parts[1])
	assert.Len(t, parts[2], 6)
	assert.Equal(t, strings.ToUpper(parts[2]), parts[2])
}
