package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/skinlab011/salon-booking/internal/audit"
	"github.com/skinlab011/salon-booking/internal/httperr"
	"github.com/skinlab011/salon-booking/internal/models"
	"github.com/skinlab011/salon-booking/internal/notify"
	"github.com/skinlab011/salon-booking/internal/schedule"
)

// --------------------------------------------------
// In-memory repository
// --------------------------------------------------

// fakeRepo serializes the check+insert in CreateBookingInSlot behind a
// mutex, mirroring what the serializable transaction and the exclusion
// constraint guarantee in Postgres.
type fakeRepo struct {
	mu         sync.Mutex
	treatments map[uint]*models.Treatment
	bookings   map[string]*models.Booking // keyed by BookingID
	nextID     uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		treatments: map[uint]*models.Treatment{},
		bookings:   map[string]*models.Booking{},
	}
}

func (r *fakeRepo) addTreatment(t models.Treatment) *models.Treatment {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := t
	r.treatments[cp.ID] = &cp
	return &cp
}

func (r *fakeRepo) addBooking(b models.Booking) *models.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	cp := b
	cp.ID = r.nextID
	if cp.BookingID == "" {
		cp.BookingID = fmt.Sprintf("BOOK-%d-TEST00", cp.ID)
	}
	r.bookings[cp.BookingID] = &cp
	return &cp
}

func (r *fakeRepo) get(bookingID string) *models.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bookings[bookingID]
}

func (r *fakeRepo) GetTreatment(_ context.Context, id uint) (*models.Treatment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.treatments[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *t
	return &cp, nil
}

func (r *fakeRepo) UpdateTreatment(_ context.Context, t *models.Treatment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *t
	r.treatments[cp.ID] = &cp
	return nil
}

func (r *fakeRepo) ListActiveBookingsForDate(_ context.Context, date string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.activeForDateLocked(date), nil
}

func (r *fakeRepo) activeForDateLocked(date string) []models.Booking {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.BookingDate == date && (b.Status == "pending" || b.Status == "confirmed") {
			out = append(out, *b)
		}
	}
	return out
}

func (r *fakeRepo) CreateBookingInSlot(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, other := range r.activeForDateLocked(b.BookingDate) {
		if schedule.Overlaps(b.StartMinute, b.EndMinute(), other.StartMinute, other.EndMinute()) {
			return httperr.ErrBusiness("slot_taken")
		}
	}

	r.nextID++
	b.ID = r.nextID
	cp := *b
	r.bookings[cp.BookingID] = &cp
	return nil
}

func (r *fakeRepo) GetBookingByBookingID(_ context.Context, bookingID string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[bookingID]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *b
	return &cp, nil
}

func (r *fakeRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[b.BookingID]; !ok {
		return errors.New("record not found")
	}
	cp := *b
	r.bookings[cp.BookingID] = &cp
	return nil
}

func (r *fakeRepo) ListBookingsForRange(_ context.Context, from, to, status string, limit int) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.BookingDate < from || b.BookingDate >= to {
			continue
		}
		if status != "" && b.Status != status {
			continue
		}
		out = append(out, *b)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (r *fakeRepo) ListConfirmedBookingsThrough(_ context.Context, date string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Status != "confirmed" || b.BookingDate > date {
			continue
		}
		cp := *b
		if cp.TreatmentID != nil {
			if t, ok := r.treatments[*cp.TreatmentID]; ok {
				cp.Treatment = *t
			}
		}
		out = append(out, cp)
	}
	return out, nil
}

// --------------------------------------------------
// Mailers
// --------------------------------------------------

type sentMail struct {
	To      string
	Subject string
}

// captureMailer forwards every delivered mail to a channel so tests
// can wait for the async dispatcher deterministically.
type captureMailer struct {
	sent chan sentMail
}

func newCaptureMailer() *captureMailer {
	return &captureMailer{sent: make(chan sentMail, 32)}
}

func (m *captureMailer) Send(_ context.Context, to, subject, _ string) error {
	m.sent <- sentMail{To: to, Subject: subject}
	return nil
}

// waitMail blocks until a mail is delivered or the timeout fires; the
// zero value signals nothing arrived.
func (m *captureMailer) waitMail(d time.Duration) sentMail {
	select {
	case s := <-m.sent:
		return s
	case <-time.After(d):
		return sentMail{}
	}
}

type failingMailer struct{}

func (failingMailer) Send(context.Context, string, string, string) error {
	return errors.New("smtp down")
}

const testAdminEmail = "admin@skinlab011.com"

func newTestNotifier(m notify.Mailer) *notify.Dispatcher {
	return notify.NewDispatcher(m, testAdminEmail, zerolog.Nop())
}

// --------------------------------------------------
// Audit capture
// --------------------------------------------------

type memAuditWriter struct {
	entries chan string // action
}

func newMemAuditWriter() *memAuditWriter {
	return &memAuditWriter{entries: make(chan string, 32)}
}

func (w *memAuditWriter) Log(_, action, _ string, _ *uint, _ any) error {
	w.entries <- action
	return nil
}

func (w *memAuditWriter) waitAction(d time.Duration) string {
	select {
	case a := <-w.entries:
		return a
	case <-time.After(d):
		return ""
	}
}

func newTestAudit(w audit.Writer) *audit.Dispatcher {
	return audit.NewDispatcher(w, zerolog.Nop())
}

// --------------------------------------------------
// Fixtures
// --------------------------------------------------

func minutes(v int) *int { return &v }

func price(v float64) *float64 { return &v }

func facialTreatment() models.Treatment {
	return models.Treatment{
		ID:              1,
		CategoryID:      1,
		NameMe:          "Higijenski tretman lica",
		NameEn:          "Deep cleansing facial",
		NameRu:          "Гигиеническая чистка лица",
		Price:           "40€",
		PriceValue:      price(40),
		DurationMinutes: minutes(90),
		Active:          true,
	}
}

func fixedNow(value string) func() time.Time {
	t, err := time.Parse("2006-01-02 15:04", value)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}
