package notify

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Dispatcher delivers notifications on a background worker. Dispatch
// never blocks and never returns an error: booking persistence is the
// source of truth, email is best-effort.
type Dispatcher struct {
	mailer     Mailer
	adminEmail string
	queue      chan Event
	log        zerolog.Logger
}

const sendTimeout = 10 * time.Second

func NewDispatcher(mailer Mailer, adminEmail string, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		mailer:     mailer,
		adminEmail: adminEmail,
		queue:      make(chan Event, 100),
		log:        log,
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		d.deliver(ev)
	}
}

func (d *Dispatcher) deliver(ev Event) {
	subject, body := buildMessage(ev)

	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	if err := d.mailer.Send(ctx, ev.To, subject, body); err != nil {
		d.log.Error().
			Err(err).
			Str("kind", string(ev.Kind)).
			Str("to", ev.To).
			Str("booking_id", ev.Data.BookingID).
			Msg("notification send failed")
	}
}

// Dispatch queues a client-facing notification.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// queue full: drop rather than block a booking request
		d.log.Warn().
			Str("kind", string(ev.Kind)).
			Str("booking_id", ev.Data.BookingID).
			Msg("notification queue full, dropping event")
	}
}

// DispatchAdmin queues a notification to the salon's admin address.
func (d *Dispatcher) DispatchAdmin(kind Kind, data BookingData) {
	d.Dispatch(Event{Kind: kind, To: d.adminEmail, Data: data})
}
