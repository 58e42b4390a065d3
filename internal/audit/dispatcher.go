package audit

import "github.com/rs/zerolog"

type Event struct {
	ActorEmail string
	Action     string
	Entity     string
	EntityID   *uint
	Metadata   any
}

// Writer persists one audit entry. *Logger is the gorm-backed
// implementation.
type Writer interface {
	Log(actorEmail, action, entity string, entityID *uint, metadata any) error
}

type Dispatcher struct {
	writer Writer
	queue  chan Event
	log    zerolog.Logger
}

func NewDispatcher(writer Writer, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		writer: writer,
		queue:  make(chan Event, 100),
		log:    log,
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.writer.Log(
			ev.ActorEmail,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.log.Error().Err(err).Str("action", ev.Action).Msg("audit write failed")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// queue full: drop the audit entry, never break the API
		d.log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}
