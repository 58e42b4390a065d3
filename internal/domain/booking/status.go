package booking

import "github.com/skinlab011/salon-booking/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// Terminal statuses have no outgoing transitions.
func (s Status) Terminal() bool {
	return s == StatusRejected || s == StatusCancelled
}

// ===============================
// Transition validations
// ===============================

// CanConfirm: only a pending booking can be confirmed.
func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_status_transition")
	}
	return nil
}

// CanReject: only a pending booking can be rejected.
func CanReject(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_status_transition")
	}
	return nil
}

// CanCancel: pending and confirmed bookings can be cancelled.
func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_status_transition")
	}
	return nil
}

// CanTransition validates an arbitrary requested transition against the
// state machine. Creation statuses (pending on public submission,
// confirmed on walk-in entry) never pass through here.
func CanTransition(from, to Status) error {
	switch to {
	case StatusConfirmed:
		return CanConfirm(from)
	case StatusRejected:
		return CanReject(from)
	case StatusCancelled:
		return CanCancel(from)
	}
	return httperr.ErrBusiness("invalid_status_transition")
}

func InitialStatus() Status {
	return StatusPending
}
