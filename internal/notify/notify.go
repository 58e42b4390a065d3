package notify

import "fmt"

// Kind is the logical notification type; the dispatcher renders each
// kind into a subject and body.
type Kind string

const (
	KindNewBookingAdmin        Kind = "new-booking-admin"
	KindBookingReceivedClient  Kind = "booking-received-client"
	KindBookingConfirmedClient Kind = "booking-confirmed-client"
	KindBookingRejectedClient  Kind = "booking-rejected-client"
	KindBookingCancelledClient Kind = "booking-cancelled-client"
	KindClientCancelledAdmin   Kind = "client-cancelled-admin"
)

// BookingData carries the structured fields a notification template
// needs; rendering stays inside this package.
type BookingData struct {
	BookingID     string
	ClientName    string
	ClientEmail   string
	ClientPhone   string
	TreatmentName string
	Date          string
	Time          string
	Message       string
	Reason        string
}

// Event is one queued notification.
type Event struct {
	Kind Kind
	To   string
	Data BookingData
}

func buildMessage(ev Event) (subject, body string) {
	d := ev.Data

	details := fmt.Sprintf(
		"Treatment: %s\nDate: %s\nTime: %s\nBooking ID: %s\n",
		d.TreatmentName, d.Date, d.Time, d.BookingID,
	)

	switch ev.Kind {
	case KindNewBookingAdmin:
		subject = fmt.Sprintf("New booking - %s", d.ClientName)
		body = fmt.Sprintf(
			"New booking request.\n\nClient: %s\nEmail: %s\nPhone: %s\n%s",
			d.ClientName, d.ClientEmail, d.ClientPhone, details,
		)
		if d.Message != "" {
			body += fmt.Sprintf("Note: %s\n", d.Message)
		}

	case KindBookingReceivedClient:
		subject = "Your booking request - SkinLab 011"
		body = fmt.Sprintf(
			"Dear %s,\n\nYour booking request has been received. We will respond within 24 hours.\n\n%s",
			d.ClientName, details,
		)

	case KindBookingConfirmedClient:
		subject = "Booking confirmed - SkinLab 011"
		body = fmt.Sprintf(
			"Dear %s,\n\nYour booking is confirmed. Please arrive 10 minutes early.\n\n%s",
			d.ClientName, details,
		)

	case KindBookingRejectedClient:
		subject = "Booking not available - SkinLab 011"
		body = fmt.Sprintf(
			"Dear %s,\n\nUnfortunately the requested slot is not available. Please contact us for an alternative.\n\n%s",
			d.ClientName, details,
		)
		if d.Reason != "" {
			body += fmt.Sprintf("Reason: %s\n", d.Reason)
		}

	case KindBookingCancelledClient:
		subject = "Booking cancelled - SkinLab 011"
		body = fmt.Sprintf(
			"Dear %s,\n\nYour booking has been cancelled.\n\n%s",
			d.ClientName, details,
		)
		if d.Reason != "" {
			body += fmt.Sprintf("Reason: %s\n", d.Reason)
		}

	case KindClientCancelledAdmin:
		subject = fmt.Sprintf("Booking cancelled by client - %s", d.ClientName)
		body = fmt.Sprintf(
			"The client cancelled via the cancellation link. The slot is free again.\n\nClient: %s\nEmail: %s\n%s",
			d.ClientName, d.ClientEmail, details,
		)

	default:
		subject = "SkinLab 011"
		body = details
	}

	return subject, body
}
