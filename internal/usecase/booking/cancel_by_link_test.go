package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skinlab011/salon-booking/internal/httperr"
)

func TestCancelByLink_CancelsAndNotifiesAdmin(t *testing.T) {
	repo := newFakeRepo()
	b := repo.addBooking(pendingBooking())
	mailer := newCaptureMailer()

	uc := NewCancelByLink(repo, newTestNotifier(mailer))

	out, already, err := uc.Execute(context.Background(), b.BookingID)
	require.NoError(t, err)
	assert.False(t, already)
	assert.Equal(t, "cancelled", out.Status)
	assert.NotNil(t, out.CancelledAt)
	assert.Equal(t, "cancelled", repo.get(b.BookingID).Status)

	sent := mailer.waitMail(time.Second)
	assert.Equal(t, testAdminEmail, sent.To)
	assert.Equal(t, "Booking cancelled by client - Ana Petrović", sent.Subject)
}

func TestCancelByLink_Idempotent(t *testing.T) {
	repo := newFakeRepo()
	b := repo.addBooking(pendingBooking())
	mailer := newCaptureMailer()

	uc := NewCancelByLink(repo, newTestNotifier(mailer))

	_, _, err := uc.Execute(context.Background(), b.BookingID)
	require.NoError(t, err)
	mailer.waitMail(time.Second) // drain the first admin alert

	out, already, err := uc.Execute(context.Background(), b.BookingID)
	require.NoError(t, err)
	assert.True(t, already)
	assert.Equal(t, "cancelled", out.Status)

	// repeat clicks never re-notify the admin
	assert.Equal(t, sentMail{}, mailer.waitMail(100*time.Millisecond))
}

func TestCancelByLink_NotFound(t *testing.T) {
	uc := NewCancelByLink(newFakeRepo(), newTestNotifier(newCaptureMailer()))

	_, _, err := uc.Execute(context.Background(), "BOOK-NOPE")
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}
