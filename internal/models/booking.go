package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// BookingID is the externally exposed identifier (BOOK-...), used
	// in notification emails and cancellation links.
	BookingID string `gorm:"size:40;uniqueIndex;not null" json:"booking_id"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientEmail string `gorm:"size:100" json:"client_email"`
	ClientPhone string `gorm:"size:30" json:"client_phone"`

	TreatmentID *uint     `json:"treatment_id"`
	Treatment   Treatment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	// TreatmentName is snapshotted in the client's locale at creation
	// time; later treatment edits never change historical bookings.
	TreatmentName string `gorm:"size:150;not null" json:"treatment_name"`
	CategoryID    *uint  `json:"category_id"`

	BookingDate string `gorm:"size:10;index;not null" json:"booking_date"` // YYYY-MM-DD
	BookingTime string `gorm:"size:5;not null" json:"booking_time"`        // HH:MM
	StartMinute int    `gorm:"not null" json:"start_minute"`

	// DurationMinutes is denormalized from the treatment at creation
	// time. Nil on legacy rows; EffectiveDuration resolves those to 60
	// at read time rather than backfilling the column.
	DurationMinutes *int `json:"duration_minutes"`

	Message string `gorm:"size:500" json:"message"`
	Status  string `gorm:"size:20;default:'pending';index" json:"status"`
	Locale  string `gorm:"size:5;default:'me'" json:"locale"`

	CancelReason string     `gorm:"size:255" json:"cancel_reason"`
	CancelledAt  *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) EffectiveDuration() int {
	if b.DurationMinutes == nil || *b.DurationMinutes <= 0 {
		return 60
	}
	return *b.DurationMinutes
}

// EndMinute is the exclusive end of the booking's [start, end) interval.
func (b *Booking) EndMinute() int {
	return b.StartMinute + b.EffectiveDuration()
}
