package models

import "time"

type Treatment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CategoryID uint              `json:"category_id"`
	Category   TreatmentCategory `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	NameMe string `gorm:"size:150;not null" json:"name_me"`
	NameEn string `gorm:"size:150" json:"name_en"`
	NameRu string `gorm:"size:150" json:"name_ru"`

	// Price is the display string ("25€", "od 30€"); PriceValue is the
	// numeric amount used by revenue aggregation and may be absent.
	Price      string   `gorm:"size:30" json:"price"`
	PriceValue *float64 `json:"price_value"`

	// DurationMinutes is nullable; bookings fall back to 60 when unset.
	DurationMinutes *int `json:"duration_minutes"`

	SortOrder int  `gorm:"default:0" json:"sort_order"`
	Active    bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EffectiveDuration resolves the slot-grid duration for this treatment,
// defaulting to 60 minutes when none is stored.
func (t *Treatment) EffectiveDuration() int {
	if t.DurationMinutes == nil || *t.DurationMinutes <= 0 {
		return 60
	}
	return *t.DurationMinutes
}

// LocalizedName returns the treatment name for a client locale,
// falling back to the Montenegrin name.
func (t *Treatment) LocalizedName(locale string) string {
	switch locale {
	case "en":
		if t.NameEn != "" {
			return t.NameEn
		}
	case "ru":
		if t.NameRu != "" {
			return t.NameRu
		}
	}
	return t.NameMe
}
