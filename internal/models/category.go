package models

import "time"

type TreatmentCategory struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Slug string `gorm:"size:100;uniqueIndex;not null" json:"slug"`

	NameMe string `gorm:"size:150;not null" json:"name_me"`
	NameEn string `gorm:"size:150" json:"name_en"`
	NameRu string `gorm:"size:150" json:"name_ru"`

	Icon      string `gorm:"size:50" json:"icon"`
	Color     string `gorm:"size:10" json:"color"`
	SortOrder int    `gorm:"default:0" json:"sort_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CategoryWithTreatments struct {
	TreatmentCategory
	Treatments []Treatment `json:"treatments"`
}
