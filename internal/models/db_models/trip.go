package db_models

import "github.com/google/uuid"

// Trip is one itinerary request: a destination and a day count, fixed at
// creation. Days live in their own rows so a single day can be regenerated
// without touching the rest.
type Trip struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	Title       string    `gorm:"size:100"`
	NumDays     int
	Preferences string

	Days []ItineraryDay `gorm:"constraint:OnDelete:CASCADE"`
}
