package db_models

import "github.com/google/uuid"

// ItineraryDay holds one day's generated content. The composite unique index
// keeps a trip's day numbers free of duplicates.
type ItineraryDay struct {
	BaseModel
	TripID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_trip_day"`
	DayNumber int       `gorm:"uniqueIndex:idx_trip_day"`
	Content   string
}
