package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "voyager/internal/models/db_models"
)

type TripRepository interface {
	// CreateWithDays persists the trip and its generated days as one
	// transaction, so a failure mid-write never leaves an orphaned trip.
	CreateWithDays(ctx context.Context, trip *dbm.Trip, days []dbm.ItineraryDay) error

	GetByID(ctx context.Context, id uuid.UUID) (*dbm.Trip, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]dbm.Trip, error)
	GetDays(ctx context.Context, tripID uuid.UUID) ([]dbm.ItineraryDay, error)
	UpdateDayContent(ctx context.Context, tripID uuid.UUID, dayNumber int, content string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) CreateWithDays(ctx context.Context, trip *dbm.Trip, days []dbm.ItineraryDay) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(trip).Error; err != nil {
			return err
		}
		for i := range days {
			days[i].TripID = trip.ID
		}
		if len(days) > 0 {
			if err := tx.Create(&days).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *tripRepository) GetByID(ctx context.Context, id uuid.UUID) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]dbm.Trip, error) {
	var trips []dbm.Trip
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) GetDays(ctx context.Context, tripID uuid.UUID) ([]dbm.ItineraryDay, error) {
	var days []dbm.ItineraryDay
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("day_number ASC").
		Find(&days).Error
	if err != nil {
		return nil, err
	}
	return days, nil
}

func (r *tripRepository) UpdateDayContent(ctx context.Context, tripID uuid.UUID, dayNumber int, content string) error {
	return r.db.WithContext(ctx).
		Model(&dbm.ItineraryDay{}).
		Where("trip_id = ? AND day_number = ?", tripID, dayNumber).
		Update("content", content).Error
}

func (r *tripRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("trip_id = ?", id).
			Delete(&dbm.ItineraryDay{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).
			Delete(&dbm.Trip{}).Error
	})
}
