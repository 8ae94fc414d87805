package services

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"
	dbm "voyager/internal/models/db_models"
	"voyager/internal/models/request_models"
	"voyager/internal/models/response_models"
	"voyager/internal/repositories"
	"voyager/pkg/llm"
	"voyager/pkg/utils"
)

const (
	maxTitleLength = 100
	minTripDays    = 1
	maxTripDays    = 30
)

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, userID uuid.UUID, request request_models.CreateTripRequest) (*response_models.TripDetailResponse, error)
	ListTrips(ctx context.Context, userID uuid.UUID) ([]response_models.TripResponse, error)
	GetTripDetail(ctx context.Context, tripID, userID uuid.UUID) (*response_models.TripDetailResponse, error)
	RegenerateDay(ctx context.Context, tripID, userID uuid.UUID, dayNum int) (*response_models.DayResponse, error)
	DeleteTrip(ctx context.Context, tripID, userID uuid.UUID) error
}

type TripService struct {
	tripRepo  repositories.TripRepository
	generator llm.Client
}

func NewTripService(tripRepo repositories.TripRepository, generator llm.Client) TripServiceInterface {
	return &TripService{
		tripRepo:  tripRepo,
		generator: generator,
	}
}

// CreateTrip generates a full itinerary and persists the trip together with
// its days. Nothing is written if generation fails, so a trip row never
// exists without the backend having produced an itinerary for it.
func (t *TripService) CreateTrip(ctx context.Context, userID uuid.UUID, request request_models.CreateTripRequest) (*response_models.TripDetailResponse, error) {
	title := strings.TrimSpace(request.Title)
	if title == "" || len(title) > maxTitleLength {
		return nil, utils.ErrInvalidInput
	}
	if request.NumDays < minTripDays || request.NumDays > maxTripDays {
		return nil, utils.ErrInvalidInput
	}

	itinerary, err := t.generator.GenerateItinerary(ctx, title, request.NumDays, request.Preferences)
	if err != nil {
		log.Printf("Trip creation: generation failed for %q: %v", title, err)
		return nil, utils.ErrGenerationFailed
	}

	trip := &dbm.Trip{
		UserID:      userID,
		Title:       title,
		NumDays:     request.NumDays,
		Preferences: request.Preferences,
	}

	// Persist whatever the backend returned, day numbers included. A count
	// that differs from the request has already been warned about upstream.
	days := make([]dbm.ItineraryDay, 0, len(itinerary.Days))
	for _, entry := range itinerary.Days {
		days = append(days, dbm.ItineraryDay{
			DayNumber: entry.Day,
			Content:   entry.Summary,
		})
	}

	if err := t.tripRepo.CreateWithDays(ctx, trip, days); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return t.buildDetail(ctx, trip)
}

func (t *TripService) ListTrips(ctx context.Context, userID uuid.UUID) ([]response_models.TripResponse, error) {
	trips, err := t.tripRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripResponse, 0, len(trips))
	for _, trip := range trips {
		out = append(out, toTripResponse(&trip))
	}
	return out, nil
}

func (t *TripService) GetTripDetail(ctx context.Context, tripID, userID uuid.UUID) (*response_models.TripDetailResponse, error) {
	trip, err := t.ownedTrip(ctx, tripID, userID)
	if err != nil {
		return nil, err
	}
	return t.buildDetail(ctx, trip)
}

// RegenerateDay replaces the content of a single day. The day number must be
// within the trip's range before any backend call is made, and a failed
// generation leaves the stored content untouched.
func (t *TripService) RegenerateDay(ctx context.Context, tripID, userID uuid.UUID, dayNum int) (*response_models.DayResponse, error) {
	trip, err := t.ownedTrip(ctx, tripID, userID)
	if err != nil {
		return nil, err
	}

	if dayNum < 1 || dayNum > trip.NumDays {
		return nil, utils.ErrInvalidDayNumber
	}

	entry, err := t.generator.RegenerateDay(ctx, trip.Title, dayNum, trip.NumDays, trip.Preferences)
	if err != nil {
		log.Printf("Day regeneration: generation failed for trip %s day %d: %v", tripID, dayNum, err)
		return nil, utils.ErrGenerationFailed
	}

	if err := t.tripRepo.UpdateDayContent(ctx, tripID, dayNum, entry.Summary); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.DayResponse{
		DayNumber: dayNum,
		Content:   entry.Summary,
	}, nil
}

func (t *TripService) DeleteTrip(ctx context.Context, tripID, userID uuid.UUID) error {
	if _, err := t.ownedTrip(ctx, tripID, userID); err != nil {
		return err
	}
	if err := t.tripRepo.Delete(ctx, tripID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// ownedTrip fetches a trip and enforces ownership: absent trips are NotFound,
// someone else's trips are Forbidden.
func (t *TripService) ownedTrip(ctx context.Context, tripID, userID uuid.UUID) (*dbm.Trip, error) {
	trip, err := t.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	if trip.UserID != userID {
		return nil, utils.ErrForbidden
	}
	return trip, nil
}

func (t *TripService) buildDetail(ctx context.Context, trip *dbm.Trip) (*response_models.TripDetailResponse, error) {
	days, err := t.tripRepo.GetDays(ctx, trip.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := &response_models.TripDetailResponse{
		TripResponse: toTripResponse(trip),
		Days:         make([]response_models.DayResponse, 0, len(days)),
	}
	for _, day := range days {
		out.Days = append(out.Days, response_models.DayResponse{
			DayNumber: day.DayNumber,
			Content:   day.Content,
		})
	}
	return out, nil
}

func toTripResponse(trip *dbm.Trip) response_models.TripResponse {
	return response_models.TripResponse{
		ID:          trip.ID.String(),
		Title:       trip.Title,
		NumDays:     trip.NumDays,
		Preferences: trip.Preferences,
		CreatedAt:   trip.CreatedAt,
	}
}
