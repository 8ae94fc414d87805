package trip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"voyager/internal/repositories"
	"voyager/internal/services"
	"voyager/pkg/llm"
)

var Module = fx.Provide(provideTripRepo, provideTripService)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(tripRepo repositories.TripRepository, generator llm.Client) services.TripServiceInterface {
	return services.NewTripService(tripRepo, generator)
}
