package controllers_fx

import (
	"go.uber.org/fx"
	"voyager/internal/api/controllers"
	"voyager/internal/services"
)

var Module = fx.Provide(provideAccountController, provideTripController)

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}

func provideTripController(tripService services.TripServiceInterface) *controllers.TripController {
	return controllers.NewTripController(tripService)
}
