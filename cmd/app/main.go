package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"voyager/cmd/fx/account_fx"
	"voyager/cmd/fx/controllers_fx"
	"voyager/cmd/fx/db_fx"
	"voyager/cmd/fx/llm_fx"
	"voyager/cmd/fx/trip_fx"
	"voyager/internal/api/controllers"
	"voyager/pkg/memcache"
	"voyager/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		llm_fx.Module,
		account_fx.Module,
		trip_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	revoked memcache.RevokedTokenStore) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, tripController, revoked)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	revoked memcache.RevokedTokenStore) {

	r.POST("/register", accountController.Register)
	r.POST("/login", accountController.Login)

	authed := r.Group("/")
	authed.Use(middleware.JWTAuthMiddleware(revoked))
	authed.GET("/logout", accountController.Logout)
	authed.GET("/", tripController.Dashboard)
	authed.POST("/trip/new", tripController.CreateTrip)
	authed.GET("/trip/:id", tripController.GetTrip)
	authed.DELETE("/trip/:id", tripController.DeleteTrip)
	authed.POST("/trip/:id/day/:n/regenerate", tripController.RegenerateDay)
}
