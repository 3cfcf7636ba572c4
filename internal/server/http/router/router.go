package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/ridepoints/internal/server/http/handlers"
	"github.com/polkiloo/ridepoints/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.LoyaltyFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.Recovery(logger))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.Use(middleware.Faults(logger))

	authHandler := handlers.NewAuthHandler(facade)
	rideHandler := handlers.NewRideHandler(facade)
	dashboardHandler := handlers.NewDashboardHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	engine.POST("/signup", authHandler.SignUp)
	engine.POST("/login", authHandler.Login)
	engine.GET("/health", healthHandler.Check)

	account := engine.Group("")
	account.Use(middleware.AuthRequired(facade))
	account.POST("/logRide", rideHandler.LogRide)
	account.GET("/dashboard", dashboardHandler.Show)

	return engine
}
