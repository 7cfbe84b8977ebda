package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/mindmetrics/prediction-api/docs"
	"github.com/mindmetrics/prediction-api/internal/api/handler"
	"github.com/mindmetrics/prediction-api/internal/api/middleware"
	"github.com/mindmetrics/prediction-api/internal/core/ports"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	authService ports.AuthService,
	predictionService ports.PredictionService,
	db *mongo.Database,
	rdb *redis.Client,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("prediction_api"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	predictionHandler := handler.NewPredictionHandler(predictionService)
	authGate := middleware.Auth(authService)

	// --- Credential lifecycle (unauthenticated) ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.POST("/refresh-token", authHandler.Refresh)
	e.POST("/forgot-password", authHandler.ForgotPassword)
	e.POST("/reset-password", authHandler.ResetPassword)

	// --- Protected routes ---
	e.GET("/me", authHandler.Me, authGate)
	e.GET("/models", predictionHandler.Models, authGate)
	e.POST("/predict", predictionHandler.Predict, authGate)
	e.GET("/metrics/:model", predictionHandler.Metrics, authGate)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
