package main

import (
	"context"
	_ "embed"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/opencourt/court-booking-backend/api"
	"github.com/opencourt/court-booking-backend/auth"
	bk "github.com/opencourt/court-booking-backend/booking"
	"github.com/opencourt/court-booking-backend/config"
	"github.com/opencourt/court-booking-backend/game"
	"github.com/opencourt/court-booking-backend/venue"
)

//go:embed database/setup.sql
var setupSQL string

func main() {
	logger := slog.Default().With("component", "main")

	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading .env file", "err", err)
	}

	cfg, err := config.Load()

	if err != nil {
		logger.Error("failed to load configuration", "err", err)
		os.Exit(1)
	}

	logger.Info("connecting to PostgreSQL database")
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)

	if err != nil {
		logger.Error("Unable to connect to database", "err", err)
		os.Exit(1)
	}

	defer pool.Close()

	_, err = pool.Exec(context.Background(), setupSQL)
	if err != nil {
		logger.Error("failed to initialize tables", "err", err)
		os.Exit(1)
	} else {
		logger.Info("initialized database tables")
	}

	tokens := auth.NewTokenManager(
		cfg.AccessTokenSecret,
		cfg.RefreshTokenSecret,
		cfg.AccessTokenTTL,
		cfg.RefreshTokenTTL,
	)

	authRepo := auth.NewRepository(pool, cfg.StorageTimeout)
	authService := auth.NewService(authRepo, tokens, cfg.RefreshRotateThreshold)

	bookingRepo := bk.NewRepository(pool, cfg.StorageTimeout)
	bookingService := bk.NewService(bookingRepo)

	gameRepo := game.NewRepository(pool, cfg.StorageTimeout)
	gameService := game.NewService(gameRepo)

	venueRepo := venue.NewRepository(pool, cfg.StorageTimeout)
	venueService := venue.NewService(venueRepo, cfg.VenueCacheTTL)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	authRequired := api.BearerAuth(authService)

	// AUTH API

	authRouter := r.Group("/api/auth")
	authHandler := api.NewAuthHandler(authService)
	authHandler.Register(authRouter, authRequired)

	// VENUE + BOOKING API

	venueRouter := r.Group("/api/venue")
	venueHandler := api.NewVenueHandler(venueService)
	venueHandler.Register(venueRouter)

	bookingRouter := r.Group("/api/bookings")
	bookingHandler := api.NewBookingHandler(bookingService)
	bookingHandler.Register(bookingRouter, venueRouter, authRequired)

	// GAME API

	gameRouter := r.Group("/api/game")
	gameHandler := api.NewGameHandler(gameService)
	gameHandler.Register(gameRouter, authRequired)

	r.Run(cfg.HTTPAddr)
}
