// main.go
package main

import (
	"context"
	"log"
	"time"

	"campsite-booking/cmd"
	"campsite-booking/internal/data/repository"
	"campsite-booking/internal/events"
	"campsite-booking/internal/jobs"
	"campsite-booking/internal/usecase"
	"campsite-booking/internal/wire"
	"campsite-booking/pkg/database"
	"campsite-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Redis backs the per-user booking rate limit; optional
	rdb := database.InitRedis(config.Redis)
	if rdb != nil {
		defer rdb.Close()
		logger.Info("Redis connected, booking rate limit active")
	} else if config.Redis.Enabled {
		logger.Warn("Redis unreachable, booking rate limit disabled")
	}

	// RabbitMQ carries the transition events; optional
	var publisher usecase.EventPublisher
	if config.AMQP.Enabled {
		p, err := events.NewPublisher(config.AMQP.URL, logger)
		if err != nil {
			logger.Warn("Failed to connect to AMQP, events disabled", zap.Error(err))
		} else {
			defer p.Close()
			publisher = p
		}
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, publisher, rdb, logger)

	// Background sweep for unpaid pending reservations
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sweeper := jobs.NewExpirySweeper(app.Service.Booking,
		time.Duration(config.Booking.SweepIntervalMinutes)*time.Minute, logger)
	go sweeper.Run(ctx)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
