package wire

import (
	"net/http"

	"campsite-booking/internal/adaptor"
	"campsite-booking/internal/data/repository"
	"campsite-booking/internal/usecase"
	"campsite-booking/pkg/middleware"
	"campsite-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring assembles services, handlers and routes. rdb and publisher may be
// nil; rate limiting and eventing degrade to no-ops.
func Wiring(repo *repository.Repository, config *utils.Config, publisher usecase.EventPublisher, rdb *redis.Client, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, publisher, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, rdb, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	rdb *redis.Client,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireSeason(r, handler.Season)
	wireSite(r, handler.Site)
	wireAvailability(r, handler.Availability)
	wireBooking(r, handler.Booking, config, rdb, logger)
	wireWaitlist(r, handler.Waitlist, config, logger)
	wireAdmin(r, handler.Admin, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
