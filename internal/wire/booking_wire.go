package wire

import (
	"campsite-booking/internal/adaptor"
	"campsite-booking/pkg/middleware"
	"campsite-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	config *utils.Config,
	rdb *redis.Client,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/quote - Price a candidate stay without booking (public)
	r.Post("/api/quote", bookingHandler.Quote)

	// ==================== PROTECTED ROUTES (require identity) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Identity(log))

		// POST /api/reservations - Commit a booking; rate limited per user
		r.With(middleware.RateLimit(rdb, config.Booking.RateLimitPerMinute, log)).
			Post("/api/reservations", bookingHandler.CreateReservation)

		// GET /api/user/reservations - The caller's booking history
		r.Get("/api/user/reservations", bookingHandler.GetUserReservations)

		// GET /api/reservations/{id} - One reservation (owner only)
		r.Get("/api/reservations/{id}", bookingHandler.GetReservation)

		// GET /api/reservations/{id}/refund - Refund preview at this instant
		r.Get("/api/reservations/{id}/refund", bookingHandler.PreviewRefund)

		// POST /api/reservations/{id}/cancel - Cancel and request the refund
		r.Post("/api/reservations/{id}/cancel", bookingHandler.Cancel)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/reservations", func(r chi.Router) {
		r.Use(middleware.AdminAuth(config.Admin.TokenHash, log))

		// GET /api/admin/reservations - All reservations, filterable by status
		r.Get("/", bookingHandler.ListReservations)

		// GET /api/admin/reservations/code/{code} - Lookup by reservation code
		r.Get("/code/{code}", bookingHandler.GetReservationByCode)

		// PUT /api/admin/reservations/{id}/confirm - Payment received
		r.Put("/{id}/confirm", bookingHandler.Confirm)

		// PUT /api/admin/reservations/{id}/refund-complete - Wire transfer sent
		r.Put("/{id}/refund-complete", bookingHandler.CompleteRefund)

		// PUT /api/admin/reservations/{id}/complete - Stay finished
		r.Put("/{id}/complete", bookingHandler.Complete)

		// PUT /api/admin/reservations/{id}/no-show - Guest never arrived
		r.Put("/{id}/no-show", bookingHandler.MarkNoShow)
	})
}
