package wire

import (
	"campsite-booking/internal/adaptor"
	"campsite-booking/pkg/middleware"
	"campsite-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireWaitlist(
	r chi.Router,
	waitlistHandler *adaptor.WaitlistHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require identity) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Identity(log))

		// POST /api/waitlist - Register interest in a full date
		r.Post("/api/waitlist", waitlistHandler.Register)

		// DELETE /api/waitlist - Remove a registration
		r.Delete("/api/waitlist", waitlistHandler.Deregister)

		// GET /api/user/waitlist - The caller's registrations
		r.Get("/api/user/waitlist", waitlistHandler.GetUserEntries)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/waitlist", func(r chi.Router) {
		r.Use(middleware.AdminAuth(config.Admin.TokenHash, log))

		// GET /api/admin/waitlist - Subscribers watching a slot
		r.Get("/", waitlistHandler.GetSubscribers)
	})
}
