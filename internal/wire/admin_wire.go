package wire

import (
	"campsite-booking/internal/adaptor"
	"campsite-booking/pkg/middleware"
	"campsite-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(
	r chi.Router,
	adminHandler *adaptor.AdminHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.AdminAuth(config.Admin.TokenHash, log))

		// PUT /api/admin/pricing - Replace the rate card
		r.Put("/pricing", adminHandler.UpdatePricing)

		// POST /api/admin/seasons - Add a peak season window
		r.Post("/seasons", adminHandler.CreateSeason)
		// DELETE /api/admin/seasons/{id}
		r.Delete("/seasons/{id}", adminHandler.DeleteSeason)

		// POST /api/admin/holidays - Add a public holiday
		r.Post("/holidays", adminHandler.CreateHoliday)
		// DELETE /api/admin/holidays/{id}
		r.Delete("/holidays/{id}", adminHandler.DeleteHoliday)

		// POST /api/admin/open-day-rules - Replace the active booking window rule
		r.Post("/open-day-rules", adminHandler.CreateOpenDayRule)
		// GET /api/admin/open-day-rules/active - The configured rule + resolved window
		r.Get("/open-day-rules/active", adminHandler.GetActiveOpenDayRule)

		// GET /api/admin/blocked-dates - Blocked dates for a site and range
		r.Get("/blocked-dates", adminHandler.ListBlockedDates)
		// POST /api/admin/blocked-dates - Block a site on a date
		r.Post("/blocked-dates", adminHandler.CreateBlockedDate)
		// DELETE /api/admin/blocked-dates/{id}
		r.Delete("/blocked-dates/{id}", adminHandler.DeleteBlockedDate)

		// Site catalog management
		r.Get("/sites", adminHandler.GetAllSites)
		r.Post("/sites", adminHandler.CreateSite)
		r.Put("/sites/{id}", adminHandler.UpdateSite)
	})
}
