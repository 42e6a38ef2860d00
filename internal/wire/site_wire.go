package wire

import (
	"campsite-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSite(r chi.Router, siteHandler *adaptor.SiteHandler) {
	// GET /api/sites - List bookable sites (public)
	r.Get("/api/sites", siteHandler.GetSites)

	// GET /api/sites/{id} - Site details (public)
	r.Get("/api/sites/{id}", siteHandler.GetSite)
}
