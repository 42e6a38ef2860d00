package wire

import (
	"campsite-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSeason(r chi.Router, seasonHandler *adaptor.SeasonHandler) {
	// GET /api/window - Current booking window state (public)
	r.Get("/api/window", seasonHandler.GetWindow)

	// GET /api/pricing - Current rate card and peak seasons (public)
	r.Get("/api/pricing", seasonHandler.GetPricing)
}
