package wire

import (
	"campsite-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAvailability(r chi.Router, availabilityHandler *adaptor.AvailabilityHandler) {
	// GET /api/availability - Per-site availability for a date range (public)
	r.Get("/api/availability", availabilityHandler.CheckAvailability)
}
