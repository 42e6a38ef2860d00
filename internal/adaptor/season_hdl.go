package adaptor

import (
	"net/http"

	"campsite-booking/internal/usecase"
	"campsite-booking/pkg/utils"

	"go.uber.org/zap"
)

type SeasonHandler struct {
	service usecase.SeasonService
	log     *zap.Logger
}

func NewSeasonHandler(service usecase.SeasonService, log *zap.Logger) *SeasonHandler {
	return &SeasonHandler{
		service: service,
		log:     log.With(zap.String("handler", "season")),
	}
}

// GetWindow handles GET /api/window (public)
func (h *SeasonHandler) GetWindow(w http.ResponseWriter, r *http.Request) {
	window, err := h.service.GetWindow(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get booking window")
		return
	}

	utils.ResponseSuccess(w, "success", window)
}

// GetPricing handles GET /api/pricing (public)
func (h *SeasonHandler) GetPricing(w http.ResponseWriter, r *http.Request) {
	pricing, err := h.service.GetPricingConfig(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get pricing config")
		return
	}

	utils.ResponseSuccess(w, "success", pricing)
}
