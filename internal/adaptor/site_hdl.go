package adaptor

import (
	"net/http"

	"campsite-booking/internal/usecase"
	"campsite-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SiteHandler struct {
	service usecase.SiteService
	log     *zap.Logger
}

func NewSiteHandler(service usecase.SiteService, log *zap.Logger) *SiteHandler {
	return &SiteHandler{
		service: service,
		log:     log.With(zap.String("handler", "site")),
	}
}

// GetSites handles GET /api/sites (public)
func (h *SiteHandler) GetSites(w http.ResponseWriter, r *http.Request) {
	sites, err := h.service.GetActiveSites(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get sites")
		return
	}

	utils.ResponseSuccess(w, "success", sites)
}

// GetSite handles GET /api/sites/{id} (public)
func (h *SiteHandler) GetSite(w http.ResponseWriter, r *http.Request) {
	siteID := chi.URLParam(r, "id")
	if siteID == "" {
		utils.ResponseBadRequest(w, "Site ID is required", nil)
		return
	}

	site, err := h.service.GetSite(r.Context(), siteID)
	if err != nil {
		handleServiceError(w, h.log, err, "get site")
		return
	}

	utils.ResponseSuccess(w, "success", site)
}
