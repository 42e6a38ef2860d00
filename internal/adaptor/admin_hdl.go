package adaptor

import (
	"encoding/json"
	"net/http"

	"campsite-booking/internal/dto/request"
	"campsite-booking/internal/usecase"
	"campsite-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AdminHandler fronts the rule and catalog surface. Every route behind it
// sits behind the admin token middleware.
type AdminHandler struct {
	service usecase.AdminService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log.With(zap.String("handler", "admin")),
	}
}

// UpdatePricing handles PUT /api/admin/pricing
func (h *AdminHandler) UpdatePricing(w http.ResponseWriter, r *http.Request) {
	var req request.UpdatePricingConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	pricing, err := h.service.UpdatePricingConfig(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update pricing config")
		return
	}

	utils.ResponseSuccess(w, "success", pricing)
}

// CreateSeason handles POST /api/admin/seasons
func (h *AdminHandler) CreateSeason(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSeasonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	season, err := h.service.CreateSeason(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create season")
		return
	}

	utils.ResponseCreated(w, "success", season)
}

// DeleteSeason handles DELETE /api/admin/seasons/{id}
func (h *AdminHandler) DeleteSeason(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteSeason(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete season")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// CreateHoliday handles POST /api/admin/holidays
func (h *AdminHandler) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req request.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.CreateHoliday(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "create holiday")
		return
	}

	utils.ResponseCreated(w, "success", nil)
}

// DeleteHoliday handles DELETE /api/admin/holidays/{id}
func (h *AdminHandler) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteHoliday(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete holiday")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// CreateOpenDayRule handles POST /api/admin/open-day-rules
func (h *AdminHandler) CreateOpenDayRule(w http.ResponseWriter, r *http.Request) {
	var req request.CreateOpenDayRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.CreateOpenDayRule(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "create open-day rule")
		return
	}

	utils.ResponseCreated(w, "success", nil)
}

// GetActiveOpenDayRule handles GET /api/admin/open-day-rules/active
func (h *AdminHandler) GetActiveOpenDayRule(w http.ResponseWriter, r *http.Request) {
	rule, err := h.service.GetActiveOpenDayRule(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get active open-day rule")
		return
	}

	utils.ResponseSuccess(w, "success", rule)
}

// ListBlockedDates handles GET /api/admin/blocked-dates
func (h *AdminHandler) ListBlockedDates(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	siteID := query.Get("site_id")
	from := query.Get("from")
	to := query.Get("to")
	if siteID == "" || from == "" || to == "" {
		utils.ResponseBadRequest(w, "site_id, from and to are required", nil)
		return
	}

	blocked, err := h.service.ListBlockedDates(r.Context(), siteID, from, to)
	if err != nil {
		handleServiceError(w, h.log, err, "list blocked dates")
		return
	}

	utils.ResponseSuccess(w, "success", blocked)
}

// CreateBlockedDate handles POST /api/admin/blocked-dates
func (h *AdminHandler) CreateBlockedDate(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBlockedDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.CreateBlockedDate(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "create blocked date")
		return
	}

	utils.ResponseCreated(w, "success", nil)
}

// DeleteBlockedDate handles DELETE /api/admin/blocked-dates/{id}
func (h *AdminHandler) DeleteBlockedDate(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteBlockedDate(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete blocked date")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// CreateSite handles POST /api/admin/sites
func (h *AdminHandler) CreateSite(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	site, err := h.service.CreateSite(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create site")
		return
	}

	utils.ResponseCreated(w, "success", site)
}

// UpdateSite handles PUT /api/admin/sites/{id}
func (h *AdminHandler) UpdateSite(w http.ResponseWriter, r *http.Request) {
	siteID := chi.URLParam(r, "id")
	if siteID == "" {
		utils.ResponseBadRequest(w, "Site ID is required", nil)
		return
	}

	var req request.CreateSiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	site, err := h.service.UpdateSite(r.Context(), siteID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update site")
		return
	}

	utils.ResponseSuccess(w, "success", site)
}

// GetAllSites handles GET /api/admin/sites
func (h *AdminHandler) GetAllSites(w http.ResponseWriter, r *http.Request) {
	sites, err := h.service.GetAllSites(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get all sites")
		return
	}

	utils.ResponseSuccess(w, "success", sites)
}
