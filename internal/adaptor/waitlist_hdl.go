package adaptor

import (
	"encoding/json"
	"net/http"

	"campsite-booking/internal/dto/request"
	"campsite-booking/internal/usecase"
	"campsite-booking/pkg/utils"

	"go.uber.org/zap"
)

type WaitlistHandler struct {
	service usecase.WaitlistService
	log     *zap.Logger
}

func NewWaitlistHandler(service usecase.WaitlistService, log *zap.Logger) *WaitlistHandler {
	return &WaitlistHandler{
		service: service,
		log:     log.With(zap.String("handler", "waitlist")),
	}
}

// Register handles POST /api/waitlist (protected)
func (h *WaitlistHandler) Register(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.WaitlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	entry, err := h.service.Register(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "register waitlist entry")
		return
	}

	utils.ResponseCreated(w, "success", entry)
}

// Deregister handles DELETE /api/waitlist (protected)
func (h *WaitlistHandler) Deregister(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.WaitlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.Deregister(r.Context(), userID, &req); err != nil {
		handleServiceError(w, h.log, err, "remove waitlist entry")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// GetUserEntries handles GET /api/user/waitlist (protected)
func (h *WaitlistHandler) GetUserEntries(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	entries, err := h.service.GetUserEntries(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get waitlist entries")
		return
	}

	utils.ResponseSuccess(w, "success", entries)
}

// GetSubscribers handles GET /api/admin/waitlist (admin only)
func (h *WaitlistHandler) GetSubscribers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	targetDate := query.Get("target_date")
	siteID := query.Get("site_id")
	if targetDate == "" || siteID == "" {
		utils.ResponseBadRequest(w, "target_date and site_id are required", nil)
		return
	}

	subscribers, err := h.service.GetSubscribers(r.Context(), targetDate, siteID)
	if err != nil {
		handleServiceError(w, h.log, err, "get waitlist subscribers")
		return
	}

	utils.ResponseSuccess(w, "success", subscribers)
}
