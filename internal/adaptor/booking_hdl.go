package adaptor

import (
	"context"
	"encoding/json"
	"net/http"

	"campsite-booking/internal/dto/request"
	"campsite-booking/internal/usecase"
	"campsite-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// Quote handles POST /api/quote (public)
func (h *BookingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req request.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	quote, err := h.service.Quote(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "quote stay")
		return
	}

	utils.ResponseSuccess(w, "success", quote)
}

// CreateReservation handles POST /api/reservations (protected)
func (h *BookingHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	reservation, err := h.service.CreateReservation(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create reservation")
		return
	}

	utils.ResponseCreated(w, "success", reservation)
}

// GetUserReservations handles GET /api/user/reservations (protected)
func (h *BookingHandler) GetUserReservations(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	reservations, err := h.service.GetUserReservations(r.Context(), userID, req)
	if err != nil {
		handleServiceError(w, h.log, err, "get user reservations")
		return
	}

	utils.ResponseSuccess(w, "success", reservations)
}

// GetReservation handles GET /api/reservations/{id} (protected)
func (h *BookingHandler) GetReservation(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	reservation, err := h.service.GetReservation(r.Context(), userID, reservationID)
	if err != nil {
		handleServiceError(w, h.log, err, "get reservation")
		return
	}

	utils.ResponseSuccess(w, "success", reservation)
}

// PreviewRefund handles GET /api/reservations/{id}/refund (protected)
func (h *BookingHandler) PreviewRefund(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	preview, err := h.service.PreviewRefund(r.Context(), userID, reservationID)
	if err != nil {
		handleServiceError(w, h.log, err, "preview refund")
		return
	}

	utils.ResponseSuccess(w, "success", preview)
}

// Cancel handles POST /api/reservations/{id}/cancel (protected)
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	var req request.CancelReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	reservation, err := h.service.Cancel(r.Context(), userID, reservationID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "cancel reservation")
		return
	}

	utils.ResponseSuccess(w, "success", reservation)
}

// ==================== ADMIN METHODS ====================

// ListReservations handles GET /api/admin/reservations (admin only)
func (h *BookingHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	reservations, err := h.service.ListReservations(r.Context(), query.Get("status"), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list reservations")
		return
	}

	utils.ResponseSuccess(w, "success", reservations)
}

// GetReservationByCode handles GET /api/admin/reservations/code/{code} (admin only)
func (h *BookingHandler) GetReservationByCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		utils.ResponseBadRequest(w, "Reservation code is required", nil)
		return
	}

	reservation, err := h.service.GetReservationByCode(r.Context(), code)
	if err != nil {
		handleServiceError(w, h.log, err, "get reservation by code")
		return
	}

	utils.ResponseSuccess(w, "success", reservation)
}

// Confirm handles PUT /api/admin/reservations/{id}/confirm (admin only)
func (h *BookingHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.adminTransition(w, r, "confirm reservation", h.service.Confirm)
}

// CompleteRefund handles PUT /api/admin/reservations/{id}/refund-complete (admin only)
func (h *BookingHandler) CompleteRefund(w http.ResponseWriter, r *http.Request) {
	h.adminTransition(w, r, "complete refund", h.service.CompleteRefund)
}

// Complete handles PUT /api/admin/reservations/{id}/complete (admin only)
func (h *BookingHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.adminTransition(w, r, "complete reservation", h.service.Complete)
}

// MarkNoShow handles PUT /api/admin/reservations/{id}/no-show (admin only)
func (h *BookingHandler) MarkNoShow(w http.ResponseWriter, r *http.Request) {
	h.adminTransition(w, r, "mark no-show", h.service.MarkNoShow)
}

func (h *BookingHandler) adminTransition(w http.ResponseWriter, r *http.Request, operation string,
	fn func(ctx context.Context, reservationID string) error) {

	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	if err := fn(r.Context(), reservationID); err != nil {
		handleServiceError(w, h.log, err, operation)
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
