package adaptor

import (
	"errors"
	"net/http"

	"campsite-booking/internal/data/repository"
	"campsite-booking/internal/usecase"
	"campsite-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Season       *SeasonHandler
	Site         *SiteHandler
	Availability *AvailabilityHandler
	Booking      *BookingHandler
	Waitlist     *WaitlistHandler
	Admin        *AdminHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Season:       NewSeasonHandler(service.Season, log),
		Site:         NewSiteHandler(service.Site, log),
		Availability: NewAvailabilityHandler(service.Availability, log),
		Booking:      NewBookingHandler(service.Booking, log),
		Waitlist:     NewWaitlistHandler(service.Waitlist, log),
		Admin:        NewAdminHandler(service.Admin, log),
	}
}

// handleServiceError maps the expected business outcomes to response codes.
// The 422 family means "your request is well-formed but the rules say no";
// the 409 family means "someone else got there first".
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, "Not allowed to access this reservation")

	case errors.Is(err, usecase.ErrPreOpen):
		utils.ResponseUnprocessable(w, "PRE_OPEN", "Booking window has not opened yet")

	case errors.Is(err, usecase.ErrSeasonClosed):
		utils.ResponseUnprocessable(w, "SEASON_CLOSED", "Requested dates are outside the booking window")

	case errors.Is(err, usecase.ErrRuleViolation):
		utils.ResponseUnprocessable(w, "RULE_VIOLATION", "One-night Friday stays require a minimum of two nights")

	case errors.Is(err, usecase.ErrSiteBlocked):
		utils.ResponseConflict(w, "DATE_BLOCKED", "Site is blocked on the requested dates")

	case errors.Is(err, repository.ErrAlreadyBooked):
		utils.ResponseConflict(w, "ALREADY_BOOKED", "Dates are no longer available")

	case errors.Is(err, repository.ErrConcurrentRequest):
		utils.ResponseConflict(w, "CONCURRENT_REQUEST", "Another booking for this site is in flight, retry shortly")

	case errors.Is(err, repository.ErrStateConflict):
		utils.ResponseConflict(w, "STATE_CONFLICT", "Reservation is no longer in a state that allows this")

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
