package usecase

import "errors"

// Expected business outcomes. Handlers map these to response codes; anything
// else surfaces as an internal error.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")

	// The booking window has not opened yet.
	ErrPreOpen = errors.New("booking window not open yet")
	// The requested dates fall outside the open booking window.
	ErrSeasonClosed = errors.New("booking window closed")
	// The stay violates the weekend minimum-stay rule.
	ErrRuleViolation = errors.New("weekend minimum-stay rule violated")
	// An administrator blocked one of the requested dates.
	ErrSiteBlocked = errors.New("site blocked on requested dates")
)
