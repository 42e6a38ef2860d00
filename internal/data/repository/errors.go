package repository

import "errors"

// Expected booking outcomes. These are user-facing results, not faults; the
// usecase layer maps them onto the discriminated API error codes.
var (
	// ErrAlreadyBooked means another reservation now overlaps the range.
	ErrAlreadyBooked = errors.New("site already booked for the requested dates")

	// ErrConcurrentRequest means a conflicting booking attempt holds the
	// site lock right now; the caller may simply retry.
	ErrConcurrentRequest = errors.New("concurrent booking attempt in flight")

	// ErrStateConflict means a guarded status transition matched no row,
	// i.e. the reservation moved to another state first.
	ErrStateConflict = errors.New("reservation is not in the expected state")
)
