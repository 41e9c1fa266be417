package domain

import "errors"

// Core error taxonomy. Services return these (possibly wrapped) so the API
// layer can map them to transport status codes.
var (
	// ErrInvalidRange is returned when a fare or booking request has
	// end <= start.
	ErrInvalidRange = errors.New("end must be after start")

	// ErrNotFound is returned when a referenced vehicle, driver, booking,
	// user, review or complaint does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition is returned when a booking or verification
	// status change is not permitted by the state machine.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrDuplicateReview is returned when a reviewer already reviewed a
	// booking.
	ErrDuplicateReview = errors.New("booking already reviewed by this user")

	// ErrUnauthorized is returned when the acting user is not allowed to
	// perform the operation (wrong role, or not a party to the booking).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrVersionConflict is returned when an optimistic-concurrency update
	// lost a race with a concurrent writer.
	ErrVersionConflict = errors.New("entity was modified concurrently")

	// ErrNotAvailable is returned when a booking targets a vehicle or
	// driver that is not verified and available.
	ErrNotAvailable = errors.New("not available for booking")

	// ErrInvalidInput is returned for malformed request fields, such as an
	// unparseable date or an out-of-range rating.
	ErrInvalidInput = errors.New("invalid input")
)
