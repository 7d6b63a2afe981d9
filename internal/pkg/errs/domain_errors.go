package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Station errors
	ErrStationNotFound = errors.New("station not found")
	ErrStationNotOpen  = errors.New("station is not open")
	ErrStationBusy     = errors.New("station already has an active session")

	// Session errors
	ErrSessionNotFound      = errors.New("session not found")
	ErrSessionAlreadyClosed = errors.New("session is already closed")

	// Pricing errors
	ErrPricingNotFound = errors.New("pricing not configured for branch")

	// Customer errors
	ErrCustomerNotFound = errors.New("customer not found")

	// Validation errors
	ErrInvalidPlayerCount = errors.New("player count must be at least 1")
	ErrInvalidHours       = errors.New("hours must be at least 1")
	ErrInvalidRedeem      = errors.New("redeem request outside allowed limits")

	// Operation errors
	ErrStoreUnavailable = errors.New("record store unavailable")
)
