package booking

import "errors"

// Error kinds surfaced by the booking engine. Handlers branch on these with
// errors.Is and map them to HTTP status codes.
var (
	// ErrConsentRequired is returned when a checkout is attempted without the
	// signed treatment consent. Hard gate, nothing is written.
	ErrConsentRequired = errors.New("consent required before booking")

	// ErrNotFound marks a booking or service id that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrEmptyCart is returned when a checkout finds no cart lines.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrStoreUnavailable wraps failures of the database or the cart store.
	ErrStoreUnavailable = errors.New("store unavailable")
)
