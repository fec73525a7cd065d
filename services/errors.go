package services

import "errors"

// Error classes the HTTP layer maps onto status codes. Concrete failures
// wrap one of these so callers can classify with errors.Is.
var (
	// ErrNotFound marks a referenced user, shop, food item, or order id
	// that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument marks a request that is well-formed but asks for
	// something impossible: insufficient stock, an item from a different
	// shop, an unparseable status value, an email already registered.
	ErrInvalidArgument = errors.New("invalid request")

	// ErrInvalidCredentials is returned by Authenticate on an unknown
	// email or a wrong password; both look the same to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
