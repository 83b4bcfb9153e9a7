package apperr

import "errors"

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrInvalidState signals that an operation was invoked on an order whose
// status does not allow it (e.g. dispatching an already-assigned order).
var ErrInvalidState = errors.New("invalid order state")

// ErrOfferNotFound signals that no live offer exists for the (order, courier)
// pair. It intentionally covers expired, settled and never-offered cases alike.
var ErrOfferNotFound = errors.New("offer not found")

// ErrConflict indicates a uniqueness or state conflict (HTTP 409).
var ErrConflict = errors.New("conflict")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")
