package booking

import "errors"

// ErrIllegalTransition is returned when a status change violates the
// transition table.
var ErrIllegalTransition = errors.New("illegal booking status transition")

// ErrInvalidStatus is returned for an unknown status value.
var ErrInvalidStatus = errors.New("invalid booking status")

// ErrForbidden is returned when the actor is not allowed to act on the booking.
var ErrForbidden = errors.New("not allowed to modify this booking")
