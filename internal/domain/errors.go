package domain

import "errors"

// Not-found family. The API layer maps these to 404. ErrBookingNotFound is
// also returned when a caller without visibility asks for an existing booking,
// so existence is never revealed to third parties.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrRequestNotFound = errors.New("item request not found")
	ErrBookingNotFound = errors.New("booking not found")
)

// Validation family, mapped to 400. These indicate caller error and are not
// retryable.
var (
	ErrDuplicateEmail    = errors.New("email already in use")
	ErrItemUnavailable   = errors.New("item is not available for booking")
	ErrSelfBooking       = errors.New("owner cannot book their own item")
	ErrInvalidInterval   = errors.New("booking start must be before end")
	ErrAlreadyDecided    = errors.New("booking is not in waiting status")
	ErrUnknownState      = errors.New("unknown state")
	ErrInvalidPagination = errors.New("invalid pagination parameters")
)

// ErrNotOwner is returned when a caller who is not the item's owner attempts
// an owner-only operation. Mapped to 403.
var ErrNotOwner = errors.New("user is not the owner of the item")
