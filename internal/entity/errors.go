package entity

import "errors"

var (
	// ErrInvalidSlot rejects a write to a cell the order's shift
	// configuration does not allow, or a negative worker count.
	ErrInvalidSlot = errors.New("slot not eligible for this order")

	// ErrInvalidTransition rejects an illegal order status change.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrValidation rejects malformed input before it touches storage.
	ErrValidation = errors.New("validation failed")
)
