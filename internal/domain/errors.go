package domain

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrTutorNotFound        = errors.New("tutor not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrAvailabilityNotFound = errors.New("availability not found")
	ErrOverrideNotFound     = errors.New("date override not found")
)

var (
	ErrBookingConflict   = errors.New("booking conflicts with an existing booking")
	ErrSlotUnavailable   = errors.New("tutor is not available at the requested time")
	ErrBookingNotPending = errors.New("booking is not in pending status")
	ErrInvalidTransition = errors.New("booking status does not allow this transition")
)

var (
	ErrForbidden = errors.New("not allowed to perform this action")
)

var (
	ErrValidation = errors.New("validation error")
)
