package domain

import "errors"

// ErrTargetNotFound is returned when a target reference cannot be resolved to a live element.
var ErrTargetNotFound = errors.New("target not found")

// ErrInvalidDuration is returned when a descriptor or option bag carries a negative duration.
var ErrInvalidDuration = errors.New("invalid duration")
