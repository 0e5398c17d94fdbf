package services

import "errors"

var (
	// ErrInvalidInput marks requests rejected before any computation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvariantViolated marks a structurally invalid result from a path
	// that must always be correct. It indicates a bug, not bad input.
	ErrInvariantViolated = errors.New("route invariant violated")
)
