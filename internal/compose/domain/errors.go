package domain

import "errors"

var (
	// ErrValidation marks a request rejected before any external call
	ErrValidation = errors.New("validation failed")
	// ErrNoStyleProfile is returned when composition requires a saved
	// profile and the user has none
	ErrNoStyleProfile = errors.New("no style profile saved")
	// ErrCompositionFailed wraps model failures during composition
	ErrCompositionFailed = errors.New("email composition failed")
)
