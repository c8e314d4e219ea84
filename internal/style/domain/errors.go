package domain

import "errors"

var (
	// ErrValidation flags missing or malformed input, detected before any
	// external call. Wrap it with the offending field name.
	ErrValidation = errors.New("validation error")

	// ErrEmailNotFound means the sample id does not exist for this user.
	ErrEmailNotFound = errors.New("synthetic email not found")

	// ErrInvalidStateTransition is returned when feedback arrives for a
	// sample that is not pending (re-approving is the one idempotent
	// exception).
	ErrInvalidStateTransition = errors.New("invalid feedback state transition")

	// ErrNoApprovedSamples is returned when freezing a profile with nothing
	// approved.
	ErrNoApprovedSamples = errors.New("no approved samples to save as style profile")

	// ErrNoStyleProfile is returned by composition when a frozen profile is
	// required but missing.
	ErrNoStyleProfile = errors.New("no style profile saved")

	// ErrAnalysisFailed wraps model errors or unparseable analysis output.
	ErrAnalysisFailed = errors.New("style analysis failed")

	// ErrGenerationFailed wraps model errors during sample generation or
	// regeneration.
	ErrGenerationFailed = errors.New("sample generation failed")
)
