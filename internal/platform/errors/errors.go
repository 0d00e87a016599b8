package apperrors

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")

	// Session state machine.
	ErrNoSession        = errors.New("no session loaded")
	ErrEmptySession     = errors.New("session has no items")
	ErrOutOfRange       = errors.New("item index out of range")
	ErrSessionCompleted = errors.New("session already completed")

	// Submission gates.
	ErrIncompleteSubmission = errors.New("not all items answered")
	ErrSubmitInFlight       = errors.New("a submission is already in flight")

	// Remote collaborator failures. Local state policy differs per call:
	// review recording keeps the local mutation, quiz submission defers it.
	ErrLoad         = errors.New("loading items failed")
	ErrGeneration   = errors.New("generation failed")
	ErrSubmission   = errors.New("quiz submission failed")
	ErrRecordReview = errors.New("recording review failed")
)
