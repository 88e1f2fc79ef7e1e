package service

import "errors"

var (
	// ErrValidation covers caller-correctable input problems.
	ErrValidation = errors.New("invalid booking details")
	// ErrUnauthorized covers missing, expired, mismatched, or reused
	// verification codes. It always surfaces to the caller verbatim.
	ErrUnauthorized = errors.New("verification failed")
	// ErrOverlap means the guest already holds a booking that shares at least
	// one night with the requested stay.
	ErrOverlap = errors.New("overlapping booking exists")
	// ErrRateLimited means a verification code was requested too soon after
	// the previous one for the same email.
	ErrRateLimited = errors.New("verification code requested too recently")
	ErrNotFound    = errors.New("not found")
)
