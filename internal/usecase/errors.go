package usecase

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrJobNotFound       = errors.New("job not found")
	ErrCandidateNotFound = errors.New("candidate not found")
	// ErrStaleJob marks scoring attempts against a deleted or closed job.
	ErrStaleJob = errors.New("job is closed or deleted")
	// ErrFrozenScore marks recompute attempts for a candidate whose status
	// is terminal; the stored score is immutable from that point on.
	ErrFrozenScore  = errors.New("score is frozen by terminal status")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInternal     = errors.New("internal error")
)
