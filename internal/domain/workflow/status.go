package workflow

import (
	"errors"
	"fmt"
)

// Status tracks a candidate's progression through the hiring pipeline
// for one job. Transitions are one-directional except for the explicit
// reviewed -> pending rollback.
type Status string

const (
	StatusPending     Status = "pending"
	StatusReviewed    Status = "reviewed"
	StatusContacted   Status = "contacted"
	StatusInterviewed Status = "interviewed"
	StatusHired       Status = "hired"
	StatusRejected    Status = "rejected"
	StatusWithdrawn   Status = "withdrawn"
)

var ErrInvalidTransition = errors.New("invalid status transition")

var transitions = map[Status]map[Status]bool{
	StatusPending: {
		StatusReviewed:  true,
		StatusContacted: true, // automatic contact on auto-qualification
		StatusWithdrawn: true,
	},
	StatusReviewed: {
		StatusPending:   true, // reviewer un-reviews
		StatusContacted: true,
		StatusRejected:  true,
		StatusWithdrawn: true,
	},
	StatusContacted: {
		StatusInterviewed: true,
		StatusRejected:    true,
		StatusWithdrawn:   true,
	},
	StatusInterviewed: {
		StatusHired:     true,
		StatusRejected:  true,
		StatusWithdrawn: true,
	},
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusReviewed, StatusContacted, StatusInterviewed,
		StatusHired, StatusRejected, StatusWithdrawn:
		return true
	default:
		return false
	}
}

// Terminal statuses are final; scores attached to them are frozen.
func (s Status) Terminal() bool {
	switch s {
	case StatusHired, StatusRejected, StatusWithdrawn:
		return true
	default:
		return false
	}
}

func CanTransition(from, to Status) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	return transitions[from][to]
}

// Transition validates and returns the next status.
func Transition(from, to Status) (Status, error) {
	if !CanTransition(from, to) {
		return from, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return to, nil
}
