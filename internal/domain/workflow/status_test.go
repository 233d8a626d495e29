package workflow

import (
	"errors"
	"testing"
)

func TestTransition_ForwardPath(t *testing.T) {
	path := []Status{StatusPending, StatusReviewed, StatusContacted, StatusInterviewed, StatusHired}
	cur := path[0]
	for _, next := range path[1:] {
		got, err := Transition(cur, next)
		if err != nil {
			t.Fatalf("%s -> %s: unexpected error: %v", cur, next, err)
		}
		cur = got
	}
	if cur != StatusHired {
		t.Fatalf("expected hired, got %s", cur)
	}
}

func TestTransition_ReviewedRollback(t *testing.T) {
	got, err := Transition(StatusReviewed, StatusPending)
	if err != nil || got != StatusPending {
		t.Fatalf("reviewed -> pending must be allowed, got %s err=%v", got, err)
	}

	// The rollback is the only backward edge.
	if _, err := Transition(StatusContacted, StatusReviewed); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("contacted -> reviewed must be rejected")
	}
	if _, err := Transition(StatusInterviewed, StatusContacted); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("interviewed -> contacted must be rejected")
	}
}

func TestTransition_AutomaticContactFromPending(t *testing.T) {
	if !CanTransition(StatusPending, StatusContacted) {
		t.Fatalf("pending -> contacted must be allowed for auto-contact")
	}
}

func TestTransition_WithdrawnFromAnyNonTerminal(t *testing.T) {
	for _, from := range []Status{StatusPending, StatusReviewed, StatusContacted, StatusInterviewed} {
		if !CanTransition(from, StatusWithdrawn) {
			t.Fatalf("%s -> withdrawn must be allowed", from)
		}
	}
}

func TestTransition_TerminalIsFinal(t *testing.T) {
	for _, from := range []Status{StatusHired, StatusRejected, StatusWithdrawn} {
		if !from.Terminal() {
			t.Fatalf("%s must be terminal", from)
		}
		for _, to := range []Status{StatusPending, StatusReviewed, StatusContacted, StatusInterviewed, StatusHired, StatusRejected, StatusWithdrawn} {
			if CanTransition(from, to) {
				t.Fatalf("terminal %s must not transition to %s", from, to)
			}
		}
	}
}

func TestTransition_HiredOnlyFromInterviewed(t *testing.T) {
	for _, from := range []Status{StatusPending, StatusReviewed, StatusContacted} {
		if CanTransition(from, StatusHired) {
			t.Fatalf("%s -> hired must be rejected", from)
		}
	}
}

func TestStatus_Valid(t *testing.T) {
	if Status("archived").Valid() {
		t.Fatalf("unknown status must be invalid")
	}
	if _, err := Transition(StatusPending, Status("archived")); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("transition to unknown status must fail")
	}
}
