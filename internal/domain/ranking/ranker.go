package ranking

import (
	"bytes"
	"sort"
	"strings"
	"time"

	"talent-rank/internal/domain/workflow"

	"github.com/google/uuid"
)

// Entry is one scored candidate inside a job's pool.
type Entry struct {
	CandidateID   uuid.UUID
	Total         int
	ExamScore     *int
	AppliedAt     time.Time
	AutoQualified bool
	Status        workflow.Status
	Skills        []string
	Rank          int
}

// Rank orders a job's candidate pool deterministically and assigns dense
// 1-based ranks. Sort keys: total desc, exam score desc with a missing
// exam after any present one, application timestamp asc, candidate id.
// The tie-breaks are total-ordering, so two candidates never share a
// rank and input order never influences the result.
func Rank(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)

	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})

	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

func less(a, b Entry) bool {
	if a.Total != b.Total {
		return a.Total > b.Total
	}

	switch {
	case a.ExamScore != nil && b.ExamScore == nil:
		return true
	case a.ExamScore == nil && b.ExamScore != nil:
		return false
	case a.ExamScore != nil && b.ExamScore != nil && *a.ExamScore != *b.ExamScore:
		return *a.ExamScore > *b.ExamScore
	}

	// First-come priority.
	if !a.AppliedAt.Equal(b.AppliedAt) {
		return a.AppliedAt.Before(b.AppliedAt)
	}

	// Candidate id breaks exact timestamp collisions so the order never
	// depends on input position.
	return bytes.Compare(a.CandidateID[:], b.CandidateID[:]) < 0
}

// Filter narrows a ranked view. Empty fields mean "no constraint".
type Filter struct {
	Statuses          []workflow.Status
	MinTotal          *int
	MaxTotal          *int
	AutoQualifiedOnly bool
	SkillToken        string
}

// Apply is display-only narrowing over already-assigned global ranks:
// a candidate's rank is stable regardless of which filter view is active.
func Apply(ranked []Entry, f Filter) []Entry {
	out := make([]Entry, 0, len(ranked))
	for _, e := range ranked {
		if !matches(e, f) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matches(e Entry, f Filter) bool {
	if len(f.Statuses) > 0 {
		found := false
		for _, s := range f.Statuses {
			if e.Status == s {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.MinTotal != nil && e.Total < *f.MinTotal {
		return false
	}
	if f.MaxTotal != nil && e.Total > *f.MaxTotal {
		return false
	}
	if f.AutoQualifiedOnly && !e.AutoQualified {
		return false
	}

	if tok := strings.ToLower(strings.TrimSpace(f.SkillToken)); tok != "" {
		found := false
		for _, s := range e.Skills {
			if strings.Contains(strings.ToLower(s), tok) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
