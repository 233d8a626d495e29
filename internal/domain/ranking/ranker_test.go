package ranking

import (
	"testing"
	"time"

	"talent-rank/internal/domain/workflow"

	"github.com/google/uuid"
)

func intPtr(v int) *int { return &v }

func TestRank_Totality(t *testing.T) {
	entries := make([]Entry, 0, 10)
	base := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 10; i++ {
		entries = append(entries, Entry{
			CandidateID: uuid.New(),
			Total:       90 - i%4, // deliberate ties
			AppliedAt:   base.Add(time.Duration(i) * time.Minute),
		})
	}

	ranked := Rank(entries)
	if len(ranked) != len(entries) {
		t.Fatalf("expected %d entries, got %d", len(entries), len(ranked))
	}

	seen := map[int]bool{}
	for _, e := range ranked {
		if e.Rank < 1 || e.Rank > len(entries) {
			t.Fatalf("rank out of range: %d", e.Rank)
		}
		if seen[e.Rank] {
			t.Fatalf("duplicate rank %d", e.Rank)
		}
		seen[e.Rank] = true
	}
	for r := 1; r <= len(entries); r++ {
		if !seen[r] {
			t.Fatalf("missing rank %d", r)
		}
	}
}

func TestRank_PrimaryKeyTotalDesc(t *testing.T) {
	ranked := Rank([]Entry{
		{CandidateID: uuid.New(), Total: 70},
		{CandidateID: uuid.New(), Total: 95},
		{CandidateID: uuid.New(), Total: 80},
	})
	if ranked[0].Total != 95 || ranked[1].Total != 80 || ranked[2].Total != 70 {
		t.Fatalf("unexpected order: %d %d %d", ranked[0].Total, ranked[1].Total, ranked[2].Total)
	}
}

func TestRank_MissingExamSortsAfterPresent(t *testing.T) {
	withExam := Entry{CandidateID: uuid.New(), Total: 90, ExamScore: intPtr(60)}
	noExam := Entry{CandidateID: uuid.New(), Total: 90}

	ranked := Rank([]Entry{noExam, withExam})
	if ranked[0].CandidateID != withExam.CandidateID {
		t.Fatalf("present exam must outrank missing exam at equal total")
	}
}

func TestRank_TieBreakStability(t *testing.T) {
	early := Entry{CandidateID: uuid.New(), Total: 88, ExamScore: intPtr(85), AppliedAt: time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)}
	late := Entry{CandidateID: uuid.New(), Total: 88, ExamScore: intPtr(85), AppliedAt: time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)}

	forward := Rank([]Entry{early, late})
	reversed := Rank([]Entry{late, early})

	if forward[0].CandidateID != early.CandidateID {
		t.Fatalf("earlier applicant must win the tie")
	}
	for i := range forward {
		if forward[i].CandidateID != reversed[i].CandidateID || forward[i].Rank != reversed[i].Rank {
			t.Fatalf("rank assignment depends on input order at index %d", i)
		}
	}
}

func TestRank_TimestampCollisionIsOrderIndependent(t *testing.T) {
	at := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	a := Entry{CandidateID: uuid.New(), Total: 88, ExamScore: intPtr(85), AppliedAt: at}
	b := Entry{CandidateID: uuid.New(), Total: 88, ExamScore: intPtr(85), AppliedAt: at}

	forward := Rank([]Entry{a, b})
	reversed := Rank([]Entry{b, a})

	for i := range forward {
		if forward[i].CandidateID != reversed[i].CandidateID || forward[i].Rank != reversed[i].Rank {
			t.Fatalf("rank assignment depends on input order when every other key collides, index %d", i)
		}
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	in := []Entry{
		{CandidateID: uuid.New(), Total: 10},
		{CandidateID: uuid.New(), Total: 99},
	}
	first := in[0].CandidateID
	_ = Rank(in)
	if in[0].CandidateID != first || in[0].Rank != 0 {
		t.Fatalf("input slice mutated")
	}
}

func TestApply_PreservesGlobalRanks(t *testing.T) {
	ranked := Rank([]Entry{
		{CandidateID: uuid.New(), Total: 95, AutoQualified: true, Status: workflow.StatusPending},
		{CandidateID: uuid.New(), Total: 90, Status: workflow.StatusReviewed},
		{CandidateID: uuid.New(), Total: 85, AutoQualified: true, Status: workflow.StatusContacted},
	})

	out := Apply(ranked, Filter{AutoQualifiedOnly: true})
	if len(out) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(out))
	}
	if out[0].Rank != 1 || out[1].Rank != 3 {
		t.Fatalf("filtering must not reassign ranks, got %d and %d", out[0].Rank, out[1].Rank)
	}
}

func TestApply_Filters(t *testing.T) {
	ranked := Rank([]Entry{
		{CandidateID: uuid.New(), Total: 95, Status: workflow.StatusPending, Skills: []string{"Go", "Redis"}},
		{CandidateID: uuid.New(), Total: 60, Status: workflow.StatusRejected, Skills: []string{"Java"}},
		{CandidateID: uuid.New(), Total: 75, Status: workflow.StatusReviewed, Skills: []string{"golang"}},
	})

	byStatus := Apply(ranked, Filter{Statuses: []workflow.Status{workflow.StatusPending, workflow.StatusReviewed}})
	if len(byStatus) != 2 {
		t.Fatalf("status filter: expected 2, got %d", len(byStatus))
	}

	byScore := Apply(ranked, Filter{MinTotal: intPtr(70), MaxTotal: intPtr(80)})
	if len(byScore) != 1 || byScore[0].Total != 75 {
		t.Fatalf("score filter: expected the 75 entry, got %d entries", len(byScore))
	}

	bySkill := Apply(ranked, Filter{SkillToken: "go"})
	if len(bySkill) != 2 {
		t.Fatalf("skill filter: expected 2 (Go, golang), got %d", len(bySkill))
	}

	all := Apply(ranked, Filter{})
	if len(all) != 3 {
		t.Fatalf("empty filter: expected pass-through, got %d", len(all))
	}
}
