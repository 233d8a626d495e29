package scoring

import (
	"testing"
	"time"
)

func TestScoreExam_Absent(t *testing.T) {
	if got := ScoreExam(nil, &ExamConfig{PassingScore: 70}); got != nil {
		t.Fatalf("no result: expected nil, got %+v", got)
	}
	if got := ScoreExam(&ExamResult{RawScore: 10, TotalPoints: 20}, nil); got != nil {
		t.Fatalf("no config: expected nil, got %+v", got)
	}
	if got := ScoreExam(&ExamResult{RawScore: 10, TotalPoints: 0}, &ExamConfig{}); got != nil {
		t.Fatalf("zero total points: expected nil, got %+v", got)
	}
}

func TestScoreExam_RoundingAndPass(t *testing.T) {
	cfg := &ExamConfig{PassingScore: 80}

	got := ScoreExam(&ExamResult{RawScore: 17, TotalPoints: 20}, cfg)
	if got == nil {
		t.Fatalf("expected score")
	}
	if got.Score != 85 {
		t.Fatalf("expected 85, got %d", got.Score)
	}
	if !got.Passed {
		t.Fatalf("expected passed at 85 vs threshold 80")
	}

	boundary := ScoreExam(&ExamResult{RawScore: 16, TotalPoints: 20}, cfg)
	if boundary.Score != 80 || !boundary.Passed {
		t.Fatalf("boundary: expected 80/passed, got %d/%v", boundary.Score, boundary.Passed)
	}

	fail := ScoreExam(&ExamResult{RawScore: 15, TotalPoints: 20}, cfg)
	if fail.Score != 75 || fail.Passed {
		t.Fatalf("expected 75/failed, got %d/%v", fail.Score, fail.Passed)
	}
}

func TestLatestResult_RetakeWins(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	results := []ExamResult{
		{RawScore: 10, TotalPoints: 20, SubmittedAt: base},
		{RawScore: 18, TotalPoints: 20, SubmittedAt: base.Add(time.Hour)},
		{RawScore: 12, TotalPoints: 20, SubmittedAt: base.Add(30 * time.Minute)},
	}

	latest := LatestResult(results)
	if latest == nil || latest.RawScore != 18 {
		t.Fatalf("expected latest retake (raw=18), got %+v", latest)
	}

	if LatestResult(nil) != nil {
		t.Fatalf("expected nil for empty results")
	}
}

func TestLatestResult_TimestampTie(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	results := []ExamResult{
		{RawScore: 10, TotalPoints: 20, SubmittedAt: at},
		{RawScore: 14, TotalPoints: 20, SubmittedAt: at},
	}
	latest := LatestResult(results)
	if latest.RawScore != 14 {
		t.Fatalf("expected later-seen submission to win the tie, got raw=%d", latest.RawScore)
	}
}
