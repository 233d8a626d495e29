package scoring

import "math"

type ExamScore struct {
	Score  int
	Passed bool
}

// ScoreExam converts a completed assessment into a 0-100 score against
// the job's passing threshold. Returns nil when the job has no exam
// configured or the candidate has not completed one; callers must treat
// nil as "absent", never as zero.
func ScoreExam(result *ExamResult, cfg *ExamConfig) *ExamScore {
	if cfg == nil || result == nil {
		return nil
	}
	if result.TotalPoints <= 0 {
		return nil
	}

	score := int(math.Round(float64(result.RawScore) / float64(result.TotalPoints) * 100))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return &ExamScore{
		Score:  score,
		Passed: score >= cfg.PassingScore,
	}
}

// LatestResult picks the authoritative submission when retakes are
// allowed: latest SubmittedAt wins, later-seen wins an exact timestamp tie.
func LatestResult(results []ExamResult) *ExamResult {
	var latest *ExamResult
	for i := range results {
		r := &results[i]
		if latest == nil || !r.SubmittedAt.Before(latest.SubmittedAt) {
			latest = r
		}
	}
	return latest
}
