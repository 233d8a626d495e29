package dto

import (
	"time"

	"talent-rank/internal/repository"
)

type SubScoresResponse struct {
	Skills         float64 `json:"skills"`
	Experience     float64 `json:"experience"`
	Location       float64 `json:"location"`
	Salary         float64 `json:"salary"`
	WorkType       float64 `json:"work_type"`
	Industry       float64 `json:"industry"`
	TitleRelevance float64 `json:"title_relevance"`
}

type ScoreResponse struct {
	CandidateID   string            `json:"candidate_id"`
	JobID         string            `json:"job_id"`
	SubScores     SubScoresResponse `json:"sub_scores"`
	ExamScore     *int              `json:"exam_score"`
	Total         int               `json:"total"`
	AutoQualified bool              `json:"auto_qualified"`
	QualifyReason string            `json:"qualify_reason"`
	WeightVersion int               `json:"weight_version"`
	Status        string            `json:"status"`
	UpdatedAt     string            `json:"updated_at"`
}

func NewScoreResponse(s repository.CandidateScore) ScoreResponse {
	updated := ""
	if !s.UpdatedAt.IsZero() {
		updated = s.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return ScoreResponse{
		CandidateID: s.CandidateID.String(),
		JobID:       s.JobID.String(),
		SubScores: SubScoresResponse{
			Skills:         s.SubScores.Skills,
			Experience:     s.SubScores.Experience,
			Location:       s.SubScores.Location,
			Salary:         s.SubScores.Salary,
			WorkType:       s.SubScores.WorkType,
			Industry:       s.SubScores.Industry,
			TitleRelevance: s.SubScores.TitleRelevance,
		},
		ExamScore:     s.ExamScore,
		Total:         s.Total,
		AutoQualified: s.AutoQualified,
		QualifyReason: s.QualifyReason,
		WeightVersion: s.WeightVersion,
		Status:        string(s.Status),
		UpdatedAt:     updated,
	}
}

type RecomputeJobResponse struct {
	JobID  string `json:"job_id"`
	Scored int    `json:"scored"`
}
