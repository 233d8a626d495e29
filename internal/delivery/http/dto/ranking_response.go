package dto

import (
	"time"

	"talent-rank/internal/domain/ranking"
)

type RankingEntryResponse struct {
	Rank          int    `json:"rank"`
	CandidateID   string `json:"candidate_id"`
	Total         int    `json:"total"`
	ExamScore     *int   `json:"exam_score"`
	AutoQualified bool   `json:"auto_qualified"`
	Status        string `json:"status"`
	AppliedAt     string `json:"applied_at"`
}

func NewRankingResponse(entries []ranking.Entry) []RankingEntryResponse {
	out := make([]RankingEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, RankingEntryResponse{
			Rank:          e.Rank,
			CandidateID:   e.CandidateID.String(),
			Total:         e.Total,
			ExamScore:     e.ExamScore,
			AutoQualified: e.AutoQualified,
			Status:        string(e.Status),
			AppliedAt:     e.AppliedAt.UTC().Format(time.RFC3339),
		})
	}
	return out
}
