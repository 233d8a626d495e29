package repository

import (
	"context"
	"time"

	"talent-rank/internal/database"
	"talent-rank/internal/domain/scoring"

	"github.com/google/uuid"
)

type ExamRepository interface {
	ListByCandidateJob(ctx context.Context, candidateID, jobID uuid.UUID) ([]scoring.ExamResult, error)
}

type PostgresExamRepository struct {
	db database.DB
}

func NewPostgresExamRepository(db database.DB) *PostgresExamRepository {
	return &PostgresExamRepository{db: db}
}

func (r *PostgresExamRepository) ListByCandidateJob(ctx context.Context, candidateID, jobID uuid.UUID) ([]scoring.ExamResult, error) {
	if candidateID == uuid.Nil || jobID == uuid.Nil {
		return nil, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT candidate_id, job_id, raw_score, total_points, submitted_at, time_spent_seconds
		 FROM exam_results
		 WHERE candidate_id = $1 AND job_id = $2
		 ORDER BY submitted_at ASC`,
		candidateID, jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]scoring.ExamResult, 0)
	for rows.Next() {
		var (
			res          scoring.ExamResult
			timeSpentSec int64
		)
		if err := rows.Scan(&res.CandidateID, &res.JobID, &res.RawScore, &res.TotalPoints, &res.SubmittedAt, &timeSpentSec); err != nil {
			return nil, err
		}
		res.TimeSpent = time.Duration(timeSpentSec) * time.Second
		out = append(out, res)
	}
	return out, rows.Err()
}
