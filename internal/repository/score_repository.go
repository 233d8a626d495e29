package repository

import (
	"context"
	"time"

	"talent-rank/internal/database"
	"talent-rank/internal/domain/scoring"
	"talent-rank/internal/domain/workflow"

	"github.com/google/uuid"
)

// CandidateScore is the persisted scoring row for one (candidate, job)
// pair: the sub-score breakdown plus the composite result and the
// workflow status that travels with it.
type CandidateScore struct {
	CandidateID   uuid.UUID
	JobID         uuid.UUID
	SubScores     scoring.SubScores
	ExamScore     *int
	Total         int
	AutoQualified bool
	QualifyReason string
	WeightVersion int
	Status        workflow.Status
	AppliedAt     time.Time
	UpdatedAt     time.Time

	// Skills is read-through from the candidate row for ranking filters;
	// Upsert never writes it.
	Skills []string
}

type ScoreRepository interface {
	Upsert(ctx context.Context, score CandidateScore) error
	Find(ctx context.Context, candidateID, jobID uuid.UUID) (CandidateScore, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]CandidateScore, error)
	GetStatus(ctx context.Context, candidateID, jobID uuid.UUID) (workflow.Status, error)
	UpdateStatus(ctx context.Context, candidateID, jobID uuid.UUID, from, to workflow.Status, actor string) error
}

type PostgresScoreRepository struct {
	db database.DB
}

func NewPostgresScoreRepository(db database.DB) *PostgresScoreRepository {
	return &PostgresScoreRepository{db: db}
}

func (r *PostgresScoreRepository) Upsert(ctx context.Context, score CandidateScore) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO candidate_scores (
			candidate_id, job_id,
			skills_score, experience_score, location_score, salary_score,
			work_type_score, industry_score, title_score,
			exam_score, total_score, auto_qualified, qualify_reason, weight_version,
			status, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,now())
		ON CONFLICT (candidate_id, job_id) DO UPDATE SET
			skills_score = EXCLUDED.skills_score,
			experience_score = EXCLUDED.experience_score,
			location_score = EXCLUDED.location_score,
			salary_score = EXCLUDED.salary_score,
			work_type_score = EXCLUDED.work_type_score,
			industry_score = EXCLUDED.industry_score,
			title_score = EXCLUDED.title_score,
			exam_score = EXCLUDED.exam_score,
			total_score = EXCLUDED.total_score,
			auto_qualified = EXCLUDED.auto_qualified,
			qualify_reason = EXCLUDED.qualify_reason,
			weight_version = EXCLUDED.weight_version,
			updated_at = now()`,
		score.CandidateID, score.JobID,
		score.SubScores.Skills, score.SubScores.Experience, score.SubScores.Location, score.SubScores.Salary,
		score.SubScores.WorkType, score.SubScores.Industry, score.SubScores.TitleRelevance,
		score.ExamScore, score.Total, score.AutoQualified, score.QualifyReason, score.WeightVersion,
		string(score.Status),
	)
	return err
}

const scoreColumns = `s.candidate_id, s.job_id,
	s.skills_score, s.experience_score, s.location_score, s.salary_score,
	s.work_type_score, s.industry_score, s.title_score,
	s.exam_score, s.total_score, s.auto_qualified, s.qualify_reason, s.weight_version,
	s.status, a.applied_at, s.updated_at, c.skills`

func (r *PostgresScoreRepository) Find(ctx context.Context, candidateID, jobID uuid.UUID) (CandidateScore, error) {
	if candidateID == uuid.Nil || jobID == uuid.Nil {
		return CandidateScore{}, ErrNotFound
	}

	row := r.db.QueryRow(ctx,
		`SELECT `+scoreColumns+`
		 FROM candidate_scores s
		 JOIN applications a ON a.candidate_id = s.candidate_id AND a.job_id = s.job_id
		 JOIN candidates c ON c.id = s.candidate_id
		 WHERE s.candidate_id = $1 AND s.job_id = $2`,
		candidateID, jobID,
	)

	score, err := scanScore(row)
	if err != nil {
		return CandidateScore{}, notFoundOr(err)
	}
	return score, nil
}

func (r *PostgresScoreRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]CandidateScore, error) {
	if jobID == uuid.Nil {
		return nil, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+scoreColumns+`
		 FROM candidate_scores s
		 JOIN applications a ON a.candidate_id = s.candidate_id AND a.job_id = s.job_id
		 JOIN candidates c ON c.id = s.candidate_id
		 WHERE s.job_id = $1`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CandidateScore, 0)
	for rows.Next() {
		score, err := scanScore(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, score)
	}
	return out, rows.Err()
}

func (r *PostgresScoreRepository) GetStatus(ctx context.Context, candidateID, jobID uuid.UUID) (workflow.Status, error) {
	if candidateID == uuid.Nil || jobID == uuid.Nil {
		return "", ErrNotFound
	}
	row := r.db.QueryRow(ctx,
		`SELECT status FROM candidate_scores WHERE candidate_id = $1 AND job_id = $2`,
		candidateID, jobID,
	)
	var raw string
	if err := row.Scan(&raw); err != nil {
		return "", notFoundOr(err)
	}
	return workflow.Status(raw), nil
}

// UpdateStatus moves the row from one status to the next and records the
// transition in status_events, inside a single transaction. The WHERE
// clause on the current status makes concurrent transitions race-safe:
// the loser updates zero rows and reports ErrNotFound.
func (r *PostgresScoreRepository) UpdateStatus(ctx context.Context, candidateID, jobID uuid.UUID, from, to workflow.Status, actor string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	affected, err := tx.Exec(ctx,
		`UPDATE candidate_scores SET status = $1, updated_at = now()
		 WHERE candidate_id = $2 AND job_id = $3 AND status = $4`,
		string(to), candidateID, jobID, string(from),
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO status_events (id, candidate_id, job_id, from_status, to_status, actor)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		uuid.New(), candidateID, jobID, string(from), string(to), actor,
	)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func scanScore(row database.Row) (CandidateScore, error) {
	var (
		s      CandidateScore
		status string
	)
	err := row.Scan(
		&s.CandidateID, &s.JobID,
		&s.SubScores.Skills, &s.SubScores.Experience, &s.SubScores.Location, &s.SubScores.Salary,
		&s.SubScores.WorkType, &s.SubScores.Industry, &s.SubScores.TitleRelevance,
		&s.ExamScore, &s.Total, &s.AutoQualified, &s.QualifyReason, &s.WeightVersion,
		&status, &s.AppliedAt, &s.UpdatedAt, &s.Skills,
	)
	if err != nil {
		return CandidateScore{}, err
	}
	s.Status = workflow.Status(status)
	return s, nil
}
