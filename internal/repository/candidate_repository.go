package repository

import (
	"context"

	"talent-rank/internal/database"
	"talent-rank/internal/domain/scoring"

	"github.com/google/uuid"
)

type CandidateRepository interface {
	// FindApplicant loads a candidate profile together with the
	// application timestamp for one job.
	FindApplicant(ctx context.Context, candidateID, jobID uuid.UUID) (scoring.CandidateProfile, error)
	ListApplicants(ctx context.Context, jobID uuid.UUID) ([]scoring.CandidateProfile, error)
}

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

const applicantColumns = `c.id, c.skills, c.years_experience, c.experience_level, c.location,
	c.desired_salary_min, c.desired_salary_max, c.work_type_preference,
	c.recent_industry, c.recent_title, a.applied_at`

func (r *PostgresCandidateRepository) FindApplicant(ctx context.Context, candidateID, jobID uuid.UUID) (scoring.CandidateProfile, error) {
	if candidateID == uuid.Nil || jobID == uuid.Nil {
		return scoring.CandidateProfile{}, ErrNotFound
	}

	row := r.db.QueryRow(ctx,
		`SELECT `+applicantColumns+`
		 FROM candidates c
		 JOIN applications a ON a.candidate_id = c.id
		 WHERE c.id = $1 AND a.job_id = $2`,
		candidateID, jobID,
	)

	profile, err := scanApplicant(row)
	if err != nil {
		return scoring.CandidateProfile{}, notFoundOr(err)
	}
	return profile, nil
}

func (r *PostgresCandidateRepository) ListApplicants(ctx context.Context, jobID uuid.UUID) ([]scoring.CandidateProfile, error) {
	if jobID == uuid.Nil {
		return nil, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+applicantColumns+`
		 FROM candidates c
		 JOIN applications a ON a.candidate_id = c.id
		 WHERE a.job_id = $1
		 ORDER BY a.applied_at ASC`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]scoring.CandidateProfile, 0)
	for rows.Next() {
		profile, err := scanApplicant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, profile)
	}
	return out, rows.Err()
}

func scanApplicant(row database.Row) (scoring.CandidateProfile, error) {
	var (
		p        scoring.CandidateProfile
		workPref *string
	)
	err := row.Scan(
		&p.ID, &p.Skills, &p.YearsExperience, (*string)(&p.ExperienceLevel), &p.Location,
		&p.DesiredSalaryMin, &p.DesiredSalaryMax, &workPref,
		&p.RecentIndustry, &p.RecentTitle, &p.AppliedAt,
	)
	if err != nil {
		return scoring.CandidateProfile{}, err
	}
	if workPref != nil && *workPref != "" {
		wt := scoring.WorkType(*workPref)
		p.WorkTypePreference = &wt
	}
	return p, nil
}
