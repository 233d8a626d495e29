package repository

import (
	"context"
	"errors"
	"time"

	"talent-rank/internal/database"
	"talent-rank/internal/domain/scoring"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrNotFound = errors.New("record not found")

// notFoundOr keeps absence and infrastructure failure distinct: only a
// missing row becomes ErrNotFound, everything else propagates so an
// outage never masquerades as a 404.
func notFoundOr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

type JobRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (scoring.JobRequirement, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) FindByID(ctx context.Context, id uuid.UUID) (scoring.JobRequirement, error) {
	if id == uuid.Nil {
		return scoring.JobRequirement{}, ErrNotFound
	}

	row := r.db.QueryRow(ctx,
		`SELECT id, title, location, required_skills, salary_min, salary_max,
		        work_type, industry, experience_level,
		        exam_passing_score, exam_time_limit_seconds, exam_weight, exam_allow_retakes,
		        auto_connect_limit, closed_at
		 FROM jobs WHERE id = $1`,
		id,
	)

	var (
		job              scoring.JobRequirement
		workType         string
		experienceLevel  string
		examPassingScore *int
		examTimeLimitSec *int64
		examWeight       *float64
		examAllowRetakes *bool
	)

	err := row.Scan(
		&job.ID, &job.Title, &job.Location, &job.RequiredSkills,
		&job.SalaryMin, &job.SalaryMax,
		&workType, &job.Industry, &experienceLevel,
		&examPassingScore, &examTimeLimitSec, &examWeight, &examAllowRetakes,
		&job.AutoConnectLimit, &job.ClosedAt,
	)
	if err != nil {
		return scoring.JobRequirement{}, notFoundOr(err)
	}

	job.WorkType = scoring.WorkType(workType)
	job.ExperienceLevel = scoring.ExperienceLevel(experienceLevel)

	if examPassingScore != nil {
		cfg := scoring.ExamConfig{PassingScore: *examPassingScore}
		if examTimeLimitSec != nil {
			cfg.TimeLimit = time.Duration(*examTimeLimitSec) * time.Second
		}
		if examWeight != nil {
			cfg.Weight = *examWeight
		}
		if examAllowRetakes != nil {
			cfg.AllowRetakes = *examAllowRetakes
		}
		job.Exam = &cfg
	}

	return job, nil
}

func (r *PostgresJobRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	if id == uuid.Nil {
		return false, nil
	}
	row := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM jobs WHERE id = $1)`, id)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
