package schema

import (
	"context"
	"fmt"

	"talent-rank/internal/database"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS jobs (
		id UUID PRIMARY KEY,
		title TEXT NOT NULL,
		location TEXT NOT NULL DEFAULT '',
		required_skills TEXT[] NOT NULL DEFAULT '{}',
		salary_min BIGINT,
		salary_max BIGINT,
		work_type TEXT NOT NULL DEFAULT 'onsite',
		industry TEXT NOT NULL DEFAULT '',
		experience_level TEXT NOT NULL DEFAULT '',
		exam_passing_score INT,
		exam_time_limit_seconds BIGINT,
		exam_weight DOUBLE PRECISION,
		exam_allow_retakes BOOLEAN,
		auto_connect_limit INT NOT NULL DEFAULT 0,
		closed_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS candidates (
		id UUID PRIMARY KEY,
		skills TEXT[] NOT NULL DEFAULT '{}',
		years_experience INT NOT NULL DEFAULT 0,
		experience_level TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		desired_salary_min BIGINT,
		desired_salary_max BIGINT,
		work_type_preference TEXT,
		recent_industry TEXT NOT NULL DEFAULT '',
		recent_title TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS applications (
		id UUID PRIMARY KEY,
		candidate_id UUID NOT NULL REFERENCES candidates(id) ON DELETE CASCADE,
		job_id UUID NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (candidate_id, job_id)
	)`,
	`CREATE TABLE IF NOT EXISTS exam_results (
		id UUID PRIMARY KEY,
		candidate_id UUID NOT NULL REFERENCES candidates(id) ON DELETE CASCADE,
		job_id UUID NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
		raw_score INT NOT NULL,
		total_points INT NOT NULL,
		submitted_at TIMESTAMPTZ NOT NULL,
		time_spent_seconds BIGINT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS candidate_scores (
		candidate_id UUID NOT NULL REFERENCES candidates(id) ON DELETE CASCADE,
		job_id UUID NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
		skills_score DOUBLE PRECISION NOT NULL,
		experience_score DOUBLE PRECISION NOT NULL,
		location_score DOUBLE PRECISION NOT NULL,
		salary_score DOUBLE PRECISION NOT NULL,
		work_type_score DOUBLE PRECISION NOT NULL,
		industry_score DOUBLE PRECISION NOT NULL,
		title_score DOUBLE PRECISION NOT NULL,
		exam_score INT,
		total_score INT NOT NULL,
		auto_qualified BOOLEAN NOT NULL,
		qualify_reason TEXT NOT NULL DEFAULT '',
		weight_version INT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (candidate_id, job_id)
	)`,
	`CREATE TABLE IF NOT EXISTS status_events (
		id UUID PRIMARY KEY,
		candidate_id UUID NOT NULL,
		job_id UUID NOT NULL,
		from_status TEXT NOT NULL,
		to_status TEXT NOT NULL,
		actor TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_candidate_scores_job ON candidate_scores (job_id)`,
	`CREATE INDEX IF NOT EXISTS idx_exam_results_pair ON exam_results (candidate_id, job_id)`,
	`CREATE INDEX IF NOT EXISTS idx_status_events_pair ON status_events (candidate_id, job_id)`,
}

// Ensure creates the engine's tables when absent. Every statement is
// idempotent, so repeated startups are safe.
func Ensure(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema bootstrap: %w", err)
		}
	}
	return nil
}

// VerifyColumns fails fast when a table is missing columns the
// repositories scan, catching drift between code and database.
func VerifyColumns(ctx context.Context, db database.DB, table string, columns ...string) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	if table == "" {
		return fmt.Errorf("empty table")
	}

	rows, err := db.Query(
		ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema='public' AND table_name=$1`,
		table,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	existing := map[string]struct{}{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		existing[c] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, col := range columns {
		if _, ok := existing[col]; !ok {
			return fmt.Errorf("schema mismatch: missing column %s.%s", table, col)
		}
	}
	return nil
}
