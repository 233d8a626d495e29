package app

import (
	"context"
	"log"
	"os"
	"time"

	"talent-rank/internal/config"
	"talent-rank/internal/database"
	dbpostgres "talent-rank/internal/database/postgres"
	"talent-rank/internal/database/schema"
	"talent-rank/internal/domain/scoring"
	"talent-rank/internal/infrastructure/cache"
	"talent-rank/internal/ws"
)

type Container struct {
	Config config.Config
	Logger *log.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	// A bad weight table reclassifies every candidate; refuse to start.
	if err := scoring.DefaultWeights().Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := schema.Ensure(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := verifySchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	hub := ws.NewHub(logger)
	go hub.Run()

	return &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  cache.NewRedis(logger),
		Hub:    hub,
	}, nil
}

func verifySchema(ctx context.Context, db database.DB) error {
	checks := []struct {
		table   string
		columns []string
	}{
		{"jobs", []string{"id", "title", "required_skills", "work_type", "exam_passing_score", "exam_weight", "auto_connect_limit", "closed_at"}},
		{"candidates", []string{"id", "skills", "years_experience", "experience_level", "work_type_preference", "recent_title"}},
		{"applications", []string{"candidate_id", "job_id", "applied_at"}},
		{"exam_results", []string{"candidate_id", "job_id", "raw_score", "total_points", "submitted_at"}},
		{"candidate_scores", []string{"candidate_id", "job_id", "total_score", "exam_score", "auto_qualified", "qualify_reason", "weight_version", "status"}},
		{"status_events", []string{"candidate_id", "job_id", "from_status", "to_status"}},
	}
	for _, c := range checks {
		if err := schema.VerifyColumns(ctx, db, c.table, c.columns...); err != nil {
			return err
		}
	}
	return nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
