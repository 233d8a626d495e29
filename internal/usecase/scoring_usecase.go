package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"talent-rank/internal/domain/scoring"
	"talent-rank/internal/domain/workflow"
	"talent-rank/internal/infrastructure/cache"
	"talent-rank/internal/repository"

	"github.com/google/uuid"
)

type ScoringUsecase interface {
	GetScore(ctx context.Context, candidateID, jobID uuid.UUID) (repository.CandidateScore, error)
	RecomputeScore(ctx context.Context, candidateID, jobID uuid.UUID) (repository.CandidateScore, error)
}

type Scoring struct {
	jobs       repository.JobRepository
	candidates repository.CandidateRepository
	exams      repository.ExamRepository
	scores     repository.ScoreRepository
	cache      *cache.Redis
	weights    scoring.Weights
	log        *log.Logger

	now func() time.Time
}

func NewScoringUsecase(
	jobs repository.JobRepository,
	candidates repository.CandidateRepository,
	exams repository.ExamRepository,
	scores repository.ScoreRepository,
	c *cache.Redis,
	weights scoring.Weights,
	logger *log.Logger,
) *Scoring {
	if logger == nil {
		logger = log.Default()
	}
	return &Scoring{
		jobs:       jobs,
		candidates: candidates,
		exams:      exams,
		scores:     scores,
		cache:      c,
		weights:    weights,
		log:        logger,
		now:        time.Now,
	}
}

func (u *Scoring) GetScore(ctx context.Context, candidateID, jobID uuid.UUID) (repository.CandidateScore, error) {
	if candidateID == uuid.Nil || jobID == uuid.Nil {
		return repository.CandidateScore{}, ErrInvalidInput
	}
	score, err := u.scores.Find(ctx, candidateID, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.CandidateScore{}, ErrCandidateNotFound
		}
		return repository.CandidateScore{}, err
	}
	return score, nil
}

// RecomputeScore runs the full pipeline for one (candidate, job) pair:
// feature extraction, optional exam scoring, composite, qualification.
// The result is persisted and the job's materialized ranking invalidated.
func (u *Scoring) RecomputeScore(ctx context.Context, candidateID, jobID uuid.UUID) (repository.CandidateScore, error) {
	if candidateID == uuid.Nil || jobID == uuid.Nil {
		return repository.CandidateScore{}, ErrInvalidInput
	}

	job, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.CandidateScore{}, ErrStaleJob
		}
		return repository.CandidateScore{}, err
	}
	if job.Closed(u.now()) {
		return repository.CandidateScore{}, ErrStaleJob
	}

	candidate, err := u.candidates.FindApplicant(ctx, candidateID, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.CandidateScore{}, ErrCandidateNotFound
		}
		return repository.CandidateScore{}, err
	}

	// Terminal statuses freeze the stored score.
	status, err := u.scores.GetStatus(ctx, candidateID, jobID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return repository.CandidateScore{}, err
	}
	if err == nil && status.Terminal() {
		return repository.CandidateScore{}, ErrFrozenScore
	}
	if errors.Is(err, repository.ErrNotFound) {
		status = workflow.StatusPending
	}

	score, err := u.compute(ctx, candidate, job)
	if err != nil {
		return repository.CandidateScore{}, err
	}
	score.Status = status

	if err := u.scores.Upsert(ctx, score); err != nil {
		return repository.CandidateScore{}, err
	}
	if err := u.cache.InvalidateJob(ctx, jobID); err != nil {
		u.log.Printf("scoring recompute candidate=%s job=%s cache_invalidate=error err=%v", candidateID, jobID, err)
	}

	u.log.Printf("scoring recompute candidate=%s job=%s total=%d auto_qualified=%t", candidateID, jobID, score.Total, score.AutoQualified)
	return score, nil
}

func (u *Scoring) compute(ctx context.Context, candidate scoring.CandidateProfile, job scoring.JobRequirement) (repository.CandidateScore, error) {
	ss := scoring.Extract(candidate, job)

	var exam *scoring.ExamScore
	if job.Exam != nil {
		results, err := u.exams.ListByCandidateJob(ctx, candidate.ID, job.ID)
		if err != nil {
			return repository.CandidateScore{}, err
		}
		exam = scoring.ScoreExam(scoring.LatestResult(results), job.Exam)
	}

	examWeight := 0.0
	if job.Exam != nil {
		examWeight = job.Exam.Weight
	}
	total := scoring.Compose(ss, exam, u.weights, examWeight)
	verdict := scoring.Qualify(total, ss, exam)

	score := repository.CandidateScore{
		CandidateID:   candidate.ID,
		JobID:         job.ID,
		SubScores:     ss,
		Total:         total,
		AutoQualified: verdict.AutoQualified,
		QualifyReason: verdict.Reason,
		WeightVersion: scoring.WeightTableVersion,
		AppliedAt:     candidate.AppliedAt,
	}
	if exam != nil {
		v := exam.Score
		score.ExamScore = &v
	}
	return score, nil
}

// RecomputeJob rescores every applicant in a job's pool. Candidates in a
// terminal status are skipped with a notice instead of failing the sweep.
func (u *Scoring) RecomputeJob(ctx context.Context, jobID uuid.UUID) (int, error) {
	if jobID == uuid.Nil {
		return 0, ErrInvalidInput
	}

	job, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrStaleJob
		}
		return 0, err
	}
	if job.Closed(u.now()) {
		return 0, ErrStaleJob
	}

	applicants, err := u.candidates.ListApplicants(ctx, jobID)
	if err != nil {
		return 0, err
	}

	scored := 0
	for _, candidate := range applicants {
		if _, err := u.RecomputeScore(ctx, candidate.ID, jobID); err != nil {
			if errors.Is(err, ErrFrozenScore) {
				u.log.Printf("scoring sweep job=%s candidate=%s skipped=frozen", jobID, candidate.ID)
				continue
			}
			return scored, err
		}
		scored++
	}

	u.log.Printf("scoring sweep job=%s scored=%d of=%d", jobID, scored, len(applicants))
	return scored, nil
}
