package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"talent-rank/internal/domain/ranking"
	"talent-rank/internal/infrastructure/cache"
	"talent-rank/internal/repository"

	"github.com/google/uuid"
)

type RankingUsecase interface {
	RankJob(ctx context.Context, jobID uuid.UUID, filter ranking.Filter) ([]ranking.Entry, error)
}

type Ranking struct {
	jobs   repository.JobRepository
	scores repository.ScoreRepository
	cache  *cache.Redis
	log    *log.Logger

	ttl time.Duration
}

func NewRankingUsecase(jobs repository.JobRepository, scores repository.ScoreRepository, c *cache.Redis, logger *log.Logger) *Ranking {
	if logger == nil {
		logger = log.Default()
	}
	return &Ranking{
		jobs:   jobs,
		scores: scores,
		cache:  c,
		log:    logger,
		ttl:    cache.DefaultTTLFromEnv(),
	}
}

// RankJob returns the job's pool ordered by the ranking keys, with the
// filter applied as display-only narrowing after global ranks are
// assigned. The materialized (unfiltered) ranking is cached per job; on a
// miss the pool is re-ranked from a single snapshot read so concurrent
// writes cannot interleave half-updated rows into one view.
func (u *Ranking) RankJob(ctx context.Context, jobID uuid.UUID, filter ranking.Filter) ([]ranking.Entry, error) {
	if jobID == uuid.Nil {
		return nil, ErrInvalidInput
	}

	exists, err := u.jobs.ExistsByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrJobNotFound
	}

	var ranked []ranking.Entry
	hit, err := u.cache.GetJSON(ctx, cache.RankingKey(jobID), &ranked)
	if err != nil {
		u.log.Printf("ranking job=%s cache_read=error err=%v", jobID, err)
	}

	if !hit {
		ranked, err = u.materialize(ctx, jobID)
		if err != nil {
			return nil, err
		}
	}

	return ranking.Apply(ranked, filter), nil
}

func (u *Ranking) materialize(ctx context.Context, jobID uuid.UUID) ([]ranking.Entry, error) {
	// Best-effort lock so a hot job is not re-ranked by every request at
	// once; losing the race just means redundant work, never a stale read.
	locked, err := u.cache.SetIfNotExists(ctx, cache.RankingLockKey(jobID), "1", 10*time.Second)
	if err != nil && !errors.Is(err, context.Canceled) {
		u.log.Printf("ranking job=%s lock=error err=%v", jobID, err)
	}

	snapshot, err := u.scores.ListByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	entries := make([]ranking.Entry, 0, len(snapshot))
	for _, s := range snapshot {
		entries = append(entries, ranking.Entry{
			CandidateID:   s.CandidateID,
			Total:         s.Total,
			ExamScore:     s.ExamScore,
			AppliedAt:     s.AppliedAt,
			AutoQualified: s.AutoQualified,
			Status:        s.Status,
			Skills:        s.Skills,
		})
	}
	ranked := ranking.Rank(entries)

	if locked {
		if err := u.cache.SetJSON(ctx, cache.RankingKey(jobID), ranked, u.ttl); err != nil {
			u.log.Printf("ranking job=%s cache_write=error err=%v", jobID, err)
		}
		_ = u.cache.Delete(ctx, cache.RankingLockKey(jobID))
	}

	return ranked, nil
}
