package usecase

import (
	"context"
	"errors"
	"log"

	"talent-rank/internal/domain/ranking"
	"talent-rank/internal/domain/workflow"
	"talent-rank/internal/infrastructure/cache"
	"talent-rank/internal/repository"

	"github.com/google/uuid"
)

// StatusNotifier pushes pipeline events to connected reviewers. The ws
// hub implements it; tests use a recording stub.
type StatusNotifier interface {
	StatusChanged(candidateID, jobID uuid.UUID, from, to workflow.Status)
	CandidateQualified(candidateID, jobID uuid.UUID, total int)
}

type noopNotifier struct{}

func (noopNotifier) StatusChanged(uuid.UUID, uuid.UUID, workflow.Status, workflow.Status) {}
func (noopNotifier) CandidateQualified(uuid.UUID, uuid.UUID, int)                         {}

type WorkflowUsecase interface {
	Transition(ctx context.Context, candidateID, jobID uuid.UUID, to workflow.Status, actor string) (workflow.Status, error)
	AutoContact(ctx context.Context, jobID uuid.UUID, actor string) (int, error)
}

type Workflow struct {
	jobs     repository.JobRepository
	scores   repository.ScoreRepository
	cache    *cache.Redis
	notifier StatusNotifier
	log      *log.Logger
}

func NewWorkflowUsecase(jobs repository.JobRepository, scores repository.ScoreRepository, c *cache.Redis, notifier StatusNotifier, logger *log.Logger) *Workflow {
	if logger == nil {
		logger = log.Default()
	}
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &Workflow{jobs: jobs, scores: scores, cache: c, notifier: notifier, log: logger}
}

// Transition moves one candidate to the requested status after validating
// the edge against the pipeline state machine.
func (u *Workflow) Transition(ctx context.Context, candidateID, jobID uuid.UUID, to workflow.Status, actor string) (workflow.Status, error) {
	if candidateID == uuid.Nil || jobID == uuid.Nil || !to.Valid() {
		return "", ErrInvalidInput
	}

	from, err := u.scores.GetStatus(ctx, candidateID, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrCandidateNotFound
		}
		return "", err
	}

	next, err := workflow.Transition(from, to)
	if err != nil {
		return from, err
	}

	if err := u.scores.UpdateStatus(ctx, candidateID, jobID, from, next, actor); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Lost a concurrent race; the stored status moved under us.
			return from, workflow.ErrInvalidTransition
		}
		return from, err
	}

	if err := u.cache.InvalidateJob(ctx, jobID); err != nil {
		u.log.Printf("workflow transition candidate=%s job=%s cache_invalidate=error err=%v", candidateID, jobID, err)
	}

	u.log.Printf("workflow transition candidate=%s job=%s from=%s to=%s actor=%s", candidateID, jobID, from, next, actor)
	u.notifier.StatusChanged(candidateID, jobID, from, next)
	return next, nil
}

// AutoContact promotes the job's top auto-qualified candidates to
// contacted, bounded by the job's auto-connect limit. The sweep is
// monotonic: candidates already contacted or further along are counted
// against the limit but never touched, so a limit lowered later retracts
// nothing.
func (u *Workflow) AutoContact(ctx context.Context, jobID uuid.UUID, actor string) (int, error) {
	if jobID == uuid.Nil {
		return 0, ErrInvalidInput
	}

	job, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrJobNotFound
		}
		return 0, err
	}
	if job.AutoConnectLimit <= 0 {
		return 0, nil
	}

	snapshot, err := u.scores.ListByJob(ctx, jobID)
	if err != nil {
		return 0, err
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
		})
	}
	ranked := ranking.Rank(entries)

	contacted := 0
	claimed := 0
	for _, e := range ranked {
		if claimed >= job.AutoConnectLimit {
			break
		}
		if !e.AutoQualified {
			continue
		}

		switch e.Status {
		case workflow.StatusPending, workflow.StatusReviewed:
			if err := u.scores.UpdateStatus(ctx, e.CandidateID, jobID, e.Status, workflow.StatusContacted, actor); err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					u.log.Printf("auto_contact job=%s candidate=%s skipped=raced", jobID, e.CandidateID)
					continue
				}
				return contacted, err
			}
			claimed++
			contacted++
			u.notifier.StatusChanged(e.CandidateID, jobID, e.Status, workflow.StatusContacted)
			u.notifier.CandidateQualified(e.CandidateID, jobID, e.Total)
		case workflow.StatusContacted, workflow.StatusInterviewed, workflow.StatusHired:
			// Already in or past contact; holds a slot, nothing to do.
			claimed++
		default:
			u.log.Printf("auto_contact job=%s candidate=%s skipped=status status=%s", jobID, e.CandidateID, e.Status)
		}
	}

	if contacted > 0 {
		if err := u.cache.InvalidateJob(ctx, jobID); err != nil {
			u.log.Printf("auto_contact job=%s cache_invalidate=error err=%v", jobID, err)
		}
	}

	u.log.Printf("auto_contact job=%s limit=%d contacted=%d", jobID, job.AutoConnectLimit, contacted)
	return contacted, nil
}
