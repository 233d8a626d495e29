package usecase

import (
	"context"
	"sync"
	"time"

	"talent-rank/internal/domain/scoring"
	"talent-rank/internal/domain/workflow"
	"talent-rank/internal/repository"

	"github.com/google/uuid"
)

type mockJobRepo struct {
	jobs map[uuid.UUID]scoring.JobRequirement
}

func newMockJobRepo(jobs ...scoring.JobRequirement) *mockJobRepo {
	m := &mockJobRepo{jobs: map[uuid.UUID]scoring.JobRequirement{}}
	for _, j := range jobs {
		m.jobs[j.ID] = j
	}
	return m
}

func (m *mockJobRepo) FindByID(_ context.Context, id uuid.UUID) (scoring.JobRequirement, error) {
	j, ok := m.jobs[id]
	if !ok {
		return scoring.JobRequirement{}, repository.ErrNotFound
	}
	return j, nil
}

func (m *mockJobRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := m.jobs[id]
	return ok, nil
}

type mockCandidateRepo struct {
	applicants map[uuid.UUID]map[uuid.UUID]scoring.CandidateProfile // jobID -> candidateID
}

func newMockCandidateRepo() *mockCandidateRepo {
	return &mockCandidateRepo{applicants: map[uuid.UUID]map[uuid.UUID]scoring.CandidateProfile{}}
}

func (m *mockCandidateRepo) add(jobID uuid.UUID, p scoring.CandidateProfile) {
	if m.applicants[jobID] == nil {
		m.applicants[jobID] = map[uuid.UUID]scoring.CandidateProfile{}
	}
	m.applicants[jobID][p.ID] = p
}

func (m *mockCandidateRepo) FindApplicant(_ context.Context, candidateID, jobID uuid.UUID) (scoring.CandidateProfile, error) {
	p, ok := m.applicants[jobID][candidateID]
	if !ok {
		return scoring.CandidateProfile{}, repository.ErrNotFound
	}
	return p, nil
}

func (m *mockCandidateRepo) ListApplicants(_ context.Context, jobID uuid.UUID) ([]scoring.CandidateProfile, error) {
	out := make([]scoring.CandidateProfile, 0, len(m.applicants[jobID]))
	for _, p := range m.applicants[jobID] {
		out = append(out, p)
	}
	return out, nil
}

type mockExamRepo struct {
	results map[uuid.UUID][]scoring.ExamResult // candidateID
}

func newMockExamRepo() *mockExamRepo {
	return &mockExamRepo{results: map[uuid.UUID][]scoring.ExamResult{}}
}

func (m *mockExamRepo) ListByCandidateJob(_ context.Context, candidateID, _ uuid.UUID) ([]scoring.ExamResult, error) {
	return m.results[candidateID], nil
}

type scoreKey struct {
	candidate uuid.UUID
	job       uuid.UUID
}

type mockScoreRepo struct {
	mu     sync.Mutex
	rows   map[scoreKey]repository.CandidateScore
	events []string
}

func newMockScoreRepo() *mockScoreRepo {
	return &mockScoreRepo{rows: map[scoreKey]repository.CandidateScore{}}
}

func (m *mockScoreRepo) seed(s repository.CandidateScore) {
	m.rows[scoreKey{s.CandidateID, s.JobID}] = s
}

func (m *mockScoreRepo) Upsert(_ context.Context, s repository.CandidateScore) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := scoreKey{s.CandidateID, s.JobID}
	if existing, ok := m.rows[k]; ok {
		s.Status = existing.Status
		s.Skills = existing.Skills
	}
	m.rows[k] = s
	return nil
}

func (m *mockScoreRepo) Find(_ context.Context, candidateID, jobID uuid.UUID) (repository.CandidateScore, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.rows[scoreKey{candidateID, jobID}]
	if !ok {
		return repository.CandidateScore{}, repository.ErrNotFound
	}
	return s, nil
}

func (m *mockScoreRepo) ListByJob(_ context.Context, jobID uuid.UUID) ([]repository.CandidateScore, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]repository.CandidateScore, 0)
	for k, s := range m.rows {
		if k.job == jobID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockScoreRepo) GetStatus(_ context.Context, candidateID, jobID uuid.UUID) (workflow.Status, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.rows[scoreKey{candidateID, jobID}]
	if !ok {
		return "", repository.ErrNotFound
	}
	return s.Status, nil
}

func (m *mockScoreRepo) UpdateStatus(_ context.Context, candidateID, jobID uuid.UUID, from, to workflow.Status, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := scoreKey{candidateID, jobID}
	s, ok := m.rows[k]
	if !ok || s.Status != from {
		return repository.ErrNotFound
	}
	s.Status = to
	m.rows[k] = s
	m.events = append(m.events, string(from)+"->"+string(to))
	return nil
}

type recordingNotifier struct {
	statusChanges []string
	qualified     []uuid.UUID
}

func (n *recordingNotifier) StatusChanged(candidateID, _ uuid.UUID, from, to workflow.Status) {
	n.statusChanges = append(n.statusChanges, string(from)+"->"+string(to))
}

func (n *recordingNotifier) CandidateQualified(candidateID, _ uuid.UUID, _ int) {
	n.qualified = append(n.qualified, candidateID)
}

func int64Ptr(v int64) *int64 { return &v }

func strongCandidate(id uuid.UUID, appliedAt time.Time) scoring.CandidateProfile {
	return scoring.CandidateProfile{
		ID:               id,
		Skills:           []string{"Go", "PostgreSQL", "Redis"},
		YearsExperience:  6,
		ExperienceLevel:  scoring.LevelSenior,
		Location:         "Jakarta",
		DesiredSalaryMin: int64Ptr(10000),
		DesiredSalaryMax: int64Ptr(15000),
		RecentIndustry:   "fintech",
		RecentTitle:      "Backend Engineer",
		AppliedAt:        appliedAt,
	}
}

func backendJob(id uuid.UUID) scoring.JobRequirement {
	return scoring.JobRequirement{
		ID:              id,
		Title:           "Backend Engineer",
		Location:        "Jakarta",
		RequiredSkills:  []string{"go", "postgresql", "redis"},
		SalaryMin:       int64Ptr(12000),
		SalaryMax:       int64Ptr(18000),
		WorkType:        scoring.WorkTypeRemote,
		Industry:        "fintech",
		ExperienceLevel: scoring.LevelSenior,
	}
}
