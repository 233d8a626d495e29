package scoring

import (
	"time"

	"github.com/google/uuid"
)

type WorkType string

const (
	WorkTypeRemote WorkType = "remote"
	WorkTypeHybrid WorkType = "hybrid"
	WorkTypeOnsite WorkType = "onsite"
)

type ExperienceLevel string

const (
	LevelEntry     ExperienceLevel = "entry"
	LevelMid       ExperienceLevel = "mid"
	LevelSenior    ExperienceLevel = "senior"
	LevelExecutive ExperienceLevel = "executive"
)

// ExamConfig is the optional assessment section of a job posting.
// Weight > 0 folds the exam into the composite score; zero keeps it
// reported separately.
type ExamConfig struct {
	PassingScore int
	TimeLimit    time.Duration
	Weight       float64
	AllowRetakes bool
}

type JobRequirement struct {
	ID               uuid.UUID
	Title            string
	Location         string
	RequiredSkills   []string
	SalaryMin        *int64
	SalaryMax        *int64
	WorkType         WorkType
	Industry         string
	ExperienceLevel  ExperienceLevel
	Exam             *ExamConfig
	AutoConnectLimit int
	ClosedAt         *time.Time
}

func (j JobRequirement) Closed(now time.Time) bool {
	return j.ClosedAt != nil && !j.ClosedAt.IsZero() && !now.Before(*j.ClosedAt)
}

type CandidateProfile struct {
	ID                 uuid.UUID
	Skills             []string
	YearsExperience    int
	ExperienceLevel    ExperienceLevel
	Location           string
	DesiredSalaryMin   *int64
	DesiredSalaryMax   *int64
	WorkTypePreference *WorkType
	RecentIndustry     string
	RecentTitle        string
	AppliedAt          time.Time
}

type ExamResult struct {
	CandidateID uuid.UUID
	JobID       uuid.UUID
	RawScore    int
	TotalPoints int
	SubmittedAt time.Time
	TimeSpent   time.Duration
}

// SubScores holds the seven structural dimensions, each in [0, 100].
type SubScores struct {
	Skills         float64
	Experience     float64
	Location       float64
	Salary         float64
	WorkType       float64
	Industry       float64
	TitleRelevance float64
}
