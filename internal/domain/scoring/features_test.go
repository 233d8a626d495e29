package scoring

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func int64Ptr(v int64) *int64           { return &v }
func workTypePtr(v WorkType) *WorkType  { return &v }

func remoteMidJob() JobRequirement {
	return JobRequirement{
		ID:              uuid.New(),
		Title:           "Frontend Engineer",
		RequiredSkills:  []string{"React", "TypeScript"},
		SalaryMin:       int64Ptr(80000),
		SalaryMax:       int64Ptr(120000),
		WorkType:        WorkTypeRemote,
		Industry:        "software",
		ExperienceLevel: LevelMid,
	}
}

func TestExtract_StrongCandidate(t *testing.T) {
	job := remoteMidJob()
	cand := CandidateProfile{
		ID:                 uuid.New(),
		Skills:             []string{"React", "TypeScript", "Node"},
		YearsExperience:    4,
		Location:           "Berlin",
		DesiredSalaryMin:   int64Ptr(100000),
		DesiredSalaryMax:   int64Ptr(100000),
		WorkTypePreference: workTypePtr(WorkTypeRemote),
		RecentIndustry:     "software",
		RecentTitle:        "Frontend Engineer",
		AppliedAt:          time.Now().UTC(),
	}

	ss := Extract(cand, job)

	if ss.Skills != 100 {
		t.Fatalf("skills: expected 100, got %v", ss.Skills)
	}
	if ss.Experience != 100 {
		t.Fatalf("experience: expected 100 (4y derives mid), got %v", ss.Experience)
	}
	if ss.Location != 100 {
		t.Fatalf("location: expected 100 for remote job, got %v", ss.Location)
	}
	if ss.Salary != 100 {
		t.Fatalf("salary: expected 100 for in-range desired salary, got %v", ss.Salary)
	}
	if ss.WorkType != 100 {
		t.Fatalf("work type: expected 100, got %v", ss.WorkType)
	}
	if ss.Industry != 100 {
		t.Fatalf("industry: expected 100, got %v", ss.Industry)
	}
	if ss.TitleRelevance != 100 {
		t.Fatalf("title: expected 100 for identical titles, got %v", ss.TitleRelevance)
	}
}

func TestExtract_MismatchedSkills(t *testing.T) {
	job := remoteMidJob()
	cand := CandidateProfile{Skills: []string{"Java"}}

	ss := Extract(cand, job)
	if ss.Skills != 0 {
		t.Fatalf("skills: expected 0, got %v", ss.Skills)
	}
}

func TestSkillsScore_CaseInsensitiveSubstring(t *testing.T) {
	got := skillsScore([]string{"react.js", "typescript 5"}, []string{"React", "TypeScript"})
	if got != 100 {
		t.Fatalf("expected 100, got %v", got)
	}
}

func TestSkillsScore_NoRequiredSkills(t *testing.T) {
	if got := skillsScore(nil, nil); got != 100 {
		t.Fatalf("expected vacuous 100, got %v", got)
	}
}

func TestSkillsScore_Monotonic(t *testing.T) {
	required := []string{"Go", "PostgreSQL", "Redis", "Docker"}
	prev := -1.0
	have := []string{}
	for _, s := range required {
		have = append(have, s)
		got := skillsScore(have, required)
		if got < prev {
			t.Fatalf("skills score decreased: %v -> %v after adding %s", prev, got, s)
		}
		prev = got
	}
	if prev != 100 {
		t.Fatalf("expected 100 after all matched, got %v", prev)
	}
}

func TestExperienceScore_BandDistance(t *testing.T) {
	cases := []struct {
		name     string
		cand     ExperienceLevel
		years    int
		job      ExperienceLevel
		expected float64
	}{
		{"exact", LevelMid, 0, LevelMid, 100},
		{"adjacent", LevelSenior, 0, LevelMid, 70},
		{"two away", LevelExecutive, 0, LevelEntry, 30},
		{"derived from years", "", 8, LevelSenior, 100},
		{"unknown job band", LevelMid, 0, "", 50},
	}
	for _, tc := range cases {
		got := experienceScore(CandidateProfile{ExperienceLevel: tc.cand, YearsExperience: tc.years}, tc.job)
		if got != tc.expected {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.expected, got)
		}
	}
}

func TestLocationScore_PartialCredit(t *testing.T) {
	job := JobRequirement{WorkType: WorkTypeOnsite, Location: "Jakarta"}
	if got := locationScore("Jakarta", job); got != 100 {
		t.Fatalf("exact match: expected 100, got %v", got)
	}
	if got := locationScore("Bandung", job); got != 50 {
		t.Fatalf("mismatch: expected partial credit 50, got %v", got)
	}
	if got := locationScore("", job); got != 50 {
		t.Fatalf("empty: expected neutral 50, got %v", got)
	}
}

func TestSalaryScore_GapDecay(t *testing.T) {
	job := JobRequirement{SalaryMin: int64Ptr(80000), SalaryMax: int64Ptr(100000)}

	overlap := salaryScore(CandidateProfile{DesiredSalaryMin: int64Ptr(95000), DesiredSalaryMax: int64Ptr(130000)}, job)
	if overlap != 100 {
		t.Fatalf("overlap: expected 100, got %v", overlap)
	}

	// Candidate wants 110k-120k, job tops at 100k: gap 10k over ref 100k.
	gap := salaryScore(CandidateProfile{DesiredSalaryMin: int64Ptr(110000), DesiredSalaryMax: int64Ptr(120000)}, job)
	if gap != 90 {
		t.Fatalf("gap: expected 90, got %v", gap)
	}

	missing := salaryScore(CandidateProfile{}, job)
	if missing != 50 {
		t.Fatalf("missing desired range: expected neutral 50, got %v", missing)
	}

	huge := Extract(CandidateProfile{DesiredSalaryMin: int64Ptr(900000), DesiredSalaryMax: int64Ptr(950000)}, job)
	if huge.Salary != 0 {
		t.Fatalf("huge gap: expected floor 0, got %v", huge.Salary)
	}
}

func TestWorkTypeScore(t *testing.T) {
	if got := workTypeScore(nil, WorkTypeOnsite); got != 100 {
		t.Fatalf("no preference: expected 100, got %v", got)
	}
	if got := workTypeScore(workTypePtr(WorkTypeRemote), WorkTypeOnsite); got != 0 {
		t.Fatalf("explicit mismatch: expected 0, got %v", got)
	}
}

func TestTitleScore_TokenOverlap(t *testing.T) {
	got := titleScore("Senior Backend Engineer", "Backend Engineer")
	// tokens: {senior, backend, engineer} vs {backend, engineer} -> 2/3.
	expected := 100 * 2.0 / 3.0
	if got != expected {
		t.Fatalf("expected %v, got %v", expected, got)
	}

	if got := titleScore("", ""); got != 50 {
		t.Fatalf("empty titles: expected neutral 50, got %v", got)
	}
}

func TestExtract_BoundsOnDegenerateInput(t *testing.T) {
	ss := Extract(CandidateProfile{}, JobRequirement{})
	for name, v := range map[string]float64{
		"skills": ss.Skills, "experience": ss.Experience, "location": ss.Location,
		"salary": ss.Salary, "work_type": ss.WorkType, "industry": ss.Industry,
		"title": ss.TitleRelevance,
	} {
		if v < 0 || v > 100 {
			t.Fatalf("%s out of bounds: %v", name, v)
		}
	}
}

func TestExtract_Deterministic(t *testing.T) {
	job := remoteMidJob()
	cand := CandidateProfile{
		Skills:          []string{"React"},
		YearsExperience: 2,
		Location:        "Oslo",
		RecentTitle:     "UI Developer",
	}
	first := Extract(cand, job)
	for i := 0; i < 50; i++ {
		if Extract(cand, job) != first {
			t.Fatalf("extract not deterministic at iteration %d", i)
		}
	}
}
