package scoring

import "strings"

const (
	neutralScore          = 50.0
	industryTransferScore = 40.0
	bandAdjacentScore     = 70.0
	bandDistantScore      = 30.0
	locationPartialCredit = 50.0
)

// Extract computes the seven structural sub-scores for a candidate
// against one job. It is pure and total: missing profile data degrades
// the affected dimension toward a neutral midpoint instead of failing.
func Extract(candidate CandidateProfile, job JobRequirement) SubScores {
	ss := SubScores{
		Skills:         skillsScore(candidate.Skills, job.RequiredSkills),
		Experience:     experienceScore(candidate, job.ExperienceLevel),
		Location:       locationScore(candidate.Location, job),
		Salary:         salaryScore(candidate, job),
		WorkType:       workTypeScore(candidate.WorkTypePreference, job.WorkType),
		Industry:       industryScore(candidate.RecentIndustry, job.Industry),
		TitleRelevance: titleScore(candidate.RecentTitle, job.Title),
	}

	ss.Skills = clampScore(ss.Skills)
	ss.Experience = clampScore(ss.Experience)
	ss.Location = clampScore(ss.Location)
	ss.Salary = clampScore(ss.Salary)
	ss.WorkType = clampScore(ss.WorkType)
	ss.Industry = clampScore(ss.Industry)
	ss.TitleRelevance = clampScore(ss.TitleRelevance)
	return ss
}

func skillsScore(have, required []string) float64 {
	if len(required) == 0 {
		return 100
	}

	matched := 0
	for _, req := range required {
		req = strings.ToLower(strings.TrimSpace(req))
		if req == "" {
			matched++
			continue
		}
		for _, h := range have {
			if strings.Contains(strings.ToLower(h), req) {
				matched++
				break
			}
		}
	}
	return 100 * float64(matched) / float64(len(required))
}

func experienceScore(candidate CandidateProfile, jobLevel ExperienceLevel) float64 {
	jobBand, ok := bandIndex(jobLevel)
	if !ok {
		return neutralScore
	}

	candBand, ok := bandIndex(candidate.ExperienceLevel)
	if !ok {
		candBand = bandFromYears(candidate.YearsExperience)
	}

	dist := jobBand - candBand
	if dist < 0 {
		dist = -dist
	}
	switch dist {
	case 0:
		return 100
	case 1:
		return bandAdjacentScore
	default:
		return bandDistantScore
	}
}

func bandIndex(l ExperienceLevel) (int, bool) {
	switch l {
	case LevelEntry:
		return 0, true
	case LevelMid:
		return 1, true
	case LevelSenior:
		return 2, true
	case LevelExecutive:
		return 3, true
	default:
		return 0, false
	}
}

func bandFromYears(years int) int {
	switch {
	case years <= 2:
		return 0
	case years <= 5:
		return 1
	case years <= 10:
		return 2
	default:
		return 3
	}
}

func locationScore(candidateLocation string, job JobRequirement) float64 {
	if job.WorkType == WorkTypeRemote {
		return 100
	}

	cand := strings.TrimSpace(candidateLocation)
	jobLoc := strings.TrimSpace(job.Location)
	if cand == "" || jobLoc == "" {
		return neutralScore
	}
	if strings.EqualFold(cand, jobLoc) {
		return 100
	}
	// No exact match is not proof of mismatch; keep partial credit for
	// relocation uncertainty.
	return locationPartialCredit
}

func salaryScore(candidate CandidateProfile, job JobRequirement) float64 {
	candMin, candMax, ok := normalizeRange(candidate.DesiredSalaryMin, candidate.DesiredSalaryMax)
	if !ok {
		return neutralScore
	}
	jobMin, jobMax, ok := normalizeRange(job.SalaryMin, job.SalaryMax)
	if !ok {
		return neutralScore
	}

	if candMin <= jobMax && jobMin <= candMax {
		return 100
	}

	var gap int64
	if candMin > jobMax {
		gap = candMin - jobMax
	} else {
		gap = jobMin - candMax
	}

	ref := jobMax
	if ref <= 0 {
		ref = jobMin
	}
	if ref <= 0 {
		ref = candMax
	}
	if ref <= 0 {
		return 0
	}

	return 100 - 100*float64(gap)/float64(ref)
}

// normalizeRange fills a one-sided range from its present bound.
func normalizeRange(minV, maxV *int64) (int64, int64, bool) {
	if minV == nil && maxV == nil {
		return 0, 0, false
	}
	var lo, hi int64
	switch {
	case minV != nil && maxV != nil:
		lo, hi = *minV, *maxV
	case minV != nil:
		lo, hi = *minV, *minV
	default:
		lo, hi = *maxV, *maxV
	}
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo, hi, true
}

func workTypeScore(pref *WorkType, jobType WorkType) float64 {
	if pref == nil || *pref == "" {
		return 100
	}
	if *pref == jobType {
		return 100
	}
	return 0
}

func industryScore(candidateIndustry, jobIndustry string) float64 {
	cand := strings.TrimSpace(candidateIndustry)
	job := strings.TrimSpace(jobIndustry)
	if cand == "" || job == "" {
		return neutralScore
	}
	if strings.EqualFold(cand, job) {
		return 100
	}
	return industryTransferScore
}

func titleScore(candidateTitle, jobTitle string) float64 {
	candTokens := titleTokens(candidateTitle)
	jobTokens := titleTokens(jobTitle)
	if len(candTokens) == 0 || len(jobTokens) == 0 {
		return neutralScore
	}

	inter := 0
	for tok := range jobTokens {
		if _, ok := candTokens[tok]; ok {
			inter++
		}
	}
	union := len(candTokens) + len(jobTokens) - inter
	if union == 0 {
		return neutralScore
	}
	return 100 * float64(inter) / float64(union)
}

func titleTokens(title string) map[string]struct{} {
	out := map[string]struct{}{}
	for _, tok := range strings.Fields(strings.ToLower(title)) {
		tok = strings.Trim(tok, ".,()/-")
		if tok == "" {
			continue
		}
		out[tok] = struct{}{}
	}
	return out
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
