package scoring

import (
	"fmt"
	"strings"
)

const (
	qualifyMinTotal      = 85
	qualifyMinExam       = 80
	qualifyMinSkills     = 70.0
	qualifyMinExperience = 60.0
)

type Verdict struct {
	AutoQualified bool
	Reason        string
}

// Qualify evaluates the auto-qualification rules. The verdict drives
// irreversible auto-contact downstream, so the reason always names every
// rule with its observed value instead of returning a bare boolean.
func Qualify(total int, ss SubScores, exam *ExamScore) Verdict {
	parts := make([]string, 0, 4)
	qualified := true

	check := func(ok bool, pass, fail string) {
		if ok {
			parts = append(parts, pass)
			return
		}
		qualified = false
		parts = append(parts, fail)
	}

	check(total >= qualifyMinTotal,
		fmt.Sprintf("total %d >= %d", total, qualifyMinTotal),
		fmt.Sprintf("total %d < %d", total, qualifyMinTotal))

	// Absent exam does not block qualification; the rule is excluded.
	if exam == nil {
		parts = append(parts, "exam not configured or not taken, rule excluded")
	} else {
		check(exam.Score >= qualifyMinExam,
			fmt.Sprintf("exam %d >= %d", exam.Score, qualifyMinExam),
			fmt.Sprintf("exam %d < %d", exam.Score, qualifyMinExam))
	}

	check(ss.Skills >= qualifyMinSkills,
		fmt.Sprintf("skills %.0f >= %.0f", ss.Skills, qualifyMinSkills),
		fmt.Sprintf("skills %.0f < %.0f", ss.Skills, qualifyMinSkills))

	check(ss.Experience >= qualifyMinExperience,
		fmt.Sprintf("experience %.0f >= %.0f", ss.Experience, qualifyMinExperience),
		fmt.Sprintf("experience %.0f < %.0f", ss.Experience, qualifyMinExperience))

	return Verdict{
		AutoQualified: qualified,
		Reason:        strings.Join(parts, "; "),
	}
}
