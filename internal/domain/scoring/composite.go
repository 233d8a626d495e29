package scoring

import "math"

// Compose combines the structural sub-scores into a single 0-100 total.
// The exam score stays outside the weighted sum unless the job configures
// examWeight > 0; in that case the seven structural weights are rescaled
// by (1 - examWeight) so the full set still sums to 1.0. An absent exam
// never zeroes or distorts the structural score.
func Compose(ss SubScores, exam *ExamScore, w Weights, examWeight float64) int {
	if examWeight < 0 {
		examWeight = 0
	}
	if examWeight > 1 {
		examWeight = 1
	}

	effective := w
	total := 0.0

	if exam != nil && examWeight > 0 {
		effective = w.scaled(1 - examWeight)
		total += float64(exam.Score) * examWeight
	}

	total += ss.Skills*effective.Skills +
		ss.Experience*effective.Experience +
		ss.Location*effective.Location +
		ss.Salary*effective.Salary +
		ss.WorkType*effective.WorkType +
		ss.Industry*effective.Industry +
		ss.TitleRelevance*effective.TitleRelevance

	out := int(math.Round(total))
	if out < 0 {
		out = 0
	}
	if out > 100 {
		out = 100
	}
	return out
}
