package scoring

import (
	"errors"
	"fmt"
	"math"
)

// WeightTableVersion identifies the structural weight table. Changing
// any constant reclassifies every outstanding candidate, so the table is
// versioned and validated at startup rather than configured per request.
const WeightTableVersion = 1

const weightSumEpsilon = 1e-9

var ErrWeightSum = errors.New("structural weights must sum to 1.0")

type Weights struct {
	Skills         float64
	Experience     float64
	Location       float64
	Salary         float64
	WorkType       float64
	Industry       float64
	TitleRelevance float64
}

func DefaultWeights() Weights {
	return Weights{
		Skills:         0.35,
		Experience:     0.25,
		Location:       0.15,
		Salary:         0.10,
		WorkType:       0.08,
		Industry:       0.04,
		TitleRelevance: 0.03,
	}
}

func (w Weights) Sum() float64 {
	return w.Skills + w.Experience + w.Location + w.Salary + w.WorkType + w.Industry + w.TitleRelevance
}

// Validate fails fast on a misconfigured table; this is a deployment-time
// invariant, not a per-request error.
func (w Weights) Validate() error {
	sum := w.Sum()
	if math.Abs(sum-1.0) > weightSumEpsilon {
		return fmt.Errorf("%w: got %.12f (version=%d)", ErrWeightSum, sum, WeightTableVersion)
	}
	return nil
}

// scaled returns the table with every weight multiplied by factor, used
// to make room for a configured exam weight.
func (w Weights) scaled(factor float64) Weights {
	return Weights{
		Skills:         w.Skills * factor,
		Experience:     w.Experience * factor,
		Location:       w.Location * factor,
		Salary:         w.Salary * factor,
		WorkType:       w.WorkType * factor,
		Industry:       w.Industry * factor,
		TitleRelevance: w.TitleRelevance * factor,
	}
}
