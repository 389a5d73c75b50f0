package assessment

import (
	"math"

	"github.com/dhtuganov/transformation-portal-sub002/internal/models"
)

// Params holds the engine's tunable thresholds. All values have working
// defaults; the zero value is not usable.
type Params struct {
	PrecisionThreshold   float64
	MinItemsPerDimension int
	MaxItemsPerDimension int
	ThetaBound           float64
	ConvergenceTolerance float64
	MaxIterations        int
}

// DefaultParams returns the standard engine configuration.
func DefaultParams() Params {
	return Params{
		PrecisionThreshold:   0.3,
		MinItemsPerDimension: 5,
		MaxItemsPerDimension: 10,
		ThetaBound:           4,
		ConvergenceTolerance: 0.001,
		MaxIterations:        20,
	}
}

// ScoredResponse pairs an administered item with the respondent's answer,
// normalized onto [0,1] toward the dimension's first-listed pole.
type ScoredResponse struct {
	Item  *models.AssessmentItem
	Score float64
}

// FavorScore maps a 1-5 agreement value onto [0,1] toward the dimension's
// first-listed pole. Agreement with a reverse-keyed item (one leaning
// toward the second pole) counts against the first pole.
func FavorScore(item *models.AssessmentItem, value int) float64 {
	u := float64(value-1) / 4.0
	if item.Pole != models.DimensionPoles[item.Dimension][0] {
		u = 1 - u
	}
	return u
}

// signedDifficulty orients an item's difficulty on the dimension's theta
// axis: reverse-keyed items are most informative at mirrored positions.
func signedDifficulty(item *models.AssessmentItem) float64 {
	if item.Pole != models.DimensionPoles[item.Dimension][0] {
		return -item.Difficulty
	}
	return item.Difficulty
}

func logistic(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// EstimateTheta computes a maximum-likelihood estimate of the latent trait
// position from a dimension's response history, under a two-parameter
// logistic model: P(favor) = logistic(discrimination * (theta - difficulty)).
//
// Newton-Raphson from a neutral prior, clamped to ±ThetaBound so unanimous
// extreme answers cannot diverge. Hitting the iteration cap returns the
// last estimate; non-convergence is not an error. With no responses the
// estimate is (0, +Inf) — maximal uncertainty, no special error path.
func EstimateTheta(responses []ScoredResponse, p Params) (theta, standardError float64) {
	if len(responses) == 0 {
		return 0, math.Inf(1)
	}

	theta = 0
	for iter := 0; iter < p.MaxIterations; iter++ {
		var d1, d2 float64
		for _, r := range responses {
			a := r.Item.Discrimination
			b := signedDifficulty(r.Item)
			prob := logistic(a * (theta - b))
			d1 += a * (r.Score - prob)
			d2 -= a * a * prob * (1 - prob)
		}
		if d2 == 0 {
			break
		}

		delta := d1 / d2
		theta -= delta
		if theta > p.ThetaBound {
			theta = p.ThetaBound
		}
		if theta < -p.ThetaBound {
			theta = -p.ThetaBound
		}

		if math.Abs(delta) < p.ConvergenceTolerance {
			break
		}
	}

	// Fisher information at the converged estimate.
	var info float64
	for _, r := range responses {
		a := r.Item.Discrimination
		b := signedDifficulty(r.Item)
		prob := logistic(a * (theta - b))
		info += a * a * prob * (1 - prob)
	}
	if info <= 0 {
		return theta, math.Inf(1)
	}
	return theta, 1 / math.Sqrt(info)
}
