package assessment

import (
	"math"
	"testing"

	"github.com/dhtuganov/transformation-portal-sub002/internal/models"
)

func energyItem(id int64, pole string, difficulty, discrimination float64) models.AssessmentItem {
	return models.AssessmentItem{
		ID:             id,
		Dimension:      models.DimensionEnergy,
		Pole:           pole,
		Text:           "fixture",
		Difficulty:     difficulty,
		Discrimination: discrimination,
	}
}

func TestEstimateThetaEmpty(t *testing.T) {
	theta, se := EstimateTheta(nil, DefaultParams())
	if theta != 0 {
		t.Errorf("EstimateTheta(nil) theta = %f, want 0", theta)
	}
	if !math.IsInf(se, 1) {
		t.Errorf("EstimateTheta(nil) se = %f, want +Inf", se)
	}
}

func TestEstimateThetaMonotonicUnderFavoringResponses(t *testing.T) {
	items := []models.AssessmentItem{
		energyItem(1, "E", -2, 1.5),
		energyItem(2, "E", -1, 1.5),
		energyItem(3, "E", 0, 1.5),
		energyItem(4, "E", 1, 1.5),
		energyItem(5, "E", 2, 1.5),
	}

	// Start from one response against the pole, then stack favoring ones:
	// the estimate must never move down as favoring evidence accumulates.
	responses := []ScoredResponse{{Item: &items[0], Score: 0}}
	prev, _ := EstimateTheta(responses, DefaultParams())

	for i := 1; i < len(items); i++ {
		responses = append(responses, ScoredResponse{Item: &items[i], Score: 1})
		theta, _ := EstimateTheta(responses, DefaultParams())
		if theta < prev {
			t.Errorf("theta decreased from %f to %f after favoring response %d", prev, theta, i)
		}
		prev = theta
	}
}

func TestEstimateThetaClampedOnUnanimousResponses(t *testing.T) {
	p := DefaultParams()
	items := []models.AssessmentItem{
		energyItem(1, "E", -1, 1.5),
		energyItem(2, "E", 0, 1.5),
		energyItem(3, "E", 1, 1.5),
	}

	var favor []ScoredResponse
	for i := range items {
		favor = append(favor, ScoredResponse{Item: &items[i], Score: 1})
	}
	theta, se := EstimateTheta(favor, p)
	if theta != p.ThetaBound {
		t.Errorf("unanimous favor theta = %f, want clamp at %f", theta, p.ThetaBound)
	}
	if math.IsInf(se, 1) || se <= 0 {
		t.Errorf("unanimous favor se = %f, want finite positive", se)
	}

	var against []ScoredResponse
	for i := range items {
		against = append(against, ScoredResponse{Item: &items[i], Score: 0})
	}
	theta, _ = EstimateTheta(against, p)
	if theta != -p.ThetaBound {
		t.Errorf("unanimous against theta = %f, want clamp at %f", theta, -p.ThetaBound)
	}
}

func TestEstimateThetaNeutralResponses(t *testing.T) {
	// Symmetric difficulties with all-neutral answers keep the estimate at 0.
	items := []models.AssessmentItem{
		energyItem(1, "E", -2, 1.5),
		energyItem(2, "E", -1, 1.5),
		energyItem(3, "E", 0, 1.5),
		energyItem(4, "E", 1, 1.5),
		energyItem(5, "E", 2, 1.5),
	}
	var responses []ScoredResponse
	for i := range items {
		responses = append(responses, ScoredResponse{Item: &items[i], Score: 0.5})
	}

	theta, se := EstimateTheta(responses, DefaultParams())
	if math.Abs(theta) > 1e-9 {
		t.Errorf("neutral responses theta = %f, want 0", theta)
	}
	if se <= 0 || math.IsInf(se, 1) {
		t.Errorf("neutral responses se = %f, want finite positive", se)
	}
}

func TestEstimateThetaMoreResponsesTightenError(t *testing.T) {
	items := []models.AssessmentItem{
		energyItem(1, "E", -1, 1.5),
		energyItem(2, "E", 0, 1.5),
		energyItem(3, "E", 1, 1.5),
		energyItem(4, "E", -0.5, 1.5),
		energyItem(5, "E", 0.5, 1.5),
	}

	var responses []ScoredResponse
	var prevSE = math.Inf(1)
	for i := range items {
		score := 0.75
		if i%2 == 1 {
			score = 0.25
		}
		responses = append(responses, ScoredResponse{Item: &items[i], Score: score})
		_, se := EstimateTheta(responses, DefaultParams())
		if se >= prevSE {
			t.Errorf("se did not shrink after response %d: %f -> %f", i+1, prevSE, se)
		}
		prevSE = se
	}
}

func TestFavorScore(t *testing.T) {
	forward := energyItem(1, "E", 0, 1)
	reversed := energyItem(2, "I", 0, 1)

	tests := []struct {
		item  models.AssessmentItem
		value int
		want  float64
	}{
		{forward, 5, 1.0},
		{forward, 3, 0.5},
		{forward, 1, 0.0},
		{reversed, 5, 0.0},
		{reversed, 3, 0.5},
		{reversed, 1, 1.0},
	}
	for _, tt := range tests {
		got := FavorScore(&tt.item, tt.value)
		if got != tt.want {
			t.Errorf("FavorScore(%s item, %d) = %f, want %f", tt.item.Pole, tt.value, got, tt.want)
		}
	}
}
