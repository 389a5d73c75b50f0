package assessment

import (
	"errors"
	"math"

	"github.com/dhtuganov/transformation-portal-sub002/internal/models"
)

// ErrExhausted signals that every item for a dimension has been
// administered. It is a control signal, not a failure: the orchestrator
// responds by force-completing the dimension.
var ErrExhausted = errors.New("assessment: no unadministered items remain for dimension")

// SelectNextItem picks the unadministered item for the dimension that is
// most informative at the current theta estimate: smallest
// discrimination-weighted distance between item difficulty and theta.
// Ties go to the higher discrimination, then the lower item id, so
// selection is deterministic for a given bank and history.
func SelectNextItem(bank *ItemBank, d models.Dimension, theta float64, administered map[int64]bool) (*models.AssessmentItem, error) {
	var best *models.AssessmentItem
	bestDist := math.Inf(1)

	for _, item := range bank.ItemsForDimension(d) {
		if administered[item.ID] {
			continue
		}

		dist := math.Abs(signedDifficulty(item)-theta) / item.Discrimination

		switch {
		case dist < bestDist:
			best, bestDist = item, dist
		case dist == bestDist && best != nil:
			if item.Discrimination > best.Discrimination ||
				(item.Discrimination == best.Discrimination && item.ID < best.ID) {
				best = item
			}
		}
	}

	if best == nil {
		return nil, ErrExhausted
	}
	return best, nil
}
