package assessment

import (
	"errors"
	"testing"

	"github.com/dhtuganov/transformation-portal-sub002/internal/models"
)

func TestSelectNextItemNeverRepeats(t *testing.T) {
	bank := fixtureBank(t)
	administered := make(map[int64]bool)

	for i := 0; i < 5; i++ {
		item, err := SelectNextItem(bank, models.DimensionEnergy, 0, administered)
		if err != nil {
			t.Fatalf("selection %d: %v", i+1, err)
		}
		if administered[item.ID] {
			t.Fatalf("selection %d returned already-administered item %d", i+1, item.ID)
		}
		administered[item.ID] = true
	}

	// Exhausted exactly when the administered set equals the pool.
	if _, err := SelectNextItem(bank, models.DimensionEnergy, 0, administered); !errors.Is(err, ErrExhausted) {
		t.Errorf("full administered set = %v, want ErrExhausted", err)
	}
}

func TestSelectNextItemMatchesDifficultyToTheta(t *testing.T) {
	bank := fixtureBank(t)

	// Fixture pools alternate forward/reverse keying, so compare against the
	// signed (theta-axis) difficulty of the selected item.
	tests := []struct {
		theta      float64
		wantSigned float64
	}{
		{0, 0},
		{-2, -2},
		{2, 2},
		{0.9, 1},
		{-3.8, -2}, // beyond the pool: closest edge item wins
	}
	for _, tt := range tests {
		item, err := SelectNextItem(bank, models.DimensionInfo, tt.theta, map[int64]bool{})
		if err != nil {
			t.Fatalf("theta %f: %v", tt.theta, err)
		}
		if got := signedDifficulty(item); got != tt.wantSigned {
			t.Errorf("theta %f selected signed difficulty %f, want %f", tt.theta, got, tt.wantSigned)
		}
	}
}

func TestSelectNextItemTieBreaks(t *testing.T) {
	items := []models.AssessmentItem{}
	for i, d := range models.DimensionOrder {
		base := int64(i * 10)
		poles := models.DimensionPoles[d]
		// Two equidistant items around theta 0 with differing discrimination,
		// plus filler to clear the viability minimum.
		items = append(items,
			models.AssessmentItem{ID: base + 1, Dimension: d, Pole: poles[0], Difficulty: -1, Discrimination: 1.0},
			models.AssessmentItem{ID: base + 2, Dimension: d, Pole: poles[0], Difficulty: 1, Discrimination: 2.0},
			models.AssessmentItem{ID: base + 3, Dimension: d, Pole: poles[0], Difficulty: -2, Discrimination: 1.0},
			models.AssessmentItem{ID: base + 4, Dimension: d, Pole: poles[0], Difficulty: 2, Discrimination: 1.0},
			models.AssessmentItem{ID: base + 5, Dimension: d, Pole: poles[0], Difficulty: 3, Discrimination: 1.0},
		)
	}
	bank, err := NewItemBank(items)
	if err != nil {
		t.Fatalf("NewItemBank: %v", err)
	}

	// |1-0|/2.0 = 0.5 beats |-1-0|/1.0 = 1.0: discrimination weighting wins.
	item, err := SelectNextItem(bank, models.DimensionEnergy, 0, map[int64]bool{})
	if err != nil {
		t.Fatalf("SelectNextItem: %v", err)
	}
	if item.ID != 2 {
		t.Errorf("selected item %d, want 2 (higher discrimination at equal distance)", item.ID)
	}

	// Equal distance and equal discrimination: lowest id wins.
	item, err = SelectNextItem(bank, models.DimensionEnergy, 0, map[int64]bool{1: true, 2: true})
	if err != nil {
		t.Fatalf("SelectNextItem: %v", err)
	}
	if item.ID != 3 {
		t.Errorf("selected item %d, want 3 (lowest id on full tie)", item.ID)
	}
}

func TestSelectNextItemDeterministic(t *testing.T) {
	bank := fixtureBank(t)
	first, err := SelectNextItem(bank, models.DimensionDecision, 0.7, map[int64]bool{})
	if err != nil {
		t.Fatalf("SelectNextItem: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := SelectNextItem(bank, models.DimensionDecision, 0.7, map[int64]bool{})
		if err != nil {
			t.Fatalf("SelectNextItem: %v", err)
		}
		if again.ID != first.ID {
			t.Fatalf("selection not deterministic: %d then %d", first.ID, again.ID)
		}
	}
}
