package assessment

import (
	"errors"
	"testing"

	"github.com/dhtuganov/transformation-portal-sub002/internal/models"
)

// fixtureItems returns five forward/reverse-mixed items per dimension.
func fixtureItems() []models.AssessmentItem {
	var items []models.AssessmentItem
	id := int64(1)
	difficulties := []float64{-2, -1, 0, 1, 2}
	for _, d := range models.DimensionOrder {
		poles := models.DimensionPoles[d]
		for i, b := range difficulties {
			pole := poles[0]
			if i%2 == 1 {
				pole = poles[1]
			}
			items = append(items, models.AssessmentItem{
				ID:             id,
				Dimension:      d,
				Pole:           pole,
				Text:           "fixture",
				Difficulty:     b,
				Discrimination: 1.5,
			})
			id++
		}
	}
	return items
}

func fixtureBank(t *testing.T) *ItemBank {
	t.Helper()
	bank, err := NewItemBank(fixtureItems())
	if err != nil {
		t.Fatalf("NewItemBank: %v", err)
	}
	return bank
}

func TestNewItemBankUnderProvisioned(t *testing.T) {
	items := fixtureItems()

	// Drop one lifestyle item below the viable minimum.
	var trimmed []models.AssessmentItem
	for _, item := range items {
		if item.Dimension == models.DimensionLifestyle && item.Difficulty == 2 {
			continue
		}
		trimmed = append(trimmed, item)
	}

	_, err := NewItemBank(trimmed)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("NewItemBank = %v, want *ConfigError", err)
	}
	if cfgErr.Dimension != models.DimensionLifestyle || cfgErr.Count != 4 {
		t.Errorf("ConfigError = %+v, want lifestyle with 4 items", cfgErr)
	}
}

func TestItemBankLookup(t *testing.T) {
	bank := fixtureBank(t)

	item, err := bank.Item(1)
	if err != nil {
		t.Fatalf("Item(1): %v", err)
	}
	if item.Dimension != models.DimensionEnergy {
		t.Errorf("Item(1).Dimension = %s, want %s", item.Dimension, models.DimensionEnergy)
	}

	if _, err := bank.Item(999); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("Item(999) = %v, want ErrItemNotFound", err)
	}
}

func TestItemBankOrderedByDifficulty(t *testing.T) {
	bank := fixtureBank(t)

	for _, d := range models.DimensionOrder {
		pool := bank.ItemsForDimension(d)
		if len(pool) != 5 {
			t.Fatalf("ItemsForDimension(%s) = %d items, want 5", d, len(pool))
		}
		for i := 1; i < len(pool); i++ {
			if pool[i].Difficulty < pool[i-1].Difficulty {
				t.Errorf("dimension %s pool not sorted: %f before %f",
					d, pool[i-1].Difficulty, pool[i].Difficulty)
			}
		}
	}
}

func TestNewItemBankRejectsBadItems(t *testing.T) {
	items := fixtureItems()
	items[0].Discrimination = 0
	if _, err := NewItemBank(items); err == nil {
		t.Error("NewItemBank accepted zero discrimination")
	}

	items = fixtureItems()
	items[3].Pole = "X"
	if _, err := NewItemBank(items); err == nil {
		t.Error("NewItemBank accepted unknown pole")
	}

	items = fixtureItems()
	items[1].ID = items[0].ID
	if _, err := NewItemBank(items); err == nil {
		t.Error("NewItemBank accepted duplicate id")
	}
}

func TestDefaultItemsFormViableBank(t *testing.T) {
	items := make([]models.AssessmentItem, len(DefaultItems))
	for i, rec := range DefaultItems {
		items[i] = models.AssessmentItem{
			ID:             int64(i + 1),
			Dimension:      rec.Dimension,
			Pole:           rec.Pole,
			Text:           rec.Text,
			Difficulty:     rec.Difficulty,
			Discrimination: rec.Discrimination,
		}
	}
	bank, err := NewItemBank(items)
	if err != nil {
		t.Fatalf("default items do not form a viable bank: %v", err)
	}
	for _, d := range models.DimensionOrder {
		if n := len(bank.ItemsForDimension(d)); n != 10 {
			t.Errorf("dimension %s has %d default items, want 10", d, n)
		}
	}
}
