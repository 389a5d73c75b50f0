package assessment

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dhtuganov/transformation-portal-sub002/internal/models"
)

// MinViableItems is the smallest per-dimension pool an assessment can
// reliably converge on.
const MinViableItems = 5

// ErrItemNotFound is returned when an item id is not in the bank.
var ErrItemNotFound = errors.New("assessment: item not found")

// ConfigError reports an under-provisioned item bank. Fatal at startup.
type ConfigError struct {
	Dimension models.Dimension
	Count     int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("assessment: dimension %s has %d items, need at least %d",
		e.Dimension, e.Count, MinViableItems)
}

// ItemBank indexes the item pool by dimension. It is built once and
// read-only afterward, so it may be shared across sessions without locking.
type ItemBank struct {
	byID        map[int64]*models.AssessmentItem
	byDimension map[models.Dimension][]*models.AssessmentItem
}

// NewItemBank builds the index from a static item list. Items are ordered
// by difficulty ascending (id ascending on ties) within each dimension.
// Returns a *ConfigError if any dimension holds fewer than MinViableItems.
func NewItemBank(items []models.AssessmentItem) (*ItemBank, error) {
	bank := &ItemBank{
		byID:        make(map[int64]*models.AssessmentItem, len(items)),
		byDimension: make(map[models.Dimension][]*models.AssessmentItem),
	}

	for i := range items {
		item := &items[i]
		if !models.ValidDimensions[item.Dimension] {
			return nil, fmt.Errorf("assessment: item %d has unknown dimension %q", item.ID, item.Dimension)
		}
		poles := models.DimensionPoles[item.Dimension]
		if item.Pole != poles[0] && item.Pole != poles[1] {
			return nil, fmt.Errorf("assessment: item %d has pole %q, want %q or %q",
				item.ID, item.Pole, poles[0], poles[1])
		}
		if item.Discrimination <= 0 {
			return nil, fmt.Errorf("assessment: item %d has non-positive discrimination %f",
				item.ID, item.Discrimination)
		}
		if _, dup := bank.byID[item.ID]; dup {
			return nil, fmt.Errorf("assessment: duplicate item id %d", item.ID)
		}
		bank.byID[item.ID] = item
		bank.byDimension[item.Dimension] = append(bank.byDimension[item.Dimension], item)
	}

	for _, d := range models.DimensionOrder {
		pool := bank.byDimension[d]
		if len(pool) < MinViableItems {
			return nil, &ConfigError{Dimension: d, Count: len(pool)}
		}
		sort.Slice(pool, func(i, j int) bool {
			if pool[i].Difficulty != pool[j].Difficulty {
				return pool[i].Difficulty < pool[j].Difficulty
			}
			return pool[i].ID < pool[j].ID
		})
	}

	return bank, nil
}

// Item looks up a single item by id.
func (b *ItemBank) Item(id int64) (*models.AssessmentItem, error) {
	item, ok := b.byID[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	return item, nil
}

// ItemsForDimension returns the dimension's pool in stable difficulty order.
// Callers must not mutate the returned slice.
func (b *ItemBank) ItemsForDimension(d models.Dimension) []*models.AssessmentItem {
	return b.byDimension[d]
}

// Size returns the total number of items in the bank.
func (b *ItemBank) Size() int {
	return len(b.byID)
}
