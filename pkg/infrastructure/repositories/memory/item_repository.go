package memory

import (
	"github.com/vsinha/reorder/pkg/domain/entities"
	"github.com/vsinha/reorder/pkg/domain/repositories"
)

// ItemRepository provides in-memory item storage for tests and dry runs
type ItemRepository struct {
	items     []entities.Item
	saveCount int
}

// NewItemRepository creates an in-memory repository seeded with items
func NewItemRepository(items ...entities.Item) *ItemRepository {
	return &ItemRepository{items: cloneItems(items)}
}

// Verify interface compliance
var _ repositories.ItemRepository = (*ItemRepository)(nil)

// Load returns a copy of the stored items
func (r *ItemRepository) Load() ([]entities.Item, error) {
	return cloneItems(r.items), nil
}

// Save replaces the stored items with a copy of items
func (r *ItemRepository) Save(items []entities.Item) error {
	r.items = cloneItems(items)
	r.saveCount++
	return nil
}

// SaveCount returns how many times Save has been called
func (r *ItemRepository) SaveCount() int {
	return r.saveCount
}

func cloneItems(items []entities.Item) []entities.Item {
	cloned := make([]entities.Item, len(items))
	for i, item := range items {
		if item.LastReconciledOn != nil {
			reconciledOn := *item.LastReconciledOn
			item.LastReconciledOn = &reconciledOn
		}
		cloned[i] = item
	}
	return cloned
}
