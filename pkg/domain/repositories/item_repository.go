package repositories

import (
	"errors"

	"github.com/vsinha/reorder/pkg/domain/entities"
)

// ErrItemNotFound is returned when an item position does not exist
var ErrItemNotFound = errors.New("item not found")

// ItemRepository is the record store for tracked items. The whole list is read and
// written at once.
type ItemRepository interface {
	// Load returns every stored item; an empty store yields an empty slice
	Load() ([]entities.Item, error)
	// Save replaces the stored list with items
	Save(items []entities.Item) error
}
