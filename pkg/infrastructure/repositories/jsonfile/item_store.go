package jsonfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/vsinha/reorder/pkg/domain/entities"
	"github.com/vsinha/reorder/pkg/domain/repositories"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const indent = "    "

// ItemStore keeps the item list as a pretty-printed JSON array in a single file
type ItemStore struct {
	path string
}

// NewItemStore creates a store backed by the file at path. The file need not exist.
func NewItemStore(path string) *ItemStore {
	return &ItemStore{path: path}
}

// Verify interface compliance
var _ repositories.ItemRepository = (*ItemStore)(nil)

// Path returns the backing file path
func (s *ItemStore) Path() string {
	return s.path
}

// Load reads every item from the file. A missing file means no items yet.
func (s *ItemStore) Load() ([]entities.Item, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []entities.Item{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read item store %s: %w", s.path, err)
	}

	items := []entities.Item{}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode item store %s: %w", s.path, err)
	}
	return items, nil
}

// Save overwrites the file with items
func (s *ItemStore) Save(items []entities.Item) error {
	if items == nil {
		items = []entities.Item{}
	}

	data, err := json.MarshalIndent(items, "", indent)
	if err != nil {
		return fmt.Errorf("failed to encode items: %w", err)
	}

	if err := os.WriteFile(s.path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write item store %s: %w", s.path, err)
	}
	return nil
}
