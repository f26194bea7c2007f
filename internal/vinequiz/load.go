package vinequiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrNoItems indicates the quiz data source was empty. An empty pool is a
// fatal configuration error: no partial game is offered.
var ErrNoItems = errors.New("quiz data contains no items")

// LoadItems reads the quiz item collection from a JSON file. Any read or
// decode failure, or an empty collection, is fatal to startup.
func LoadItems(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading quiz data: %w", err)
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decoding quiz data: %w", err)
	}

	for i, item := range items {
		if item.Variety == "" || item.Country == "" {
			return nil, fmt.Errorf("quiz data item %d: variety and country are required", i)
		}
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	return items, nil
}
