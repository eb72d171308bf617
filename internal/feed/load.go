package feed

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads and parses a feed file. This is the one loud error path in the
// application: everything downstream degrades silently, but without a feed
// there is nothing to show.
func Load(path string) (*Feed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading feed %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a feed from raw JSON.
func Parse(data []byte) (*Feed, error) {
	var f Feed
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}
	return &f, nil
}
