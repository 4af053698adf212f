package insurer

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
)

// LoadFile builds a normalizer from the built-in table extended with the
// aliases in a JSON file of the form {"alias": "Canonical"}. An empty path
// returns the default normalizer.
func LoadFile(path string) (*Normalizer, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open insurer aliases: %w", err)
	}
	defer f.Close()

	var extra map[string]string
	if err := json.NewDecoder(f).Decode(&extra); err != nil {
		return nil, fmt.Errorf("decode insurer aliases %s: %w", path, err)
	}

	n, err := New(extra)
	if err != nil {
		return nil, fmt.Errorf("insurer aliases %s: %w", path, err)
	}
	return n, nil
}
