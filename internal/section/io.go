package section

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadFromFile loads a section definition from a JSON file.
func LoadFromFile(filepath string) (*Geometry, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var geom Geometry
	if err := json.Unmarshal(data, &geom); err != nil {
		return nil, fmt.Errorf("parsing section file: %w", err)
	}

	if err := geom.Validate(); err != nil {
		return nil, err
	}

	return &geom, nil
}
