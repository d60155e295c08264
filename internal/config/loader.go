package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// LoadRoster reads the ship definitions from path. An empty path yields the default
// roster. The file is decoded over the defaults, so keys it leaves out keep their default
// values while an explicit zero is kept as written.
func LoadRoster(path string) (*RosterConfig, error) {
	rc := DefaultRoster()
	if path != "" {
		if err := loadYAML(path, rc); err != nil {
			return nil, fmt.Errorf("load roster %s: %w", path, err)
		}
	}
	if err := NewValidator().Validate(rc); err != nil {
		return nil, fmt.Errorf("invalid roster: %w", err)
	}
	return rc, nil
}
