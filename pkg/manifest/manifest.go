// Package manifest reads and rewrites the package.json of a generated
// project, merging the operator's answers over whatever the boilerplate
// shipped.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
)

// Fields are the manifest entries collected from the operator. They win
// on key collision; every other pre-existing manifest key is preserved.
type Fields struct {
	Name        string
	Description string
	Version     string
	Author      string
	License     string
	Main        string
}

type Manifest map[string]interface{}

func Load(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	return m, nil
}

func (m Manifest) Merge(f Fields) {
	m["name"] = f.Name
	m["description"] = f.Description
	m["version"] = f.Version
	m["author"] = f.Author
	m["license"] = f.License
	m["main"] = f.Main
}

func (m Manifest) Save(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	return nil
}
