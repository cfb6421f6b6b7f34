package utils

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// LoadJSON reads a JSON file and unmarshals it into target.
func LoadJSON(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON from %s: %w", path, err)
	}
	return nil
}

// LoadJSONFS is LoadJSON over an fs.FS, typically an embedded one.
func LoadJSONFS(fsys fs.FS, name string, target any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", name, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON from %s: %w", name, err)
	}
	return nil
}
