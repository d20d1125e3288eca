package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
)

// Load reads the JSON object at path. An empty path means [DefaultPath].
// The result is returned verbatim; use [Validate] to check it.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, &LoadError{Path: path, Err: err}
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return cfg, nil
}
