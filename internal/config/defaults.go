package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type entry struct {
	key   string
	value any
}

var defaultEntries = [...]entry{
	{FieldPackageName, "example-package"},
	{FieldRepositoryURL, "https://github.com/example/repo"},
	{FieldTestRepositoryMode, false},
	{FieldTestRepositoryPath, "./test-repo"},
	{FieldOutputFilename, "dependency_graph.png"},
	{FieldASCIITreeOutput, true},
	{FieldPackageFilter, ""},
}

// Defaults returns a fresh copy of the starter configuration written by
// --create-config.
func Defaults() *Config {
	cfg := New()
	for _, e := range defaultEntries {
		cfg.Set(e.key, e.value)
	}
	return cfg
}

// WriteDefaults writes [Defaults] to path as indented JSON, replacing any
// existing file.
func WriteDefaults(path string) error {
	if path == "" {
		path = DefaultPath
	}
	return Save(Defaults(), path)
}

// Save writes cfg to path as indented JSON.
func Save(cfg *Config, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
