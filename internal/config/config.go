package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Field names understood by depviz. Any other key in a config file is kept
// as-is and passed through untouched.
const (
	FieldPackageName        = "package_name"
	FieldRepositoryURL      = "repository_url"
	FieldTestRepositoryMode = "test_repository_mode"
	FieldTestRepositoryPath = "test_repository_path"
	FieldOutputFilename     = "output_filename"
	FieldASCIITreeOutput    = "ascii_tree_output"
	FieldPackageFilter      = "package_filter"
)

// DefaultPath is the config file used when --config is not given.
const DefaultPath = "config.json"

// Config is an insertion-ordered mapping of config keys to JSON values.
// Keys keep the order in which they first appeared in the source file;
// keys added later are appended.
type Config struct {
	keys   []string
	values map[string]any
}

// New returns an empty Config.
func New() *Config {
	return &Config{values: make(map[string]any)}
}

// Get returns the value stored under key.
func (c *Config) Get(key string) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Has reports whether key is present.
func (c *Config) Has(key string) bool {
	_, ok := c.values[key]
	return ok
}

// Set stores v under key. Existing keys keep their position.
func (c *Config) Set(key string, v any) {
	if c.values == nil {
		c.values = make(map[string]any)
	}
	if _, ok := c.values[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.values[key] = v
}

// Keys returns the keys in iteration order.
func (c *Config) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Len returns the number of entries.
func (c *Config) Len() int {
	return len(c.keys)
}

// String returns the value under key if it is a string.
func (c *Config) String(key string) (string, bool) {
	s, ok := c.values[key].(string)
	return s, ok
}

// Bool returns the value under key if it is a bool.
func (c *Config) Bool(key string) (bool, bool) {
	b, ok := c.values[key].(bool)
	return b, ok
}

// Map returns an unordered copy of the entries.
func (c *Config) Map() map[string]any {
	m := make(map[string]any, len(c.values))
	for k, v := range c.values {
		m[k] = v
	}
	return m
}

// Clone returns a shallow copy. Nested objects and arrays are shared.
func (c *Config) Clone() *Config {
	return &Config{
		keys:   c.Keys(),
		values: c.Map(),
	}
}

// MarshalJSON encodes the entries as a JSON object in iteration order.
func (c *Config) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range c.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := encodeValue(k)
		if err != nil {
			return nil, err
		}
		vb, err := encodeValue(c.values[k])
		if err != nil {
			return nil, fmt.Errorf("encoding %q: %w", k, err)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func encodeValue(v any) ([]byte, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(b.Bytes(), []byte("\n")), nil
}

// UnmarshalJSON decodes a JSON object, recording key order. Numbers are
// kept as json.Number so they round-trip exactly.
func (c *Config) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("top-level value must be a JSON object")
	}

	fresh := New()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v", tok)
		}
		var v any
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("decoding %q: %w", key, err)
		}
		fresh.Set(key, v)
	}
	// closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after top-level object")
	}

	*c = *fresh
	return nil
}
