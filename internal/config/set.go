package config

import (
	"fmt"
	"strconv"
)

// SetField sets a single known field from its string form. Boolean fields
// accept anything strconv.ParseBool does. Returns an error for unknown keys.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case FieldPackageName, FieldRepositoryURL, FieldTestRepositoryPath,
		FieldOutputFilename, FieldPackageFilter:
		cfg.Set(key, value)
	case FieldTestRepositoryMode, FieldASCIITreeOutput:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s must be a boolean: %w", key, err)
		}
		cfg.Set(key, b)
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
