package config

import (
	_ "embed"
	"errors"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// requiredFields are checked for presence in this order; the first one
// missing is reported.
var requiredFields = []string{
	FieldPackageName,
	FieldRepositoryURL,
	FieldTestRepositoryMode,
	FieldOutputFilename,
	FieldASCIITreeOutput,
}

// typedFields is the order in which schema type violations are reported.
// Only the two toggles are type checked; other fields pass through as read.
var typedFields = []string{
	FieldTestRepositoryMode,
	FieldASCIITreeOutput,
}

//go:embed schema.json
var schemaJSON string

var configSchema = jsonschema.MustCompileString("config.schema.json", schemaJSON)

// Validate checks cfg and returns the first problem found as a
// *MissingFieldError or *InvalidFieldError. Unknown keys are ignored.
func Validate(cfg *Config) error {
	for _, field := range requiredFields {
		if !cfg.Has(field) {
			return &MissingFieldError{Field: field}
		}
	}

	if name, ok := cfg.String(FieldPackageName); !ok || strings.TrimSpace(name) == "" {
		return &InvalidFieldError{Field: FieldPackageName, Reason: "must be a non-empty string"}
	}

	if err := validateTypes(cfg); err != nil {
		return err
	}

	if testMode, _ := cfg.Bool(FieldTestRepositoryMode); testMode {
		if !cfg.Has(FieldTestRepositoryPath) {
			return &MissingFieldError{Field: FieldTestRepositoryPath}
		}
		return nil
	}

	if url, ok := cfg.String(FieldRepositoryURL); !ok || strings.TrimSpace(url) == "" {
		return &InvalidFieldError{Field: FieldRepositoryURL, Reason: "must be a non-empty string unless test_repository_mode is set"}
	}
	return nil
}

// validateTypes runs the embedded schema and reports the violation on the
// earliest field in typedFields order.
func validateTypes(cfg *Config) error {
	err := configSchema.Validate(cfg.Map())
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return &InvalidFieldError{Field: "config", Reason: err.Error()}
	}

	byField := make(map[string]string)
	collectLeaves(ve, byField)
	for _, field := range typedFields {
		if msg, ok := byField[field]; ok {
			return &InvalidFieldError{Field: field, Reason: msg}
		}
	}
	return &InvalidFieldError{Field: "config", Reason: ve.Message}
}

func collectLeaves(ve *jsonschema.ValidationError, byField map[string]string) {
	if len(ve.Causes) == 0 {
		field := strings.TrimPrefix(ve.InstanceLocation, "/")
		if _, seen := byField[field]; !seen {
			byField[field] = ve.Message
		}
		return
	}
	for _, cause := range ve.Causes {
		collectLeaves(cause, byField)
	}
}
