package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := New()
	cfg.Set(FieldPackageName, "react")
	cfg.Set(FieldRepositoryURL, "https://registry.example.org")
	cfg.Set(FieldTestRepositoryMode, false)
	cfg.Set(FieldOutputFilename, "graph.png")
	cfg.Set(FieldASCIITreeOutput, true)
	return cfg
}

func without(cfg *Config, drop ...string) *Config {
	out := New()
	skip := make(map[string]bool, len(drop))
	for _, d := range drop {
		skip[d] = true
	}
	for _, k := range cfg.Keys() {
		if !skip[k] {
			v, _ := cfg.Get(k)
			out.Set(k, v)
		}
	}
	return out
}

func requireMissing(t *testing.T, err error, field string) {
	t.Helper()
	var mf *MissingFieldError
	require.ErrorAs(t, err, &mf)
	assert.Equal(t, field, mf.Field)
	assert.True(t, IsValidation(err))
}

func requireInvalid(t *testing.T, err error, field string) {
	t.Helper()
	var inv *InvalidFieldError
	require.ErrorAs(t, err, &inv)
	assert.Equal(t, field, inv.Field)
	assert.True(t, IsValidation(err))
}

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, Validate(validConfig()))
}

func TestValidate_UnknownKeysIgnored(t *testing.T) {
	cfg := validConfig()
	cfg.Set("theme", map[string]any{"dark": true})
	assert.NoError(t, Validate(cfg))
}

func TestValidate_MissingEachRequiredField(t *testing.T) {
	for _, field := range requiredFields {
		t.Run(field, func(t *testing.T) {
			err := Validate(without(validConfig(), field))
			requireMissing(t, err, field)
		})
	}
}

func TestValidate_MissingFieldOrder(t *testing.T) {
	err := Validate(without(validConfig(), FieldPackageName, FieldOutputFilename))
	requireMissing(t, err, FieldPackageName)

	err = Validate(without(validConfig(), FieldOutputFilename, FieldRepositoryURL))
	requireMissing(t, err, FieldRepositoryURL)
}

func TestValidate_PackageName(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"empty", ""},
		{"whitespace", "  \t"},
		{"number", json.Number("3")},
		{"bool", true},
		{"null", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Set(FieldPackageName, tt.value)
			requireInvalid(t, Validate(cfg), FieldPackageName)
		})
	}
}

func TestValidate_RepositoryURL(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"null", nil},
		{"number", json.Number("1")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Set(FieldRepositoryURL, tt.value)
			requireInvalid(t, Validate(cfg), FieldRepositoryURL)
		})
	}
}

func TestValidate_TestModeRequiresPath(t *testing.T) {
	cfg := validConfig()
	cfg.Set(FieldTestRepositoryMode, true)
	requireMissing(t, Validate(cfg), FieldTestRepositoryPath)

	cfg.Set(FieldTestRepositoryPath, "./fixtures/repo")
	assert.NoError(t, Validate(cfg))
}

func TestValidate_TestModeSkipsURLCheck(t *testing.T) {
	cfg := validConfig()
	cfg.Set(FieldTestRepositoryMode, true)
	cfg.Set(FieldTestRepositoryPath, "./repo")
	cfg.Set(FieldRepositoryURL, "")

	assert.NoError(t, Validate(cfg))
}

func TestValidate_TestModeOffIgnoresPath(t *testing.T) {
	cfg := validConfig()
	cfg.Set(FieldTestRepositoryMode, false)

	assert.NoError(t, Validate(cfg))
}

func TestValidate_Types(t *testing.T) {
	tests := []struct {
		field string
		value any
	}{
		{FieldTestRepositoryMode, "yes"},
		{FieldTestRepositoryMode, nil},
		{FieldASCIITreeOutput, json.Number("1")},
		{FieldASCIITreeOutput, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			cfg := validConfig()
			cfg.Set(tt.field, tt.value)
			requireInvalid(t, Validate(cfg), tt.field)
		})
	}
}

func TestValidate_TypeErrorOrder(t *testing.T) {
	cfg := validConfig()
	cfg.Set(FieldASCIITreeOutput, json.Number("1"))
	cfg.Set(FieldTestRepositoryMode, "true")

	requireInvalid(t, Validate(cfg), FieldTestRepositoryMode)
}

func TestValidate_PackageNameBeforeTypes(t *testing.T) {
	cfg := validConfig()
	cfg.Set(FieldPackageName, "")
	cfg.Set(FieldASCIITreeOutput, "on")

	requireInvalid(t, Validate(cfg), FieldPackageName)
}

func TestValidate_UntypedFieldsPassThrough(t *testing.T) {
	tests := []struct {
		field string
		value any
	}{
		{FieldPackageFilter, nil},
		{FieldPackageFilter, json.Number("3")},
		{FieldTestRepositoryPath, nil},
		{FieldOutputFilename, json.Number("7")},
		{FieldOutputFilename, nil},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			cfg := validConfig()
			cfg.Set(tt.field, tt.value)
			assert.NoError(t, Validate(cfg))
		})
	}
}

func TestValidate_NullPathSatisfiesTestMode(t *testing.T) {
	cfg := validConfig()
	cfg.Set(FieldTestRepositoryMode, true)
	cfg.Set(FieldTestRepositoryPath, nil)

	assert.NoError(t, Validate(cfg))
}

func TestValidate_RepositoryURLReportedOverOddOutputFilename(t *testing.T) {
	cfg := New()
	require.NoError(t, json.Unmarshal([]byte(`{
		"package_name": "a",
		"repository_url": "",
		"test_repository_mode": false,
		"output_filename": 7,
		"ascii_tree_output": true
	}`), cfg))

	requireInvalid(t, Validate(cfg), FieldRepositoryURL)
}

func TestValidate_ParsedFileWithNullFilter(t *testing.T) {
	cfg := New()
	require.NoError(t, json.Unmarshal([]byte(`{
		"package_name": "a",
		"repository_url": "https://registry.example.org",
		"test_repository_mode": false,
		"output_filename": "g.png",
		"ascii_tree_output": false,
		"package_filter": null,
		"test_repository_path": null
	}`), cfg))

	assert.NoError(t, Validate(cfg))
}
