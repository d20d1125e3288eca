package config

import (
	"fmt"

	"dario.cat/mergo"
)

// Overrides holds the values supplied on the command line. Empty strings
// mean "not given" for the plain string overrides; PackageFilter uses a
// pointer so an explicitly empty filter can be told apart from no flag.
type Overrides struct {
	PackageName    string
	RepositoryURL  string
	OutputFilename string
	PackageFilter  *string

	ASCIITree   bool
	NoASCIITree bool
	TestMode    bool
	NoTestMode  bool
}

// patch returns the entries o contributes, in application order.
func (o Overrides) patch() []entry {
	var p []entry
	if o.PackageName != "" {
		p = append(p, entry{FieldPackageName, o.PackageName})
	}
	if o.RepositoryURL != "" {
		p = append(p, entry{FieldRepositoryURL, o.RepositoryURL})
	}
	if o.OutputFilename != "" {
		p = append(p, entry{FieldOutputFilename, o.OutputFilename})
	}
	if o.PackageFilter != nil {
		p = append(p, entry{FieldPackageFilter, *o.PackageFilter})
	}
	p = appendToggle(p, FieldASCIITreeOutput, o.ASCIITree, o.NoASCIITree)
	p = appendToggle(p, FieldTestRepositoryMode, o.TestMode, o.NoTestMode)
	return p
}

// appendToggle records on/off for a flag pair. When both are set the off
// flag wins, matching the order the flags are applied in.
func appendToggle(p []entry, field string, on, off bool) []entry {
	switch {
	case off:
		return append(p, entry{field, false})
	case on:
		return append(p, entry{field, true})
	}
	return p
}

// Merge overlays o onto a copy of base. base is not modified. Fields
// without an override pass through unchanged, and fields missing from base
// are appended in the order they are applied.
func Merge(base *Config, o Overrides) (*Config, error) {
	merged := base.Clone()
	patch := o.patch()
	if len(patch) == 0 {
		return merged, nil
	}

	src := make(map[string]any, len(patch))
	for _, e := range patch {
		src[e.key] = e.value
	}
	if err := mergo.Merge(&merged.values, src, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("merging overrides: %w", err)
	}

	seen := make(map[string]bool, len(merged.keys))
	for _, k := range merged.keys {
		seen[k] = true
	}
	for _, e := range patch {
		if !seen[e.key] {
			merged.keys = append(merged.keys, e.key)
			seen[e.key] = true
		}
	}
	return merged, nil
}
