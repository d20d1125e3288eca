// Package config loads, merges and validates the depviz configuration.
//
// A config file is a JSON object whose key order is preserved by [Config].
// The pipeline is:
//  1. [Load] reads the file (default config.json)
//  2. [Merge] overlays command-line [Overrides] on a copy
//  3. [Validate] checks required fields, fail-fast, in a fixed order
//
// [WriteDefaults] writes a starter file for first-time setup.
package config
