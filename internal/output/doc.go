// Package output formats a resolved configuration for display.
//
// Five formats are supported:
//   - text: "key: value" lines between delimiter lines (default)
//   - json: indented JSON in file key order
//   - yaml: YAML mapping in file key order
//   - toml: TOML document (encoder key order, null entries dropped)
//   - markdown: two-column table
//
// Use [GetWriter] to obtain a [Writer] for a format string. Human-readable
// formats mask credentials via the redact package; json, yaml and toml emit
// values unchanged. [WriteSummary] prints the closing summary block.
package output
