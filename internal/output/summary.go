package output

import (
	"io"

	"github.com/dshills/depviz/internal/config"
)

// WriteSummary writes the short block printed after a successful run:
// package name, output destination and whether the ASCII tree is enabled.
func WriteSummary(w io.Writer, cfg *config.Config) error {
	ew := &errWriter{w: w}

	name, _ := cfg.Get(config.FieldPackageName)
	out, _ := cfg.Get(config.FieldOutputFilename)

	ew.println("")
	ew.printf("%s Configuration loaded and validated\n", SuccessMark())
	ew.printf("  Ready to analyze dependencies of package: %s\n", displayValue(name))
	ew.printf("  Graph will be saved to: %s\n", displayValue(out))
	if ascii, _ := cfg.Bool(config.FieldASCIITreeOutput); ascii {
		ew.println("  ASCII dependency tree output is enabled")
	}
	return ew.err
}
