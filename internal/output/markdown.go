package output

import (
	"io"
	"strings"

	"github.com/dshills/depviz/internal/config"
)

// MarkdownWriter outputs the configuration as a two-column markdown table.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, cfg *config.Config) error {
	ew := &errWriter{w: w}

	ew.println("## depviz configuration")
	ew.println("")
	ew.println("| Key | Value |")
	ew.println("|-----|-------|")
	for _, k := range cfg.Keys() {
		v, _ := cfg.Get(k)
		ew.printf("| `%s` | %s |\n", k, mdEscape(displayValue(v)))
	}
	return ew.err
}

func mdEscape(s string) string {
	if s == "" {
		return "*(empty)*"
	}
	return strings.ReplaceAll(s, "|", `\|`)
}
