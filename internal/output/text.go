package output

import (
	"io"
	"strings"

	"github.com/dshills/depviz/internal/config"
)

const textHeader = "=== Configuration ==="

// TextWriter outputs one "key: value" line per entry between fixed
// delimiter lines.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, cfg *config.Config) error {
	_, err := io.WriteString(w, Format(cfg))
	return err
}

// Format renders cfg as the text report. Entries appear in cfg's key order.
func Format(cfg *config.Config) string {
	var b strings.Builder
	b.WriteString(textHeader)
	b.WriteByte('\n')
	for _, k := range cfg.Keys() {
		v, _ := cfg.Get(k)
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(displayValue(v))
		b.WriteByte('\n')
	}
	b.WriteString(strings.Repeat("=", len(textHeader)))
	b.WriteByte('\n')
	return b.String()
}
