package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dshills/depviz/internal/config"
)

// JSONWriter outputs the configuration as indented JSON in key order.
type JSONWriter struct{}

func (j *JSONWriter) Write(w io.Writer, cfg *config.Config) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	return nil
}
