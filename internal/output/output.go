package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dshills/depviz/internal/config"
	"github.com/dshills/depviz/internal/redact"
)

// Writer writes a configuration in a specific format.
type Writer interface {
	Write(w io.Writer, cfg *config.Config) error
}

// Formats lists the names accepted by [GetWriter].
var Formats = []string{"text", "json", "yaml", "toml", "markdown"}

// GetWriter returns a writer for the specified format.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "text", "":
		return &TextWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	case "yaml":
		return &YAMLWriter{}, nil
	case "toml":
		return &TOMLWriter{}, nil
	case "markdown":
		return &MarkdownWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (want one of %s)", format, strings.Join(Formats, ", "))
	}
}

// displayValue renders v for human-readable formats. Strings are printed
// raw with credentials masked; nested values are shown as compact JSON.
func displayValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return redact.Value(val)
	case bool:
		return strconv.FormatBool(val)
	case json.Number:
		return val.String()
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Sprintf("%v", v)
	}
	return redact.Value(strings.TrimSuffix(buf.String(), "\n"))
}

// plain converts json.Number values to int64 or float64 so encoders that
// do not know json.Number emit real numbers.
func plain(v any) any {
	switch val := v.(type) {
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return n
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, e := range val {
			out[k] = plain(e)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = plain(e)
		}
		return out
	}
	return v
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
