package output

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/dshills/depviz/internal/config"
)

// TOMLWriter outputs the configuration as TOML. TOML has no null, so null
// entries are left out, and the encoder orders keys itself.
type TOMLWriter struct{}

func (t *TOMLWriter) Write(w io.Writer, cfg *config.Config) error {
	doc := make(map[string]any, cfg.Len())
	for _, k := range cfg.Keys() {
		v, _ := cfg.Get(k)
		if v == nil {
			continue
		}
		doc[k] = plain(v)
	}
	if err := toml.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("writing TOML: %w", err)
	}
	return nil
}
