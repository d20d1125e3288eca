package output

import (
	"fmt"
	"io"

	"github.com/dshills/depviz/internal/config"
	"gopkg.in/yaml.v3"
)

// YAMLWriter outputs the configuration as a YAML mapping in key order.
type YAMLWriter struct{}

func (y *YAMLWriter) Write(w io.Writer, cfg *config.Config) error {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range cfg.Keys() {
		v, _ := cfg.Get(k)
		var val yaml.Node
		if err := val.Encode(plain(v)); err != nil {
			return fmt.Errorf("encoding %q: %w", k, err)
		}
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&val,
		)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("writing YAML: %w", err)
	}
	return enc.Close()
}
