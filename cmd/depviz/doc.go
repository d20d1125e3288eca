// Depviz resolves the configuration of a package dependency-graph visualizer.
//
// It loads a JSON config file, applies command-line overrides, validates the
// result and prints the resolved configuration, with deterministic exit codes:
// 0 on success, 1 when loading or validation fails and 2 for usage errors.
//
// Usage:
//
//	depviz --create-config                # write a default config.json
//	depviz                                # print the resolved configuration
//	depviz --config other.json --no-ascii-tree
//	depviz --format yaml                  # text, json, yaml, toml or markdown
//	depviz config set package_name react  # edit one value in the file
package main
