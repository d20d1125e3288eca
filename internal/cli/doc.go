// Package cli wires together the Cobra command tree for the depviz binary.
//
// The root command parses the override flags, loads and merges the config
// file, validates the result and prints it. Subcommands manage the config
// file (config init, config set) and print the version. Run returns the
// process exit code: 0 on success, 1 when the pipeline fails and 2 for usage
// errors such as mutually exclusive flags.
package cli
