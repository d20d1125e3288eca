package cli

import (
	"fmt"
	"strings"

	"github.com/dshills/depviz/internal/config"
	"github.com/dshills/depviz/internal/logger"
	"github.com/dshills/depviz/internal/output"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Args is the parsed command line of one invocation.
type Args struct {
	ConfigPath   string
	CreateConfig bool
	Format       string
	LogLevel     string

	config.Overrides
}

const rootLong = `depviz resolves the configuration of a package dependency-graph visualizer.

It reads a JSON config file, applies command-line overrides, validates the
result and prints the resolved configuration.`

const rootExample = `  depviz --create-config              # write a default config.json
  depviz --config myconfig.json        # use another config file
  depviz --package-name react          # override the package name
  depviz --ascii-tree --no-test-mode   # combine toggles`

// newRootCmd builds the root command. run receives the parsed Args once
// cobra has accepted the flags, including the mutually exclusive groups.
func newRootCmd(run func(cmd *cobra.Command, a Args) error) *cobra.Command {
	var a Args
	var packageFilter string

	cmd := &cobra.Command{
		Use:           "depviz",
		Short:         "Package dependency-graph visualizer configuration",
		Long:          rootLong,
		Example:       rootExample,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("package-filter") {
				v := packageFilter
				a.PackageFilter = &v
			}
			return run(cmd, a)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.ConfigPath, "config", config.DefaultPath, "Path to the configuration file")
	pf.StringVar(&a.LogLevel, "log-level", logger.DefaultLevel, "Diagnostic log level on stderr (debug, info, warn, error)")

	f := cmd.Flags()
	f.BoolVar(&a.CreateConfig, "create-config", false, "Write a default configuration file and exit")
	f.StringVar(&a.Format, "format", "text", fmt.Sprintf("Output format (%s)", strings.Join(output.Formats, ", ")))
	addOverrideFlags(f, &a.Overrides, &packageFilter)

	cmd.MarkFlagsMutuallyExclusive("ascii-tree", "no-ascii-tree")
	cmd.MarkFlagsMutuallyExclusive("test-mode", "no-test-mode")
	return cmd
}

func addOverrideFlags(f *pflag.FlagSet, o *config.Overrides, packageFilter *string) {
	f.StringVar(&o.PackageName, "package-name", "", "Name of the package to analyze")
	f.StringVar(&o.RepositoryURL, "repository-url", "", "URL of the package repository")
	f.StringVar(&o.OutputFilename, "output-filename", "", "File name for the rendered graph")
	f.StringVar(packageFilter, "package-filter", "", "Substring used to filter packages (pass an empty value to clear)")
	f.BoolVar(&o.ASCIITree, "ascii-tree", false, "Enable ASCII dependency tree output")
	f.BoolVar(&o.NoASCIITree, "no-ascii-tree", false, "Disable ASCII dependency tree output")
	f.BoolVar(&o.TestMode, "test-mode", false, "Read packages from a local test repository")
	f.BoolVar(&o.NoTestMode, "no-test-mode", false, "Read packages from the remote repository")
}
