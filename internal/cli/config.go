package cli

import (
	"fmt"

	"github.com/dshills/depviz/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the depviz configuration file",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default configuration file (same as --create-config)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, level, err := persistentOptions(cmd)
			if err != nil {
				return err
			}
			if err := a.setup(level); err != nil {
				return err
			}
			a.createConfig(path)
			return nil
		},
	}

	setCmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a single configuration value in the configuration file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, level, err := persistentOptions(cmd)
			if err != nil {
				return err
			}
			if err := a.setup(level); err != nil {
				return err
			}

			cfg, err := config.Load(path)
			if err != nil {
				a.fail(err, path)
				return nil
			}
			if err := config.SetField(cfg, args[0], args[1]); err != nil {
				return err
			}
			if err := config.Save(cfg, path); err != nil {
				a.fail(err, path)
				return nil
			}
			a.log.Debug().Str("path", path).Str("key", args[0]).Msg("config value updated")
			fmt.Fprintf(a.stdout, "Set %s = %s\n", args[0], args[1])
			return nil
		},
	}

	configCmd.AddCommand(initCmd, setCmd)
	return configCmd
}

// persistentOptions reads the root-level --config and --log-level flags
// from a subcommand.
func persistentOptions(cmd *cobra.Command) (path, level string, err error) {
	if path, err = cmd.Flags().GetString("config"); err != nil {
		return "", "", err
	}
	if level, err = cmd.Flags().GetString("log-level"); err != nil {
		return "", "", err
	}
	if path == "" {
		path = config.DefaultPath
	}
	return path, level, nil
}
