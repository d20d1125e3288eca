package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/dshills/depviz/internal/config"
	"github.com/dshills/depviz/internal/logger"
	"github.com/dshills/depviz/internal/output"
	"github.com/spf13/cobra"
)

// app carries the output streams and the exit code chosen by the pipeline.
type app struct {
	stdout   io.Writer
	stderr   io.Writer
	log      *logger.Logger
	exitCode int
}

// newApp returns an app that discards diagnostics until setup runs.
func newApp(stdout, stderr io.Writer) *app {
	return &app{stdout: stdout, stderr: stderr, log: logger.Nop(), exitCode: ExitSuccess}
}

// setup replaces the discard logger with one at the requested level.
// Errors here are usage errors.
func (a *app) setup(level string) error {
	log, err := logger.New(a.stderr, level)
	if err != nil {
		return err
	}
	a.log = log
	return nil
}

// run is the root command: create-config, or load, merge, validate, present.
func (a *app) run(cmd *cobra.Command, args Args) error {
	if err := a.setup(args.LogLevel); err != nil {
		return err
	}
	if args.ConfigPath == "" {
		args.ConfigPath = config.DefaultPath
	}
	if args.CreateConfig {
		a.createConfig(args.ConfigPath)
		return nil
	}

	writer, err := output.GetWriter(args.Format)
	if err != nil {
		return err
	}

	cfg, err := a.resolve(args)
	if err != nil {
		a.fail(err, args.ConfigPath)
		return nil
	}

	if err := writer.Write(a.stdout, cfg); err != nil {
		a.fail(fmt.Errorf("writing output: %w", err), args.ConfigPath)
		return nil
	}
	if err := output.WriteSummary(a.stdout, cfg); err != nil {
		a.fail(fmt.Errorf("writing summary: %w", err), args.ConfigPath)
	}
	return nil
}

func (a *app) createConfig(path string) {
	a.log.Debug().Str("path", path).Msg("writing default config")
	if err := config.WriteDefaults(path); err != nil {
		a.fail(err, path)
		return
	}
	fmt.Fprintf(a.stdout, "Default configuration written to %s\n", path)
}

// resolve runs load, merge and validate, stopping at the first failure.
func (a *app) resolve(args Args) (*config.Config, error) {
	log := a.log.WithField("path", args.ConfigPath)

	fileCfg, err := config.Load(args.ConfigPath)
	if err != nil {
		return nil, err
	}
	log.Debug().Strs("keys", fileCfg.Keys()).Msg("config file loaded")

	merged, err := config.Merge(fileCfg, args.Overrides)
	if err != nil {
		return nil, err
	}
	log.Debug().Strs("keys", merged.Keys()).Msg("command-line overrides applied")

	if err := config.Validate(merged); err != nil {
		return nil, err
	}
	log.Debug().Msg("config validated")
	return merged, nil
}

// fail prints a one-line diagnostic for err and sets the failure exit code.
func (a *app) fail(err error, path string) {
	a.exitCode = ExitFailure
	a.log.Debug().Err(err).Msg("run failed")

	var notFound *config.NotFoundError
	var parseErr *config.ParseError
	switch {
	case errors.As(err, &notFound):
		fmt.Fprintf(a.stderr, "%s Error: config file %q not found.\n", output.FailureMark(), notFound.Path)
		fmt.Fprintln(a.stderr, output.Hint("  Create one with: "+createConfigHint(path)))
	case errors.As(err, &parseErr):
		fmt.Fprintf(a.stderr, "%s Error: malformed config file %q: %v\n", output.FailureMark(), parseErr.Path, parseErr.Err)
	case config.IsValidation(err):
		fmt.Fprintf(a.stderr, "%s Invalid configuration: %v\n", output.FailureMark(), err)
	default:
		fmt.Fprintf(a.stderr, "%s Unexpected error: %v\n", output.FailureMark(), err)
	}
}

func createConfigHint(path string) string {
	if path == "" || path == config.DefaultPath {
		return "depviz --create-config"
	}
	return fmt.Sprintf("depviz --config %s --create-config", path)
}
