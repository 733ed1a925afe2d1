package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"moduled/internal/config"
	"moduled/pkg/types"
)

// options are the flags shared by every subcommand.
type options struct {
	configPath    string
	addr          string
	initialModule string
	logLevel      string
	logFormat     string
	corsEnabled   bool
	corsOrigins   []string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "moduled",
		Short:         "Serve an engine whose current module can be switched over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "Config file (.yaml, .json, .toml); defaults to ./moduled.yaml or ~/.config/moduled/config.yaml")
	pf.StringVar(&opts.logLevel, "log-level", "", "Log level: debug|info|warn|error")
	pf.StringVar(&opts.logFormat, "log-format", "", "Log format: console|json")

	serve := &cobra.Command{
		Use:     "serve",
		Short:   "Run the HTTP server (default)",
		Example: "  moduled serve --addr :8080 --initial-module another",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}
	for _, c := range []*cobra.Command{root, serve} {
		c.Flags().StringVar(&opts.addr, "addr", "", "HTTP listen address, e.g. :8080")
		c.Flags().StringVar(&opts.initialModule, "initial-module", "", "Module the engine starts with (one|another|forty_two)")
		c.Flags().BoolVar(&opts.corsEnabled, "cors-enabled", false, "Enable CORS")
		c.Flags().StringSliceVar(&opts.corsOrigins, "cors-origins", nil, "Allowed CORS origins (comma separated)")
	}

	modules := &cobra.Command{
		Use:   "modules",
		Short: "List module identifiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printModules(cmd.OutOrStdout())
		},
	}

	root.AddCommand(serve, modules)
	return root
}

// resolveConfig merges file, environment and flag values, in that order.
func resolveConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	cfg, err := config.Resolve(opts.configPath, config.DefaultPaths...)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("addr") {
		cfg.Addr = opts.addr
	}
	if flags.Changed("initial-module") {
		id, err := types.ParseModuleID(opts.initialModule)
		if err != nil {
			return cfg, fmt.Errorf("--initial-module: %w", err)
		}
		cfg.InitialModule = id
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = opts.logFormat
	}
	if flags.Changed("cors-enabled") {
		cfg.CORSEnabled = opts.corsEnabled
	}
	if flags.Changed("cors-origins") {
		cfg.CORSOrigins = opts.corsOrigins
	}
	return cfg, nil
}

// newLogger builds the process logger from the configured level and format.
func newLogger(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level: %w", err)
	}
	switch strings.ToLower(format) {
	case "json":
	case "console", "":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05", NoColor: w != os.Stderr}
	default:
		return zerolog.Nop(), fmt.Errorf("unsupported log format: %s", format)
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

func printModules(w io.Writer) error {
	for _, id := range types.ModuleIDs() {
		if _, err := fmt.Fprintf(w, "%-10s %d\n", id, int(id)); err != nil {
			return err
		}
	}
	return nil
}
