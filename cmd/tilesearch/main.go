// Command tilesearch solves sliding-tile puzzles with the tilestar A* engine.
//
//	tilesearch solve board.txt            solve a board file
//	tilesearch solve --sample 1           solve a built-in 5x5 sample
//	tilesearch bench --samples 0,1        compare every open/closed set pair
//	tilesearch samples                    list the built-in samples
//
// A YAML file given with --config selects the solver implementation, limits,
// logging and the Prometheus text file export.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// app carries the state shared by every subcommand.
type app struct {
	cfgPath   string
	logLevel  string
	logFormat string

	cfg Config
	log *slog.Logger
}

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "tilesearch",
		Short:         "Solve sliding-tile puzzles with A*",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log.level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "override log.format (text, json)")

	root.AddCommand(newSolveCmd(a), newBenchCmd(a), newSamplesCmd())

	return root
}

// setup loads the configuration, applies the logging overrides and builds the
// logger. Every record carries the run_id of this invocation.
func (a *app) setup(w io.Writer) error {
	cfg, err := LoadConfig(a.cfgPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	log, err := newLogger(cfg.Log, w)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log.With("run_id", uuid.NewString())
	a.log.Debug("configuration loaded", "path", a.cfgPath,
		"open_set", cfg.Search.OpenSet, "closed_set", cfg.Search.ClosedSet)

	return nil
}

func newLogger(c LogConfig, w io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(c.Format) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("%w: log format %q", ErrBadConfig, c.Format)
	}
}
