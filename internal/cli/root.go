// Package cli implements the quadrant command line.
package cli

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/borkshop/quadrant/internal/config"
	"github.com/borkshop/quadrant/internal/logger"
)

// Execute runs the command line against os.Args, exiting non-zero on failure.
func Execute() {
	cmd := newRootCmd(&app{})
	cmd.SetArgs(positionalNegatives(cmd, os.Args[1:]))
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app is the state shared by every command: flag values, the loaded config,
// and the logger.
type app struct {
	configPath string
	debug      bool
	precision  int
	format     string

	cfg config.Config
	log *zap.Logger
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quadrant",
		Short: "Classify points of the plane by quadrant",
		Long: `quadrant computes distances from the origin, translations, and quadrant
classifications of 2D points, singly or in batches read from YAML files.

Negative coordinates may be given directly:

  quadrant classify -1 2`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "config file (default ./"+config.DefaultPath+" if present)")
	pf.BoolVar(&a.debug, "debug", false, "enable debug logging")
	pf.IntVarP(&a.precision, "precision", "p", config.ShortestPrecision, "decimal places in printed numbers; -1 for shortest")

	cmd.AddCommand(
		classifyCmd(a),
		distanceCmd(a),
		translateCmd(a),
		describeCmd(a),
		batchCmd(a),
		plotCmd(a),
		versionCmd(),
	)
	return cmd
}

// setup loads the config, overlays explicitly set flags, and builds the
// logger unless one was provided.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.Debug = a.debug
	}
	if flags.Changed("precision") {
		cfg.Precision = a.precision
	}
	if flags.Lookup("format") != nil && flags.Changed("format") {
		cfg.Format = a.format
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if a.log == nil {
		l, err := logger.New(logger.Config{Debug: cfg.Debug, Output: cfg.LogFile})
		if err != nil {
			return errors.WithMessage(err, "quadrant")
		}
		a.log = l
	}
	a.log.Debug("config.loaded",
		zap.String("path", a.configPath),
		zap.Int("precision", cfg.Precision),
		zap.String("format", cfg.Format),
	)
	return nil
}
