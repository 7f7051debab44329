package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roadmapkit/trail"
	"github.com/roadmapkit/trail/internal/config"
	"github.com/roadmapkit/trail/internal/logging"
	"github.com/roadmapkit/trail/internal/roadmap"
)

// app is the state shared by all commands.
type app struct {
	// Global flags
	cfgFile   string
	verbose   bool
	smoothing float64
	precision int

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "trail",
		Short: "Smooth curves through waypoints and draw roadmap trails",
		Long: `trail connects waypoints with a smooth curve of cubic Béziers and prints
it as SVG path data. It also renders roadmap documents, a list of milestones
positioned on a map, as standalone SVG images and serves both over HTTP.

Waypoints are written as "x,y|x,y|...".`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default: trail.yaml in . or ./configs)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.Float64Var(&a.smoothing, "smoothing", trail.DefaultSmoothing, "smoothing factor in [0, 1]")
	pf.IntVar(&a.precision, "precision", 0, "maximum fraction digits of coordinates (0 for shortest exact)")

	root.AddCommand(
		a.newPathCmd(),
		a.newSegmentsCmd(),
		a.newRenderCmd(),
		a.newServeCmd(),
	)
	return root
}

// setup loads the configuration, applies flag overrides and builds the
// logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("smoothing") {
		cfg.Smoothing = a.smoothing
	}
	if flags.Changed("precision") {
		cfg.SVG.Precision = a.precision
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	a.logger = logger
	a.logger.Debug("configuration loaded",
		zap.String("config", a.cfgFile),
		zap.Float64("smoothing", cfg.Smoothing),
		zap.Int("precision", cfg.SVG.Precision))
	return nil
}

// loadRoadmap reads a roadmap from path, or from stdin if path is "-".
func loadRoadmap(cmd *cobra.Command, path string) (*roadmap.Roadmap, error) {
	if path == "-" {
		return roadmap.Load(cmd.InOrStdin())
	}
	return roadmap.LoadFile(path)
}

func writeLines(w io.Writer, lines ...string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

// createOutput opens path for writing, or returns stdout for "" and "-".
func createOutput(cmd *cobra.Command, path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{cmd.OutOrStdout()}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
