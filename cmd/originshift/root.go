package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/origin-shift/config"
)

var (
	configFile string
	verbose    bool
	logFile    string

	rows       int
	columns    int
	seed       uint64
	iterations int
	arrows     bool
)

var rootCmd = &cobra.Command{
	Use:   "originshift",
	Short: "Generate and animate perfect mazes with the Origin Shift algorithm",
	Long: `Origin Shift keeps a maze as a spanning tree rooted at a wandering origin.
Every step moves the origin to a random neighbor and re-roots the tree, so the
maze is a perfect maze at every moment.

Examples:
  originshift gen --rows 10 --cols 20 --seed 7
  originshift gen --png maze.png --wav walk.wav
  originshift animate --rows 15 --cols 30 --fps 20`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configFile, "config", "f", "", "YAML config file")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Debug logging")
	pf.StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")

	pf.IntVarP(&rows, "rows", "r", config.DefaultRows, "Maze rows (>= 2)")
	pf.IntVarP(&columns, "cols", "c", config.DefaultColumns, "Maze columns (>= 2)")
	pf.Uint64VarP(&seed, "seed", "s", 0, "Random seed (0 = time based)")
	pf.IntVarP(&iterations, "iterations", "i", -1, "Origin Shift steps (-1 = rows*cols*20)")
	pf.BoolVarP(&arrows, "arrows", "a", false, "Draw link directions on path cells")
}

// loadConfig merges the config file with flags set on the command line
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if configFile != "" {
		var err error
		if cfg, err = config.Read(configFile); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("rows") {
		cfg.Rows = rows
	}
	if flags.Changed("cols") {
		cfg.Columns = columns
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("iterations") {
		cfg.Iterations = iterations
	}
	if flags.Changed("arrows") {
		cfg.Arrows = arrows
	}
	return cfg, cfg.Validate()
}

// newLogger builds the CLI logger; quiet discards output unless a log file was given
func newLogger(quiet bool) (*zap.Logger, error) {
	if quiet && logFile == "" {
		return zap.NewNop(), nil
	}

	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if logFile != "" {
		zc.OutputPaths = []string{logFile}
		zc.ErrorOutputPaths = []string{logFile}
	}
	return zc.Build()
}
