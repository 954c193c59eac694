package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/origin-shift/audio"
	"github.com/lixenwraith/origin-shift/maze"
	"github.com/lixenwraith/origin-shift/render"
	"github.com/lixenwraith/origin-shift/status"
)

var (
	pngFile   string
	pngScale  int
	wavFile   string
	showDump  bool
	showRoute bool
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a maze and print it",
		Long: `Generate a maze from the seed tree by random Origin Shift steps, check the
spanning-tree invariant and print the wall grid.

Examples:
  originshift gen
  originshift gen -r 8 -c 16 --seed 42 --dump
  originshift gen --route --png maze.png --scale 8`,
		RunE: runGen,
	}

	genCmd.Flags().StringVar(&pngFile, "png", "", "Write the wall grid as a PNG")
	genCmd.Flags().IntVar(&pngScale, "scale", 6, "PNG pixels per wall-grid cell")
	genCmd.Flags().StringVar(&wavFile, "wav", "", "Write the origin walk as a WAV")
	genCmd.Flags().BoolVar(&showDump, "dump", false, "Also print one arrow per maze cell")
	genCmd.Flags().BoolVar(&showRoute, "route", false, "Highlight the route from top-left to bottom-right")

	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(false)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync()

	src := maze.NewRandSource(cfg.ResolveSeed())
	m, err := maze.New(make([]uint32, cfg.Rows*cfg.Columns), cfg.Rows, cfg.Columns, src, 0)
	if err != nil {
		return err
	}

	steps := cfg.Iterations
	if steps < 0 {
		steps = maze.DefaultIterationCount(cfg.Rows, cfg.Columns)
	}

	metrics := status.NewRegistry()
	var score *audio.Score
	if wavFile != "" {
		score = audio.NewScore(steps)
	}

	start := time.Now()
	m.Walk(steps, func(d maze.Direction, moved bool) {
		metrics.RecordStep(moved)
		if score != nil {
			score.Record(d, moved)
		}
	})
	elapsed := time.Since(start)
	metrics.Rate(status.StepRate).Observe(int64(steps), elapsed)

	if err := m.Validate(); err != nil {
		return err
	}

	row, col := m.Origin()
	fields := []zap.Field{
		zap.Int("rows", cfg.Rows),
		zap.Int("columns", cfg.Columns),
		zap.String("iterations", humanize.Comma(int64(steps))),
		zap.Duration("elapsed", elapsed),
		zap.Int("origin_row", row),
		zap.Int("origin_col", col),
	}
	for _, sample := range metrics.Snapshot() {
		fields = append(fields, zap.Stringer(sample.Name, sample))
	}
	log.Info("maze generated", fields...)

	var route []uint32
	if showRoute {
		route = m.Route(0, uint32(m.Len()-1))
		log.Debug("route computed", zap.Int("cells", len(route)))
	}

	out := cmd.OutOrStdout()
	if showDump {
		if err := render.WriteArrows(out, m); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}
	opts := render.Options{Glyphs: render.DefaultGlyphs(), ShowArrows: cfg.Arrows, Route: route}
	if err := render.WriteWallified(out, m, opts); err != nil {
		return err
	}

	if pngFile != "" {
		if err := writePNG(pngFile, m, route); err != nil {
			return err
		}
		log.Info("png written", zap.String("file", pngFile))
	}
	if score != nil {
		if err := writeWAV(wavFile, score); err != nil {
			return err
		}
		log.Info("wav written", zap.String("file", wavFile),
			zap.Duration("length", time.Duration(score.Len())*audio.ToneDuration))
	}
	return nil
}

func writePNG(path string, m *maze.Maze, route []uint32) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create PNG file: %w", err)
	}
	if err := render.WritePNG(f, m, pngScale, route); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return f.Close()
}

func writeWAV(path string, score *audio.Score) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create WAV file: %w", err)
	}
	if err := score.WriteWAV(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
