package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/origin-shift/animate"
	"github.com/lixenwraith/origin-shift/audio"
	"github.com/lixenwraith/origin-shift/maze"
	"github.com/lixenwraith/origin-shift/status"
)

var (
	fps           int
	stepsPerFrame int
	sound         bool
	fromSeed      bool
)

func init() {
	animateCmd := &cobra.Command{
		Use:   "animate",
		Short: "Watch the origin reshape a maze live in the terminal",
		Long: `Run Origin Shift continuously and redraw the maze every frame.

Keys: q/Esc quit, space pause, n single step, m full mix, r reset to the seed
tree, a toggle arrows, +/- speed, arrow keys move the origin by hand.

Examples:
  originshift animate
  originshift animate -r 20 -c 40 --fps 60 --steps-per-frame 16
  originshift animate --from-seed --sound`,
		RunE: runAnimate,
	}

	animateCmd.Flags().IntVar(&fps, "fps", 30, "Frames per second")
	animateCmd.Flags().IntVar(&stepsPerFrame, "steps-per-frame", 4, "Origin Shift steps per frame")
	animateCmd.Flags().BoolVar(&sound, "sound", false, "Play a tone per step")
	animateCmd.Flags().BoolVar(&fromSeed, "from-seed", false, "Start from the unmixed seed tree")

	rootCmd.AddCommand(animateCmd)
}

func runAnimate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Animation.FPS = fps
	}
	if flags.Changed("steps-per-frame") {
		cfg.Animation.StepsPerFrame = stepsPerFrame
	}
	if flags.Changed("sound") {
		cfg.Animation.Sound = sound
	}
	if flags.Changed("from-seed") {
		cfg.Animation.FromSeed = fromSeed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// The terminal owns stdout and stderr while animating
	log, err := newLogger(true)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync()

	src := maze.NewRandSource(cfg.ResolveSeed())
	initial := cfg.Iterations
	if cfg.Animation.FromSeed {
		initial = 0
	}
	m, err := maze.New(make([]uint32, cfg.Rows*cfg.Columns), cfg.Rows, cfg.Columns, src, initial)
	if err != nil {
		return err
	}

	var player *audio.Player
	if cfg.Animation.Sound {
		player = audio.NewPlayer()
		if err := player.Initialize(); err != nil {
			// Non-fatal, the maze runs silent
			log.Warn("audio initialization failed", zap.Error(err))
			player = nil
		} else {
			defer player.Cleanup()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
	defer stop()

	metrics := status.NewRegistry()
	a := animate.New(screen, m, src, cfg, animate.Options{Metrics: metrics, Player: player, Logger: log})
	if err := a.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
