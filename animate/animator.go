// Package animate runs a live Origin Shift maze in a terminal.
//
// Mutation and drawing happen on the goroutine calling Run; input is polled
// on a second goroutine and handed over through a channel, so the maze is
// never read while a step is in flight.
package animate

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/origin-shift/audio"
	"github.com/lixenwraith/origin-shift/config"
	"github.com/lixenwraith/origin-shift/maze"
	"github.com/lixenwraith/origin-shift/render"
	"github.com/lixenwraith/origin-shift/status"
)

// MaxStepsPerFrame caps the speed adjustable from the keyboard
const MaxStepsPerFrame = 1024

// Animator owns a maze, a screen and the frame loop
type Animator struct {
	screen  tcell.Screen
	maze    *maze.Maze
	src     maze.Source
	painter *render.ScreenPainter
	metrics *status.Registry
	player  *audio.Player
	log     *zap.Logger

	interval      time.Duration
	stepsPerFrame int
	paused        bool
	showArrows    bool

	// Cached metric pointers
	steps  *atomic.Int64
	moves  *atomic.Int64
	noops  *atomic.Int64
	resets *atomic.Int64
	frames *atomic.Int64
	rate   *status.Rate

	lastFrame time.Time
}

// Options wires optional collaborators; nil fields are replaced with no-op defaults
type Options struct {
	Metrics *status.Registry
	Player  *audio.Player
	Logger  *zap.Logger
}

// New creates an Animator; src must be the Source the maze draws from
func New(screen tcell.Screen, m *maze.Maze, src maze.Source, cfg config.Config, opts Options) *Animator {
	if opts.Metrics == nil {
		opts.Metrics = status.NewRegistry()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	a := &Animator{
		screen:        screen,
		maze:          m,
		src:           src,
		painter:       render.NewScreenPainter(screen, render.DefaultStyles(), cfg.Arrows),
		metrics:       opts.Metrics,
		player:        opts.Player,
		log:           opts.Logger,
		interval:      cfg.FrameInterval(),
		stepsPerFrame: cfg.Animation.StepsPerFrame,
		showArrows:    cfg.Arrows,
	}

	a.steps = a.metrics.Counter(status.Steps)
	a.moves = a.metrics.Counter(status.Moves)
	a.noops = a.metrics.Counter(status.NoOps)
	a.resets = a.metrics.Counter(status.Resets)
	a.frames = a.metrics.Counter(status.Frames)
	a.rate = a.metrics.Rate(status.StepRate)
	return a
}

// Run animates until the user quits or ctx is done
// The caller owns the screen: it must be initialized before and finalized after Run
func (a *Animator) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	rows, cols := a.maze.WallGridSize()
	a.log.Info("animation started",
		zap.Int("rows", a.maze.Rows()),
		zap.Int("columns", a.maze.Columns()),
		zap.Int("wall_rows", rows),
		zap.Int("wall_columns", cols),
		zap.Duration("frame_interval", a.interval),
		zap.Int("steps_per_frame", a.stepsPerFrame))

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	a.lastFrame = time.Now()
	a.Draw()

	for {
		select {
		case <-ctx.Done():
			a.log.Info("animation cancelled", zap.Stringer("metrics", a.metrics))
			return ctx.Err()
		case ev := <-events:
			if !a.HandleEvent(ev) {
				a.log.Info("animation stopped", zap.Stringer("metrics", a.metrics))
				return nil
			}
			a.Draw()
		case now := <-ticker.C:
			a.Tick(now)
		}
	}
}

// Tick advances one frame worth of steps, unless paused, and redraws
func (a *Animator) Tick(now time.Time) {
	n := 0
	if !a.paused {
		n = a.stepsPerFrame
		a.advance(n)
	}
	a.rate.Observe(int64(n), now.Sub(a.lastFrame))
	a.lastFrame = now
	a.Draw()
}

// HandleEvent applies one input event; returns false when the user quits
func (a *Animator) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			a.step(maze.Up)
		case tcell.KeyDown:
			a.step(maze.Down)
		case tcell.KeyLeft:
			a.step(maze.Left)
		case tcell.KeyRight:
			a.step(maze.Right)
		case tcell.KeyRune:
			return a.handleRune(ev.Rune())
		}
	}
	return true
}

func (a *Animator) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case ' ':
		a.paused = !a.paused
		a.log.Debug("pause toggled", zap.Bool("paused", a.paused))
	case 'n':
		a.advance(1)
	case 'r':
		a.maze.Reset()
		a.resets.Add(1)
		a.rate.Reset()
		a.log.Debug("maze reset to seed tree")
	case 'm':
		a.advance(maze.DefaultIterationCount(a.maze.Rows(), a.maze.Columns()))
	case 'a':
		a.showArrows = !a.showArrows
		a.painter.SetArrows(a.showArrows)
	case '+', '=':
		a.stepsPerFrame = min(max(a.stepsPerFrame*2, 1), MaxStepsPerFrame)
	case '-':
		a.stepsPerFrame /= 2
	}
	return true
}

// advance draws n directions from the source
func (a *Animator) advance(n int) {
	for i := 0; i < n; i++ {
		a.step(a.src.Direction())
	}
}

func (a *Animator) step(d maze.Direction) {
	moved := a.maze.Step(d)
	a.steps.Add(1)
	if moved {
		a.moves.Add(1)
	} else {
		a.noops.Add(1)
	}
	if a.player != nil {
		a.player.Play(d, moved)
	}
}

// Paused reports whether automatic stepping is suspended
func (a *Animator) Paused() bool { return a.paused }

// StepsPerFrame returns the current automatic speed
func (a *Animator) StepsPerFrame() int { return a.stepsPerFrame }

// Draw paints the maze and the status line
func (a *Animator) Draw() {
	a.screen.Clear()
	a.painter.Paint(a.maze, 0, 0)

	rows, _ := a.maze.WallGridSize()
	row, col := a.maze.Origin()
	state := "running"
	if a.paused {
		state = "paused"
	}
	hud := fmt.Sprintf("origin (%d,%d) | %s x%d | %s", row, col, state, a.stepsPerFrame, a.metrics)
	style := tcell.StyleDefault.Foreground(render.RgbStatusText)
	render.DrawText(a.screen, 0, rows, hud, style)
	render.DrawText(a.screen, 0, rows+1, "q quit  space pause  n step  m mix  r reset  a arrows  +/- speed  arrows move", style)

	a.frames.Add(1)
	a.screen.Show()
}
