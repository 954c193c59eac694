package animate

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/origin-shift/config"
	"github.com/lixenwraith/origin-shift/maze"
	"github.com/lixenwraith/origin-shift/status"
)

func setup(t *testing.T, rows, cols int) (*Animator, tcell.SimulationScreen, *maze.Maze, *status.Registry) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 30)

	src := maze.NewRandSource(9)
	m, err := maze.New(make([]uint32, rows*cols), rows, cols, src, 0)
	require.NoError(t, err)

	cfg := config.Default()
	cfg.Rows, cfg.Columns = rows, cols
	cfg.Animation.FPS = 100
	cfg.Animation.StepsPerFrame = 5

	metrics := status.NewRegistry()
	return New(screen, m, src, cfg, Options{Metrics: metrics}), screen, m, metrics
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func counter(r *status.Registry, name string) int64 {
	return r.Counter(name).Load()
}

func TestTickAdvancesAndDraws(t *testing.T) {
	a, screen, m, metrics := setup(t, 4, 6)

	a.Tick(time.Now())
	assert.Equal(t, int64(5), counter(metrics, status.Steps))
	assert.Equal(t, counter(metrics, status.Steps), counter(metrics, status.Moves)+counter(metrics, status.NoOps))
	assert.Equal(t, int64(1), counter(metrics, status.Frames))
	require.NoError(t, m.Validate())

	mainc, _, _, _ := screen.GetContent(0, 0)
	assert.Equal(t, '█', mainc)

	rows, _ := m.WallGridSize()
	mainc, _, _, _ = screen.GetContent(0, rows)
	assert.Equal(t, 'o', mainc)
}

func TestPauseAndSingleStep(t *testing.T) {
	a, _, _, metrics := setup(t, 3, 3)

	assert.True(t, a.HandleEvent(key(' ')))
	assert.True(t, a.Paused())

	a.Tick(time.Now())
	assert.Zero(t, counter(metrics, status.Steps))

	assert.True(t, a.HandleEvent(key('n')))
	assert.Equal(t, int64(1), counter(metrics, status.Steps))

	assert.True(t, a.HandleEvent(key(' ')))
	assert.False(t, a.Paused())
}

func TestResetAndManualMoves(t *testing.T) {
	a, _, m, metrics := setup(t, 3, 3)

	a.HandleEvent(key('m'))
	assert.Equal(t, int64(maze.DefaultIterationCount(3, 3)), counter(metrics, status.Steps))

	now := time.Now()
	a.Tick(now)
	a.Tick(now.Add(time.Second))
	require.Positive(t, metrics.Rate(status.StepRate).Get())

	a.HandleEvent(key('r'))
	assert.Equal(t, int64(1), counter(metrics, status.Resets))
	assert.Zero(t, metrics.Rate(status.StepRate).Get())
	assert.Equal(t, uint32(8), m.OriginOffset())

	a.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	a.HandleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	row, col := m.Origin()
	assert.Equal(t, 1, row)
	assert.Equal(t, 1, col)

	a.HandleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	a.HandleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	row, col = m.Origin()
	assert.Equal(t, 1, row)
	assert.Equal(t, 2, col)
	require.NoError(t, m.Validate())
}

func TestSpeedKeys(t *testing.T) {
	a, _, _, _ := setup(t, 3, 3)

	a.HandleEvent(key('+'))
	assert.Equal(t, 10, a.StepsPerFrame())
	a.HandleEvent(key('-'))
	a.HandleEvent(key('-'))
	a.HandleEvent(key('-'))
	a.HandleEvent(key('-'))
	assert.Zero(t, a.StepsPerFrame())
	a.HandleEvent(key('+'))
	assert.Equal(t, 1, a.StepsPerFrame())

	for i := 0; i < 20; i++ {
		a.HandleEvent(key('='))
	}
	assert.Equal(t, MaxStepsPerFrame, a.StepsPerFrame())
}

func TestQuitKeys(t *testing.T) {
	a, _, _, _ := setup(t, 2, 2)

	assert.False(t, a.HandleEvent(key('q')))
	assert.False(t, a.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.False(t, a.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
	assert.True(t, a.HandleEvent(key('x')))
}

func TestRunStopsOnQuit(t *testing.T) {
	a, screen, _, _ := setup(t, 3, 4)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, a.Run(ctx))
}

func TestRunStopsOnCancel(t *testing.T) {
	a, _, m, metrics := setup(t, 3, 4)

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()
	err := a.Run(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Greater(t, counter(metrics, status.Frames), int64(1))
	require.NoError(t, m.Validate())
}
