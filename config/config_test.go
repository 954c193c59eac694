package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/origin-shift/maze"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "originshift.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, maze.DefaultIterations, cfg.Iterations)
	assert.Equal(t, time.Second/DefaultFPS, cfg.FrameInterval())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
rows: 5
columns: 7
seed: 42
animation:
  fps: 10
  sound: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Rows)
	assert.Equal(t, 7, cfg.Columns)
	assert.Equal(t, uint64(42), cfg.ResolveSeed())
	assert.Equal(t, maze.DefaultIterations, cfg.Iterations)
	assert.Equal(t, 10, cfg.Animation.FPS)
	assert.Equal(t, DefaultStepsPerFrame, cfg.Animation.StepsPerFrame)
	assert.True(t, cfg.Animation.Sound)
	assert.Equal(t, 100*time.Millisecond, cfg.FrameInterval())
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown key", "rowz: 4\n"},
		{"tiny maze", "rows: 1\n"},
		{"zero fps", "animation:\n  fps: 0\n"},
		{"negative steps", "animation:\n  steps_per_frame: -1\n"},
		{"bad yaml", "rows: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.body))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidateWrapsSentinel(t *testing.T) {
	cfg := Default()
	cfg.Columns = 1
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestResolveSeedFallsBackToClock(t *testing.T) {
	cfg := Default()
	assert.NotZero(t, cfg.ResolveSeed())
}

func TestReadSkipsValidation(t *testing.T) {
	path := writeFile(t, "rows: 1\n")

	cfg, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Rows)
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	_, err = Read(writeFile(t, "rowz: 4\n"))
	assert.Error(t, err)
}
