package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsviz/command"
	"github.com/katalvlaran/dsviz/config"
	"github.com/katalvlaran/dsviz/viz"
)

func TestLoad_Defaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, cfg.Playback.StepInterval)
	assert.Equal(t, time.Second, cfg.Graph.KruskalInterval)
	assert.Equal(t, 2.0, cfg.Animation.Rate)
	assert.Equal(t, 1400.0, cfg.Layout.Width)
	assert.Equal(t, 10, cfg.Random.Count)
	assert.Equal(t, 100, cfg.Random.Max)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dsviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
playback:
  step_interval: 250ms
layout:
  width: 800
  height: 600
  list_spacing: 40
random:
  seed: 42
logging:
  format: json
`), 0o600))
	t.Setenv("DSVIZ_PLAYBACK_INSTANT", "true")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.Playback.StepInterval)
	assert.True(t, cfg.Playback.Instant)
	assert.Equal(t, 400.0, cfg.TreeLayout().OriginX)
	assert.Equal(t, int64(42), cfg.Random.Seed)

	s := command.NewSettings(cfg.EngineOptions()...)
	assert.True(t, s.Instant)
	assert.Equal(t, 250*time.Millisecond, s.Interval)
	assert.Equal(t, 400.0, s.Tree.OriginX)
	assert.Equal(t, viz.ListLayout{StartX: 100, Y: 300, Spacing: 40}, s.List)

	var buf bytes.Buffer
	cfg.NewLogger(&buf).Info("hello", "k", 1)
	assert.Contains(t, buf.String(), `"msg":"hello"`)
}

func TestLoad_Validation(t *testing.T) {
	cases := map[string]struct {
		yaml string
		want error
	}{
		"interval": {"playback:\n  step_interval: 0s\n", config.ErrInvalidInterval},
		"rate":     {"animation:\n  rate: -1\n", config.ErrInvalidRate},
		"canvas":   {"layout:\n  height: 0\n", config.ErrInvalidCanvas},
		"spacing":  {"layout:\n  list_spacing: 0\n", config.ErrInvalidCanvas},
		"random":   {"random:\n  min: 9\n  max: 3\n", config.ErrInvalidRandom},
		"level":    {"logging:\n  level: loud\n", config.ErrInvalidLogging},
		"format":   {"logging:\n  format: xml\n", config.ErrInvalidLogging},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "c.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.yaml), 0o600))
			_, err := config.Load(path)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
