package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlchart/config"
	"github.com/katalvlaran/lvlchart/engine"
)

func writeProfile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chart.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	p, err := config.Load("", zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, config.Default(), p)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	p, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"), zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, config.Default(), p)
}

func TestLoad_PartialOverrideKeepsDefaults(t *testing.T) {
	path := writeProfile(t, "listen: \":9000\"\ntuning:\n  value_speed: 0.2\n")
	p, err := config.Load(path, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, ":9000", p.Listen)
	assert.Equal(t, 0.2, p.Tuning.ValueSpeed)

	def := engine.DefaultTuning()
	assert.Equal(t, def.RangeSpeed, p.Tuning.RangeSpeed, "unnamed fields keep defaults")
	assert.Equal(t, config.Default().WindowSec, p.WindowSec)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeProfile(t, "tuning: [not, a, map\n")
	_, err := config.Load(path, zerolog.Nop())
	assert.Error(t, err)
}

func TestLoad_InvalidValuesRejected(t *testing.T) {
	path := writeProfile(t, "tick_ms: -5\n")
	_, err := config.Load(path, zerolog.Nop())
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidProfile)

	path = writeProfile(t, "tuning:\n  value_speed: -1\n")
	_, err = config.Load(path, zerolog.Nop())
	assert.ErrorIs(t, err, config.ErrInvalidProfile)
}
