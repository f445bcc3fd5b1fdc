package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"SHOOTER_AUDIO", "SHOOTER_FPS", "SHOOTER_LOG_FILE", "SHOOTER_LOG_LEVEL", "SHOOTER_SEED"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	s := Load(60)
	assert.Equal(t, Settings{FPS: 60, LogLevel: "info"}, s)
	assert.Equal(t, 60, s.TargetFPS())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SHOOTER_AUDIO", "true")
	t.Setenv("SHOOTER_FPS", "0")
	t.Setenv("SHOOTER_SEED", "197")

	s := Load(60)
	assert.True(t, s.Audio)
	assert.Equal(t, -1, s.TargetFPS(), "0 disables the cap")
	assert.Equal(t, int64(197), s.Seed)
}

func TestSettingsRandIsSeeded(t *testing.T) {
	s := Settings{Seed: 5}
	now := time.Unix(1, 0)
	assert.Equal(t, s.Rand(now).Int63(), s.Rand(now.Add(time.Hour)).Int63())
}

func TestSettingsLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := Settings{LogLevel: "warn"}.Logger(&buf)
	require.NoError(t, err)
	defer closer.Close()

	logger.Info("hidden")
	logger.Warn("shown", "key", "value")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "key=value")
}

func TestSettingsLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shooter.log")
	logger, closer, err := Settings{LogLevel: "info", LogFile: path}.Logger(nil)
	require.NoError(t, err)

	logger.Info("to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestSettingsLoggerBadLevel(t *testing.T) {
	_, _, err := Settings{LogLevel: "loud"}.Logger(nil)
	assert.Error(t, err)
}
