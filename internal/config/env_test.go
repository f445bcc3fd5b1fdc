package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("SHOOTER_TEST_STR", "value")
	assert.Equal(t, "value", GetEnv("SHOOTER_TEST_STR", "fallback"))
	assert.Equal(t, "fallback", GetEnv("SHOOTER_TEST_MISSING", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("SHOOTER_TEST_INT", "42")
	t.Setenv("SHOOTER_TEST_BAD_INT", "forty-two")

	assert.Equal(t, 42, GetEnvInt("SHOOTER_TEST_INT", 7))
	assert.Equal(t, 7, GetEnvInt("SHOOTER_TEST_BAD_INT", 7))
	assert.Equal(t, 7, GetEnvInt("SHOOTER_TEST_MISSING", 7))
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("SHOOTER_TEST_BOOL", "false")
	t.Setenv("SHOOTER_TEST_BAD_BOOL", "nope")

	assert.False(t, GetEnvBool("SHOOTER_TEST_BOOL", true))
	assert.True(t, GetEnvBool("SHOOTER_TEST_BAD_BOOL", true))
	assert.True(t, GetEnvBool("SHOOTER_TEST_MISSING", true))
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("SHOOTER_TEST_DUR", "250ms")
	assert.Equal(t, 250*time.Millisecond, GetEnvDuration("SHOOTER_TEST_DUR", time.Second))
	assert.Equal(t, time.Second, GetEnvDuration("SHOOTER_TEST_MISSING", time.Second))
}
