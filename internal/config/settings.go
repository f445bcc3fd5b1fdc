package config

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Settings are the runtime options shared by every frontend.
type Settings struct {
	Audio    bool   // SHOOTER_AUDIO
	FPS      int    // SHOOTER_FPS; 0 means uncapped
	LogFile  string // SHOOTER_LOG_FILE; empty logs to stderr
	LogLevel string // SHOOTER_LOG_LEVEL
	Seed     int64  // SHOOTER_SEED; 0 picks a random seed per session
}

// Load reads Settings from the environment. defaultFPS applies when
// SHOOTER_FPS is unset.
func Load(defaultFPS int) Settings {
	return Settings{
		Audio:    GetEnvBool("SHOOTER_AUDIO", false),
		FPS:      GetEnvInt("SHOOTER_FPS", defaultFPS),
		LogFile:  GetEnv("SHOOTER_LOG_FILE", ""),
		LogLevel: GetEnv("SHOOTER_LOG_LEVEL", "info"),
		Seed:     int64(GetEnvInt("SHOOTER_SEED", 0)),
	}
}

// TargetFPS converts FPS to the session convention, where 0 selects the
// default and a negative value disables the cap.
func (s Settings) TargetFPS() int {
	if s.FPS <= 0 {
		return -1
	}
	return s.FPS
}

// Rand returns a random source seeded from Seed, or from now when Seed is 0.
func (s Settings) Rand(now time.Time) *rand.Rand {
	seed := s.Seed
	if seed == 0 {
		seed = now.UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Logger builds the logger described by the settings. When LogFile is set the
// returned closer closes it; otherwise logs go to fallback.
func (s Settings) Logger(fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", s.LogLevel, err)
	}

	var w io.Writer = fallback
	var closer io.Closer = io.NopCloser(nil)
	if s.LogFile != "" {
		f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
	return logger, closer, nil
}
