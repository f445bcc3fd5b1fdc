package main

import (
	"fmt"
	"os"

	"github.com/tomz197/spaceshooter/internal/asset"
	"github.com/tomz197/spaceshooter/internal/audio"
	"github.com/tomz197/spaceshooter/internal/config"
	"github.com/tomz197/spaceshooter/internal/desktop"
	"github.com/tomz197/spaceshooter/internal/loop"
	loopconfig "github.com/tomz197/spaceshooter/internal/loop/config"
	"github.com/tomz197/spaceshooter/internal/timer"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings := config.Load(loopconfig.DefaultTargetFPS)
	logger, closeLog, err := settings.Logger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog.Close()

	var sink audio.Sink = audio.Nop{}
	if settings.Audio {
		m := audio.NewManager()
		if err := m.Initialize(); err != nil {
			logger.Warn("Audio disabled", "err", err)
		} else {
			defer m.Close()
			sink = m
		}
	}

	// ebiten paces Update itself, so TargetFPS is not used here
	clock := timer.SystemClock{}
	session := loop.NewSession(loop.Options{
		Assets: asset.Load(),
		Rand:   settings.Rand(clock.Now()),
		Clock:  clock,
		Audio:  sink,
		Logger: logger,
	})

	if err := desktop.Run(desktop.NewGame(session, clock, logger)); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	logger.Info("Window closed", "score", session.Score(clock.Now()))
	return nil
}
