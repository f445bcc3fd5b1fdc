package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/tomz197/spaceshooter/internal/asset"
	"github.com/tomz197/spaceshooter/internal/audio"
	"github.com/tomz197/spaceshooter/internal/config"
	"github.com/tomz197/spaceshooter/internal/input"
	"github.com/tomz197/spaceshooter/internal/loop"
	loopconfig "github.com/tomz197/spaceshooter/internal/loop/config"
	"github.com/tomz197/spaceshooter/internal/render"
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

	// The terminal is the game screen, so logs go to a file or nowhere
	logger, closeLog, err := settings.Logger(io.Discard)
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

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clock := timer.SystemClock{}
	session := loop.NewSession(loop.Options{
		Assets:    asset.Load(),
		Rand:      settings.Rand(clock.Now()),
		Clock:     clock,
		Audio:     sink,
		Logger:    logger,
		TargetFPS: settings.TargetFPS(),
	})

	screen := render.NewTerminal(os.Stdout, render.Options{})
	screen.Begin()

	stream := input.StartStream(bufio.NewReader(os.Stdin))
	runErr := session.Run(ctx, stream, screen)
	screen.End()
	if runErr != nil {
		return runErr
	}

	// Raw mode is still on, so end lines explicitly
	fmt.Printf("Final score: %d\r\n", session.Score(clock.Now()))
	return nil
}
