package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomz197/firedodge/internal/audio"
	"github.com/tomz197/firedodge/internal/config"
	"github.com/tomz197/firedodge/internal/loop"
	"github.com/tomz197/firedodge/internal/store"
	"golang.org/x/term"
)

const defaultPrefsFile = "firedodge.prefs"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.Load(); err != nil {
		return err
	}

	logOut, err := config.OpenLogFile()
	if err != nil {
		return err
	}
	defer logOut.Close()
	logger := config.NewLogger(logOut)

	prefs, err := store.Open(config.GetEnv("PREFS_FILE", defaultPrefsFile))
	if err != nil {
		return fmt.Errorf("open preferences: %w", err)
	}

	cues := audio.NewCues(logger, config.GetFloat("AUDIO_VOLUME", 0.5))
	if config.GetBool("AUDIO_ENABLED", true) {
		if err := cues.Init(); err != nil {
			logger.Warn("audio unavailable", "err", err)
		}
	}
	defer cues.Close()

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

	logger.Info("starting", "prefs", config.GetEnv("PREFS_FILE", defaultPrefsFile))
	return loop.Run(ctx, bufio.NewReader(os.Stdin), os.Stdout, loop.Options{
		Session: loop.SessionOptions{
			Tuning: config.TuningFromEnv(),
			Prefs:  prefs,
			Audio:  cues,
			Log:    logger,
		},
	})
}
