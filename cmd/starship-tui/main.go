package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"starshipcatch/game"
	"starshipcatch/logger"
	"starshipcatch/terminal"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML, JSON or TOML config file")
	logLevel := flag.String("log-level", "", "Override log level (debug, info, warn, error)")
	logFile := flag.String("log-file", "starship-tui.log", "Log destination, the terminal itself is the display")
	flag.Parse()

	if err := run(*configPath, *logLevel, *logFile); err != nil {
		fmt.Fprintf(os.Stderr, "starship-tui: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, logLevel, logFile string) error {
	config, err := game.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		config.LogLevel = logLevel
	}

	out, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer out.Close()

	log := logger.New(config.LogLevel, config.LogFormat, out)
	entry := logrus.NewEntry(log).WithField("host", "terminal")

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	clock := game.SystemClock{}
	mission, err := game.NewMission(game.Options{
		Config: config,
		Clock:  clock,
		Logger: entry,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = terminal.NewRunner(screen, mission, clock, entry).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
