package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"starshipcatch/assets"
	"starshipcatch/display"
	"starshipcatch/game"
	"starshipcatch/logger"
	"starshipcatch/profiler"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML, JSON or TOML config file")
	logLevel := flag.String("log-level", "", "Override log level (debug, info, warn, error)")
	writeSprites := flag.String("write-sprites", "", "Write placeholder sprites to this directory and exit")
	flag.Parse()

	config, err := game.LoadConfig(*configPath)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load config")
	}
	if *logLevel != "" {
		config.LogLevel = *logLevel
	}

	log := logger.New(config.LogLevel, config.LogFormat, os.Stderr)
	entry := logrus.NewEntry(log).WithField("host", "window")

	if *writeSprites != "" {
		if err := assets.SavePlaceholders(*writeSprites); err != nil {
			entry.WithError(err).Fatal("Failed to write sprites")
		}
		entry.WithField("dir", *writeSprites).Info("Placeholder sprites written")
		return
	}

	clock := game.SystemClock{}
	mission, err := game.NewMission(game.Options{
		Config: config,
		Clock:  clock,
		Logger: entry,
	})
	if err != nil {
		entry.WithError(err).Fatal("Failed to create mission")
	}

	var prof *profiler.Profiler
	if config.ProfileThreshold > 0 {
		prof = profiler.New(config.ProfileDir, entry)
		prof.SetDuration(config.ProfileDuration)
		prof.SetCooldown(config.ProfileCooldown)
	}

	g := display.NewRunner(mission, clock, display.LoadSprites(config.SpriteDir, entry), prof, entry)

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(g); err != nil {
		entry.WithError(err).Fatal("Game loop failed")
	}
	if prof != nil {
		prof.Wait()
	}
}
