package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-dragon/internal/assets"
	"github.com/vovakirdan/flappy-dragon/internal/audio"
	"github.com/vovakirdan/flappy-dragon/internal/audio/beep"
	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/games/dragon"
	"github.com/vovakirdan/flappy-dragon/internal/platform/tui"
)

var errNoTerminal = errors.New("dragon: stdout is not a terminal")

func runGame(_ *cobra.Command, _ []string) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errNoTerminal
	}

	logger, closeLog := openLogger()
	defer closeLog()

	cfg, source, err := config.Load()
	if err != nil {
		return err
	}
	logger.Info("config loaded", "source", source)

	// Playfield plus the help line
	if w, h, sizeErr := term.GetSize(fd); sizeErr == nil && (w < cfg.Screen.Width || h < cfg.Screen.Height+1) {
		logger.Warn("terminal smaller than the playfield", "width", w, "height", h,
			"need_width", cfg.Screen.Width, "need_height", cfg.Screen.Height+1)
	}

	bundle, err := assets.Unpack("")
	if err != nil {
		return err
	}
	defer func() {
		if cerr := bundle.Cleanup(); cerr != nil {
			logger.Warn("could not remove asset directory", "dir", bundle.Dir(), "error", cerr)
		}
	}()
	logger.Info("assets unpacked", "dir", bundle.Dir())

	sprite, err := bundle.LoadSprite("dragon")
	if err != nil {
		return err
	}

	player := openAudio(logger)
	defer player.Close()

	seed := time.Now().UnixNano()
	logger.Info("starting", "seed", seed)
	game := dragon.New(cfg, dragon.Options{
		Seed:   seed,
		Audio:  player,
		Sounds: bundle.SoundPaths(),
		Sprite: sprite,
		Logger: logger,
	})

	if err := tui.Run(game, cfg.Runtime()); err != nil {
		return fmt.Errorf("dragon: %w", err)
	}
	return nil
}

// openAudio returns the speaker backed player, or a silent one when no
// audio device can be opened.
func openAudio(logger *log.Logger) audio.Player {
	b, err := beep.New(logger)
	if err != nil {
		logger.Warn("audio disabled", "error", err)
		return audio.Nop{}
	}
	logger.Info("audio enabled", "backend", "beep")
	return b
}
