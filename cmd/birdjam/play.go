package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/birdjam/internal/core"
	"github.com/vovakirdan/birdjam/internal/game"
	"github.com/vovakirdan/birdjam/internal/platform"
	"github.com/vovakirdan/birdjam/internal/platform/audio"
	tcellhost "github.com/vovakirdan/birdjam/internal/platform/term"
	"github.com/vovakirdan/birdjam/internal/platform/tui"
)

var (
	flagBackend string
	flagSound   bool
	flagVolume  float64
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play birdjam",
	Long: `Open the menu, or start a mode directly when one is given.

Modes (name or menu key):
  0 flappy    1 gravity   2 wavy    3 progress
  4 falling   5 gold      6 chaos   7 frog

Controls:
  Space/Enter/Click - Flap, start, continue
  Left/Right, A/D   - Steer (falling, chaos, frog)
  Mouse             - Aim the frog
  P/Esc             - Pause
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit

Examples:
  birdjam play
  birdjam play gravity
  birdjam play 5 --difficulty easy
  birdjam play frog --backend tcell --sound`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "tea", "Terminal backend: tea or tcell")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.3, "Sound volume (0..1)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	var start *game.Mode
	if len(args) == 1 {
		m, err := game.ParseMode(args[0])
		if err != nil {
			return fmt.Errorf("%w (run 'birdjam modes' to see them)", err)
		}
		start = &m
	}
	if flagBackend != "tea" && flagBackend != "tcell" {
		return fmt.Errorf("unknown backend %q (want tea or tcell)", flagBackend)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	seed := resolveSeed()
	session, err := game.New(cfg, seed)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}

	var sound platform.CuePlayer
	if flagSound {
		player := audio.NewPlayer(flagVolume)
		if err := player.Init(); err != nil {
			logger.Warn("audio disabled", "error", err)
		} else {
			defer player.Close()
			sound = player
		}
	}

	logger.Info("starting", "backend", flagBackend, "seed", seed, "fps", flagFPS, "size", fmt.Sprintf("%dx%d", width, height))

	switch flagBackend {
	case "tcell":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		err = tcellhost.Run(ctx, session, tcellhost.Options{
			Config: rc,
			Logger: logger,
			Sound:  sound,
			Start:  start,
		})
	default:
		err = tui.Run(session, tui.Options{
			Config: rc,
			Logger: logger,
			Sound:  sound,
			Start:  start,
		})
	}
	if err != nil {
		logger.Error("host stopped", "error", err)
		return err
	}

	logger.Info("bye", "state", session.State(), "score", session.Score())
	return nil
}
