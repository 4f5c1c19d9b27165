package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/ncruces/zenity"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/iburimskiy/draggable-clock/internal/assets"
	"github.com/iburimskiy/draggable-clock/internal/chime"
	"github.com/iburimskiy/draggable-clock/internal/clock"
	"github.com/iburimskiy/draggable-clock/internal/config"
	"github.com/iburimskiy/draggable-clock/internal/diag"
	"github.com/iburimskiy/draggable-clock/internal/game"
	"github.com/iburimskiy/draggable-clock/internal/logging"
	"github.com/iburimskiy/draggable-clock/internal/overlay"
)

// version is overridden with -ldflags "-X main.version=..."
var version = "dev"

func run(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()

	dir, err := config.ResolveDir(cmd.Bool("portable"))
	if err != nil {
		return err
	}
	cfgPath := cmd.String("config")
	if cfgPath == "" {
		cfgPath = filepath.Join(dir, config.ConfigFileName)
	}

	closer, err := logging.Setup(cmd.String("log-level"), filepath.Join(filepath.Dir(cfgPath), config.DebugLogName), os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	mainLog := logging.Module("main")
	mainLog.Info().Str("version", diag.Version(version)).Str("config", cfgPath).Msg("starting")

	store := config.NewStore(cfgPath)
	cfg, err := store.Load()
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		mainLog.Info().Msg("first run, writing defaults")
		if err := store.Save(cfg); err != nil {
			mainLog.Warn().Err(err).Msg("failed to write default config")
		}
	case errors.Is(err, config.ErrInvalidConfig):
		mainLog.Warn().Err(err).Msg("config had out-of-range fields, coerced")
	case err != nil:
		mainLog.Warn().Err(err).Msg("config unusable, using defaults")
	}

	assetsDir := cmd.String("assets")
	if assetsDir == "" {
		assetsDir = filepath.Join(dir, config.AssetsDirName)
	}
	lib := assets.NewLibrary(assetsDir)

	seed := uint64(cmd.Int("seed"))
	if seed == 0 {
		seed = uint64(start.UnixNano())
	}

	mode := clock.ModeVector
	if cmd.Bool("rounded-hands") {
		mode = clock.ModeRounded
	}

	policy := clock.DefaultPolicy
	if cmd.Bool("narrow-opacity") {
		policy = clock.NarrowPolicy
	}

	var chimer *chime.Chimer
	var hourly overlay.Chimer
	if cmd.Bool("chime") {
		chimer = chime.New(logging.Module("chime"))
		hourly = chimer
	}

	win := game.NewWindow()
	ctrl := overlay.NewController(cfg, overlay.Options{
		Window:   win,
		Platform: win,
		Store:    store,
		Stamp: func(c *config.Config) {
			c.Stamp(diag.Version(version), diag.Metrics(start, time.Now()))
		},
		Loader:          lib,
		Lister:          lib,
		Picker:          assets.Picker{},
		Chime:           hourly,
		Rand:            rand.New(rand.NewPCG(seed, seed>>1)),
		Mode:            mode,
		Policy:          policy,
		ShowMessages:    cmd.Bool("show-messages"),
		MiddleClickExit: cmd.Bool("middle-click-exit"),
		Logger:          logging.Module("overlay"),
	})
	g := game.New(ctrl, win, logging.Module("game"))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	sigCtx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	wg, wgCtx := errgroup.WithContext(sigCtx)

	// Faces dropped into the folder while running
	wg.Go(func() error {
		watchLog := logging.Module("assets")
		if err := assets.Watch(wgCtx, lib, watchLog, func(names []string) {
			ctrl.Post(overlay.FacesListed{Names: names})
		}); err != nil {
			watchLog.Warn().Err(err).Str("dir", lib.Dir()).Msg("face watcher unavailable")
		}
		return nil
	})

	// Signals end the loop the abnormal way; Destroying below still saves
	wg.Go(func() error {
		<-wgCtx.Done()
		if sigCtx.Err() != nil && ctx.Err() == nil {
			mainLog.Info().Msg("received shutdown signal")
		}
		g.Stop()
		return nil
	})

	runErr := g.Run(cfg)

	ctrl.Dispatch(overlay.Destroying{})
	if chimer != nil {
		chimer.Close()
	}
	cancel()
	if err := wg.Wait(); err != nil {
		mainLog.Warn().Err(err).Msg("background worker failed")
	}

	if runErr != nil {
		return fmt.Errorf("overlay run error: %w", runErr)
	}
	if !ctrl.Lifecycle().Saved() {
		mainLog.Warn().Msg("exiting without a saved config")
	}
	mainLog.Info().Msg("stopped")
	return nil
}

func main() {
	cmd := &cli.Command{
		Name:   "draggable",
		Usage:  "Always-on-top analog clock overlay you can drag, resize and reskin",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the config file (default: next to the data directory)",
				Sources: cli.EnvVars("CLOCK_CONFIG_FILE"),
			},
			&cli.BoolFlag{
				Name:    "portable",
				Usage:   "Keep config and faces in the working directory",
				Sources: cli.EnvVars("CLOCK_PORTABLE"),
			},
			&cli.StringFlag{
				Name:    "assets",
				Usage:   "Directory holding " + config.FacePattern + " faces",
				Sources: cli.EnvVars("CLOCK_ASSETS_DIR"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "trace, debug, info, warn or error",
				Value:   "info",
				Sources: cli.EnvVars("CLOCK_LOG_LEVEL"),
			},
			&cli.BoolFlag{
				Name:    "rounded-hands",
				Usage:   "Draw hands with round caps rotated about their midpoint",
				Sources: cli.EnvVars("CLOCK_ROUNDED_HANDS"),
			},
			&cli.BoolFlag{
				Name:    "narrow-opacity",
				Usage:   "Keep hands closer to the face opacity (+0.1 hands, +0.2 center)",
				Sources: cli.EnvVars("CLOCK_NARROW_OPACITY"),
			},
			&cli.BoolFlag{
				Name:    "show-messages",
				Usage:   "Show pointer and geometry diagnostics on the face",
				Sources: cli.EnvVars("CLOCK_SHOW_MESSAGES"),
			},
			&cli.BoolFlag{
				Name:    "chime",
				Usage:   "Play a short tone on the hour",
				Sources: cli.EnvVars("CLOCK_CHIME"),
			},
			&cli.BoolFlag{
				Name:    "middle-click-exit",
				Usage:   "Close the clock on middle click",
				Value:   true,
				Sources: cli.EnvVars("CLOCK_MIDDLE_CLICK_EXIT"),
			},
			&cli.IntFlag{
				Name:    "seed",
				Usage:   "Seed for random hand colors (0 = time based)",
				Sources: cli.EnvVars("CLOCK_SEED"),
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		_ = zenity.Error(err.Error(), zenity.Title(config.AppName), zenity.ErrorIcon)
		log.Fatal().Err(err).Msg("application error")
	}
}
