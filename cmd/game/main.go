package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/log"
	_ "github.com/ebitengine/hideconsole"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/younwookim/flappy/internal/application/game"
	"github.com/younwookim/flappy/internal/application/replay"
	"github.com/younwookim/flappy/internal/application/scene"
	"github.com/younwookim/flappy/internal/application/scene/menu"
	"github.com/younwookim/flappy/internal/application/system"
	"github.com/younwookim/flappy/internal/infrastructure/assets"
	"github.com/younwookim/flappy/internal/infrastructure/config"
	"github.com/younwookim/flappy/internal/infrastructure/logging"
)

const defaultLogLevel = "info"

type options struct {
	record   string
	replay   string
	verify   string
	settings string
	watch    string
	logLevel string
	seed     int64
	mute     bool
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var o options
	fset := flag.NewFlagSet("flappy", flag.ContinueOnError)
	fset.SetOutput(output)
	fset.StringVar(&o.record, "record", "", "Record input to file (e.g., -record replay.json)")
	fset.StringVar(&o.replay, "replay", "", "Play back a recorded session in the window")
	fset.StringVar(&o.verify, "verify", "", "Re-run a recorded session headless and compare the result")
	fset.StringVar(&o.settings, "settings", "", "TOML file with volume, mute and seed overrides")
	fset.StringVar(&o.watch, "watch", "", "Load tuning from this directory and reload it on change")
	fset.StringVar(&o.logLevel, "log-level", defaultLogLevel, "debug, info, warn or error")
	fset.Int64Var(&o.seed, "seed", 0, "Master seed for tube openings (0 picks one from the clock)")
	fset.BoolVar(&o.mute, "mute", false, "Disable audio")
	if err := fset.Parse(args); err != nil {
		return o, err
	}

	if o.record != "" && (o.replay != "" || o.verify != "") {
		return o, errors.New("-record cannot be combined with -replay or -verify")
	}
	if o.replay != "" && o.verify != "" {
		return o, errors.New("-replay and -verify are exclusive")
	}
	return o, nil
}

// loadConfig reads tuning from dir, or from the embedded configs when dir
// is empty.
func loadConfig(dir string) (*config.GameConfig, error) {
	if dir != "" {
		return config.NewLoader(dir).LoadAll()
	}
	fsys, err := fs.Sub(gameFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").LoadAll()
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if _, err := logging.Setup(os.Stderr, opts.logLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(opts); err != nil {
		log.Fatal("game stopped", "err", err)
	}
}

func run(opts options) error {
	cfg, err := loadConfig(opts.watch)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	seed := opts.seed
	mute := opts.mute
	if opts.settings != "" {
		s, err := config.LoadSettings(opts.settings)
		if err != nil {
			return err
		}
		s.Apply(cfg)
		if seed == 0 {
			seed = s.Seed
		}
		mute = mute || s.Mute
		if s.LogLevel != "" && opts.logLevel == defaultLogLevel {
			if _, err := logging.Setup(os.Stderr, s.LogLevel); err != nil {
				return err
			}
		}
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if opts.verify != "" {
		return verify(cfg, opts.verify, os.Stdout)
	}

	return play(cfg, opts, seed, mute)
}

func play(cfg *config.GameConfig, opts options, seed int64, mute bool) error {
	var input system.InputSource = system.NewInputSystem(system.DefaultBindings())
	var done func() bool

	if opts.replay != "" {
		data, err := replay.LoadReplay(opts.replay)
		if err != nil {
			return err
		}
		rp := replay.NewReplayer(*data)
		input, done, seed = rp, rp.Done, data.Seed
	}

	var rec *replay.Recorder
	if opts.record != "" {
		rec = replay.NewRecorder(seed)
		input = replay.NewRecordingSource(input, rec)
		log.Info("recording enabled", "file", opts.record, "seed", seed)
	}

	var audioCtx *audio.Context
	if !mute {
		audioCtx = audio.NewContext(cfg.Assets.SampleRate)
	}

	assetFS, err := fs.Sub(gameFS, "assets")
	if err != nil {
		return fmt.Errorf("failed to get asset subfs: %w", err)
	}
	lib := assets.NewLibrary(assetFS, cfg.Assets, audioCtx)
	if err := lib.Validate(); err != nil {
		return fmt.Errorf("missing assets: %w", err)
	}

	store := config.NewStore(cfg)
	env := scene.NewEnv(store, lib, input, seed)
	first, err := menu.New(env)
	if err != nil {
		return err
	}

	music, err := lib.Music()
	if err != nil {
		return err
	}

	gopts := game.Options{Music: music, Done: done}
	if opts.watch != "" {
		w, err := config.NewWatcher(opts.watch)
		if err != nil {
			return err
		}
		defer func() { _ = w.Close() }()
		gopts.Reloads = w.Updates()
	}

	g := game.New(first, store, gopts)

	display := cfg.Physics.Display
	ebiten.SetWindowSize(display.ScreenWidth, display.ScreenHeight)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)

	log.Info("starting", "seed", seed, "muted", lib.Muted())
	runErr := ebiten.RunGame(g)
	g.Close()

	stats := *env.Stats
	log.Info("session over", "runs", stats.Runs, "crashes", stats.Crashes, "flaps", stats.Flaps, "frames", g.Frames())
	if live := lib.Live(); live != 0 {
		log.Warn("asset handles leaked", "live", live)
	}

	if rec != nil {
		rec.Finish(resultOf(stats))
		if err := rec.Save(opts.record); err != nil {
			log.Error("failed to save recording", "err", err)
		}
	}
	return runErr
}
