// Package cli builds the cobra command shared by the window and terminal
// front ends: settings, logging and tuning are prepared here, then the
// front end takes over.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"laser-defense/internal/app"
	"laser-defense/internal/config"
	"laser-defense/internal/defs"
	"laser-defense/internal/entity"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Env is everything a front end needs to start a session.
type Env struct {
	Settings config.Settings
	Logger   *slog.Logger
	Fs       afero.Fs
	Library  defs.Library
	// Tuning is set when the tuning file is watched.
	Tuning app.LibrarySource
}

// NewGame creates a game sized and seeded from the settings.
func (e *Env) NewGame() *app.Game {
	s := e.Settings
	return app.NewGame(app.Options{
		Arena:    entity.NewArena(float64(s.Width), float64(s.Height), config.BaseRadius, config.BaseMargin),
		Seed:     s.Seed,
		Piercing: s.Piercing,
		Library:  e.Library,
		Tuning:   e.Tuning,
		Logger:   e.Logger,
	})
}

// Runner starts a front end. It returns when the player quits.
type Runner func(ctx context.Context, env *Env) error

type flags struct {
	envFiles    []string
	width       int
	height      int
	seed        int64
	piercing    bool
	spritesDir  string
	tuningFile  string
	watchTuning bool
	mute        bool
	logLevel    string
}

// NewRootCommand returns a command that prepares an Env and hands it to run.
func NewRootCommand(use, short string, run Runner) *cobra.Command {
	return newRootCommand(use, short, run, afero.NewOsFs())
}

func newRootCommand(use, short string, run Runner, fs afero.Fs) *cobra.Command {
	f := &flags{}
	def := config.DefaultSettings()

	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, cleanup, err := f.prepare(cmd, fs)
			if err != nil {
				return err
			}
			defer cleanup()
			return run(cmd.Context(), env)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringSliceVar(&f.envFiles, "env-file", []string{".env"}, "dotenv files to load before reading the environment")
	pf.IntVar(&f.width, "width", def.Width, "arena width in pixels")
	pf.IntVar(&f.height, "height", def.Height, "arena height in pixels")
	pf.Int64Var(&f.seed, "seed", 0, "random seed, 0 picks one from the clock")
	pf.BoolVar(&f.piercing, "piercing", def.Piercing, "beams pass through every enemy on the line")
	pf.StringVar(&f.spritesDir, "sprites", def.SpritesDir, "directory with enemy sprites, empty to draw vectors only")
	pf.StringVar(&f.tuningFile, "tuning", "", "JSON file overriding enemy definitions")
	pf.BoolVar(&f.watchTuning, "watch", false, "reload the tuning file on change, applied at the next reset")
	pf.BoolVar(&f.mute, "mute", false, "disable sound")
	pf.StringVar(&f.logLevel, "log-level", def.LogLevel, "debug, info, warn or error")
	return cmd
}

// prepare loads settings, applies the flags the user set, validates the
// result and builds the logger and the enemy library.
func (f *flags) prepare(cmd *cobra.Command, fs afero.Fs) (*Env, func(), error) {
	s, err := config.LoadSettings(f.envFiles...)
	if err != nil {
		return nil, nil, err
	}
	f.apply(cmd, &s)
	if err := s.Validate(); err != nil {
		return nil, nil, err
	}

	logger := NewLogger(cmd.ErrOrStderr(), s)
	slog.SetDefault(logger)

	env := &Env{Settings: s, Logger: logger, Fs: fs, Library: defs.DefaultLibrary()}
	cleanup := func() {}

	if s.TuningFile != "" {
		lib, err := defs.LoadEnemyDefinitions(fs, s.TuningFile, defs.DefaultLibrary())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load tuning: %w", err)
		}
		env.Library = lib
		logger.Info("Loaded enemy tuning", "file", s.TuningFile, "types", len(lib))
	}

	if s.WatchTuning {
		watcher := defs.NewTuningWatcher(fs, s.TuningFile, defs.DefaultLibrary())
		if err := watcher.Start(cmd.Context()); err != nil {
			return nil, nil, err
		}
		env.Tuning = watcher
		cleanup = func() {
			if err := watcher.Close(); err != nil {
				logger.Warn("Failed to close tuning watcher", "error", err)
			}
		}
	}
	return env, cleanup, nil
}

// apply copies explicitly set flags over s.
func (f *flags) apply(cmd *cobra.Command, s *config.Settings) {
	changed := cmd.Flags().Changed
	if changed("width") {
		s.Width = f.width
	}
	if changed("height") {
		s.Height = f.height
	}
	if changed("seed") {
		s.Seed = f.seed
	}
	if changed("piercing") {
		s.Piercing = f.piercing
	}
	if changed("sprites") {
		s.SpritesDir = f.spritesDir
	}
	if changed("tuning") {
		s.TuningFile = f.tuningFile
	}
	if changed("watch") {
		s.WatchTuning = f.watchTuning
	}
	if changed("mute") {
		s.Mute = f.mute
	}
	if changed("log-level") {
		s.LogLevel = strings.ToLower(f.logLevel)
	}
}

// NewLogger creates the text handler logger at the configured level.
func NewLogger(w io.Writer, s config.Settings) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: s.SlogLevel()}))
}
