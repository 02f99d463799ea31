package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// ErrInvalidSettings wraps every validation failure.
var ErrInvalidSettings = errors.New("invalid settings")

// Environment variable names.
const (
	EnvWidth       = "LASER_WIDTH"
	EnvHeight      = "LASER_HEIGHT"
	EnvSeed        = "LASER_SEED"
	EnvPiercing    = "LASER_PIERCING"
	EnvSpritesDir  = "LASER_SPRITES_DIR"
	EnvTuningFile  = "LASER_TUNING_FILE"
	EnvWatchTuning = "LASER_WATCH_TUNING"
	EnvMute        = "LASER_MUTE"
	EnvLogLevel    = "LASER_LOG_LEVEL"
)

// Settings are the runtime knobs of a session. Flags override the values
// read from the environment.
type Settings struct {
	Width       int    `validate:"gte=480,lte=7680"`
	Height      int    `validate:"gte=360,lte=4320"`
	Seed        int64  // 0 picks a time-based seed
	Piercing    bool   // beams continue to the screen edge
	SpritesDir  string // empty disables sprites
	TuningFile  string `validate:"required_if=WatchTuning true"`
	WatchTuning bool
	Mute        bool
	LogLevel    string `validate:"oneof=debug info warn error"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Width:      ScreenWidth,
		Height:     ScreenHeight,
		Piercing:   LaserPiercing,
		SpritesDir: "assets",
		LogLevel:   "info",
	}
}

// LoadSettings reads the given .env files (default ".env"; missing files are
// skipped), then the process environment, on top of DefaultSettings.
// Only parse errors are reported here; call Validate once all overrides are in.
func LoadSettings(envFiles ...string) (Settings, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				slog.Debug("No env file found, relying on environment variables", "file", f)
				continue
			}
			return Settings{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	s := DefaultSettings()
	var errs []error
	readInt(EnvWidth, &s.Width, &errs)
	readInt(EnvHeight, &s.Height, &errs)
	readInt64(EnvSeed, &s.Seed, &errs)
	readBool(EnvPiercing, &s.Piercing, &errs)
	readBool(EnvWatchTuning, &s.WatchTuning, &errs)
	readBool(EnvMute, &s.Mute, &errs)
	readString(EnvSpritesDir, &s.SpritesDir)
	readString(EnvTuningFile, &s.TuningFile)
	readString(EnvLogLevel, &s.LogLevel)
	s.LogLevel = strings.ToLower(s.LogLevel)

	if err := errors.Join(errs...); err != nil {
		return Settings{}, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return s, nil
}

var validate = validator.New()

// Validate checks the struct tags.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return nil
}

// SlogLevel converts LogLevel for the slog handler.
func (s Settings) SlogLevel() slog.Level {
	switch s.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func readString(key string, dst *string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

func readInt(key string, dst *int, errs *[]error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = n
}

func readInt64(key string, dst *int64, errs *[]error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = n
}

func readBool(key string, dst *bool, errs *[]error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = b
}
