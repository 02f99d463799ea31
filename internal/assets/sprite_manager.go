package assets

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"laser-defense/internal/defs"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// ErrSpriteMissing is returned for a sprite whose file does not exist.
var ErrSpriteMissing = errors.New("sprite missing")

// BaseSprite is the key of the base image.
const BaseSprite = "BASE"

const maxParallelLoads = 4

// SpriteKeys returns every key the renderer asks for: one per enemy type
// plus the base.
func SpriteKeys() []string {
	keys := make([]string, 0, len(defs.EnemyTypes)+1)
	for _, t := range defs.EnemyTypes {
		keys = append(keys, string(t))
	}
	return append(keys, BaseSprite)
}

// SpriteFile maps a key to its file name inside the sprites directory.
func SpriteFile(key string) string {
	return strings.ToLower(key) + ".png"
}

// SpriteManager управляет загрузкой и кэшированием спрайтов.
// Отсутствующий спрайт не является ошибкой игры: рендерер рисует вектором.
type SpriteManager struct {
	mu     sync.RWMutex
	images map[string]image.Image
	logger *slog.Logger
}

// NewSpriteManager создает новый экземпляр SpriteManager.
func NewSpriteManager(logger *slog.Logger) *SpriteManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &SpriteManager{
		images: make(map[string]image.Image),
		logger: logger,
	}
}

// Load decodes the sprites for keys from dir, at most maxParallelLoads at a
// time. Every failure is logged and joined into the returned error; the
// sprites that did load are available either way.
func (m *SpriteManager) Load(ctx context.Context, fsys afero.Fs, dir string, keys []string) error {
	var (
		g    errgroup.Group
		mu   sync.Mutex
		errs []error
	)
	g.SetLimit(maxParallelLoads)
	for _, key := range keys {
		g.Go(func() error {
			// Ошибка одного спрайта не отменяет остальные.
			if err := m.loadSingleSprite(ctx, fsys, dir, key); err != nil {
				m.logger.Warn("Sprite not loaded, using vector fallback", "key", key, "error", err)
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	m.logger.Info("Sprites loaded", "ok", m.Loaded(), "failed", len(errs))
	return errors.Join(errs...)
}

// LoadAsync runs Load on its own goroutine and reports on the returned
// channel once it is done.
func (m *SpriteManager) LoadAsync(ctx context.Context, fsys afero.Fs, dir string, keys []string) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- m.Load(ctx, fsys, dir, keys)
	}()
	return done
}

func (m *SpriteManager) loadSingleSprite(ctx context.Context, fsys afero.Fs, dir, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path := filepath.Join(dir, SpriteFile(key))
	f, err := fsys.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrSpriteMissing, path)
		}
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return fmt.Errorf("failed to decode %s: empty image", path)
	}

	m.mu.Lock()
	m.images[key] = img
	m.mu.Unlock()
	m.logger.Debug("Sprite loaded", "key", key, "width", b.Dx(), "height", b.Dy())
	return nil
}

// Get возвращает спрайт по ключу.
func (m *SpriteManager) Get(key string) (image.Image, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	img, ok := m.images[key]
	return img, ok
}

// Loaded returns how many sprites are available.
func (m *SpriteManager) Loaded() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.images)
}
