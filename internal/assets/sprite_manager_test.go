package assets

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, fsys afero.Fs, path string, w, h int) {
	t.Helper()
	f, err := fsys.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))))
}

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSpriteKeys(t *testing.T) {
	keys := SpriteKeys()
	assert.Contains(t, keys, "GRUNT")
	assert.Contains(t, keys, "BATTERY_CARRIER")
	assert.Equal(t, BaseSprite, keys[len(keys)-1])
	assert.Equal(t, "battery_carrier.png", SpriteFile("BATTERY_CARRIER"))
}

func TestLoadFallsBackPerSprite(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("assets", 0o755))
	writePNG(t, fsys, filepath.Join("assets", "grunt.png"), 32, 32)
	writePNG(t, fsys, filepath.Join("assets", "base.png"), 64, 48)
	require.NoError(t, afero.WriteFile(fsys, filepath.Join("assets", "runner.png"), []byte("not a png"), 0o644))

	m := NewSpriteManager(quiet())
	err := m.Load(context.Background(), fsys, "assets", []string{"GRUNT", "RUNNER", "SPAWNER", BaseSprite})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSpriteMissing, "spawner.png does not exist")

	assert.Equal(t, 2, m.Loaded())
	img, ok := m.Get(BaseSprite)
	require.True(t, ok)
	assert.Equal(t, 64, img.Bounds().Dx())

	_, ok = m.Get("RUNNER")
	assert.False(t, ok, "corrupt file falls back")
	_, ok = m.Get("SPAWNER")
	assert.False(t, ok)
}

func TestLoadAsyncAllPresent(t *testing.T) {
	fsys := afero.NewMemMapFs()
	for _, key := range SpriteKeys() {
		writePNG(t, fsys, filepath.Join("sprites", SpriteFile(key)), 8, 8)
	}

	m := NewSpriteManager(quiet())
	err := <-m.LoadAsync(context.Background(), fsys, "sprites", SpriteKeys())
	require.NoError(t, err)
	assert.Equal(t, len(SpriteKeys()), m.Loaded())
}

func TestLoadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := NewSpriteManager(quiet())
	err := m.Load(ctx, afero.NewMemMapFs(), "assets", []string{"GRUNT"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, m.Loaded())
}

func TestLoadReportsEveryFailure(t *testing.T) {
	keys := make([]string, 0, 3*maxParallelLoads)
	for i := range 3 * maxParallelLoads {
		keys = append(keys, fmt.Sprintf("MISSING_%d", i))
	}

	m := NewSpriteManager(quiet())
	err := m.Load(context.Background(), afero.NewMemMapFs(), "assets", keys)
	require.Error(t, err)

	joined, ok := err.(interface{ Unwrap() []error })
	require.True(t, ok)
	assert.Len(t, joined.Unwrap(), len(keys))
	for _, e := range joined.Unwrap() {
		assert.ErrorIs(t, e, ErrSpriteMissing)
	}
}
