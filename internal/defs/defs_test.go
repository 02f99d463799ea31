package defs

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLibrary(t *testing.T) {
	lib := DefaultLibrary()
	require.Len(t, lib, len(EnemyTypes))

	for _, typ := range EnemyTypes {
		def, err := lib.Get(typ)
		require.NoError(t, err, typ)
		assert.Equal(t, typ, def.ID)
		assert.NoError(t, def.Validate(), typ)
	}

	scores := map[EnemyType]int{
		EnemyMinion:         6,
		EnemyRunner:         12,
		EnemySpawner:        20,
		EnemyGrunt:          10,
		EnemyBatteryCarrier: 10,
		EnemyZigzag:         10,
	}
	for typ, want := range scores {
		assert.Equal(t, want, lib[typ].Score, typ)
	}

	grunt := lib[EnemyGrunt]
	assert.Equal(t, 30, grunt.Health)
	assert.Equal(t, 70.0, grunt.Speed)
	assert.Equal(t, 16.0, grunt.Radius)
	assert.Equal(t, 4, grunt.Damage)
}

func TestLibraryGetUnknown(t *testing.T) {
	_, err := DefaultLibrary().Get("BOSS")
	assert.True(t, errors.Is(err, ErrUnknownEnemyType))
}

func TestWaveTotal(t *testing.T) {
	tests := []struct {
		wave int
		want int
	}{
		{1, 6},
		{2, 8},  // 8.4
		{3, 11}, // 10.8
		{4, 13}, // 13.2
		{5, 16}, // 15.6
		{10, 28},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WaveTotal(tt.wave), "wave %d", tt.wave)
	}
}

func TestGroupSize(t *testing.T) {
	assert.Equal(t, 4, GroupSize(1, 6))
	assert.Equal(t, 2, GroupSize(1, 2))
	assert.Equal(t, 5, GroupSize(3, 11))
	assert.Equal(t, 7, GroupSize(9, 30))
}

func TestSpawnRatioCaps(t *testing.T) {
	byType := map[EnemyType]SpawnRatio{}
	for _, r := range SpawnTable {
		byType[r.Type] = r
	}
	assert.InDelta(t, 0.10, byType[EnemySpawner].At(1), 1e-9)
	assert.InDelta(t, 0.14, byType[EnemySpawner].At(3), 1e-9)
	assert.InDelta(t, 0.20, byType[EnemySpawner].At(50), 1e-9)
	assert.InDelta(t, 0.65, byType[EnemyRunner].At(50), 1e-9)
	assert.InDelta(t, 0.15, byType[EnemyBatteryCarrier].At(50), 1e-9)
	assert.InDelta(t, 0.30, byType[EnemyZigzag].At(50), 1e-9)
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#ff5a6a")
	require.NoError(t, err)
	assert.Equal(t, HexColor{R: 0xff, G: 0x5a, B: 0x6a, A: 0xff}, c)

	c, err = ParseHexColor("#eb0606ff")
	require.NoError(t, err)
	assert.Equal(t, "#eb0606", c.String())

	c, err = ParseHexColor("#fff")
	require.NoError(t, err)
	assert.Equal(t, HexColor{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, c)

	_, err = ParseHexColor("#12345")
	assert.Error(t, err)
	_, err = ParseHexColor("#zzzzzz")
	assert.Error(t, err)
}

func TestLoadEnemyDefinitions(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "tuning.json", []byte(`[
		{"id": "GRUNT", "name": "Heavy grunt", "health": 45, "speed": 60, "radius": 18, "damage": 5, "score": 15,
		 "visuals": {"color": "#ff0000", "body": "#110000"}}
	]`), 0o644))

	base := DefaultLibrary()
	lib, err := LoadEnemyDefinitions(fs, "tuning.json", base)
	require.NoError(t, err)

	assert.Equal(t, 45, lib[EnemyGrunt].Health)
	assert.Equal(t, "#ff0000", lib[EnemyGrunt].Visuals.Color.String())
	assert.Equal(t, 18, lib[EnemyRunner].Health, "untouched entries come from the base")
	assert.Equal(t, 30, base[EnemyGrunt].Health, "base library must not be mutated")
}

func TestLoadEnemyDefinitionsErrors(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := LoadEnemyDefinitions(fs, "missing.json", DefaultLibrary())
	assert.Error(t, err)

	require.NoError(t, afero.WriteFile(fs, "broken.json", []byte(`{not json`), 0o644))
	_, err = LoadEnemyDefinitions(fs, "broken.json", DefaultLibrary())
	assert.Error(t, err)

	require.NoError(t, afero.WriteFile(fs, "unknown.json", []byte(`[{"id": "BOSS", "health": 10, "radius": 5}]`), 0o644))
	_, err = LoadEnemyDefinitions(fs, "unknown.json", DefaultLibrary())
	assert.ErrorIs(t, err, ErrUnknownEnemyType)

	require.NoError(t, afero.WriteFile(fs, "spawner.json", []byte(`[{"id": "SPAWNER", "health": 10, "radius": 5}]`), 0o644))
	_, err = LoadEnemyDefinitions(fs, "spawner.json", DefaultLibrary())
	assert.ErrorContains(t, err, "spawner params")
}

func TestTuningWatcherReloadAndTake(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/tuning/enemies.json", []byte(`[
		{"id": "RUNNER", "health": 20, "speed": 150, "radius": 14, "damage": 3, "score": 12}
	]`), 0o644))

	w := NewTuningWatcher(fs, "/tuning/enemies.json", DefaultLibrary())
	_, ok := w.Take()
	assert.False(t, ok)

	w.Reload()
	lib, ok := w.Take()
	require.True(t, ok)
	assert.Equal(t, 150.0, lib[EnemyRunner].Speed)

	_, ok = w.Take()
	assert.False(t, ok, "a library is handed out once")

	require.NoError(t, afero.WriteFile(fs, "/tuning/enemies.json", []byte(`[`), 0o644))
	w.Reload()
	_, ok = w.Take()
	assert.False(t, ok, "a broken file must not replace anything")
}
