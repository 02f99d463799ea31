// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/afero"
)

// LoadEnemyDefinitions reads a JSON array of enemy definitions from path and
// returns a copy of base with those entries replaced.
func LoadEnemyDefinitions(fs afero.Fs, path string, base Library) (Library, error) {
	file, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	lib := base.Clone()
	for i, def := range enemyDefs {
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("enemy definition #%d: %w", i, err)
		}
		lib[def.ID] = def
	}

	slog.Info("Loaded enemy definitions", "path", path, "overrides", len(enemyDefs))
	return lib, nil
}

// Validate checks that a definition can drive the simulation.
func (d EnemyDefinition) Validate() error {
	if !d.ID.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownEnemyType, d.ID)
	}
	if d.Health <= 0 {
		return fmt.Errorf("%s: health must be positive", d.ID)
	}
	if d.Radius <= 0 {
		return fmt.Errorf("%s: radius must be positive", d.ID)
	}
	if d.Speed < 0 || d.Damage < 0 || d.Score < 0 {
		return fmt.Errorf("%s: speed, damage and score must not be negative", d.ID)
	}

	switch d.ID {
	case EnemySpawner:
		p := d.Spawner
		if p == nil {
			return fmt.Errorf("%s: spawner params are required", d.ID)
		}
		if p.IntervalMinMs <= 0 || p.IntervalMaxMs < p.IntervalMinMs || p.MaxChildren < 0 || p.PerSpawn <= 0 {
			return fmt.Errorf("%s: invalid spawner params", d.ID)
		}
	case EnemyBatteryCarrier:
		p := d.Battery
		if p == nil || p.ActiveMs <= 0 || p.HiddenMs <= 0 {
			return fmt.Errorf("%s: battery params need positive active_ms and hidden_ms", d.ID)
		}
	case EnemyZigzag:
		if d.Zigzag == nil {
			return fmt.Errorf("%s: zigzag params are required", d.ID)
		}
	}
	return nil
}
