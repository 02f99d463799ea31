// internal/system/wave.go
package system

import (
	"log/slog"

	"laser-defense/internal/component"
	"laser-defense/internal/config"
	"laser-defense/internal/defs"
	"laser-defense/internal/entity"
	"laser-defense/internal/event"
	"laser-defense/internal/utils"
	"laser-defense/pkg/geom"
)

// WaveSystem is the spawn director: it sequences waves, releases enemies in
// timed groups and picks their type and entry point.
type WaveSystem struct {
	factory         *EnemyFactory
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	logger          *slog.Logger
}

func NewWaveSystem(factory *EnemyFactory, rng *utils.PRNGService, eventDispatcher *event.Dispatcher, logger *slog.Logger) *WaveSystem {
	if logger == nil {
		logger = slog.Default()
	}
	return &WaveSystem{
		factory:         factory,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

// SetLogger replaces the logger, e.g. to carry a new session id.
func (s *WaveSystem) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

func (s *WaveSystem) Update(w *entity.World) {
	if w.GameOver {
		return
	}

	switch {
	case w.WavePhase == component.WavePending:
		// Свежий мир: первая группа уже запланирована в Reset.
		s.beginWave(w)
	case w.GroupLeft <= 0 && len(w.Enemies) == 0:
		w.WavePhase = component.WaveCleared
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.WaveCleared,
			Data: event.WaveData{Wave: w.Wave, Total: w.Emitted},
		})
		s.logger.Info("Wave cleared", "wave", w.Wave, "emitted", w.Emitted, "score", w.Score)
		w.Wave++
		s.StartWave(w)
	}

	if w.Now > w.NextGroupAt && w.GroupLeft > 0 {
		count := defs.GroupSize(w.Wave, w.GroupLeft)
		for range count {
			s.spawnEnemy(w)
		}
		w.GroupLeft -= count
		w.NextGroupAt = w.Now + defs.WaveIntervalMs*s.rng.Range(defs.GroupJitterMin, defs.GroupJitterMax)
	}
}

// StartWave schedules the current wave: its full enemy count becomes
// pending and the first group leaves shortly after.
func (s *WaveSystem) StartWave(w *entity.World) {
	s.beginWave(w)
	w.NextGroupAt = w.Now + defs.FirstGroupDelayMs
}

func (s *WaveSystem) beginWave(w *entity.World) {
	total := defs.WaveTotal(w.Wave)
	w.GroupLeft = total
	w.Emitted = 0
	w.WavePhase = component.WaveActive
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WaveData{Wave: w.Wave, Total: total},
	})
	s.logger.Info("Wave started", "wave", w.Wave, "total", total)
}

func (s *WaveSystem) spawnEnemy(w *entity.World) {
	pos := s.spawnPosition(w)
	t := s.rng.ChooseSpawn(defs.SpawnTable, w.Wave, defs.FallbackSpawn)

	e, err := s.factory.Make(w, t, pos.X, pos.Y)
	if err != nil {
		s.logger.Error("Failed to spawn enemy", "type", t, "error", err)
		return
	}
	w.AddEnemy(e)
	w.Emitted++
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemySpawned,
		Data: event.EnemyData{ID: e.ID, Type: e.Type, X: e.X, Y: e.Y},
	})
}

// spawnPosition samples the top or left spawn band, rejecting points closer
// than MinSpawnDist to the base. After MaxSpawnAttempts rejections it falls
// back to the top-left corner of the band.
func (s *WaveSystem) spawnPosition(w *entity.World) geom.Point {
	b := w.Arena.Bounds
	minD2 := config.MinSpawnDist * config.MinSpawnDist

	for range config.MaxSpawnAttempts {
		var p geom.Point
		if s.rng.Chance(0.5) {
			p = geom.Pt(s.rng.Range(b.Min.X+config.SpawnEdgeInset, b.Max.X-config.SpawnEdgeInset), b.Min.Y+config.SpawnOffscreen)
		} else {
			p = geom.Pt(b.Min.X+config.SpawnOffscreen, s.rng.Range(b.Min.Y+config.SpawnEdgeInset, b.Max.Y-config.SpawnEdgeInset))
		}
		if p.Dist2(w.Arena.Base) >= minD2 {
			return p
		}
	}

	p := geom.Pt(b.Min.X+config.SpawnOffscreen, b.Min.Y+config.SpawnOffscreen)
	s.logger.Debug("Spawn position fallback", "attempts", config.MaxSpawnAttempts, "x", p.X, "y", p.Y)
	return p
}
