// internal/app/game.go
package app

import (
	"log/slog"

	"laser-defense/internal/config"
	"laser-defense/internal/defs"
	"laser-defense/internal/entity"
	"laser-defense/internal/event"
	"laser-defense/internal/interfaces"
	"laser-defense/internal/system"
	"laser-defense/internal/utils"
	"laser-defense/pkg/geom"

	"github.com/google/uuid"
)

// Input is what a driver collected since the previous frame. TogglePause and
// Reset are edges: true only on the frame the key went down.
type Input struct {
	Aim         geom.Point
	Firing      bool
	TogglePause bool
	Reset       bool
}

// LibrarySource hands out a replacement stat table when one is ready.
// defs.TuningWatcher implements it.
type LibrarySource interface {
	Take() (defs.Library, bool)
}

// Options configure NewGame. Zero values fall back to the defaults in config.
type Options struct {
	Arena    entity.Arena
	Seed     int64
	Piercing bool
	Library  defs.Library
	Tuning   LibrarySource
	Logger   *slog.Logger
}

// Stats are per-session counters kept by the event listener.
type Stats struct {
	Shots   int
	Hits    int
	Kills   int
	BaseHit int
}

var _ interfaces.Game = (*Game)(nil)

// Game holds the main game state and logic.
type Game struct {
	World              *entity.World
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService
	Factory            *system.EnemyFactory
	CombatSystem       *system.CombatSystem
	MovementSystem     *system.MovementSystem
	CollisionSystem    *system.CollisionSystem
	WaveSystem         *system.WaveSystem
	VisualEffectSystem *system.VisualEffectSystem
	StateSystem        *system.StateSystem
	SessionID          uuid.UUID
	Stats              Stats

	tuning   LibrarySource
	baseLog  *slog.Logger
	logger   *slog.Logger
	isPaused bool
}

// NewGame initializes a new game instance, ready for wave 1.
func NewGame(opts Options) *Game {
	arena := opts.Arena
	if arena.Bounds.Width() <= 0 || arena.Bounds.Height() <= 0 {
		arena = entity.NewArena(config.ScreenWidth, config.ScreenHeight, config.BaseRadius, config.BaseMargin)
	}
	library := opts.Library
	if library == nil {
		library = defs.DefaultLibrary()
	}
	baseLog := opts.Logger
	if baseLog == nil {
		baseLog = slog.Default()
	}

	rng := utils.NewPRNGService(opts.Seed)
	eventDispatcher := event.NewDispatcher()
	factory := system.NewEnemyFactory(library, rng)

	g := &Game{
		World:              entity.NewWorld(arena),
		EventDispatcher:    eventDispatcher,
		Rng:                rng,
		Factory:            factory,
		CombatSystem:       system.NewCombatSystem(factory, rng, eventDispatcher),
		MovementSystem:     system.NewMovementSystem(factory, rng, eventDispatcher),
		CollisionSystem:    system.NewCollisionSystem(rng, eventDispatcher),
		VisualEffectSystem: system.NewVisualEffectSystem(),
		SessionID:          uuid.New(),
		tuning:             opts.Tuning,
		baseLog:            baseLog,
	}
	g.CombatSystem.Piercing = opts.Piercing
	g.logger = baseLog.With("session", g.SessionID.String())
	g.WaveSystem = system.NewWaveSystem(factory, rng, eventDispatcher, g.logger)
	g.StateSystem = system.NewStateSystem(eventDispatcher, g.logger)

	listener := &GameEventListener{game: g}
	eventDispatcher.SubscribeAll(listener,
		event.ShotFired, event.EnemyKilled, event.BaseHit, event.GameOver, event.GameReset)

	g.logger.Info("Game created", "seed", rng.Seed(), "piercing", opts.Piercing,
		"width", arena.Bounds.Width(), "height", arena.Bounds.Height())
	return g
}

// Update handles the pause and reset edges and advances the simulation
// unless the game is paused.
func (g *Game) Update(in Input, deltaTime float64) {
	if in.Reset {
		g.Reset()
	}
	if in.TogglePause {
		g.TogglePause()
	}
	if g.isPaused {
		return
	}
	g.Step(in, deltaTime)
}

// Step advances the world by deltaTime seconds, clamped to MaxDeltaTime.
// Once the game is over only the visual effects keep moving.
func (g *Game) Step(in Input, deltaTime float64) {
	dt := min(max(deltaTime, 0), config.MaxDeltaTime)
	w := g.World
	w.Now += dt * 1000

	if !w.GameOver {
		g.CombatSystem.TryFire(w, in.Aim, in.Firing)
		g.MovementSystem.Update(w, dt)
		g.CollisionSystem.Update(w)
		g.WaveSystem.Update(w)
	}
	g.VisualEffectSystem.Update(w, dt)
	g.StateSystem.Update(w)
}

// Reset restarts the playthrough from wave 1. A tuning library waiting in
// the LibrarySource is applied here.
func (g *Game) Reset() {
	if g.tuning != nil {
		if lib, ok := g.tuning.Take(); ok {
			g.Factory.SetLibrary(lib)
			g.logger.Info("Applied reloaded enemy tuning", "types", len(lib))
		}
	}
	g.World.Reset()
	g.SessionID = uuid.New()
	g.logger = g.baseLog.With("session", g.SessionID.String())
	g.WaveSystem.SetLogger(g.logger)
	g.StateSystem.SetLogger(g.logger)
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameReset})
	g.logger.Info("Game reset")
}

func (g *Game) TogglePause() {
	g.isPaused = !g.isPaused
	g.logger.Debug("Pause toggled", "paused", g.isPaused)
}

func (g *Game) IsPaused() bool {
	return g.isPaused
}

// Snapshot returns the frame data for renderers.
func (g *Game) Snapshot() entity.Snapshot {
	snap := g.World.Snapshot()
	snap.Paused = g.isPaused
	return snap
}

// Library returns the stat table in use.
func (g *Game) Library() defs.Library {
	return g.Factory.Library()
}
