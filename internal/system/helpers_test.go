package system

import (
	"io"
	"log/slog"
	"testing"

	"laser-defense/internal/component"
	"laser-defense/internal/defs"
	"laser-defense/internal/entity"
	"laser-defense/internal/event"
	"laser-defense/internal/utils"

	"github.com/stretchr/testify/require"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) ofType(t event.EventType) []event.Event {
	var out []event.Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

type fixture struct {
	world      *entity.World
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
	events     *recorder
	factory    *EnemyFactory
	combat     *CombatSystem
	movement   *MovementSystem
	collision  *CollisionSystem
	waves      *WaveSystem
	effects    *VisualEffectSystem
	state      *StateSystem
}

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newFixture(t *testing.T) *fixture {
	t.Helper()
	rng := utils.NewPRNGService(42)
	d := event.NewDispatcher()
	rec := &recorder{}
	d.SubscribeAll(rec,
		event.ShotFired, event.EnemySpawned, event.EnemyKilled, event.BaseHit,
		event.WaveStarted, event.WaveCleared, event.GameOver)

	factory := NewEnemyFactory(defs.DefaultLibrary(), rng)
	return &fixture{
		world:      entity.NewWorld(entity.NewArena(1200, 900, 46, 60)),
		rng:        rng,
		dispatcher: d,
		events:     rec,
		factory:    factory,
		combat:     NewCombatSystem(factory, rng, d),
		movement:   NewMovementSystem(factory, rng, d),
		collision:  NewCollisionSystem(rng, d),
		waves:      NewWaveSystem(factory, rng, d, quietLogger),
		effects:    NewVisualEffectSystem(),
		state:      NewStateSystem(d, quietLogger),
	}
}

func (f *fixture) spawn(t *testing.T, typ defs.EnemyType, x, y float64) *component.Enemy {
	t.Helper()
	e, err := f.factory.Make(f.world, typ, x, y)
	require.NoError(t, err)
	f.world.AddEnemy(e)
	return e
}
