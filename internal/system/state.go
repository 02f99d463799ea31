// internal/system/state.go
package system

import (
	"log/slog"

	"laser-defense/internal/entity"
	"laser-defense/internal/event"
)

// StateSystem detects the end of the game.
type StateSystem struct {
	eventDispatcher *event.Dispatcher
	logger          *slog.Logger
}

func NewStateSystem(eventDispatcher *event.Dispatcher, logger *slog.Logger) *StateSystem {
	if logger == nil {
		logger = slog.Default()
	}
	return &StateSystem{eventDispatcher: eventDispatcher, logger: logger}
}

// SetLogger replaces the logger, e.g. to carry a new session id.
func (s *StateSystem) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Update flips the world into game over once the base is destroyed. The
// transition happens at most once per game.
func (s *StateSystem) Update(w *entity.World) {
	if w.GameOver || w.BaseHealth > 0 {
		return
	}
	w.GameOver = true
	w.DeathMessage = DeathMessage(w.Score)
	s.logger.Info("Game over", "score", w.Score, "wave", w.Wave)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.GameOver,
		Data: event.GameOverData{Score: w.Score, Wave: w.Wave, Message: w.DeathMessage},
	})
}

// deathBands maps score ceilings to the game-over line.
var deathBands = []struct {
	below   int
	message string
}{
	{20, "You clicked too late... the base has fallen."},
	{50, "Not bad! But the waves overwhelmed you."},
	{100, "Good fight! A little more and you would have held the line."},
	{200, "Fallen hero... your legend lives on."},
	{350, "You stood against the storm, but the storm won."},
	{500, "Wall of steel! An honorable defeat."},
}

// DeathMessage picks the game-over line for a final score.
func DeathMessage(score int) string {
	for _, band := range deathBands {
		if score < band.below {
			return band.message
		}
	}
	return "Mythic. Even the algorithms bow to you."
}
