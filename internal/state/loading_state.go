// internal/state/loading_state.go
package state

import (
	"log/slog"

	"laser-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// LoadingState waits for the sprite loader, then switches to the state built
// by next. Missing sprites are not fatal: those types are drawn as vectors.
type LoadingState struct {
	sm      *StateMachine
	done    <-chan error
	next    func() State
	logger  *slog.Logger
	elapsed float64
}

func NewLoadingState(sm *StateMachine, done <-chan error, next func() State, logger *slog.Logger) *LoadingState {
	return &LoadingState{sm: sm, done: done, next: next, logger: logger}
}

func (s *LoadingState) Enter() {}

func (s *LoadingState) Update(deltaTime float64) {
	s.elapsed += deltaTime
	select {
	case err := <-s.done:
		if err != nil {
			s.logger.Debug("Loading finished with missing sprites", "error", err)
		}
		s.logger.Debug("Loading finished", "seconds", s.elapsed)
		s.sm.SetState(s.next())
	default:
	}
}

func (s *LoadingState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	dots := int(s.elapsed*3) % 4
	msg := "Loading sprites" + "...."[:dots]
	ebitenutil.DebugPrintAt(screen, msg, 20, 20)
}

func (s *LoadingState) Exit() {}
