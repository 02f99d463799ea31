// internal/state/pause_state.go
package state

import (
	"laser-defense/internal/interfaces"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState freezes the simulation and keeps drawing the previous state,
// whose snapshot now carries the pause band.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	game          interfaces.Game
}

func NewPauseState(sm *StateMachine, prevState State, game interfaces.Game) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		game:          game,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	// Сброс не снимает паузу
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.game.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if s.game.IsPaused() {
			s.game.TogglePause()
		}
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
}

func (s *PauseState) Exit() {}
