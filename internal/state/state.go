// internal/state/state.go
package state

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine — структура для управления состояниями.
// Переходы логируются на уровне debug.
type StateMachine struct {
	current State
	logger  *slog.Logger
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine(logger *slog.Logger) *StateMachine {
	if logger == nil {
		logger = slog.Default()
	}
	return &StateMachine{logger: logger}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	from := sm.current
	if from != nil {
		from.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
	sm.logger.Debug("State changed", "from", stateName(from), "to", stateName(newState))
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

func stateName(s State) string {
	if s == nil {
		return "none"
	}
	return fmt.Sprintf("%T", s)
}
