// internal/state/play_state.go
package state

import (
	"laser-defense/internal/app"
	"laser-defense/internal/ui"
	"laser-defense/pkg/geom"
	"laser-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// View bundles everything that draws a session.
type View struct {
	Renderer      *render.ArenaRenderer
	HUDPanel      *ui.HUDPanel
	WaveIndicator *ui.WaveIndicator
	StatusBand    *ui.StatusBand
	GameOverCard  *ui.GameOverCard
}

// PlayState — основное игровое состояние
type PlayState struct {
	sm   *StateMachine
	game *app.Game
	view *View
	aim  geom.Point
}

func NewPlayState(sm *StateMachine, game *app.Game, view *View) *PlayState {
	return &PlayState{sm: sm, game: game, view: view}
}

func (s *PlayState) Enter() {}

// ReadInput collects the frame input from mouse and keyboard.
func ReadInput() app.Input {
	x, y := ebiten.CursorPosition()
	return app.Input{
		Aim:         geom.Pt(float64(x), float64(y)),
		Firing:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		TogglePause: inpututil.IsKeyJustPressed(ebiten.KeyP),
		Reset:       inpututil.IsKeyJustPressed(ebiten.KeyR),
	}
}

func (s *PlayState) Update(deltaTime float64) {
	in := ReadInput()
	s.aim = in.Aim

	if in.TogglePause {
		s.game.TogglePause()
		s.sm.SetState(NewPauseState(s.sm, s, s.game))
		return
	}
	s.game.Update(in, deltaTime)
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	snap := s.game.Snapshot()
	s.view.Renderer.Draw(screen, snap, s.game.Library(), s.aim)
	s.view.HUDPanel.Draw(screen, snap)
	s.view.WaveIndicator.Draw(screen, snap.Wave)
	s.view.GameOverCard.Draw(screen, snap)
	s.view.StatusBand.Draw(screen, snap)
}

func (s *PlayState) Exit() {}
