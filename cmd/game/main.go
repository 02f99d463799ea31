// cmd/game/main.go
package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"laser-defense/internal/assets"
	"laser-defense/internal/audio"
	"laser-defense/internal/cli"
	"laser-defense/internal/config"
	"laser-defense/internal/state"
	"laser-defense/internal/ui"
	"laser-defense/internal/ui/hud"
	"laser-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/text/language"
)

const fontFile = "font.ttf"

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	width, height  int
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func run(ctx context.Context, env *cli.Env) error {
	s := env.Settings
	logger := env.Logger
	game := env.NewGame()

	sounds := audio.Start(game.EventDispatcher, s.Mute, logger)
	defer sounds.Cleanup()

	sprites := assets.NewSpriteManager(logger)
	var done <-chan error
	fontPath := ""
	if s.SpritesDir != "" {
		done = sprites.LoadAsync(ctx, env.Fs, s.SpritesDir, assets.SpriteKeys())
		fontPath = filepath.Join(s.SpritesDir, fontFile)
	} else {
		ch := make(chan error, 1)
		ch <- nil
		done = ch
	}

	face, err := render.LoadFace(env.Fs, fontPath, 14)
	if err != nil {
		logger.Debug("Using built-in font", "error", err)
	}
	titleFace, err := render.LoadFace(env.Fs, fontPath, 24)
	if err != nil {
		titleFace = face
	}

	text := hud.New(language.English)
	sm := state.NewStateMachine(logger) // Создаём машину состояний
	sm.SetState(state.NewLoadingState(sm, done, func() state.State {
		shapes := render.NewShapes()
		view := &state.View{
			Renderer:      render.NewArenaRenderer(s.Width, s.Height, nil, face, sprites),
			HUDPanel:      ui.NewHUDPanel(face, text, shapes),
			WaveIndicator: ui.NewWaveIndicator(s.Width/2, 12, titleFace),
			StatusBand:    ui.NewStatusBand(face, text, s.Width),
			GameOverCard:  ui.NewGameOverCard(face, titleFace, text, shapes, s.Width, s.Height),
		}
		return state.NewPlayState(sm, game, view)
	}, logger))

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		width:          s.Width,
		height:         s.Height,
	}
	ebiten.SetWindowSize(s.Width, s.Height)
	ebiten.SetWindowTitle("Laser Defense")
	return ebiten.RunGame(app)
}

func main() {
	cmd := cli.NewRootCommand("laser-defense", "Hold the base against waves of enemies with a hit-scan laser", run)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
