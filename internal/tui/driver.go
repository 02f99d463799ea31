package tui

import (
	"context"
	"log/slog"
	"time"

	"laser-defense/internal/app"
	"laser-defense/internal/ui/hud"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

// Driver feeds terminal input to a game and redraws it every tick.
type Driver struct {
	screen   tcell.Screen
	game     *app.Game
	renderer *Renderer
	logger   *slog.Logger

	input app.Input
	quit  bool
}

func NewDriver(screen tcell.Screen, game *app.Game, t *hud.Text, logger *slog.Logger) *Driver {
	return &Driver{
		screen:   screen,
		game:     game,
		renderer: NewRenderer(screen, t),
		logger:   logger,
		input:    app.Input{Aim: game.World.Arena.Player()},
	}
}

// Run loops until the player quits or ctx is cancelled. The screen must
// already be initialised; mouse reporting is enabled here.
func (d *Driver) Run(ctx context.Context) error {
	d.screen.EnableMouse()
	d.screen.HideCursor()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			d.HandleEvent(ev)
			if d.quit {
				d.logger.Info("Quit requested")
				return nil
			}
		case now := <-ticker.C:
			d.Tick(now.Sub(last).Seconds())
			last = now
		}
	}
}

// HandleEvent folds one terminal event into the pending input.
func (d *Driver) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			d.quit = true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'p', 'P':
				d.input.TogglePause = true
			case 'r', 'R':
				d.input.Reset = true
			case 'q', 'Q':
				d.quit = true
			}
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		d.input.Aim = d.renderer.PointOf(d.game.World.Arena, col, row)
		d.input.Firing = ev.Buttons()&tcell.Button1 != 0
	case *tcell.EventResize:
		d.screen.Sync()
	}
}

// Tick advances the game by dt seconds and redraws. Edges are consumed.
func (d *Driver) Tick(dt float64) {
	d.game.Update(d.input, dt)
	d.input.TogglePause = false
	d.input.Reset = false
	d.renderer.Draw(d.game.Snapshot(), d.game.Library())
}

// Input returns the input that the next tick will use.
func (d *Driver) Input() app.Input {
	return d.input
}

// Quit reports whether the player asked to leave.
func (d *Driver) Quit() bool {
	return d.quit
}
