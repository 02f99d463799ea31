// cmd/tui/main.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"laser-defense/internal/audio"
	"laser-defense/internal/cli"
	"laser-defense/internal/tui"
	"laser-defense/internal/ui/hud"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/language"
)

const logFile = "laser-defense-tui.log"

func run(ctx context.Context, env *cli.Env) error {
	// stderr shares the terminal with the game, logs go to a file instead
	f, err := env.Fs.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", logFile, err)
	}
	defer f.Close()
	env.Logger = cli.NewLogger(f, env.Settings)
	slog.SetDefault(env.Logger)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init terminal: %w", err)
	}
	defer screen.Fini()

	game := env.NewGame()
	sounds := audio.Start(game.EventDispatcher, env.Settings.Mute, env.Logger)
	defer sounds.Cleanup()

	driver := tui.NewDriver(screen, game, hud.New(language.English), env.Logger)
	return driver.Run(ctx)
}

func main() {
	cmd := cli.NewRootCommand("laser-defense-tui", "Play laser defense in the terminal", run)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
