// internal/app/game_events.go
package app

import "laser-defense/internal/event"

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	g := l.game
	switch e.Type {
	case event.ShotFired:
		if data, ok := e.Data.(event.ShotData); ok {
			g.Stats.Shots++
			g.Stats.Hits += data.Hits
		}
	case event.EnemyKilled:
		g.Stats.Kills++
		if data, ok := e.Data.(event.EnemyData); ok {
			g.logger.Debug("Enemy killed", "type", data.Type, "points", data.Points)
		}
	case event.BaseHit:
		g.Stats.BaseHit++
		if data, ok := e.Data.(event.EnemyData); ok {
			g.logger.Debug("Base hit", "type", data.Type, "damage", data.Points, "base", g.World.BaseHealth)
		}
	case event.GameOver:
		g.logger.Info("Session stats", "shots", g.Stats.Shots, "hits", g.Stats.Hits, "kills", g.Stats.Kills)
	case event.GameReset:
		g.Stats = Stats{}
	}
}
