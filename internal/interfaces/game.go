package interfaces

import (
	"laser-defense/internal/defs"
	"laser-defense/internal/entity"
)

// Game is what front ends need from a running session besides feeding it
// input.
type Game interface {
	Snapshot() entity.Snapshot
	Library() defs.Library
	IsPaused() bool
	TogglePause()
	Reset()
}
