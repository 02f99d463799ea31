package component

// WavePhase tracks the spawn director's progress through the current wave.
type WavePhase int

const (
	// WavePending: no wave scheduled yet (fresh or reset world).
	WavePending WavePhase = iota
	// WaveActive: enemies remain to be emitted or are still alive.
	WaveActive
	// WaveCleared: nothing left to emit and nothing alive.
	WaveCleared
)

func (p WavePhase) String() string {
	switch p {
	case WavePending:
		return "pending"
	case WaveActive:
		return "active"
	case WaveCleared:
		return "cleared"
	}
	return "unknown"
}

// BatteryPhase is the visibility cycle of a battery carrier.
type BatteryPhase int

const (
	PhaseActive BatteryPhase = iota
	PhaseHidden
)

func (p BatteryPhase) String() string {
	if p == PhaseHidden {
		return "HIDDEN"
	}
	return "ACTIVE"
}
