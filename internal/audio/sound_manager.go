package audio

import (
	"log/slog"
	"sync"
	"time"

	"laser-defense/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue identifies one of the short game sounds.
type Cue int

const (
	CueNone Cue = iota
	CueShot
	CueKill
	CueBaseHit
	CueGameOver
)

// SoundManager plays short cues for game events. It is an event.Listener;
// without a working audio device it stays silent.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	Volume      float64
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		Volume: 0.35,
	}
}

// Initialize opens the speaker. Failure leaves the manager silent.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Subscribe registers the manager for every event that has a cue.
func (sm *SoundManager) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(sm, event.ShotFired, event.EnemyKilled, event.BaseHit, event.GameOver)
}

// OnEvent реализует интерфейс event.Listener.
func (sm *SoundManager) OnEvent(e event.Event) {
	cue := CueFor(e)
	if cue == CueNone {
		return
	}
	sm.Play(cue)
}

// CueFor maps an event to its sound.
func CueFor(e event.Event) Cue {
	switch e.Type {
	case event.ShotFired:
		return CueShot
	case event.EnemyKilled:
		return CueKill
	case event.BaseHit:
		return CueBaseHit
	case event.GameOver:
		return CueGameOver
	}
	return CueNone
}

// Play queues a cue on the mixer.
func (sm *SoundManager) Play(cue Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := CueStreamer(cue, sampleRate)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(withVolume(s, sm.Volume))
	speaker.Unlock()
}

// CueStreamer builds the waveform of a cue.
func CueStreamer(cue Cue, rate beep.SampleRate) beep.Streamer {
	switch cue {
	case CueShot:
		return NewSweep(1400, 500, 60*time.Millisecond, WaveSaw, rate)
	case CueKill:
		return beep.Seq(
			NewSweep(660, 660, 40*time.Millisecond, WaveSine, rate),
			NewSweep(990, 990, 60*time.Millisecond, WaveSine, rate),
		)
	case CueBaseHit:
		return NewSweep(110, 60, 180*time.Millisecond, WaveSquare, rate)
	case CueGameOver:
		return beep.Take(rate.N(700*time.Millisecond), NewSweep(330, 110, 700*time.Millisecond, WaveSine, rate))
	}
	return nil
}

// Start initializes audio unless muted; a failure is logged and the game
// continues silently.
func Start(d *event.Dispatcher, mute bool, logger *slog.Logger) *SoundManager {
	sm := NewSoundManager()
	if mute {
		logger.Info("Audio muted")
		return sm
	}
	if err := sm.Initialize(); err != nil {
		logger.Warn("Audio unavailable, continuing without sound", "error", err)
		return sm
	}
	sm.Subscribe(d)
	return sm
}
