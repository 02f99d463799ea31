package audio

import (
	"testing"
	"time"

	"laser-defense/internal/event"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 256)
	total := 0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			require.GreaterOrEqual(t, buf[i][0], -1.0)
			require.LessOrEqual(t, buf[i][0], 1.0)
			assert.Equal(t, buf[i][0], buf[i][1])
		}
		total += n
		if !ok {
			return total
		}
		require.Less(t, total, 1<<20, "stream never ends")
	}
}

func TestSweepLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	s := NewSweep(440, 220, 100*time.Millisecond, WaveSine, rate)
	assert.Equal(t, rate.N(100*time.Millisecond), drain(t, s))
	assert.NoError(t, s.Err())
}

func TestCueStreamersEnd(t *testing.T) {
	rate := beep.SampleRate(22050)
	for _, cue := range []Cue{CueShot, CueKill, CueBaseHit, CueGameOver} {
		s := CueStreamer(cue, rate)
		require.NotNil(t, s, cue)
		assert.Positive(t, drain(t, s))
	}
	assert.Nil(t, CueStreamer(CueNone, rate))
}

func TestCueFor(t *testing.T) {
	assert.Equal(t, CueShot, CueFor(event.Event{Type: event.ShotFired}))
	assert.Equal(t, CueKill, CueFor(event.Event{Type: event.EnemyKilled}))
	assert.Equal(t, CueBaseHit, CueFor(event.Event{Type: event.BaseHit}))
	assert.Equal(t, CueGameOver, CueFor(event.Event{Type: event.GameOver}))
	assert.Equal(t, CueNone, CueFor(event.Event{Type: event.WaveStarted}))
}

func TestUninitializedManagerIsSilent(t *testing.T) {
	sm := NewSoundManager()
	assert.NotPanics(t, func() {
		sm.OnEvent(event.Event{Type: event.ShotFired})
		sm.Cleanup()
	})
}
