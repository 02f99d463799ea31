package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatcherDeliversInOrder(t *testing.T) {
	d := NewDispatcher()
	var order []string
	d.Subscribe(EnemyKilled, ListenerFunc(func(Event) { order = append(order, "first") }))
	d.Subscribe(EnemyKilled, ListenerFunc(func(Event) { order = append(order, "second") }))

	d.Dispatch(Event{Type: EnemyKilled})
	d.Dispatch(Event{Type: BaseHit})

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestDispatcherUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.SubscribeAll(r, WaveStarted, WaveCleared)

	d.Dispatch(Event{Type: WaveStarted, Data: WaveData{Wave: 1, Total: 6}})
	d.Unsubscribe(WaveStarted, r)
	d.Dispatch(Event{Type: WaveStarted})
	d.Dispatch(Event{Type: WaveCleared})

	if assert.Len(t, r.got, 2) {
		assert.Equal(t, WaveData{Wave: 1, Total: 6}, r.got[0].Data)
		assert.Equal(t, WaveCleared, r.got[1].Type)
	}
}

func TestNilDispatcherIsANoop(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() { d.Dispatch(Event{Type: GameOver}) })
}
