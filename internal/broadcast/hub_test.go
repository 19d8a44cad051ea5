package broadcast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubDeliversToAllSubscribers(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	a := hub.Subscribe()
	b := hub.Subscribe()

	event := Event{Type: EventKeyResultUpdate, ObjectiveID: 1, KeyResultID: 2, Progress: 50}
	hub.Publish(event)

	assert.Equal(t, event, <-a.C)
	assert.Equal(t, event, <-b.C)
}

func TestHubPrunesSlowSubscriber(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	slow := hub.Subscribe()
	healthy := hub.Subscribe()

	// Fill the slow subscriber's buffer without draining it, while the
	// healthy subscriber keeps up.
	total := cap(slow.C) + 1
	healthyReceived := 0
	for i := 0; i < total; i++ {
		hub.Publish(Event{Type: EventKeyResultUpdate, KeyResultID: uint64(i)})
		<-healthy.C
		healthyReceived++
	}

	// The overflowing publish closed the slow channel after its buffer
	// filled; the healthy subscriber received every event.
	slowReceived := 0
	for range slow.C {
		slowReceived++
	}
	assert.Equal(t, cap(slow.C), slowReceived)
	assert.Equal(t, total, healthyReceived)
}

func TestHubUnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	sub := hub.Subscribe()
	hub.Unsubscribe(sub)

	_, open := <-sub.C
	require.False(t, open)

	// Publishing after unsubscribe must not panic.
	hub.Publish(Event{Type: EventKeyResultUpdate})
}

func TestHubCloseIsIdempotent(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()

	hub.Close()
	hub.Close()

	_, open := <-sub.C
	assert.False(t, open)

	// Subscribe after close returns an already-closed channel.
	late := hub.Subscribe()
	_, open = <-late.C
	assert.False(t, open)
}
