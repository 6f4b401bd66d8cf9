package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sarpt/list-coordinator/pkg/channel"
	"github.com/sarpt/list-coordinator/pkg/state/pkg/subscribers"
)

func TestClient_ClosesWhenQueueOverflows(t *testing.T) {
	// given
	cl := newClient("id", "studio", 1)

	// when
	cl.ListLocked(channel.New("ADC1", 1), "other")
	cl.ListUnlocked(channel.New("ADC1", 1), "other")

	// then
	assert.False(t, cl.CheckAvailability())
	assert.Len(t, cl.messages, 1)

	cl.OnConnectionStateChange("ADC1", subscribers.Connected)
	assert.Len(t, cl.messages, 1)
	assert.NoError(t, cl.Close())
}

func TestClient_QueuesNotificationsInOrder(t *testing.T) {
	cl := newClient("id", "studio", 4)

	cl.OnEventsDeleted(channel.New("ADC1", 2), []string{"a"})
	cl.OnConnectionStateChange("ADC1", subscribers.Disconnected)

	first := <-cl.messages
	second := <-cl.messages
	assert.Equal(t, eventsCategory, first.category)
	assert.Equal(t, "deleted", first.name)
	assert.Equal(t, connectionCategory, second.category)
	assert.Equal(t, "disconnected", second.name)
	assert.True(t, cl.CheckAvailability())
}

func TestFormatSseEvent(t *testing.T) {
	out := formatSseEvent(lockCategory, "locked", []byte("{\"a\":1}\n{\"b\":2}"))

	assert.Equal(t, "event:lock.locked\ndata:{\"a\":1}\ndata:{\"b\":2}\n\n", string(out))
}
