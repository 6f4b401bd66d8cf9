package sse

import (
	"sync"

	"github.com/sarpt/list-coordinator/pkg/channel"
	"github.com/sarpt/list-coordinator/pkg/event"
	"github.com/sarpt/list-coordinator/pkg/state/pkg/lists"
	"github.com/sarpt/list-coordinator/pkg/state/pkg/subscribers"
)

type category string

const (
	clientCategory     category = "client"
	listCategory       category = "list"
	eventsCategory     category = "events"
	lockCategory       category = "lock"
	connectionCategory category = "connection"
)

type message struct {
	category category
	name     string
	payload  interface{}
}

type registeredPayload struct {
	Identity string `json:"Identity"`
	Name     string `json:"Name"`
}

type listPayload struct {
	Channel channel.Channel `json:"Channel"`
}

type eventsPayload struct {
	Channel channel.Channel `json:"Channel"`
	Events  []event.Event   `json:"Events,omitempty"`
	IDs     []string        `json:"IDs,omitempty"`
	Index   *int            `json:"Index,omitempty"`
}

type lockPayload struct {
	Channel channel.Channel `json:"Channel"`
	Client  string          `json:"Client"`
}

type connectionPayload struct {
	Node string `json:"Node"`
}

// client is a callback backed by a single SSE stream.
// Notifications are queued without blocking; a client which cannot keep up is closed.
type client struct {
	closeOnce *sync.Once
	done      chan struct{}
	id        string
	messages  chan message
	name      string
}

func newClient(id, name string, buffer int) *client {
	return &client{
		closeOnce: &sync.Once{},
		done:      make(chan struct{}),
		id:        id,
		messages:  make(chan message, buffer),
		name:      name,
	}
}

func (c *client) Identity() string {
	return c.id
}

func (c *client) OnListChange(ch channel.Channel, variant lists.ChangeVariant) {
	c.enqueue(message{category: listCategory, name: string(variant), payload: listPayload{Channel: ch}})
}

func (c *client) OnEventsAdded(ch channel.Channel, index int, events []event.Event) {
	c.enqueue(message{category: eventsCategory, name: "added", payload: eventsPayload{Channel: ch, Events: events, Index: &index}})
}

func (c *client) OnEventsUpdated(ch channel.Channel, events []event.Event) {
	c.enqueue(message{category: eventsCategory, name: "updated", payload: eventsPayload{Channel: ch, Events: events}})
}

func (c *client) OnEventsDeleted(ch channel.Channel, ids []string) {
	c.enqueue(message{category: eventsCategory, name: "deleted", payload: eventsPayload{Channel: ch, IDs: ids}})
}

func (c *client) OnEventsMoved(ch channel.Channel, index int, ids []string) {
	c.enqueue(message{category: eventsCategory, name: "moved", payload: eventsPayload{Channel: ch, IDs: ids, Index: &index}})
}

func (c *client) ListLocked(ch channel.Channel, owner string) {
	c.enqueue(message{category: lockCategory, name: "locked", payload: lockPayload{Channel: ch, Client: owner}})
}

func (c *client) ListUnlocked(ch channel.Channel, owner string) {
	c.enqueue(message{category: lockCategory, name: "unlocked", payload: lockPayload{Channel: ch, Client: owner}})
}

func (c *client) OnConnectionStateChange(node string, status subscribers.ConnectionStatus) {
	c.enqueue(message{category: connectionCategory, name: string(status), payload: connectionPayload{Node: node}})
}

// CheckAvailability reports whether the stream is still open.
func (c *client) CheckAvailability() bool {
	select {
	case <-c.done:
		return false
	default:
		return true
	}
}

// Close ends the stream. Safe to call multiple times.
func (c *client) Close() error {
	c.closeOnce.Do(func() {
		close(c.done)
	})

	return nil
}

func (c *client) enqueue(msg message) {
	if !c.CheckAvailability() {
		return
	}

	select {
	case c.messages <- msg:
	default:
		c.Close()
	}
}
