package api_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/sarpt/list-coordinator/pkg/api"
	"github.com/sarpt/list-coordinator/pkg/channel"
	"github.com/sarpt/list-coordinator/pkg/device/memory"
	"github.com/sarpt/list-coordinator/pkg/event"
	"github.com/sarpt/list-coordinator/pkg/state/pkg/lists"
	"github.com/sarpt/list-coordinator/pkg/state/pkg/subscribers"
	"github.com/sarpt/list-coordinator/pkg/timecode"
)

// recordingClient remembers every notification it receives.
type recordingClient struct {
	id            string
	lock          *sync.Mutex
	notifications []string
	updated       [][]event.Event
}

func newRecordingClient(id string) *recordingClient {
	return &recordingClient{
		id:   id,
		lock: &sync.Mutex{},
	}
}

func (c *recordingClient) record(notification string) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.notifications = append(c.notifications, notification)
}

func (c *recordingClient) received() []string {
	c.lock.Lock()
	defer c.lock.Unlock()

	return append([]string{}, c.notifications...)
}

func (c *recordingClient) Identity() string {
	return c.id
}

func (c *recordingClient) OnListChange(ch channel.Channel, variant lists.ChangeVariant) {
	c.record(fmt.Sprintf("%s %s", variant, ch))
}

func (c *recordingClient) OnEventsAdded(ch channel.Channel, index int, events []event.Event) {
	c.record(fmt.Sprintf("added %s %d:%d", ch, index, len(events)))
}

func (c *recordingClient) OnEventsUpdated(ch channel.Channel, events []event.Event) {
	c.lock.Lock()
	c.updated = append(c.updated, events)
	c.lock.Unlock()

	c.record(fmt.Sprintf("updated %s %d", ch, len(events)))
}

func (c *recordingClient) OnEventsDeleted(ch channel.Channel, ids []string) {
	c.record(fmt.Sprintf("deleted %s %v", ch, ids))
}

func (c *recordingClient) OnEventsMoved(ch channel.Channel, index int, ids []string) {
	c.record(fmt.Sprintf("moved %s %d %v", ch, index, ids))
}

func (c *recordingClient) ListLocked(ch channel.Channel, client string) {
	c.record(fmt.Sprintf("locked %s by %s", ch, client))
}

func (c *recordingClient) ListUnlocked(ch channel.Channel, client string) {
	c.record(fmt.Sprintf("unlocked %s by %s", ch, client))
}

func (c *recordingClient) OnConnectionStateChange(node string, status subscribers.ConnectionStatus) {
	c.record(fmt.Sprintf("%s %s", node, status))
}

func (c *recordingClient) CheckAvailability() bool {
	return true
}

func newMemoryServer(t *testing.T, nodes ...memory.NodeConfig) (*api.Server, *memory.Pool) {
	t.Helper()

	logger, _ := test.NewNullLogger()
	pool := memory.NewPool(nodes)
	for _, node := range nodes {
		require.NoError(t, pool.Connect(node.Name))
	}

	server, err := api.NewServer(api.Config{
		Logger:          logger,
		Pool:            pool,
		ReapInterval:    -1,
		RefreshInterval: -1,
	})
	require.NoError(t, err)
	t.Cleanup(server.Close)

	for _, node := range nodes {
		waitForLists(t, server, node.Name, node.Lists)
	}

	return server, pool
}

func waitForLists(t *testing.T, server *api.Server, node string, count int) {
	t.Helper()

	require.Eventually(t, func() bool {
		lists, err := server.GetListCount(node)
		return err == nil && lists == count
	}, time.Second, 5*time.Millisecond, "lists of %s were not initialized", node)
}

func timedEvent(id string, onAir, duration string) event.Event {
	ev := event.Event{
		ID:         id,
		Type:       event.Primary,
		Title:      id,
		Transition: event.Cut,
		Control:    event.AutoTimed | event.AutoPlay,
	}

	if onAir != "" {
		ev.OnAirTime = mustParse(onAir)
	}
	ev.Duration = mustParse(duration)

	return ev
}

func mustParse(text string) timecode.TimeCode {
	tc, err := timecode.Parse(text, timecode.NTSC)
	if err != nil {
		panic(err)
	}

	return tc
}
