package sse_test

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarpt/list-coordinator/internal/sse"
	"github.com/sarpt/list-coordinator/pkg/api"
	"github.com/sarpt/list-coordinator/pkg/channel"
	"github.com/sarpt/list-coordinator/pkg/device/memory"
	"github.com/sarpt/list-coordinator/pkg/event"
)

type sseEvent struct {
	name string
	data string
}

func readEvents(body *bufio.Scanner, events chan<- sseEvent) {
	defer close(events)

	current := sseEvent{}
	for body.Scan() {
		line := body.Text()
		switch {
		case line == "":
			if current.name != "" {
				events <- current
			}
			current = sseEvent{}
		case strings.HasPrefix(line, "event:"):
			current.name = strings.TrimPrefix(line, "event:")
		case strings.HasPrefix(line, "data:"):
			current.data += strings.TrimPrefix(line, "data:")
		}
	}
}

func nextEvent(t *testing.T, events <-chan sseEvent) sseEvent {
	t.Helper()

	select {
	case ev, ok := <-events:
		require.True(t, ok, "stream closed")
		return ev
	case <-time.After(2 * time.Second):
		require.FailNow(t, "no event received")
	}

	return sseEvent{}
}

func TestSse_StreamDeliversClientNotifications(t *testing.T) {
	// given
	logger, _ := test.NewNullLogger()
	pool := memory.NewPool([]memory.NodeConfig{{Name: "ADC1", Lists: 1}})
	require.NoError(t, pool.Connect("ADC1"))

	server, err := api.NewServer(api.Config{
		Logger:          logger,
		Plugins:         []api.Plugin{sse.NewServer(sse.Config{Logger: logger})},
		Pool:            pool,
		ReapInterval:    -1,
		RefreshInterval: -1,
	})
	require.NoError(t, err)
	t.Cleanup(server.Close)

	httpServer := httptest.NewServer(server.Handler())
	t.Cleanup(httpServer.Close)

	require.Eventually(t, func() bool {
		_, err := server.GetListCount("ADC1")
		return err == nil
	}, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, httpServer.URL+"/sse/callbacks?name=studio", nil)
	require.NoError(t, err)
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, "text/event-stream", res.Header.Get("Content-Type"))

	events := make(chan sseEvent, 16)
	go readEvents(bufio.NewScanner(res.Body), events)

	registered := nextEvent(t, events)
	require.Equal(t, "client.registered", registered.name)

	var identity struct {
		Identity string `json:"Identity"`
		Name     string `json:"Name"`
	}
	require.NoError(t, json.Unmarshal([]byte(registered.data), &identity))
	assert.Equal(t, "studio", identity.Name)
	_, ok := server.Client(identity.Identity)
	require.True(t, ok)

	ch := channel.New("ADC1", 1)
	require.NoError(t, server.RegisterListListener(ch, identity.Identity))

	// when
	_, err = server.InsertEvents(ch, "editor", 0, []event.Event{{ID: "a", Type: event.Primary}})
	require.NoError(t, err)
	_, err = server.LockList(ch, identity.Identity)
	require.NoError(t, err)

	// then
	added := nextEvent(t, events)
	assert.Equal(t, "events.added", added.name)
	assert.Contains(t, added.data, "\"Index\":0")

	locked := nextEvent(t, events)
	assert.Equal(t, "lock.locked", locked.name)

	// when
	cancel()

	// then
	require.Eventually(t, func() bool {
		_, ok := server.Client(identity.Identity)
		return !ok
	}, time.Second, 5*time.Millisecond)

	available, err := server.IsListAvailable(ch, "editor")
	require.NoError(t, err)
	assert.True(t, available)
}
