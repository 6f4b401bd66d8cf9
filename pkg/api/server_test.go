package api_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarpt/list-coordinator/pkg/api"
	"github.com/sarpt/list-coordinator/pkg/channel"
	"github.com/sarpt/list-coordinator/pkg/device"
	"github.com/sarpt/list-coordinator/pkg/device/memory"
	"github.com/sarpt/list-coordinator/pkg/event"
	"github.com/sarpt/list-coordinator/pkg/ripple"
)

func TestServer_LockedListIsMutableOnlyByOwner(t *testing.T) {
	// given
	server, _ := newMemoryServer(t, memory.NodeConfig{Name: "ADC1", Lists: 2})
	ch := channel.New("ADC1", 1)

	owner := newRecordingClient("owner")
	other := newRecordingClient("other")
	server.ConnectClient(owner)
	server.ConnectClient(other)
	require.NoError(t, server.RegisterListListener(ch, "owner"))
	require.NoError(t, server.RegisterListListener(ch, "other"))

	// when
	locked, err := server.LockList(ch, "owner")
	require.NoError(t, err)
	relocked, err := server.LockList(ch, "owner")
	require.NoError(t, err)

	_, otherErr := server.InsertEvents(ch, "other", -1, []event.Event{{ID: "x", Type: event.Primary}})
	_, ownerErr := server.InsertEvents(ch, "owner", -1, []event.Event{{ID: "a", Type: event.Primary}, {ID: "b", Type: event.Primary}})

	// then
	assert.True(t, locked)
	assert.False(t, relocked)
	assert.ErrorIs(t, otherErr, api.ErrChannelLocked)
	require.NoError(t, ownerErr)

	expected := []string{"locked ADC1/1 by owner", "added ADC1/1 0:2"}
	assert.Equal(t, expected, owner.received())
	assert.Equal(t, expected, other.received())

	available, err := server.IsListAvailable(ch, "other")
	require.NoError(t, err)
	assert.False(t, available)

	// when
	_, err = server.UnlockList(ch, "other")
	assert.ErrorIs(t, err, api.ErrChannelLocked)

	unlocked, err := server.UnlockList(ch, "owner")
	require.NoError(t, err)

	// then
	assert.True(t, unlocked)
	assert.Contains(t, other.received(), "unlocked ADC1/1 by owner")
	require.NoError(t, server.DeleteEvent(ch, "other", "a"))

	count, err := server.GetEventsCount(ch)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestServer_ResolvesChannelErrors(t *testing.T) {
	server, pool := newMemoryServer(t, memory.NodeConfig{Name: "ADC1", Lists: 2})
	pool.Configure(memory.NodeConfig{Name: "ADC2", Lists: 2})

	_, err := server.GetEventsCount(channel.New("ADC9", 1))
	assert.ErrorIs(t, err, api.ErrUnknownNode)

	_, err = server.GetEventsCount(channel.New("ADC2", 1))
	assert.ErrorIs(t, err, api.ErrNodeNotRunning)

	_, err = server.GetEventsCount(channel.New("ADC1", 3))
	assert.ErrorIs(t, err, api.ErrListNotProvisioned)

	_, err = server.LockList(channel.New("ADC1", 1), "stranger")
	assert.ErrorIs(t, err, api.ErrUnknownClient)

	assert.Equal(t, []string{"ADC1", "ADC2"}, server.GetAllConfiguredServers())
	assert.Equal(t, []string{"ADC1"}, server.GetAvailableDeviceServers())
}

func TestServer_NodeRemovalIsIdempotent(t *testing.T) {
	// given
	server, pool := newMemoryServer(t, memory.NodeConfig{Name: "ADC1", Lists: 2})
	listener := newRecordingClient("listener")
	server.ConnectClient(listener)
	require.NoError(t, server.RegisterConnectionStateListener("ADC1", "listener"))

	// when
	require.NoError(t, pool.Disconnect("ADC1"))
	require.NoError(t, pool.Disconnect("ADC1"))
	server.OnServerDisconnected("ADC1")

	// then
	require.Eventually(t, func() bool {
		_, err := server.GetListCount("ADC1")
		return err != nil
	}, time.Second, 5*time.Millisecond)

	_, err := server.GetListCount("ADC1")
	assert.ErrorIs(t, err, api.ErrNodeNotRunning)

	// when
	require.NoError(t, pool.Connect("ADC1"))

	// then
	waitForLists(t, server, "ADC1", 2)
	assert.Equal(t, []string{"ADC1 disconnected", "ADC1 disconnected", "ADC1 connected"}, listener.received())
}

func TestServer_RippleTimeStoresRescheduledEvents(t *testing.T) {
	// given
	server, pool := newMemoryServer(t, memory.NodeConfig{Name: "ADC1", Lists: 1})
	pool.SetClock(func() time.Time {
		return time.Date(2020, 1, 1, 9, 0, 0, 0, time.UTC)
	})
	ch := channel.New("ADC1", 1)
	client := newRecordingClient("editor")
	server.ConnectClient(client)
	require.NoError(t, server.RegisterListListener(ch, "editor"))

	_, err := server.InsertEvents(ch, "editor", 0, []event.Event{
		timedEvent("1", "10:00:00:00", "00:00:10:00"),
		timedEvent("2", "", "00:00:15:00"),
		timedEvent("3", "11:00:00:00", "00:00:05:00"),
	})
	require.NoError(t, err)

	// when
	result, err := server.RippleTime(ch, "editor", "1")

	// then
	require.NoError(t, err)
	assert.Equal(t, ripple.Greater, result.Classification)
	require.Len(t, result.Modified, 2)

	snapshot, err := server.GetList(ch)
	require.NoError(t, err)
	assert.Equal(t, "10:00:10:00", snapshot.Events[1].OnAirTime.String())
	assert.Equal(t, "10:00:25:00", snapshot.Events[2].OnAirTime.String())
	assert.Equal(t, []string{"added ADC1/1 0:3", "updated ADC1/1 2"}, client.received())

	_, err = server.RippleTime(ch, "editor", "missing")
	assert.ErrorIs(t, err, api.ErrValidation)
}

func TestServer_GangCommandAddressesListsByMask(t *testing.T) {
	server, _ := newMemoryServer(t, memory.NodeConfig{Name: "ADC1", Lists: 3})
	for number := 1; number <= 3; number++ {
		_, err := server.InsertEvents(channel.New("ADC1", number), "operator", 0, []event.Event{{Type: event.Primary}})
		require.NoError(t, err)
	}

	require.NoError(t, server.GangCommand("ADC1", "operator", device.GangMask(1, 3), device.PlayList))

	for number, running := range map[int]bool{1: true, 2: false, 3: true} {
		snapshot, err := server.GetList(channel.New("ADC1", number))
		require.NoError(t, err)
		assert.Equal(t, running, snapshot.Events[0].Status.Has(event.Running), "list %d", number)
	}

	err := server.GangCommand("ADC1", "operator", device.GangMask(4), device.PlayList)
	assert.ErrorIs(t, err, api.ErrListNotProvisioned)

	err = server.GangCommand("ADC1", "operator", 0, device.PlayList)
	assert.ErrorIs(t, err, api.ErrValidation)
}

func TestServer_PagingReadsClampToListEnd(t *testing.T) {
	// given
	server, _ := newMemoryServer(t, memory.NodeConfig{Name: "ADC1", Lists: 1})
	ch := channel.New("ADC1", 1)

	_, err := server.InsertEvents(ch, "planner", 0, []event.Event{
		timedEvent("first", "10:00:00:00", "00:00:10:00"),
		timedEvent("second", "10:00:10:00", "00:00:10:00"),
	})
	require.NoError(t, err)

	// when
	rest, err := server.GetListPartial(ch, 1, math.MaxInt)
	require.NoError(t, err)
	beyond, err := server.GetListPage(ch, (1<<62)+1, 3)
	require.NoError(t, err)
	largestPage, err := server.GetListPage(ch, math.MaxInt, math.MaxInt)
	require.NoError(t, err)
	whole, err := server.GetListPage(ch, 0, math.MaxInt)
	require.NoError(t, err)

	// then
	require.Len(t, rest, 1)
	assert.Equal(t, "second", rest[0].ID)
	assert.Empty(t, beyond)
	assert.Empty(t, largestPage)
	assert.Len(t, whole, 2)
}

func TestServer_QueriesByPeriodPageAndSecondaries(t *testing.T) {
	// given
	server, _ := newMemoryServer(t, memory.NodeConfig{Name: "ADC1", Lists: 1})
	ch := channel.New("ADC1", 1)
	secondary := event.Event{ID: "s1", Type: event.Secondary, PrimaryID: "morning"}

	_, err := server.InsertEvents(ch, "planner", 0, []event.Event{
		timedEvent("morning", "10:00:00:00", "00:00:10:00"),
		secondary,
		timedEvent("noon", "12:00:00:00", "00:00:10:00"),
		timedEvent("night", "23:30:00:00", "00:00:10:00"),
	})
	require.NoError(t, err)

	// when
	morning, err := server.GetListsByPeriod(ch, "09:00:00:00", "11:00:00:00")
	require.NoError(t, err)
	overnight, err := server.GetListsByPeriod(ch, "23:00:00:00", "10:30:00:00")
	require.NoError(t, err)
	_, parseErr := server.GetListsByPeriod(ch, "9 o'clock", "11:00:00:00")

	// then
	require.Len(t, morning, 1)
	assert.Equal(t, "morning", morning[0].ID)
	require.Len(t, overnight, 2)
	assert.Equal(t, "morning", overnight[0].ID)
	assert.Equal(t, "night", overnight[1].ID)
	assert.ErrorIs(t, parseErr, api.ErrTimecodeParse)

	secondaries, err := server.GetListOfSecondaries(ch, "morning")
	require.NoError(t, err)
	assert.Equal(t, []string{"s1"}, []string{secondaries[0].ID})
	_, err = server.GetListOfSecondaries(ch, "unknown")
	assert.ErrorIs(t, err, api.ErrValidation)

	page, err := server.GetListPage(ch, 1, 3)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "night", page[0].ID)

	partial, err := server.GetListPartial(ch, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"s1", "noon"}, []string{partial[0].ID, partial[1].ID})

	_, err = server.GetListPage(ch, 0, 0)
	assert.ErrorIs(t, err, api.ErrValidation)

	filtered, err := server.GetListFiltered(ch, event.Filter{Types: []event.Type{event.Secondary}})
	require.NoError(t, err)
	assert.Len(t, filtered, 1)
}

func TestServer_DisconnectingClientReleasesItsLocks(t *testing.T) {
	server, _ := newMemoryServer(t, memory.NodeConfig{Name: "ADC1", Lists: 1})
	ch := channel.New("ADC1", 1)
	owner := newRecordingClient("owner")
	watcher := newRecordingClient("watcher")
	server.ConnectClient(owner)
	server.ConnectClient(watcher)
	require.NoError(t, server.RegisterListListener(ch, "watcher"))

	_, err := server.LockList(ch, "owner")
	require.NoError(t, err)

	server.DisconnectClient("owner")

	available, err := server.IsListAvailable(ch, "watcher")
	require.NoError(t, err)
	assert.True(t, available)
	assert.Equal(t, []string{"locked ADC1/1 by owner", "unlocked ADC1/1 by owner"}, watcher.received())
	_, ok := server.Client("owner")
	assert.False(t, ok)
}

func TestServer_LookaheadToggle(t *testing.T) {
	server, _ := newMemoryServer(t, memory.NodeConfig{Name: "ADC1", Lists: 1, Lookahead: 4})
	ch := channel.New("ADC1", 1)

	lookahead, err := server.GetLookahead(ch)
	require.NoError(t, err)
	assert.Equal(t, 4, lookahead)

	toggled, err := server.ToggleLookahead(ch, "operator")
	require.NoError(t, err)
	assert.Equal(t, 0, toggled)

	toggled, err = server.ToggleLookahead(ch, "operator")
	require.NoError(t, err)
	assert.Equal(t, 4, toggled)

	require.NoError(t, server.SetLookahead(ch, "operator", 8))
	lookahead, err = server.GetLookahead(ch)
	require.NoError(t, err)
	assert.Equal(t, 8, lookahead)
}

func TestServer_StatusReportsNodesAndClients(t *testing.T) {
	server, pool := newMemoryServer(t, memory.NodeConfig{Name: "ADC1", Lists: 2})
	pool.Configure(memory.NodeConfig{Name: "ADC2", Lists: 1})
	watcher := newRecordingClient("watcher")
	server.ConnectClient(watcher)
	require.NoError(t, server.RegisterListListener(channel.New("ADC1", 2), "watcher"))

	status := server.Status()

	assert.Equal(t, []string{"watcher"}, status.Clients)
	assert.Equal(t, []string{"watcher"}, status.Subscribers)
	assert.Equal(t, []api.NodeStatus{
		{Name: "ADC1", Connected: true, Running: true, Lists: 2},
		{Name: "ADC2"},
	}, status.Nodes)
}
