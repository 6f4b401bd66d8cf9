package lists_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarpt/list-coordinator/internal/mocks"
	"github.com/sarpt/list-coordinator/pkg/channel"
	"github.com/sarpt/list-coordinator/pkg/device"
	"github.com/sarpt/list-coordinator/pkg/device/memory"
	"github.com/sarpt/list-coordinator/pkg/event"
	"github.com/sarpt/list-coordinator/pkg/state/pkg/lists"
)

func newMemoryList(t *testing.T, changes *[]lists.Change) *lists.List {
	t.Helper()

	pool := memory.NewPool([]memory.NodeConfig{{Name: "ADC1", Lists: 1, Lookahead: 3}})
	require.NoError(t, pool.Connect("ADC1"))
	node, _ := pool.Node("ADC1")
	deviceList, err := node.List(1)
	require.NoError(t, err)

	list := lists.NewList(lists.Config{
		Channel: channel.New("ADC1", 1),
		Device:  deviceList,
		Name:    "Main",
		OnChange: func(change lists.Change) {
			*changes = append(*changes, change)
		},
	})
	require.NoError(t, list.Load())

	return list
}

func primaries(ids ...string) []event.Event {
	events := make([]event.Event, 0, len(ids))
	for _, id := range ids {
		events = append(events, event.Event{ID: id, Type: event.Primary, Title: id})
	}

	return events
}

func ids(events []event.Event) []string {
	result := make([]string, 0, len(events))
	for _, ev := range events {
		result = append(result, ev.ID)
	}

	return result
}

func TestInsert_MirrorsDeviceAndNotifies(t *testing.T) {
	// given
	changes := []lists.Change{}
	list := newMemoryList(t, &changes)

	// when
	inserted, err := list.Insert(-1, primaries("a", "b"))
	require.NoError(t, err)
	_, err = list.InsertAfter("a", []event.Event{{Type: event.Primary, Title: "generated"}})
	require.NoError(t, err)

	// then
	require.Len(t, inserted, 2)
	events := list.Events()
	require.Len(t, events, 3)
	assert.Equal(t, "a", events[0].ID)
	assert.NotEmpty(t, events[1].ID)
	assert.Equal(t, "generated", events[1].Title)
	assert.Equal(t, "b", events[2].ID)

	require.Len(t, changes, 2)
	assert.Equal(t, lists.EventsAdded, changes[0].Variant())
	assert.Equal(t, 0, changes[0].Index)
	assert.Equal(t, 1, changes[1].Index)
	assert.Equal(t, channel.New("ADC1", 1), changes[1].Channel)
	assert.Greater(t, changes[1].Revision, changes[0].Revision)
}

func TestInsertAfter_RequiresKnownReference(t *testing.T) {
	changes := []lists.Change{}
	list := newMemoryList(t, &changes)

	_, err := list.InsertAfter("", primaries("a"))
	assert.ErrorIs(t, err, lists.ErrInvalidArgument)

	_, err = list.InsertAfter("missing", primaries("a"))
	assert.ErrorIs(t, err, lists.ErrEventNotFound)
	assert.ErrorIs(t, err, lists.ErrInvalidArgument)

	assert.Empty(t, changes)
	assert.Equal(t, 0, list.Count())
}

func TestInsert_RejectsDuplicatedIDs(t *testing.T) {
	changes := []lists.Change{}
	list := newMemoryList(t, &changes)
	_, err := list.Insert(0, primaries("a"))
	require.NoError(t, err)

	_, err = list.Insert(0, primaries("a"))
	assert.ErrorIs(t, err, lists.ErrInvalidArgument)

	_, err = list.Insert(0, primaries("b", "b"))
	assert.ErrorIs(t, err, lists.ErrInvalidArgument)
	assert.Equal(t, 1, list.Count())
}

func TestMove_RestrictedToLookaheadWindow(t *testing.T) {
	// given
	changes := []lists.Change{}
	list := newMemoryList(t, &changes)
	_, err := list.Insert(0, primaries("a", "b", "c", "d", "e"))
	require.NoError(t, err)

	// when
	outside := list.Move(2, 2, 0)
	inside := list.Move(0, 1, 2)

	// then
	assert.ErrorIs(t, outside, lists.ErrInvalidArgument)
	require.NoError(t, inside)
	assert.Equal(t, []string{"b", "c", "a", "d", "e"}, ids(list.Events()))

	last := changes[len(changes)-1]
	assert.Equal(t, lists.EventsMoved, last.Variant())
	assert.Equal(t, []string{"a"}, last.IDs)
	assert.Equal(t, 2, last.Index)
}

func TestDeleteAndModify_ValidateIDs(t *testing.T) {
	changes := []lists.Change{}
	list := newMemoryList(t, &changes)
	_, err := list.Insert(0, primaries("a", "b"))
	require.NoError(t, err)

	assert.ErrorIs(t, list.Delete([]string{"a", "missing"}), lists.ErrEventNotFound)
	assert.ErrorIs(t, list.Modify(primaries("missing")), lists.ErrEventNotFound)
	assert.Equal(t, 2, list.Count())

	modified := primaries("b")
	modified[0].Title = "renamed"
	require.NoError(t, list.Modify(modified))
	ev, ok := list.Event("b")
	require.True(t, ok)
	assert.Equal(t, "renamed", ev.Title)

	require.NoError(t, list.Delete([]string{"a"}))
	assert.Equal(t, []string{"b"}, ids(list.Events()))

	require.NoError(t, list.DeleteAll())
	assert.Equal(t, 0, list.Count())
	assert.Equal(t, lists.ListCleared, changes[len(changes)-1].Variant())
}

func TestToggleLookahead_RestoresLastValue(t *testing.T) {
	changes := []lists.Change{}
	list := newMemoryList(t, &changes)

	off, err := list.ToggleLookahead()
	require.NoError(t, err)
	assert.Equal(t, 0, off)
	assert.Equal(t, 0, list.Lookahead())

	on, err := list.ToggleLookahead()
	require.NoError(t, err)
	assert.Equal(t, 3, on)
	assert.Equal(t, 3, list.Lookahead())

	assert.ErrorIs(t, list.SetLookahead(-1), lists.ErrInvalidArgument)
}

func TestRefresh_NotifiesOnlyOnDifference(t *testing.T) {
	// given
	ctrl := gomock.NewController(t)
	deviceList := mocks.NewMockList(ctrl)
	changes := []lists.Change{}
	list := lists.NewList(lists.Config{
		Channel: channel.New("ADC1", 2),
		Device:  deviceList,
		OnChange: func(change lists.Change) {
			changes = append(changes, change)
		},
	})

	first := primaries("a")
	second := primaries("a", "b")
	gomock.InOrder(
		deviceList.EXPECT().Refresh().Return(nil),
		deviceList.EXPECT().Events().Return(first, nil),
		deviceList.EXPECT().Lookahead().Return(16, nil),
		deviceList.EXPECT().Refresh().Return(nil),
		deviceList.EXPECT().Events().Return(first, nil),
		deviceList.EXPECT().Lookahead().Return(16, nil),
		deviceList.EXPECT().Refresh().Return(nil),
		deviceList.EXPECT().Events().Return(second, nil),
		deviceList.EXPECT().Lookahead().Return(16, nil),
	)

	// when
	require.NoError(t, list.Load())
	unchanged, err := list.Refresh()
	require.NoError(t, err)
	changed, err := list.Refresh()
	require.NoError(t, err)

	// then
	assert.False(t, unchanged)
	assert.True(t, changed)
	require.Len(t, changes, 1)
	assert.Equal(t, lists.ListRefreshed, changes[0].Variant())
	assert.Equal(t, []string{"a", "b"}, ids(changes[0].Events))
}

func TestDeviceErrorsArePropagated(t *testing.T) {
	ctrl := gomock.NewController(t)
	deviceList := mocks.NewMockList(ctrl)
	list := lists.NewList(lists.Config{Channel: channel.New("ADC1", 1), Device: deviceList})

	deviceList.EXPECT().Perform(device.PlayList).Return(device.ErrNotConnected)

	err := list.Perform(device.PlayList)
	assert.True(t, errors.Is(err, device.ErrNotConnected))
}

func TestDispose_RejectsFurtherOperations(t *testing.T) {
	changes := []lists.Change{}
	list := newMemoryList(t, &changes)

	assert.True(t, list.Dispose())
	assert.False(t, list.Dispose())

	_, err := list.Insert(0, primaries("a"))
	assert.ErrorIs(t, err, lists.ErrDisposed)
	_, err = list.Refresh()
	assert.ErrorIs(t, err, lists.ErrDisposed)
	assert.False(t, list.SetName("other"))
	assert.Empty(t, changes)
}

func TestSetName_NotifiesOnDifference(t *testing.T) {
	changes := []lists.Change{}
	list := newMemoryList(t, &changes)

	assert.False(t, list.SetName("Main"))
	assert.True(t, list.SetName("Backup"))
	assert.Equal(t, "Backup", list.Name())
	require.Len(t, changes, 1)
	assert.Equal(t, lists.ListNameChanged, changes[0].Variant())
}
