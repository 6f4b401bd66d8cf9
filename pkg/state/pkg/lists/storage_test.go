package lists_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarpt/list-coordinator/internal/common"
	"github.com/sarpt/list-coordinator/pkg/channel"
	"github.com/sarpt/list-coordinator/pkg/state/pkg/lists"
)

func handles(node string, count int) []*lists.List {
	result := make([]*lists.List, 0, count)
	for number := 1; number <= count; number++ {
		result = append(result, lists.NewList(lists.Config{Channel: channel.New(node, number)}))
	}

	return result
}

func TestStorage_PutIfAbsentKeepsFirstLists(t *testing.T) {
	// given
	storage := lists.NewStorage(nil)
	first := handles("ADC1", 2)

	// when
	firstPut := storage.PutIfAbsent("ADC1", first)
	secondPut := storage.PutIfAbsent("ADC1", handles("ADC1", 4))

	// then
	assert.True(t, firstPut)
	assert.False(t, secondPut)

	stored, err := storage.Lists("ADC1")
	require.NoError(t, err)
	assert.Len(t, stored, 2)
	assert.Same(t, first[1], stored[1])
}

func TestStorage_ListResolvesChannels(t *testing.T) {
	storage := lists.NewStorage(nil)
	storage.PutIfAbsent("ADC1", handles("ADC1", 2))

	list, err := storage.List(channel.New("ADC1", 2))
	require.NoError(t, err)
	assert.Equal(t, channel.New("ADC1", 2), list.Channel())

	_, err = storage.List(channel.New("ADC1", 3))
	assert.ErrorIs(t, err, lists.ErrListNotProvisioned)

	_, err = storage.List(channel.New("ADC1", 0))
	assert.ErrorIs(t, err, lists.ErrListNotProvisioned)

	_, err = storage.List(channel.New("ADC2", 1))
	assert.ErrorIs(t, err, lists.ErrNodeNotRunning)
}

func TestStorage_RemoveIfPresentHandsListsToSingleCaller(t *testing.T) {
	// given
	storage := lists.NewStorage(nil)
	storage.PutIfAbsent("ADC1", handles("ADC1", 3))

	var removals int32
	wg := sync.WaitGroup{}

	// when
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := storage.RemoveIfPresent("ADC1"); ok {
				atomic.AddInt32(&removals, 1)
			}
		}()
	}
	wg.Wait()

	// then
	assert.Equal(t, int32(1), removals)
	assert.False(t, storage.Has("ADC1"))
	assert.Empty(t, storage.Nodes())
}

func TestStorage_AnnouncesNodeChanges(t *testing.T) {
	// given
	broadcaster := common.NewBroadcaster[lists.NodeChange]()
	broadcaster.Broadcast()
	defer broadcaster.Close()

	storage := lists.NewStorage(broadcaster)
	received := make(chan lists.NodeChange, 2)
	storage.Subscribe(func(change lists.NodeChange) {
		received <- change
	})

	// when
	storage.PutIfAbsent("ADC1", handles("ADC1", 2))
	storage.RemoveIfPresent("ADC1")

	// then
	for _, expected := range []lists.NodeChangeVariant{lists.NodeInitialized, lists.NodeRemoved} {
		select {
		case change := <-received:
			assert.Equal(t, expected, change.Variant())
			assert.Equal(t, "ADC1", change.Node)
			assert.Equal(t, 2, change.Lists)
		case <-time.After(time.Second):
			t.Fatalf("node change %s was not announced", expected)
		}
	}
}
