package api

import (
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedCalls struct {
	calls []string
	lock  *sync.Mutex
}

func (r *recordedCalls) handler(kind string, done chan<- struct{}) nodeHandler {
	return func(node string) {
		r.lock.Lock()
		r.calls = append(r.calls, kind+":"+node)
		r.lock.Unlock()

		if done != nil {
			done <- struct{}{}
		}
	}
}

func (r *recordedCalls) all() []string {
	r.lock.Lock()
	defer r.lock.Unlock()

	return append([]string{}, r.calls...)
}

func TestUpdateLoop_DrainsInitsBeforeRemovalsBeforeUpdates(t *testing.T) {
	// given
	logger, _ := test.NewNullLogger()
	recorded := &recordedCalls{lock: &sync.Mutex{}}
	updated := make(chan struct{}, 4)
	maintained := make(chan struct{}, 4)

	loop := newUpdateLoop(updateLoopConfig{
		init:   recorded.handler("init", nil),
		log:    logger,
		remove: recorded.handler("remove", nil),
		update: recorded.handler("update", updated),
		maintain: func() {
			maintained <- struct{}{}
		},
		nameRefreshEvery: 1,
	})

	loop.enqueueUpdate("ADC1")
	loop.enqueueRemoval("ADC2")
	loop.enqueueUpdate("ADC1")
	loop.enqueueInit("ADC1")

	// when
	loop.start()
	defer loop.close()

	// then
	select {
	case <-updated:
	case <-time.After(time.Second):
		t.Fatal("update was not processed")
	}

	select {
	case <-maintained:
	case <-time.After(time.Second):
		t.Fatal("maintenance was not run")
	}

	assert.Equal(t, []string{"init:ADC1", "remove:ADC2", "update:ADC1"}, recorded.all())
}

func TestUpdateLoop_CloseStopsLoop(t *testing.T) {
	logger, _ := test.NewNullLogger()
	recorded := &recordedCalls{lock: &sync.Mutex{}}
	loop := newUpdateLoop(updateLoopConfig{
		init:   recorded.handler("init", nil),
		log:    logger,
		remove: recorded.handler("remove", nil),
		update: recorded.handler("update", nil),
	})
	loop.start()

	loop.close()
	loop.close()
	loop.enqueueInit("ADC1")

	select {
	case <-loop.done:
	default:
		require.Fail(t, "loop did not exit")
	}
	assert.Empty(t, recorded.all())
}

func TestListName_FallsBackToDefault(t *testing.T) {
	names := []string{"Main", ""}

	assert.Equal(t, "Main", listName(names, 1))
	assert.Equal(t, "List 2", listName(names, 2))
	assert.Equal(t, "List 3", listName(names, 3))
	assert.Equal(t, "List 1", listName(nil, 1))
}
