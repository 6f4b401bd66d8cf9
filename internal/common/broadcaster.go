package common

import (
	"sync"
)

type Subscriber[CT any] interface {
	Receive(change CT)
}

// SubscriberFunc allows plain functions to be used as subscribers.
type SubscriberFunc[CT any] func(change CT)

func (f SubscriberFunc[CT]) Receive(change CT) {
	f(change)
}

// Broadcaster delivers changes sent from any goroutine to all subscribers, one change at a time,
// in the order of subscription. Subscribers must not Send on the same broadcaster.
type Broadcaster[CT any] struct {
	changes     chan CT
	done        chan struct{}
	lock        *sync.RWMutex
	nextID      int
	order       []int
	subscribers map[int]Subscriber[CT]
}

func NewBroadcaster[CT any]() *Broadcaster[CT] {
	return &Broadcaster[CT]{
		changes:     make(chan CT),
		done:        make(chan struct{}),
		lock:        &sync.RWMutex{},
		subscribers: map[int]Subscriber[CT]{},
	}
}

// Subscribe registers subscriber and returns function removing it.
func (cb *Broadcaster[CT]) Subscribe(sub Subscriber[CT]) func() {
	cb.lock.Lock()
	defer cb.lock.Unlock()

	id := cb.nextID
	cb.nextID++
	cb.subscribers[id] = sub
	cb.order = append(cb.order, id)

	return func() {
		cb.lock.Lock()
		defer cb.lock.Unlock()

		delete(cb.subscribers, id)
		for idx, subID := range cb.order {
			if subID == id {
				cb.order = append(cb.order[:idx], cb.order[idx+1:]...)
				break
			}
		}
	}
}

// Send passes change to the broadcasting goroutine. Changes sent after Close are dropped.
func (cb *Broadcaster[CT]) Send(payload CT) {
	select {
	case cb.changes <- payload:
	case <-cb.done:
	}
}

// Broadcast starts goroutine distributing sent changes.
func (cb *Broadcaster[CT]) Broadcast() {
	go func() {
		for {
			select {
			case change := <-cb.changes:
				cb.lock.RLock()
				for _, id := range cb.order {
					cb.subscribers[id].Receive(change)
				}
				cb.lock.RUnlock()
			case <-cb.done:
				return
			}
		}
	}()
}

// Close stops broadcasting. Safe to call multiple times.
func (cb *Broadcaster[CT]) Close() {
	cb.lock.Lock()
	defer cb.lock.Unlock()

	select {
	case <-cb.done:
	default:
		close(cb.done)
	}
}
