// Package subscribers keeps registered client callbacks and delivers list and node notifications to them.
//
// All registry state is guarded by a single mutex which is also held for the whole delivery of a
// notification, so callbacks must not call back into the Storage synchronously.
package subscribers

//go:generate mockgen -destination=../../../../internal/mocks/mock_callback.go -package=mocks github.com/sarpt/list-coordinator/pkg/state/pkg/subscribers Callback

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/sarpt/list-coordinator/pkg/channel"
	"github.com/sarpt/list-coordinator/pkg/event"
	"github.com/sarpt/list-coordinator/pkg/state/pkg/lists"
)

// ConnectionStatus of a device node reported to connection state listeners.
type ConnectionStatus string

const (
	Connected    ConnectionStatus = "connected"
	Disconnected ConnectionStatus = "disconnected"
)

// Callback is the push surface of a single client.
type Callback interface {
	Identity() string
	OnListChange(ch channel.Channel, variant lists.ChangeVariant)
	OnEventsAdded(ch channel.Channel, index int, events []event.Event)
	OnEventsUpdated(ch channel.Channel, events []event.Event)
	OnEventsDeleted(ch channel.Channel, ids []string)
	OnEventsMoved(ch channel.Channel, index int, ids []string)
	ListLocked(ch channel.Channel, client string)
	ListUnlocked(ch channel.Channel, client string)
	OnConnectionStateChange(node string, status ConnectionStatus)
	// CheckAvailability is a liveness probe. Clients answering false are reaped.
	CheckAvailability() bool
}

// ReapedHandler receives a callback removed by reaping together with channels it had locked.
type ReapedHandler = func(cb Callback, locked []channel.Channel)

type subscriber struct {
	alive    bool
	callback Callback
	channels map[channel.Channel]bool
	id       string
	locks    map[channel.Channel]bool
	nodes    map[string]bool
}

func (s *subscriber) empty() bool {
	return len(s.channels) == 0 && len(s.locks) == 0 && len(s.nodes) == 0
}

func (s *subscriber) interestedIn(ch channel.Channel) bool {
	return s.channels[ch] || s.locks[ch]
}

type Storage struct {
	lock        *sync.Mutex
	onReaped    ReapedHandler
	order       []string
	subscribers map[string]*subscriber
}

func NewStorage() *Storage {
	return &Storage{
		lock:        &sync.Mutex{},
		order:       []string{},
		subscribers: map[string]*subscriber{},
	}
}

// OnReaped sets handler called outside of registry lock for every reaped callback.
func (s *Storage) OnReaped(handler ReapedHandler) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.onReaped = handler
}

// Subscribe registers cb for notifications about the channel.
func (s *Storage) Subscribe(cb Callback, ch channel.Channel) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.register(cb).channels[ch] = true
}

// Unsubscribe stops notifications about the channel. Reports whether cb was subscribed to it.
func (s *Storage) Unsubscribe(id string, ch channel.Channel) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	sub, ok := s.subscribers[id]
	if !ok || !sub.channels[ch] {
		return false
	}

	delete(sub.channels, ch)
	return true
}

// UnsubscribeAll stops notifications about all channels. Node subscriptions and locks are kept.
func (s *Storage) UnsubscribeAll(id string) int {
	s.lock.Lock()
	defer s.lock.Unlock()

	sub, ok := s.subscribers[id]
	if !ok {
		return 0
	}

	count := len(sub.channels)
	sub.channels = map[channel.Channel]bool{}
	return count
}

// SubscribeNode registers cb for connection state changes of the node.
func (s *Storage) SubscribeNode(cb Callback, node string) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.register(cb).nodes[node] = true
}

func (s *Storage) UnsubscribeNode(id string, node string) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	sub, ok := s.subscribers[id]
	if !ok || !sub.nodes[node] {
		return false
	}

	delete(sub.nodes, node)
	return true
}

// AddLock records that cb owns the channel lock.
func (s *Storage) AddLock(cb Callback, ch channel.Channel) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.register(cb).locks[ch] = true
}

func (s *Storage) RemoveLock(id string, ch channel.Channel) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if sub, ok := s.subscribers[id]; ok {
		delete(sub.locks, ch)
	}
}

// Remove unregisters callback with id without disposing it.
func (s *Storage) Remove(id string) (Callback, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	sub, ok := s.subscribers[id]
	if !ok {
		return nil, false
	}

	s.remove(id)
	return sub.callback, true
}

// Callback returns registered callback with id.
func (s *Storage) Callback(id string) (Callback, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	sub, ok := s.subscribers[id]
	if !ok {
		return nil, false
	}

	return sub.callback, true
}

// Identities returns identities of registered callbacks in registration order.
func (s *Storage) Identities() []string {
	s.lock.Lock()
	defer s.lock.Unlock()

	return append([]string{}, s.order...)
}

// Channels returns channels cb with id is subscribed to.
func (s *Storage) Channels(id string) []channel.Channel {
	s.lock.Lock()
	defer s.lock.Unlock()

	channels := []channel.Channel{}
	sub, ok := s.subscribers[id]
	if !ok {
		return channels
	}

	for ch := range sub.channels {
		channels = append(channels, ch)
	}

	return channels
}

// NotifyChannel reaps dead callbacks and calls deliver once for every callback interested in the channel,
// in registration order. Liveness probes are started afterwards without waiting for them.
func (s *Storage) NotifyChannel(ch channel.Channel, deliver func(cb Callback)) {
	s.notify(func(sub *subscriber) bool {
		return sub.interestedIn(ch)
	}, deliver)
}

// NotifyNode delivers to callbacks subscribed to connection state of the node.
func (s *Storage) NotifyNode(node string, deliver func(cb Callback)) {
	s.notify(func(sub *subscriber) bool {
		return sub.nodes[node]
	}, deliver)
}

// Reap removes callbacks which failed the last liveness probe or have nothing subscribed nor locked.
// Removed callbacks implementing io.Closer are closed.
func (s *Storage) Reap() []Callback {
	type reapedSubscriber struct {
		callback Callback
		locked   []channel.Channel
	}

	s.lock.Lock()
	reaped := []reapedSubscriber{}
	for _, id := range append([]string{}, s.order...) {
		sub := s.subscribers[id]
		if sub.alive && !sub.empty() {
			continue
		}

		locked := make([]channel.Channel, 0, len(sub.locks))
		for ch := range sub.locks {
			locked = append(locked, ch)
		}

		reaped = append(reaped, reapedSubscriber{callback: sub.callback, locked: locked})
		s.remove(id)
	}
	handler := s.onReaped
	s.lock.Unlock()

	callbacks := make([]Callback, 0, len(reaped))
	for _, r := range reaped {
		if handler != nil {
			handler(r.callback, r.locked)
		}

		if closer, ok := r.callback.(io.Closer); ok {
			closer.Close()
		}

		callbacks = append(callbacks, r.callback)
	}

	return callbacks
}

// Probe checks liveness of every registered callback concurrently. Returned channel is closed
// when all probes finish; results are used by the next Reap.
func (s *Storage) Probe() <-chan struct{} {
	s.lock.Lock()
	probed := make([]*subscriber, 0, len(s.order))
	for _, id := range s.order {
		probed = append(probed, s.subscribers[id])
	}
	s.lock.Unlock()

	done := make(chan struct{})
	wg := &sync.WaitGroup{}
	for _, sub := range probed {
		wg.Add(1)
		go func(sub *subscriber) {
			defer wg.Done()

			alive := sub.callback.CheckAvailability()

			s.lock.Lock()
			defer s.lock.Unlock()
			if current, ok := s.subscribers[sub.id]; ok && current == sub {
				sub.alive = sub.alive && alive
			}
		}(sub)
	}

	go func() {
		wg.Wait()
		close(done)
	}()

	return done
}

// Run reaps and probes callbacks every interval until ctx is done.
func (s *Storage) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Reap()
			s.Probe()
		}
	}
}

func (s *Storage) notify(interested func(sub *subscriber) bool, deliver func(cb Callback)) {
	s.Reap()

	s.lock.Lock()
	for _, id := range s.order {
		sub := s.subscribers[id]
		if interested(sub) {
			deliver(sub.callback)
		}
	}
	s.lock.Unlock()

	s.Probe()
}

// register has to be called with lock held.
func (s *Storage) register(cb Callback) *subscriber {
	id := cb.Identity()
	if sub, ok := s.subscribers[id]; ok {
		return sub
	}

	sub := &subscriber{
		alive:    true,
		callback: cb,
		channels: map[channel.Channel]bool{},
		id:       id,
		locks:    map[channel.Channel]bool{},
		nodes:    map[string]bool{},
	}
	s.subscribers[id] = sub
	s.order = append(s.order, id)

	return sub
}

// remove has to be called with lock held.
func (s *Storage) remove(id string) {
	delete(s.subscribers, id)
	for idx, registered := range s.order {
		if registered == id {
			s.order = append(s.order[:idx], s.order[idx+1:]...)
			return
		}
	}
}
