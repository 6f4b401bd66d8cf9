package lists

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/sarpt/list-coordinator/internal/common"
	"github.com/sarpt/list-coordinator/pkg/channel"
)

var (
	// ErrNodeNotRunning informs that lists of the node are not initialized.
	ErrNodeNotRunning = errors.New("node is not running")

	// ErrListNotProvisioned informs that the node does not have a list with requested number.
	ErrListNotProvisioned = errors.New("list is not provisioned on node")
)

// Storage holds handles of lists for every initialized node.
type Storage struct {
	broadcaster *common.Broadcaster[NodeChange]
	lock        *sync.RWMutex
	nodes       map[string][]*List
}

// NewStorage creates storage announcing node changes on broadcaster. Nil broadcaster disables announcements.
func NewStorage(broadcaster *common.Broadcaster[NodeChange]) *Storage {
	return &Storage{
		broadcaster: broadcaster,
		lock:        &sync.RWMutex{},
		nodes:       map[string][]*List{},
	}
}

// PutIfAbsent stores lists of the node unless the node already has lists stored.
// Reports whether lists were stored.
func (s *Storage) PutIfAbsent(node string, lists []*List) bool {
	s.lock.Lock()
	if _, ok := s.nodes[node]; ok {
		s.lock.Unlock()
		return false
	}

	s.nodes[node] = append([]*List{}, lists...)
	s.lock.Unlock()

	s.send(NodeChange{
		ChangeVariant: NodeInitialized,
		Node:          node,
		Lists:         len(lists),
	})
	return true
}

// RemoveIfPresent takes lists of the node out of storage. Only one caller receives the lists.
func (s *Storage) RemoveIfPresent(node string) ([]*List, bool) {
	s.lock.Lock()
	lists, ok := s.nodes[node]
	if !ok {
		s.lock.Unlock()
		return nil, false
	}

	delete(s.nodes, node)
	s.lock.Unlock()

	s.send(NodeChange{
		ChangeVariant: NodeRemoved,
		Node:          node,
		Lists:         len(lists),
	})
	return lists, true
}

func (s *Storage) Has(node string) bool {
	s.lock.RLock()
	defer s.lock.RUnlock()

	_, ok := s.nodes[node]
	return ok
}

// Lists returns handles of all lists of the node ordered by list number.
func (s *Storage) Lists(node string) ([]*List, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	lists, ok := s.nodes[node]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotRunning, node)
	}

	return append([]*List{}, lists...), nil
}

func (s *Storage) List(ch channel.Channel) (*List, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	lists, ok := s.nodes[ch.Node]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotRunning, ch.Node)
	}

	if ch.List < 1 || ch.List > len(lists) {
		return nil, fmt.Errorf("%w: %s", ErrListNotProvisioned, ch)
	}

	return lists[ch.List-1], nil
}

// Nodes returns names of nodes with initialized lists in ascending order.
func (s *Storage) Nodes() []string {
	s.lock.RLock()
	defer s.lock.RUnlock()

	nodes := make([]string, 0, len(s.nodes))
	for node := range s.nodes {
		nodes = append(nodes, node)
	}

	sort.Strings(nodes)
	return nodes
}

// Subscribe registers cb for node changes. Returns function cancelling the subscription.
func (s *Storage) Subscribe(cb func(change NodeChange)) func() {
	if s.broadcaster == nil {
		return func() {}
	}

	return s.broadcaster.Subscribe(common.SubscriberFunc[NodeChange](cb))
}

func (s *Storage) send(change NodeChange) {
	if s.broadcaster == nil {
		return
	}

	s.broadcaster.Send(change)
}
