package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/sarpt/list-coordinator/pkg/device"
	"github.com/sarpt/list-coordinator/pkg/timecode"
)

// Node is a simulated device server. It satisfies device.Node.
type Node struct {
	clock     func() time.Time
	connected bool
	dropFrame bool
	listNames []string
	lists     []*List
	lock      *sync.RWMutex
	name      string
	rate      timecode.FrameRate
}

func newNode(cfg NodeConfig, clock func() time.Time) *Node {
	lookahead := cfg.Lookahead
	if lookahead <= 0 {
		lookahead = defaultLookahead
	}

	node := &Node{
		clock:     clock,
		dropFrame: cfg.DropFrame,
		listNames: append([]string{}, cfg.ListNames...),
		lock:      &sync.RWMutex{},
		name:      cfg.Name,
		rate:      cfg.FrameRate,
	}

	for idx := 0; idx < cfg.Lists; idx++ {
		node.lists = append(node.lists, newList(node, lookahead))
	}

	return node
}

func (n *Node) Name() string {
	return n.name
}

func (n *Node) Connected() bool {
	n.lock.RLock()
	defer n.lock.RUnlock()

	return n.connected
}

func (n *Node) ListCount() (int, error) {
	if !n.Connected() {
		return 0, device.ErrNotConnected
	}

	return len(n.lists), nil
}

// ListNames returns names as configured. The slice may be shorter than number of lists.
func (n *Node) ListNames() ([]string, error) {
	if !n.Connected() {
		return nil, device.ErrNotConnected
	}

	n.lock.RLock()
	defer n.lock.RUnlock()

	return append([]string{}, n.listNames...), nil
}

// SetListNames replaces names reported by the node.
func (n *Node) SetListNames(names []string) {
	n.lock.Lock()
	defer n.lock.Unlock()

	n.listNames = append([]string{}, names...)
}

func (n *Node) List(number int) (device.List, error) {
	list, err := n.list(number)
	if err != nil {
		return nil, err
	}

	return list, nil
}

// CurrentTime returns node wall-clock as a timecode at the node frame rate.
func (n *Node) CurrentTime() (timecode.TimeCode, error) {
	if !n.Connected() {
		return timecode.Empty, device.ErrNotConnected
	}

	n.lock.RLock()
	clock := n.clock
	n.lock.RUnlock()

	return timecode.FromTime(clock(), n.rate, n.dropFrame), nil
}

// Gang performs command on every list addressed by mask. No list is touched when any of them is missing.
func (n *Node) Gang(mask uint32, cmd device.ListCommand) error {
	if !n.Connected() {
		return device.ErrNotConnected
	}

	targets := []*List{}
	for _, number := range device.GangLists(mask) {
		list, err := n.list(number)
		if err != nil {
			return err
		}

		targets = append(targets, list)
	}

	for _, list := range targets {
		if err := list.Perform(cmd); err != nil {
			return err
		}
	}

	return nil
}

func (n *Node) list(number int) (*List, error) {
	if number < 1 || number > len(n.lists) {
		return nil, fmt.Errorf("%w: %d on node '%s'", device.ErrNoSuchList, number, n.name)
	}

	return n.lists[number-1], nil
}

// setConnected returns true when the state changed.
func (n *Node) setConnected(connected bool) bool {
	n.lock.Lock()
	defer n.lock.Unlock()

	changed := n.connected != connected
	n.connected = connected

	return changed
}

func (n *Node) setClock(clock func() time.Time) {
	n.lock.Lock()
	defer n.lock.Unlock()

	n.clock = clock
}
