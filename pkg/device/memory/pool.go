// Package memory simulates device nodes in memory.
package memory

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sarpt/list-coordinator/pkg/device"
	"github.com/sarpt/list-coordinator/pkg/timecode"
)

const (
	defaultLookahead = 16
)

// NodeConfig describes a simulated node.
type NodeConfig struct {
	Name      string             `json:"Name"`
	Lists     int                `json:"Lists"`
	ListNames []string           `json:"ListNames"`
	FrameRate timecode.FrameRate `json:"FrameRate"`
	DropFrame bool               `json:"DropFrame"`
	Lookahead int                `json:"Lookahead"`
}

// Pool holds simulated nodes. It satisfies device.Pool.
type Pool struct {
	clock     func() time.Time
	lock      *sync.RWMutex
	nodes     map[string]*Node
	observers []device.ConnectionObserver
}

// NewPool returns pool with provided nodes configured but not connected.
func NewPool(cfgs []NodeConfig) *Pool {
	pool := &Pool{
		clock: time.Now,
		lock:  &sync.RWMutex{},
		nodes: map[string]*Node{},
	}

	for _, cfg := range cfgs {
		pool.Configure(cfg)
	}

	return pool
}

// SetClock replaces the wall-clock used for node current time.
func (p *Pool) SetClock(clock func() time.Time) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.clock = clock
	for _, node := range p.nodes {
		node.setClock(clock)
	}
}

// Configure adds a node, or updates list names of an already configured one.
func (p *Pool) Configure(cfg NodeConfig) {
	p.lock.Lock()
	defer p.lock.Unlock()

	node, ok := p.nodes[cfg.Name]
	if ok {
		node.SetListNames(cfg.ListNames)
		return
	}

	p.nodes[cfg.Name] = newNode(cfg, p.clock)
}

// Remove disconnects and forgets a node.
func (p *Pool) Remove(name string) {
	p.lock.Lock()
	node, ok := p.nodes[name]
	delete(p.nodes, name)
	p.lock.Unlock()

	if ok && node.setConnected(false) {
		p.notify(name, false)
	}
}

// Connect marks node as connected and informs observers.
func (p *Pool) Connect(name string) error {
	node, ok := p.node(name)
	if !ok {
		return fmt.Errorf("could not connect node '%s': not configured", name)
	}

	if node.setConnected(true) {
		p.notify(name, true)
	}

	return nil
}

// Disconnect marks node as disconnected and informs observers.
func (p *Pool) Disconnect(name string) error {
	node, ok := p.node(name)
	if !ok {
		return fmt.Errorf("could not disconnect node '%s': not configured", name)
	}

	if node.setConnected(false) {
		p.notify(name, false)
	}

	return nil
}

// Configured returns names of all configured nodes in lexical order.
func (p *Pool) Configured() []string {
	p.lock.RLock()
	defer p.lock.RUnlock()

	names := make([]string, 0, len(p.nodes))
	for name := range p.nodes {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func (p *Pool) Node(name string) (device.Node, bool) {
	node, ok := p.node(name)
	if !ok {
		return nil, false
	}

	return node, true
}

// Observe registers observer for connection changes.
func (p *Pool) Observe(observer device.ConnectionObserver) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.observers = append(p.observers, observer)
}

func (p *Pool) node(name string) (*Node, bool) {
	p.lock.RLock()
	defer p.lock.RUnlock()

	node, ok := p.nodes[name]
	return node, ok
}

func (p *Pool) notify(name string, connected bool) {
	p.lock.RLock()
	observers := append([]device.ConnectionObserver{}, p.observers...)
	p.lock.RUnlock()

	for _, observer := range observers {
		if connected {
			observer.OnServerConnected(name)
		} else {
			observer.OnServerDisconnected(name)
		}
	}
}
