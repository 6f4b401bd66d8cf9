package api

import (
	"sync"

	"github.com/sirupsen/logrus"
)

type nodeHandler = func(node string)

type updateLoopConfig struct {
	init             nodeHandler
	log              logrus.FieldLogger
	maintain         func()
	nameRefreshEvery int
	remove           nodeHandler
	update           nodeHandler
}

// updateLoop is the only goroutine creating and removing lists of nodes.
// Producers only append to pending queues and signal the loop, so enqueueing never waits for a pass to finish.
// Each pass drains all pending initializations first, then removals, then updates.
type updateLoop struct {
	cfg      updateLoopConfig
	done     chan struct{}
	lock     *sync.Mutex
	passes   int
	pending  pendingNodes
	signal   chan struct{}
	stop     chan struct{}
	stopOnce *sync.Once
}

type pendingNodes struct {
	inits    []string
	removals []string
	updates  []string
}

func newUpdateLoop(cfg updateLoopConfig) *updateLoop {
	return &updateLoop{
		cfg:      cfg,
		done:     make(chan struct{}),
		lock:     &sync.Mutex{},
		signal:   make(chan struct{}, 1),
		stop:     make(chan struct{}),
		stopOnce: &sync.Once{},
	}
}

func (l *updateLoop) start() {
	go l.run()
}

func (l *updateLoop) enqueueInit(node string) {
	l.lock.Lock()
	l.pending.inits = append(l.pending.inits, node)
	l.lock.Unlock()

	l.wake()
}

func (l *updateLoop) enqueueRemoval(node string) {
	l.lock.Lock()
	l.pending.removals = append(l.pending.removals, node)
	l.lock.Unlock()

	l.wake()
}

func (l *updateLoop) enqueueUpdate(node string) {
	l.lock.Lock()
	l.pending.updates = append(l.pending.updates, node)
	l.lock.Unlock()

	l.wake()
}

// close stops the loop after its current pass and waits for it to exit.
func (l *updateLoop) close() {
	l.stopOnce.Do(func() {
		close(l.stop)
		l.wake()
	})

	<-l.done
}

func (l *updateLoop) wake() {
	select {
	case l.signal <- struct{}{}:
	default:
	}
}

func (l *updateLoop) run() {
	defer close(l.done)

	for {
		select {
		case <-l.stop:
			return
		case <-l.signal:
		}

		l.pass()

		select {
		case <-l.stop:
			return
		default:
		}
	}
}

func (l *updateLoop) pass() {
	for _, node := range l.takeInits() {
		l.cfg.init(node)
	}

	for _, node := range l.takeRemovals() {
		l.cfg.remove(node)
	}

	for _, node := range unique(l.takeUpdates()) {
		l.cfg.update(node)
	}

	l.passes++
	if l.cfg.maintain != nil && l.cfg.nameRefreshEvery > 0 && l.passes%l.cfg.nameRefreshEvery == 0 {
		l.cfg.log.Debugf("running maintenance after %d passes", l.passes)
		l.cfg.maintain()
	}
}

func (l *updateLoop) takeInits() []string {
	l.lock.Lock()
	defer l.lock.Unlock()

	nodes := l.pending.inits
	l.pending.inits = nil
	return nodes
}

func (l *updateLoop) takeRemovals() []string {
	l.lock.Lock()
	defer l.lock.Unlock()

	nodes := l.pending.removals
	l.pending.removals = nil
	return nodes
}

func (l *updateLoop) takeUpdates() []string {
	l.lock.Lock()
	defer l.lock.Unlock()

	nodes := l.pending.updates
	l.pending.updates = nil
	return nodes
}

func unique(nodes []string) []string {
	seen := map[string]bool{}
	result := make([]string, 0, len(nodes))
	for _, node := range nodes {
		if seen[node] {
			continue
		}

		seen[node] = true
		result = append(result, node)
	}

	return result
}
