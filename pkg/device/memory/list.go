package memory

import (
	"fmt"
	"sync"

	"github.com/sarpt/list-coordinator/pkg/device"
	"github.com/sarpt/list-coordinator/pkg/event"
)

// List is a simulated device list. It satisfies device.List.
type List struct {
	events    []event.Event
	frozen    bool
	lock      *sync.Mutex
	lookahead int
	node      *Node
}

func newList(node *Node, lookahead int) *List {
	return &List{
		events:    []event.Event{},
		lock:      &sync.Mutex{},
		lookahead: lookahead,
		node:      node,
	}
}

// Refresh does nothing besides checking the connection, as there is no remote state to pull.
func (l *List) Refresh() error {
	if !l.node.Connected() {
		return device.ErrNotConnected
	}

	return nil
}

func (l *List) Events() ([]event.Event, error) {
	if !l.node.Connected() {
		return nil, device.ErrNotConnected
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	return append([]event.Event{}, l.events...), nil
}

// Insert places events before index. Out of range index appends.
func (l *List) Insert(index int, events []event.Event) error {
	if !l.node.Connected() {
		return device.ErrNotConnected
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	if index < 0 || index > len(l.events) {
		index = len(l.events)
	}

	updated := make([]event.Event, 0, len(l.events)+len(events))
	updated = append(updated, l.events[:index]...)
	updated = append(updated, events...)
	l.events = append(updated, l.events[index:]...)

	return nil
}

func (l *List) Modify(events []event.Event) error {
	if !l.node.Connected() {
		return device.ErrNotConnected
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	indexes := make([]int, 0, len(events))
	for _, modified := range events {
		idx := l.indexOf(modified.ID)
		if idx < 0 {
			return fmt.Errorf("%w: %s", device.ErrNoSuchEvent, modified.ID)
		}

		indexes = append(indexes, idx)
	}

	for pos, idx := range indexes {
		l.events[idx] = events[pos]
	}

	return nil
}

// Move takes count events starting at from and places them before index to of the remaining events.
func (l *List) Move(from, count, to int) error {
	if !l.node.Connected() {
		return device.ErrNotConnected
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	if count < 1 || from < 0 || from+count > len(l.events) || to < 0 || to > len(l.events)-count {
		return fmt.Errorf("%w: cannot move %d events from %d to %d", device.ErrNoSuchEvent, count, from, to)
	}

	moved := append([]event.Event{}, l.events[from:from+count]...)
	remaining := append(append([]event.Event{}, l.events[:from]...), l.events[from+count:]...)

	updated := make([]event.Event, 0, len(l.events))
	updated = append(updated, remaining[:to]...)
	updated = append(updated, moved...)
	l.events = append(updated, remaining[to:]...)

	return nil
}

// Delete removes events with provided ids. Nothing is removed when any of them is missing.
func (l *List) Delete(ids []string) error {
	if !l.node.Connected() {
		return device.ErrNotConnected
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	toDelete := map[string]bool{}
	for _, id := range ids {
		if l.indexOf(id) < 0 {
			return fmt.Errorf("%w: %s", device.ErrNoSuchEvent, id)
		}

		toDelete[id] = true
	}

	remaining := make([]event.Event, 0, len(l.events))
	for _, ev := range l.events {
		if !toDelete[ev.ID] {
			remaining = append(remaining, ev)
		}
	}
	l.events = remaining

	return nil
}

func (l *List) DeleteAll() error {
	if !l.node.Connected() {
		return device.ErrNotConnected
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	l.events = []event.Event{}
	return nil
}

func (l *List) Lookahead() (int, error) {
	if !l.node.Connected() {
		return 0, device.ErrNotConnected
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	return l.lookahead, nil
}

func (l *List) SetLookahead(count int) error {
	if !l.node.Connected() {
		return device.ErrNotConnected
	}

	if count < 0 {
		return fmt.Errorf("lookahead cannot be negative: %d", count)
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	l.lookahead = count
	return nil
}

// Perform applies list command. Play and skip are ignored while the list is frozen.
func (l *List) Perform(cmd device.ListCommand) error {
	if !l.node.Connected() {
		return device.ErrNotConnected
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	switch cmd {
	case device.ThreadList:
		l.thread()
	case device.PlayList:
		if !l.frozen {
			l.playNext()
		}
	case device.HoldList:
		if idx := l.running(); idx >= 0 {
			l.events[idx].Status = l.events[idx].Status.With(event.Standby)
		}
	case device.FreezeList:
		l.frozen = true
	case device.UnfreezeList:
		l.frozen = false
	case device.SkipList:
		if !l.frozen {
			if idx := l.next(l.running() + 1); idx >= 0 {
				l.events[idx].Status = l.events[idx].Status.With(event.Skipped).Without(event.Cued)
			}
		}
	case device.RecueList:
		if idx := l.running(); idx >= 0 {
			l.events[idx].Status = l.events[idx].Status.Without(event.Running).Without(event.Standby).With(event.Cued)
		}
	default:
		return fmt.Errorf("%w: %s", device.ErrUnknownCommand, cmd)
	}

	return nil
}

func (l *List) PerformEvent(id string, cmd device.EventCommand) error {
	if !l.node.Connected() {
		return device.ErrNotConnected
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	idx := l.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", device.ErrNoSuchEvent, id)
	}

	status := l.events[idx].Status
	switch cmd {
	case device.SkipEvent:
		status = status.With(event.Skipped).Without(event.Cued)
	case device.RecueEvent:
		status = status.Without(event.Done).Without(event.Skipped).Without(event.Running).Without(event.Error).With(event.Cued)
	case device.ProtectEvent:
		status = status.With(event.Protected)
	case device.UnprotectEvent:
		status = status.Without(event.Protected)
	case device.ThreadEvent:
		status = status.With(event.Threaded)
	case device.UnthreadEvent:
		status = status.Without(event.Threaded)
	default:
		return fmt.Errorf("%w: %s", device.ErrUnknownCommand, cmd)
	}

	l.events[idx].Status = status
	return nil
}

func (l *List) thread() {
	threaded := 0
	for idx := range l.events {
		if threaded >= l.lookahead {
			return
		}

		if !l.events[idx].IsPrimary() || l.finished(idx) {
			continue
		}

		l.events[idx].Status = l.events[idx].Status.With(event.Threaded).With(event.Cued)
		threaded++
	}
}

func (l *List) playNext() {
	running := l.running()
	if running >= 0 {
		l.events[running].Status = l.events[running].Status.Without(event.Running).Without(event.Standby).With(event.Done).With(event.Played)
	}

	if idx := l.next(running + 1); idx >= 0 {
		l.events[idx].Status = l.events[idx].Status.Without(event.Cued).With(event.Running)
	}
}

func (l *List) running() int {
	for idx, ev := range l.events {
		if ev.Status.Has(event.Running) {
			return idx
		}
	}

	return -1
}

// next returns index of the first playable primary event at or after start.
func (l *List) next(start int) int {
	for idx := start; idx < len(l.events); idx++ {
		if l.events[idx].Type == event.Primary && !l.finished(idx) {
			return idx
		}
	}

	return -1
}

func (l *List) finished(idx int) bool {
	status := l.events[idx].Status
	return status.Has(event.Done) || status.Has(event.Skipped) || status.Has(event.Running)
}

func (l *List) indexOf(id string) int {
	for idx, ev := range l.events {
		if ev.ID == id {
			return idx
		}
	}

	return -1
}
