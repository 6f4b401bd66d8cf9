package lists

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/sarpt/list-coordinator/pkg/channel"
	"github.com/sarpt/list-coordinator/pkg/device"
	"github.com/sarpt/list-coordinator/pkg/event"
	"github.com/sarpt/list-coordinator/pkg/state/internal/revision"
)

var (
	// ErrDisposed informs that the list handle was disposed after its node went away.
	ErrDisposed = errors.New("list handle is disposed")

	// ErrInvalidArgument informs that the requested operation arguments are malformed.
	ErrInvalidArgument = errors.New("invalid list operation argument")

	// ErrEventNotFound informs that an event referenced by id is not on the list.
	ErrEventNotFound = fmt.Errorf("%w: event not found on list", ErrInvalidArgument)
)

// ChangeHandler is called after every successful mutation of a list, outside of list lock.
type ChangeHandler = func(change Change)

type Config struct {
	Channel  channel.Channel
	Device   device.List
	Name     string
	OnChange ChangeHandler
}

// List mirrors a single device list. Every mutation is forwarded to the device first
// and the mirror is re-read afterwards, so the mirror always reflects device state.
type List struct {
	channel       channel.Channel
	device        device.List
	disposed      bool
	events        []event.Event
	lastLookahead int
	lock          *sync.RWMutex
	lookahead     int
	name          string
	onChange      ChangeHandler
	revision      *revision.Counter
}

func NewList(cfg Config) *List {
	return &List{
		channel:  cfg.Channel,
		device:   cfg.Device,
		events:   []event.Event{},
		lock:     &sync.RWMutex{},
		name:     cfg.Name,
		onChange: cfg.OnChange,
		revision: revision.NewCounter(),
	}
}

// Load reads list content from the device without notifying about it.
func (l *List) Load() error {
	l.lock.Lock()
	defer l.lock.Unlock()

	if l.disposed {
		return ErrDisposed
	}

	if err := l.device.Refresh(); err != nil {
		return fmt.Errorf("could not refresh list %s: %w", l.channel, err)
	}

	if err := l.reload(); err != nil {
		return err
	}

	l.revision.Tick()
	return nil
}

// Refresh pulls list content from the device and notifies with ListRefreshed only when it differs from the mirror.
func (l *List) Refresh() (bool, error) {
	l.lock.Lock()
	if l.disposed {
		l.lock.Unlock()
		return false, ErrDisposed
	}

	previous := l.events
	previousLookahead := l.lookahead
	if err := l.device.Refresh(); err != nil {
		l.lock.Unlock()
		return false, fmt.Errorf("could not refresh list %s: %w", l.channel, err)
	}

	if err := l.reload(); err != nil {
		l.lock.Unlock()
		return false, err
	}

	if sameEvents(previous, l.events) && previousLookahead == l.lookahead {
		l.lock.Unlock()
		return false, nil
	}

	change := Change{
		ChangeVariant: ListRefreshed,
		Channel:       l.channel,
		Events:        copyEvents(l.events),
		Revision:      l.revision.Tick(),
	}
	handler := l.onChange
	l.lock.Unlock()

	if handler != nil {
		handler(change)
	}

	return true, nil
}

// Insert places events at index. Negative or out of range index appends events at the end.
// Events without id receive a generated one.
func (l *List) Insert(index int, events []event.Event) ([]event.Event, error) {
	var inserted []event.Event
	err := l.mutate(func() (Change, error) {
		if index < 0 || index > len(l.events) {
			index = len(l.events)
		}

		prepared, err := l.prepareNew(events)
		if err != nil {
			return Change{}, err
		}

		if err := l.device.Insert(index, prepared); err != nil {
			return Change{}, err
		}

		inserted = prepared
		return Change{
			ChangeVariant: EventsAdded,
			Events:        copyEvents(prepared),
			Index:         index,
		}, nil
	})

	return inserted, err
}

// InsertAfter places events directly after the event with afterID.
func (l *List) InsertAfter(afterID string, events []event.Event) ([]event.Event, error) {
	if afterID == "" {
		return nil, fmt.Errorf("%w: insertion after an event requires reference id", ErrInvalidArgument)
	}

	var inserted []event.Event
	err := l.mutate(func() (Change, error) {
		reference := l.indexOf(afterID)
		if reference < 0 {
			return Change{}, fmt.Errorf("%w: reference id %s", ErrEventNotFound, afterID)
		}

		prepared, err := l.prepareNew(events)
		if err != nil {
			return Change{}, err
		}

		index := reference + 1
		if err := l.device.Insert(index, prepared); err != nil {
			return Change{}, err
		}

		inserted = prepared
		return Change{
			ChangeVariant: EventsAdded,
			Events:        copyEvents(prepared),
			Index:         index,
		}, nil
	})

	return inserted, err
}

// Modify replaces events with matching ids.
func (l *List) Modify(events []event.Event) error {
	return l.mutate(func() (Change, error) {
		if len(events) == 0 {
			return Change{}, fmt.Errorf("%w: no events to modify", ErrInvalidArgument)
		}

		for _, ev := range events {
			if l.indexOf(ev.ID) < 0 {
				return Change{}, fmt.Errorf("%w: %s", ErrEventNotFound, ev.ID)
			}
		}

		if err := l.device.Modify(events); err != nil {
			return Change{}, err
		}

		return Change{
			ChangeVariant: EventsUpdated,
			Events:        copyEvents(events),
		}, nil
	})
}

// Move relocates count events starting at from to position to. Both ranges have to fit in the lookahead window.
func (l *List) Move(from, count, to int) error {
	return l.mutate(func() (Change, error) {
		window := len(l.events)
		if l.lookahead < window {
			window = l.lookahead
		}

		if count < 1 || from < 0 || to < 0 || from+count > window || to+count > window {
			return Change{}, fmt.Errorf("%w: move of %d events from %d to %d exceeds lookahead window of %d", ErrInvalidArgument, count, from, to, window)
		}

		ids := make([]string, 0, count)
		for _, ev := range l.events[from : from+count] {
			ids = append(ids, ev.ID)
		}

		if err := l.device.Move(from, count, to); err != nil {
			return Change{}, err
		}

		return Change{
			ChangeVariant: EventsMoved,
			IDs:           ids,
			Index:         to,
		}, nil
	})
}

// Delete removes events with provided ids.
func (l *List) Delete(ids []string) error {
	return l.mutate(func() (Change, error) {
		if len(ids) == 0 {
			return Change{}, fmt.Errorf("%w: no events to delete", ErrInvalidArgument)
		}

		for _, id := range ids {
			if l.indexOf(id) < 0 {
				return Change{}, fmt.Errorf("%w: %s", ErrEventNotFound, id)
			}
		}

		if err := l.device.Delete(ids); err != nil {
			return Change{}, err
		}

		return Change{
			ChangeVariant: EventsDeleted,
			IDs:           append([]string{}, ids...),
		}, nil
	})
}

func (l *List) DeleteAll() error {
	return l.mutate(func() (Change, error) {
		if err := l.device.DeleteAll(); err != nil {
			return Change{}, err
		}

		return Change{ChangeVariant: ListCleared}, nil
	})
}

func (l *List) SetLookahead(count int) error {
	return l.mutate(func() (Change, error) {
		return l.setLookahead(count)
	})
}

// ToggleLookahead switches lookahead between 0 and the last non-zero value and returns the new one.
func (l *List) ToggleLookahead() (int, error) {
	var current int
	err := l.mutate(func() (Change, error) {
		target := 0
		if l.lookahead == 0 {
			target = l.lastLookahead
		}

		if target == 0 && l.lookahead == 0 {
			return Change{}, fmt.Errorf("%w: list %s has no lookahead to restore", ErrInvalidArgument, l.channel)
		}

		current = target
		return l.setLookahead(target)
	})

	return current, err
}

func (l *List) Perform(cmd device.ListCommand) error {
	return l.mutate(func() (Change, error) {
		if err := l.device.Perform(cmd); err != nil {
			return Change{}, err
		}

		return Change{
			ChangeVariant: ListCommandPerformed,
			Command:       string(cmd),
		}, nil
	})
}

func (l *List) PerformEvent(id string, cmd device.EventCommand) error {
	return l.mutate(func() (Change, error) {
		if l.indexOf(id) < 0 {
			return Change{}, fmt.Errorf("%w: %s", ErrEventNotFound, id)
		}

		if err := l.device.PerformEvent(id, cmd); err != nil {
			return Change{}, err
		}

		return Change{
			ChangeVariant: EventCommandPerformed,
			Command:       string(cmd),
			IDs:           []string{id},
		}, nil
	})
}

// SetName updates list name, notifying with ListNameChanged when it differs.
func (l *List) SetName(name string) bool {
	l.lock.Lock()
	if l.disposed || l.name == name {
		l.lock.Unlock()
		return false
	}

	l.name = name
	change := Change{
		ChangeVariant: ListNameChanged,
		Channel:       l.channel,
		Revision:      l.revision.Tick(),
	}
	handler := l.onChange
	l.lock.Unlock()

	if handler != nil {
		handler(change)
	}

	return true
}

// Dispose detaches the handle from its device. Reports whether this call disposed it.
func (l *List) Dispose() bool {
	l.lock.Lock()
	defer l.lock.Unlock()

	if l.disposed {
		return false
	}

	l.disposed = true
	l.onChange = nil
	return true
}

func (l *List) Disposed() bool {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return l.disposed
}

func (l *List) Channel() channel.Channel {
	return l.channel
}

func (l *List) Name() string {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return l.name
}

func (l *List) Lookahead() int {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return l.lookahead
}

// Events returns a copy of mirrored events.
func (l *List) Events() []event.Event {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return copyEvents(l.events)
}

func (l *List) Count() int {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return len(l.events)
}

func (l *List) Event(id string) (event.Event, bool) {
	l.lock.RLock()
	defer l.lock.RUnlock()

	idx := l.indexOf(id)
	if idx < 0 {
		return event.Event{}, false
	}

	return l.events[idx], true
}

func (l *List) Revision() revision.Identifier {
	return l.revision.Revision()
}

func (l *List) mutate(op func() (Change, error)) error {
	l.lock.Lock()
	if l.disposed {
		l.lock.Unlock()
		return ErrDisposed
	}

	change, err := op()
	if err != nil {
		l.lock.Unlock()
		return err
	}

	if err := l.reload(); err != nil {
		l.lock.Unlock()
		return err
	}

	change.Channel = l.channel
	change.Revision = l.revision.Tick()
	handler := l.onChange
	l.lock.Unlock()

	if handler != nil {
		handler(change)
	}

	return nil
}

func (l *List) setLookahead(count int) (Change, error) {
	if count < 0 {
		return Change{}, fmt.Errorf("%w: negative lookahead %d", ErrInvalidArgument, count)
	}

	if err := l.device.SetLookahead(count); err != nil {
		return Change{}, err
	}

	return Change{
		ChangeVariant: LookaheadChanged,
		Index:         count,
	}, nil
}

// reload has to be called with write lock held.
func (l *List) reload() error {
	events, err := l.device.Events()
	if err != nil {
		return fmt.Errorf("could not read events of list %s: %w", l.channel, err)
	}

	lookahead, err := l.device.Lookahead()
	if err != nil {
		return fmt.Errorf("could not read lookahead of list %s: %w", l.channel, err)
	}

	l.events = copyEvents(events)
	l.lookahead = lookahead
	if lookahead > 0 {
		l.lastLookahead = lookahead
	}

	return nil
}

func (l *List) prepareNew(events []event.Event) ([]event.Event, error) {
	if len(events) == 0 {
		return nil, fmt.Errorf("%w: no events to insert", ErrInvalidArgument)
	}

	prepared := make([]event.Event, 0, len(events))
	seen := map[string]bool{}
	for _, ev := range events {
		if ev.ID == "" {
			ev.ID = uuid.NewString()
		}

		if seen[ev.ID] || l.indexOf(ev.ID) >= 0 {
			return nil, fmt.Errorf("%w: duplicated event id %s", ErrInvalidArgument, ev.ID)
		}

		seen[ev.ID] = true
		prepared = append(prepared, ev)
	}

	return prepared, nil
}

func (l *List) indexOf(id string) int {
	for idx, ev := range l.events {
		if ev.ID == id {
			return idx
		}
	}

	return -1
}

func copyEvents(events []event.Event) []event.Event {
	return append([]event.Event{}, events...)
}

func sameEvents(a, b []event.Event) bool {
	if len(a) != len(b) {
		return false
	}

	for idx := range a {
		if a[idx] != b[idx] {
			return false
		}
	}

	return true
}
