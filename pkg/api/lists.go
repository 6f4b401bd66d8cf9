package api

import (
	"fmt"

	"github.com/sarpt/list-coordinator/pkg/channel"
	"github.com/sarpt/list-coordinator/pkg/event"
	"github.com/sarpt/list-coordinator/pkg/state/pkg/lists"
	"github.com/sarpt/list-coordinator/pkg/timecode"
)

// ListSnapshot is a consistent copy of a list state.
type ListSnapshot struct {
	Channel   channel.Channel `json:"Channel"`
	Name      string          `json:"Name"`
	Lookahead int             `json:"Lookahead"`
	Revision  uint64          `json:"Revision"`
	Events    []event.Event   `json:"Events"`
}

func (s *Server) GetEventsCount(ch channel.Channel) (int, error) {
	list, err := s.list(ch)
	if err != nil {
		return 0, err
	}

	return list.Count(), nil
}

func (s *Server) GetList(ch channel.Channel) (ListSnapshot, error) {
	list, err := s.list(ch)
	if err != nil {
		return ListSnapshot{}, err
	}

	return ListSnapshot{
		Channel:   ch,
		Name:      list.Name(),
		Lookahead: list.Lookahead(),
		Revision:  list.Revision(),
		Events:    list.Events(),
	}, nil
}

// ListRevision returns revision of list content, bumped on every change.
func (s *Server) ListRevision(ch channel.Channel) (uint64, error) {
	list, err := s.list(ch)
	if err != nil {
		return 0, err
	}

	return list.Revision(), nil
}

// GetListPartial returns at most count events starting at start.
func (s *Server) GetListPartial(ch channel.Channel, start, count int) ([]event.Event, error) {
	if start < 0 || count < 0 {
		return nil, fmt.Errorf("%w: invalid range start %d count %d", ErrValidation, start, count)
	}

	list, err := s.list(ch)
	if err != nil {
		return nil, err
	}

	return window(list.Events(), start, count), nil
}

// GetListPage returns page (counted from 0) of events split into pages of size.
func (s *Server) GetListPage(ch channel.Channel, page, size int) ([]event.Event, error) {
	if page < 0 || size < 1 {
		return nil, fmt.Errorf("%w: invalid page %d of size %d", ErrValidation, page, size)
	}

	list, err := s.list(ch)
	if err != nil {
		return nil, err
	}

	events := list.Events()
	if page > (len(events)-1)/size {
		return []event.Event{}, nil
	}

	return window(events, page*size, size), nil
}

func (s *Server) GetListFiltered(ch channel.Channel, filter event.Filter) ([]event.Event, error) {
	list, err := s.list(ch)
	if err != nil {
		return nil, err
	}

	filtered := []event.Event{}
	for _, ev := range list.Events() {
		if filter.Matches(ev) {
			filtered = append(filtered, ev)
		}
	}

	return filtered, nil
}

// GetListsByPeriod returns events with on-air time between from and to, both inclusive.
// A period with from later than to spans midnight. Bounds are parsed in the node frame rate.
func (s *Server) GetListsByPeriod(ch channel.Channel, from, to string) ([]event.Event, error) {
	list, err := s.list(ch)
	if err != nil {
		return nil, err
	}

	rate := s.nodeFrameRate(ch.Node)
	start, err := timecode.Parse(from, rate)
	if err != nil {
		return nil, fmt.Errorf("invalid period start: %w", err)
	}

	end, err := timecode.Parse(to, rate)
	if err != nil {
		return nil, fmt.Errorf("invalid period end: %w", err)
	}

	inPeriod := []event.Event{}
	for _, ev := range list.Events() {
		if ev.OnAirTime.IsEmpty() {
			continue
		}

		if withinPeriod(ev.OnAirTime, start, end) {
			inPeriod = append(inPeriod, ev)
		}
	}

	return inPeriod, nil
}

// GetListOfSecondaries returns secondary events attached to the primary event.
func (s *Server) GetListOfSecondaries(ch channel.Channel, primaryID string) ([]event.Event, error) {
	list, err := s.list(ch)
	if err != nil {
		return nil, err
	}

	if _, ok := list.Event(primaryID); !ok {
		return nil, fmt.Errorf("%w: %s", lists.ErrEventNotFound, primaryID)
	}

	secondaries := []event.Event{}
	for _, ev := range list.Events() {
		if ev.Type == event.Secondary && ev.PrimaryID == primaryID {
			secondaries = append(secondaries, ev)
		}
	}

	return secondaries, nil
}

// list resolves channel to its list, distinguishing unknown nodes from nodes which are not running.
func (s *Server) list(ch channel.Channel) (*lists.List, error) {
	if err := s.resolveNode(ch.Node); err != nil {
		return nil, err
	}

	return s.repository.Lists().List(ch)
}

func (s *Server) resolveNode(node string) error {
	if _, ok := s.pool.Node(node); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownNode, node)
	}

	return nil
}

func (s *Server) nodeFrameRate(name string) timecode.FrameRate {
	node, ok := s.pool.Node(name)
	if !ok {
		return timecode.NTSC
	}

	now, err := node.CurrentTime()
	if err != nil || now.IsEmpty() {
		return timecode.NTSC
	}

	return now.Rate()
}

func (s *Server) nodeTime(name string) timecode.TimeCode {
	node, ok := s.pool.Node(name)
	if !ok {
		return timecode.Empty
	}

	now, err := node.CurrentTime()
	if err != nil {
		s.log.WithError(err).Debugf("could not read current time of node %s", name)
		return timecode.Empty
	}

	return now
}

func window(events []event.Event, start, count int) []event.Event {
	if start >= len(events) {
		return []event.Event{}
	}

	end := len(events)
	if count < end-start {
		end = start + count
	}

	return events[start:end]
}

func withinPeriod(tc, start, end timecode.TimeCode) bool {
	if start.Compare(end) <= 0 {
		return tc.Compare(start) >= 0 && tc.Compare(end) <= 0
	}

	return tc.Compare(start) >= 0 || tc.Compare(end) <= 0
}
