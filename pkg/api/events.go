package api

import (
	"fmt"

	"github.com/sarpt/list-coordinator/pkg/channel"
	"github.com/sarpt/list-coordinator/pkg/event"
	"github.com/sarpt/list-coordinator/pkg/state/pkg/lists"
)

// InsertEvents places events at index of the list. Negative index appends.
func (s *Server) InsertEvents(ch channel.Channel, client string, index int, events []event.Event) ([]event.Event, error) {
	list, err := s.mutableList(ch, client)
	if err != nil {
		return nil, err
	}

	return list.Insert(index, events)
}

func (s *Server) InsertEvent(ch channel.Channel, client string, index int, ev event.Event) (event.Event, error) {
	inserted, err := s.InsertEvents(ch, client, index, []event.Event{ev})
	if err != nil {
		return event.Event{}, err
	}

	return inserted[0], nil
}

// InsertEventsAfter places events directly after the event with afterID.
func (s *Server) InsertEventsAfter(ch channel.Channel, client string, afterID string, events []event.Event) ([]event.Event, error) {
	list, err := s.mutableList(ch, client)
	if err != nil {
		return nil, err
	}

	return list.InsertAfter(afterID, events)
}

func (s *Server) ModifyEvents(ch channel.Channel, client string, events []event.Event) error {
	list, err := s.mutableList(ch, client)
	if err != nil {
		return err
	}

	return list.Modify(events)
}

func (s *Server) ModifyEvent(ch channel.Channel, client string, ev event.Event) error {
	return s.ModifyEvents(ch, client, []event.Event{ev})
}

// MoveEvents moves count events from index from to index to. Both have to be within the lookahead window.
func (s *Server) MoveEvents(ch channel.Channel, client string, from, count, to int) error {
	list, err := s.mutableList(ch, client)
	if err != nil {
		return err
	}

	return list.Move(from, count, to)
}

func (s *Server) MoveEvent(ch channel.Channel, client string, from, to int) error {
	return s.MoveEvents(ch, client, from, 1, to)
}

func (s *Server) DeleteEvents(ch channel.Channel, client string, ids []string) error {
	list, err := s.mutableList(ch, client)
	if err != nil {
		return err
	}

	return list.Delete(ids)
}

func (s *Server) DeleteEvent(ch channel.Channel, client string, id string) error {
	return s.DeleteEvents(ch, client, []string{id})
}

func (s *Server) DeleteAllEvents(ch channel.Channel, client string) error {
	list, err := s.mutableList(ch, client)
	if err != nil {
		return err
	}

	return list.DeleteAll()
}

// mutableList resolves the list and checks that no other client holds its lock.
func (s *Server) mutableList(ch channel.Channel, client string) (*lists.List, error) {
	list, err := s.list(ch)
	if err != nil {
		return nil, err
	}

	if !s.repository.Locks().IsAvailable(ch, client) {
		owner, _ := s.repository.Locks().Owner(ch)
		return nil, fmt.Errorf("%w: %s is owned by %s", ErrChannelLocked, ch, owner)
	}

	return list, nil
}
