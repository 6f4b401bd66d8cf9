package api

import (
	"github.com/sarpt/list-coordinator/pkg/channel"
	"github.com/sarpt/list-coordinator/pkg/state/pkg/lists"
	"github.com/sarpt/list-coordinator/pkg/state/pkg/subscribers"
)

// handleListChange distributes a list change to every client interested in its channel.
func (s *Server) handleListChange(change lists.Change) {
	ch := change.Channel
	s.repository.Subscribers().NotifyChannel(ch, func(cb subscribers.Callback) {
		switch change.Variant() {
		case lists.EventsAdded:
			cb.OnEventsAdded(ch, change.Index, change.Events)
		case lists.EventsUpdated:
			cb.OnEventsUpdated(ch, change.Events)
		case lists.EventsDeleted:
			cb.OnEventsDeleted(ch, change.IDs)
		case lists.EventsMoved:
			cb.OnEventsMoved(ch, change.Index, change.IDs)
		default:
			cb.OnListChange(ch, change.Variant())
		}
	})
}

func (s *Server) notifyLocked(ch channel.Channel, client string) {
	s.repository.Subscribers().NotifyChannel(ch, func(cb subscribers.Callback) {
		cb.ListLocked(ch, client)
	})
}

func (s *Server) notifyUnlocked(ch channel.Channel, client string) {
	s.repository.Subscribers().NotifyChannel(ch, func(cb subscribers.Callback) {
		cb.ListUnlocked(ch, client)
	})
}

// handleReaped releases locks of a dead client.
func (s *Server) handleReaped(cb subscribers.Callback, locked []channel.Channel) {
	id := cb.Identity()
	s.log.Infof("client %s removed from subscribers", id)

	s.clientsLock.Lock()
	delete(s.clients, id)
	s.clientsLock.Unlock()

	for _, ch := range locked {
		owner, ok := s.repository.Locks().Owner(ch)
		if !ok || owner != id {
			continue
		}

		s.repository.Locks().Release(ch)
		s.log.Infof("lock of %s released after client %s was removed", ch, id)
		s.notifyUnlocked(ch, id)
	}
}
