package api

import (
	"fmt"

	"github.com/sarpt/list-coordinator/pkg/state/pkg/subscribers"
)

// ConnectClient makes the callback available under its identity to operations requiring a client.
func (s *Server) ConnectClient(cb subscribers.Callback) {
	s.clientsLock.Lock()
	defer s.clientsLock.Unlock()

	s.clients[cb.Identity()] = cb
	s.log.Infof("client %s connected", cb.Identity())
}

// DisconnectClient forgets the client, drops its subscriptions and releases its locks.
func (s *Server) DisconnectClient(id string) {
	s.clientsLock.Lock()
	_, known := s.clients[id]
	delete(s.clients, id)
	s.clientsLock.Unlock()

	s.repository.Subscribers().Remove(id)
	for _, ch := range s.repository.Locks().ReleaseAll(id) {
		s.log.Infof("lock of %s released after client %s disconnected", ch, id)
		s.notifyUnlocked(ch, id)
	}

	if known {
		s.log.Infof("client %s disconnected", id)
	}
}

func (s *Server) Client(id string) (subscribers.Callback, bool) {
	s.clientsLock.RLock()
	defer s.clientsLock.RUnlock()

	cb, ok := s.clients[id]
	return cb, ok
}

func (s *Server) client(id string) (subscribers.Callback, error) {
	cb, ok := s.Client(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownClient, id)
	}

	return cb, nil
}
