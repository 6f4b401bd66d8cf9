package api

import (
	"github.com/sarpt/list-coordinator/pkg/channel"
)

// LockList makes the client exclusive owner of the list. Locking an already owned list reports no change.
func (s *Server) LockList(ch channel.Channel, client string) (bool, error) {
	cb, err := s.client(client)
	if err != nil {
		return false, err
	}

	if err := s.resolveNode(ch.Node); err != nil {
		return false, err
	}

	changed, err := s.repository.Locks().Lock(ch, client)
	if err != nil {
		return false, err
	}

	if !changed {
		return false, nil
	}

	s.repository.Subscribers().AddLock(cb, ch)
	s.log.Infof("list %s locked by %s", ch, client)
	s.notifyLocked(ch, client)

	return true, nil
}

func (s *Server) UnlockList(ch channel.Channel, client string) (bool, error) {
	if err := s.resolveNode(ch.Node); err != nil {
		return false, err
	}

	changed, err := s.repository.Locks().Unlock(ch, client)
	if err != nil || !changed {
		return false, err
	}

	s.log.Infof("list %s unlocked by %s", ch, client)
	s.notifyUnlocked(ch, client)
	s.repository.Subscribers().RemoveLock(client, ch)

	return true, nil
}

// IsListAvailable informs whether the client can mutate the list.
func (s *Server) IsListAvailable(ch channel.Channel, client string) (bool, error) {
	if _, err := s.list(ch); err != nil {
		return false, err
	}

	return s.repository.Locks().IsAvailable(ch, client), nil
}
