package api

import (
	"github.com/sarpt/list-coordinator/pkg/channel"
)

// RegisterListListener subscribes the client to changes of the list.
func (s *Server) RegisterListListener(ch channel.Channel, client string) error {
	cb, err := s.client(client)
	if err != nil {
		return err
	}

	if _, err := s.list(ch); err != nil {
		return err
	}

	s.repository.Subscribers().Subscribe(cb, ch)
	return nil
}

func (s *Server) UnregisterListListener(ch channel.Channel, client string) (bool, error) {
	if _, err := s.client(client); err != nil {
		return false, err
	}

	return s.repository.Subscribers().Unsubscribe(client, ch), nil
}

// UnregisterListListenerAll drops all list subscriptions of the client and returns their number.
func (s *Server) UnregisterListListenerAll(client string) (int, error) {
	if _, err := s.client(client); err != nil {
		return 0, err
	}

	return s.repository.Subscribers().UnsubscribeAll(client), nil
}

// RegisterConnectionStateListener subscribes the client to connection state changes of the node.
func (s *Server) RegisterConnectionStateListener(node string, client string) error {
	cb, err := s.client(client)
	if err != nil {
		return err
	}

	if err := s.resolveNode(node); err != nil {
		return err
	}

	s.repository.Subscribers().SubscribeNode(cb, node)
	return nil
}

func (s *Server) UnregisterConnectionStateListener(node string, client string) (bool, error) {
	if _, err := s.client(client); err != nil {
		return false, err
	}

	return s.repository.Subscribers().UnsubscribeNode(client, node), nil
}
