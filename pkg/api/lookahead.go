package api

import (
	"github.com/sarpt/list-coordinator/pkg/channel"
)

func (s *Server) GetLookahead(ch channel.Channel) (int, error) {
	list, err := s.list(ch)
	if err != nil {
		return 0, err
	}

	return list.Lookahead(), nil
}

func (s *Server) SetLookahead(ch channel.Channel, client string, count int) error {
	list, err := s.mutableList(ch, client)
	if err != nil {
		return err
	}

	return list.SetLookahead(count)
}

// ToggleLookahead switches lookahead off or restores its last value. Returns the new lookahead.
func (s *Server) ToggleLookahead(ch channel.Channel, client string) (int, error) {
	list, err := s.mutableList(ch, client)
	if err != nil {
		return 0, err
	}

	return list.ToggleLookahead()
}
