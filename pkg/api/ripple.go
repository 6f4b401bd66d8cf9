package api

import (
	"errors"
	"fmt"

	"github.com/sarpt/list-coordinator/pkg/channel"
	"github.com/sarpt/list-coordinator/pkg/ripple"
)

// RippleTime recomputes on-air times of events following startID and stores the changed ones on the list.
func (s *Server) RippleTime(ch channel.Channel, client string, startID string) (ripple.Result, error) {
	list, err := s.mutableList(ch, client)
	if err != nil {
		return ripple.Result{}, err
	}

	result, err := ripple.Ripple(list.Events(), startID, s.nodeTime(ch.Node))
	if errors.Is(err, ripple.ErrEventNotFound) {
		return ripple.Result{}, fmt.Errorf("%w: %s", ErrValidation, err)
	} else if err != nil {
		return ripple.Result{}, err
	}

	if len(result.Modified) == 0 {
		return result, nil
	}

	if err := list.Modify(result.Modified); err != nil {
		return ripple.Result{}, fmt.Errorf("could not store rippled events on %s: %w", ch, err)
	}

	s.log.Debugf("rippled %d events on %s from %s with %s drift", len(result.Modified), ch, startID, result.Classification)
	return result, nil
}
