package api

import (
	"fmt"

	"github.com/sarpt/list-coordinator/pkg/channel"
	"github.com/sarpt/list-coordinator/pkg/device"
	"github.com/sarpt/list-coordinator/pkg/state/pkg/lists"
)

// GangCommand applies the command to all lists of the node addressed by mask at once.
// Every addressed list has to exist and be available to the client.
func (s *Server) GangCommand(node string, client string, mask uint32, cmd device.ListCommand) error {
	numbers := device.GangLists(mask)
	if len(numbers) == 0 {
		return fmt.Errorf("%w: gang mask addresses no lists", ErrValidation)
	}

	handles := make([]*lists.List, 0, len(numbers))
	for _, number := range numbers {
		handle, err := s.mutableList(channel.New(node, number), client)
		if err != nil {
			return err
		}

		handles = append(handles, handle)
	}

	deviceNode, ok := s.pool.Node(node)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownNode, node)
	}

	if err := deviceNode.Gang(mask, cmd); err != nil {
		return fmt.Errorf("gang command %s on %s failed: %w", cmd, node, err)
	}

	for _, handle := range handles {
		if _, err := handle.Refresh(); err != nil {
			s.log.WithError(err).Warnf("could not refresh %s after gang command", handle.Channel())
		}
	}

	return nil
}

func (s *Server) PerformListCommand(ch channel.Channel, client string, cmd device.ListCommand) error {
	list, err := s.mutableList(ch, client)
	if err != nil {
		return err
	}

	return list.Perform(cmd)
}

func (s *Server) PerformEventCommand(ch channel.Channel, client string, id string, cmd device.EventCommand) error {
	list, err := s.mutableList(ch, client)
	if err != nil {
		return err
	}

	return list.PerformEvent(id, cmd)
}
