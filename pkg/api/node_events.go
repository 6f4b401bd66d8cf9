package api

import (
	"errors"
	"fmt"

	"github.com/sarpt/list-coordinator/pkg/channel"
	"github.com/sarpt/list-coordinator/pkg/state/pkg/lists"
	"github.com/sarpt/list-coordinator/pkg/state/pkg/subscribers"
)

// OnServerConnected schedules initialization of node lists and informs connection state listeners.
func (s *Server) OnServerConnected(name string) {
	s.log.Infof("node %s connected", name)
	s.updates.enqueueInit(name)
	s.notifyConnectionState(name, subscribers.Connected)
}

// OnServerDisconnected schedules removal of node lists and informs connection state listeners.
func (s *Server) OnServerDisconnected(name string) {
	s.log.Infof("node %s disconnected", name)
	s.updates.enqueueRemoval(name)
	s.notifyConnectionState(name, subscribers.Disconnected)
}

// RequestUpdate schedules refresh of all lists of the node.
func (s *Server) RequestUpdate(name string) {
	s.updates.enqueueUpdate(name)
}

func (s *Server) initNode(name string) {
	if s.repository.Lists().Has(name) {
		return
	}

	node, ok := s.pool.Node(name)
	if !ok {
		s.log.Warnf("could not initialize unknown node %s", name)
		return
	}

	if !node.Connected() {
		s.log.Debugf("skipping initialization of node %s as it is not connected", name)
		return
	}

	count, err := node.ListCount()
	if err != nil {
		s.log.WithError(err).Errorf("could not read lists count of node %s", name)
		return
	}

	names, err := node.ListNames()
	if err != nil {
		s.log.WithError(err).Debugf("could not read list names of node %s, default names are used", name)
	}

	handles := make([]*lists.List, 0, count)
	for number := 1; number <= count; number++ {
		deviceList, err := node.List(number)
		if err != nil {
			s.log.WithError(err).Errorf("could not access list %d of node %s", number, name)
			disposeAll(handles)
			return
		}

		handle := lists.NewList(lists.Config{
			Channel:  channel.New(name, number),
			Device:   deviceList,
			Name:     listName(names, number),
			OnChange: s.handleListChange,
		})
		if err := handle.Load(); err != nil {
			s.log.WithError(err).Warnf("could not load content of list %d of node %s", number, name)
		}

		handles = append(handles, handle)
	}

	if !s.repository.Lists().PutIfAbsent(name, handles) {
		s.log.Debugf("lists of node %s were initialized concurrently", name)
		disposeAll(handles)
		return
	}

	s.log.Infof("initialized %d lists of node %s", count, name)
}

func (s *Server) removeNode(name string) {
	handles, ok := s.repository.Lists().RemoveIfPresent(name)
	if !ok {
		return
	}

	disposeAll(handles)
	s.log.Infof("removed %d lists of node %s", len(handles), name)
}

func (s *Server) updateNode(name string) {
	handles, err := s.repository.Lists().Lists(name)
	if err != nil {
		s.log.WithError(err).Debugf("skipping update of node %s", name)
		return
	}

	for _, handle := range handles {
		_, err := handle.Refresh()
		if errors.Is(err, lists.ErrDisposed) {
			continue
		}

		if err != nil {
			s.log.WithError(err).Errorf("could not refresh lists of node %s", name)
			return
		}
	}
}

// refreshListNames updates cached names of all lists. Failures only skip the affected node.
func (s *Server) refreshListNames() {
	for _, name := range s.repository.Lists().Nodes() {
		node, ok := s.pool.Node(name)
		if !ok {
			continue
		}

		names, err := node.ListNames()
		if err != nil {
			s.log.WithError(err).Debugf("could not refresh list names of node %s", name)
			continue
		}

		handles, err := s.repository.Lists().Lists(name)
		if err != nil {
			continue
		}

		for idx, handle := range handles {
			handle.SetName(listName(names, idx+1))
		}
	}
}

func (s *Server) handleNodeChange(change lists.NodeChange) {
	s.log.Debugf("node %s change: %s", change.Node, change.Variant())
}

func (s *Server) notifyConnectionState(node string, status subscribers.ConnectionStatus) {
	s.repository.Subscribers().NotifyNode(node, func(cb subscribers.Callback) {
		cb.OnConnectionStateChange(node, status)
	})
}

// listName returns name reported by the device or a default one when it is missing.
func listName(names []string, number int) string {
	if number >= 1 && number <= len(names) && names[number-1] != "" {
		return names[number-1]
	}

	return fmt.Sprintf("List %d", number)
}

func disposeAll(handles []*lists.List) {
	for _, handle := range handles {
		handle.Dispose()
	}
}
