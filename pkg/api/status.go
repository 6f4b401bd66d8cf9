package api

import (
	"sort"
)

// NodeStatus describes a configured node as seen by the coordinator.
type NodeStatus struct {
	Name      string `json:"Name"`
	Connected bool   `json:"Connected"`
	Running   bool   `json:"Running"`
	Lists     int    `json:"Lists"`
}

// Status holds information about coordinator misc status.
type Status struct {
	Clients     []string     `json:"Clients"`
	Subscribers []string     `json:"Subscribers"`
	Nodes       []NodeStatus `json:"Nodes"`
}

// Status returns connected clients, clients with active subscriptions and state of every configured node.
func (s *Server) Status() Status {
	s.clientsLock.RLock()
	clients := make([]string, 0, len(s.clients))
	for id := range s.clients {
		clients = append(clients, id)
	}
	s.clientsLock.RUnlock()
	sort.Strings(clients)

	status := Status{
		Clients:     clients,
		Subscribers: s.repository.Subscribers().Identities(),
		Nodes:       []NodeStatus{},
	}

	for _, name := range s.pool.Configured() {
		nodeStatus := NodeStatus{Name: name}
		if node, ok := s.pool.Node(name); ok {
			nodeStatus.Connected = node.Connected()
		}

		if handles, err := s.repository.Lists().Lists(name); err == nil {
			nodeStatus.Running = true
			nodeStatus.Lists = len(handles)
		}

		status.Nodes = append(status.Nodes, nodeStatus)
	}

	return status
}
