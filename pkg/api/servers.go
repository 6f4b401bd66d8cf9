package api

// GetAvailableDeviceServers returns configured nodes which are connected.
func (s *Server) GetAvailableDeviceServers() []string {
	available := []string{}
	for _, name := range s.pool.Configured() {
		node, ok := s.pool.Node(name)
		if ok && node.Connected() {
			available = append(available, name)
		}
	}

	return available
}

func (s *Server) GetAllConfiguredServers() []string {
	return s.pool.Configured()
}

// GetListCount returns number of lists of a running node.
func (s *Server) GetListCount(node string) (int, error) {
	if err := s.resolveNode(node); err != nil {
		return 0, err
	}

	handles, err := s.repository.Lists().Lists(node)
	if err != nil {
		return 0, err
	}

	return len(handles), nil
}
