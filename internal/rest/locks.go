package rest

import (
	"net/http"

	"github.com/sarpt/list-coordinator/internal/common"
)

type lockResponse struct {
	Available bool `json:"available"`
	Changed   bool `json:"changed"`
}

func (s *Server) getLockHandler(res http.ResponseWriter, req *http.Request) {
	ch, client, err := target(req)
	if err != nil {
		s.writeError(res, req, err)
		return
	}

	available, err := s.apiServer.IsListAvailable(ch, client)
	if err != nil {
		s.writeError(res, req, err)
		return
	}

	common.WriteJSON(res, http.StatusOK, lockResponse{Available: available})
}

func (s *Server) putLockHandler(res http.ResponseWriter, req *http.Request) {
	ch, client, err := target(req)
	if err != nil {
		s.writeError(res, req, err)
		return
	}

	changed, err := s.apiServer.LockList(ch, client)
	if err != nil {
		s.writeError(res, req, err)
		return
	}

	common.WriteJSON(res, http.StatusOK, lockResponse{Available: true, Changed: changed})
}

func (s *Server) deleteLockHandler(res http.ResponseWriter, req *http.Request) {
	ch, client, err := target(req)
	if err != nil {
		s.writeError(res, req, err)
		return
	}

	changed, err := s.apiServer.UnlockList(ch, client)
	if err != nil {
		s.writeError(res, req, err)
		return
	}

	common.WriteJSON(res, http.StatusOK, lockResponse{Available: true, Changed: changed})
}
