package rest

import (
	"net/http"

	"github.com/go-chi/chi"

	"github.com/sarpt/list-coordinator/internal/common"
)

type listenerResponse struct {
	Removed int `json:"removed"`
}

func (s *Server) putListListenerHandler(res http.ResponseWriter, req *http.Request) {
	ch, client, err := target(req)
	if err != nil {
		s.writeError(res, req, err)
		return
	}

	if err := s.apiServer.RegisterListListener(ch, client); err != nil {
		s.writeError(res, req, err)
		return
	}

	res.WriteHeader(http.StatusNoContent)
}

func (s *Server) deleteListListenerHandler(res http.ResponseWriter, req *http.Request) {
	ch, client, err := target(req)
	if err != nil {
		s.writeError(res, req, err)
		return
	}

	removed, err := s.apiServer.UnregisterListListener(ch, client)
	if err != nil {
		s.writeError(res, req, err)
		return
	}

	common.WriteJSON(res, http.StatusOK, listenerResponse{Removed: boolToInt(removed)})
}

func (s *Server) deleteAllListListenersHandler(res http.ResponseWriter, req *http.Request) {
	client, err := clientFrom(req)
	if err != nil {
		s.writeError(res, req, err)
		return
	}

	removed, err := s.apiServer.UnregisterListListenerAll(client)
	if err != nil {
		s.writeError(res, req, err)
		return
	}

	common.WriteJSON(res, http.StatusOK, listenerResponse{Removed: removed})
}

func (s *Server) putConnectionListenerHandler(res http.ResponseWriter, req *http.Request) {
	client, err := clientFrom(req)
	if err != nil {
		s.writeError(res, req, err)
		return
	}

	if err := s.apiServer.RegisterConnectionStateListener(chi.URLParam(req, nodeParam), client); err != nil {
		s.writeError(res, req, err)
		return
	}

	res.WriteHeader(http.StatusNoContent)
}

func (s *Server) deleteConnectionListenerHandler(res http.ResponseWriter, req *http.Request) {
	client, err := clientFrom(req)
	if err != nil {
		s.writeError(res, req, err)
		return
	}

	removed, err := s.apiServer.UnregisterConnectionStateListener(chi.URLParam(req, nodeParam), client)
	if err != nil {
		s.writeError(res, req, err)
		return
	}

	common.WriteJSON(res, http.StatusOK, listenerResponse{Removed: boolToInt(removed)})
}

func boolToInt(value bool) int {
	if value {
		return 1
	}

	return 0
}
