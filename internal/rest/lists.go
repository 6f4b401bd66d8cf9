package rest

import (
	"net/http"

	"github.com/sarpt/list-coordinator/internal/common"
	"github.com/sarpt/list-coordinator/pkg/device"
)

type lookaheadPayload struct {
	Lookahead int `json:"lookahead"`
}

type listCommandRequest struct {
	Command device.ListCommand `json:"command"`
}

func (s *Server) getListHandler(res http.ResponseWriter, req *http.Request) {
	ch, err := channelFrom(req)
	if err != nil {
		s.writeError(res, req, err)
		return
	}

	revision, err := s.apiServer.ListRevision(ch)
	if err != nil {
		s.writeError(res, req, err)
		return
	}

	if revisionMatches(req, ch, revision) {
		res.WriteHeader(http.StatusNotModified)
		return
	}

	snapshot, err := s.apiServer.GetList(ch)
	if err != nil {
		s.writeError(res, req, err)
		return
	}

	setRevisionInResponse(res, ch, snapshot.Revision)
	common.WriteJSON(res, http.StatusOK, snapshot)
}

func (s *Server) postListCommandHandler(res http.ResponseWriter, req *http.Request) {
	ch, client, err := target(req)
	if err != nil {
		s.writeError(res, req, err)
		return
	}

	var body listCommandRequest
	if err := common.ReadJSON(req, &body); err != nil {
		common.WriteArgumentErrors(res, map[string]string{"body": err.Error()})
		return
	}

	s.log.Infof("performing %s on %s due to request from %s", body.Command, ch, client)
	if err := s.apiServer.PerformListCommand(ch, client, body.Command); err != nil {
		s.writeError(res, req, err)
		return
	}

	res.WriteHeader(http.StatusNoContent)
}

func (s *Server) getLookaheadHandler(res http.ResponseWriter, req *http.Request) {
	ch, err := channelFrom(req)
	if err != nil {
		s.writeError(res, req, err)
		return
	}

	lookahead, err := s.apiServer.GetLookahead(ch)
	if err != nil {
		s.writeError(res, req, err)
		return
	}

	common.WriteJSON(res, http.StatusOK, lookaheadPayload{Lookahead: lookahead})
}

func (s *Server) putLookaheadHandler(res http.ResponseWriter, req *http.Request) {
	ch, client, err := target(req)
	if err != nil {
		s.writeError(res, req, err)
		return
	}

	var body lookaheadPayload
	if err := common.ReadJSON(req, &body); err != nil {
		common.WriteArgumentErrors(res, map[string]string{"body": err.Error()})
		return
	}

	if err := s.apiServer.SetLookahead(ch, client, body.Lookahead); err != nil {
		s.writeError(res, req, err)
		return
	}

	common.WriteJSON(res, http.StatusOK, body)
}

func (s *Server) postToggleLookaheadHandler(res http.ResponseWriter, req *http.Request) {
	ch, client, err := target(req)
	if err != nil {
		s.writeError(res, req, err)
		return
	}

	lookahead, err := s.apiServer.ToggleLookahead(ch, client)
	if err != nil {
		s.writeError(res, req, err)
		return
	}

	common.WriteJSON(res, http.StatusOK, lookaheadPayload{Lookahead: lookahead})
}
