package rest

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/sarpt/list-coordinator/internal/common"
	"github.com/sarpt/list-coordinator/pkg/api"
	"github.com/sarpt/list-coordinator/pkg/device"
)

type getNodesResponse struct {
	Available  []string `json:"available"`
	Configured []string `json:"configured"`
}

type getListCountResponse struct {
	Count int `json:"count"`
}

type postGangRequest struct {
	Lists   []int              `json:"lists"`
	Mask    uint32             `json:"mask"`
	Command device.ListCommand `json:"command"`
}

func (s *Server) getNodesHandler(res http.ResponseWriter, req *http.Request) {
	common.WriteJSON(res, http.StatusOK, getNodesResponse{
		Available:  s.apiServer.GetAvailableDeviceServers(),
		Configured: s.apiServer.GetAllConfiguredServers(),
	})
}

func (s *Server) getStatusHandler(res http.ResponseWriter, req *http.Request) {
	common.WriteJSON(res, http.StatusOK, s.apiServer.Status())
}

func (s *Server) getListCountHandler(res http.ResponseWriter, req *http.Request) {
	count, err := s.apiServer.GetListCount(chi.URLParam(req, nodeParam))
	if err != nil {
		s.writeError(res, req, err)
		return
	}

	common.WriteJSON(res, http.StatusOK, getListCountResponse{Count: count})
}

// postGangHandler addresses lists either by explicit mask or by list numbers, not both.
func (s *Server) postGangHandler(res http.ResponseWriter, req *http.Request) {
	client, err := clientFrom(req)
	if err != nil {
		s.writeError(res, req, err)
		return
	}

	var body postGangRequest
	if err := common.ReadJSON(req, &body); err != nil {
		common.WriteArgumentErrors(res, map[string]string{"body": err.Error()})
		return
	}

	if body.Mask != 0 && len(body.Lists) > 0 {
		s.writeError(res, req, fmt.Errorf("%w: either mask or lists should be provided", api.ErrValidation))
		return
	}

	mask := body.Mask
	if len(body.Lists) > 0 {
		mask = device.GangMask(body.Lists...)
	}

	node := chi.URLParam(req, nodeParam)
	s.log.Infof("gang command %s on %s with mask %b due to request from %s", body.Command, node, mask, client)
	if err := s.apiServer.GangCommand(node, client, mask, body.Command); err != nil {
		s.writeError(res, req, err)
		return
	}

	res.WriteHeader(http.StatusNoContent)
}
