package rest

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/sarpt/list-coordinator/internal/common"
	"github.com/sarpt/list-coordinator/pkg/api"
	"github.com/sarpt/list-coordinator/pkg/device"
	"github.com/sarpt/list-coordinator/pkg/event"
)

const (
	fromArg    = "from"
	toArg      = "to"
	pageArg    = "page"
	sizeArg    = "size"
	startArg   = "start"
	countArg   = "count"
	typeArg    = "type"
	titleArg   = "title"
	statusArg  = "status"
	controlArg = "control"
	idArg      = "id"
	allArg     = "all"
)

type eventsResponse struct {
	Events []event.Event `json:"events"`
}

type eventsCountResponse struct {
	Count int `json:"count"`
}

type postEventsRequest struct {
	After  string        `json:"after"`
	Events []event.Event `json:"events"`
	Index  *int          `json:"index"`
}

type putEventsRequest struct {
	Events []event.Event `json:"events"`
}

type moveEventsRequest struct {
	Count int `json:"count"`
	From  int `json:"from"`
	To    int `json:"to"`
}

type eventCommandRequest struct {
	Command device.EventCommand `json:"command"`
}

// getEventsHandler selects events by period, page, range or filter, depending on the query.
func (s *Server) getEventsHandler(res http.ResponseWriter, req *http.Request) {
	ch, err := channelFrom(req)
	if err != nil {
		s.writeError(res, req, err)
		return
	}

	query := req.URL.Query()
	var events []event.Event
	switch {
	case query.Has(fromArg) || query.Has(toArg):
		events, err = s.apiServer.GetListsByPeriod(ch, query.Get(fromArg), query.Get(toArg))
	case query.Has(pageArg):
		var page, size int
		page, size, err = intPair(req, pageArg, sizeArg)
		if err == nil {
			events, err = s.apiServer.GetListPage(ch, page, size)
		}
	case query.Has(startArg):
		var start, count int
		start, count, err = intPair(req, startArg, countArg)
		if err == nil {
			events, err = s.apiServer.GetListPartial(ch, start, count)
		}
	case query.Has(typeArg) || query.Has(titleArg) || query.Has(statusArg) || query.Has(controlArg):
		var filter event.Filter
		filter, err = filterFrom(req)
		if err == nil {
			events, err = s.apiServer.GetListFiltered(ch, filter)
		}
	default:
		var snapshot api.ListSnapshot
		snapshot, err = s.apiServer.GetList(ch)
		events = snapshot.Events
	}

	if err != nil {
		s.writeError(res, req, err)
		return
	}

	common.WriteJSON(res, http.StatusOK, eventsResponse{Events: events})
}

func (s *Server) getEventsCountHandler(res http.ResponseWriter, req *http.Request) {
	ch, err := channelFrom(req)
	if err != nil {
		s.writeError(res, req, err)
		return
	}

	count, err := s.apiServer.GetEventsCount(ch)
	if err != nil {
		s.writeError(res, req, err)
		return
	}

	common.WriteJSON(res, http.StatusOK, eventsCountResponse{Count: count})
}

func (s *Server) getSecondariesHandler(res http.ResponseWriter, req *http.Request) {
	ch, err := channelFrom(req)
	if err != nil {
		s.writeError(res, req, err)
		return
	}

	events, err := s.apiServer.GetListOfSecondaries(ch, chi.URLParam(req, eventParam))
	if err != nil {
		s.writeError(res, req, err)
		return
	}

	common.WriteJSON(res, http.StatusOK, eventsResponse{Events: events})
}

// postEventsHandler inserts events after the referenced event, at index, or at the end of the list.
func (s *Server) postEventsHandler(res http.ResponseWriter, req *http.Request) {
	ch, client, err := target(req)
	if err != nil {
		s.writeError(res, req, err)
		return
	}

	var body postEventsRequest
	if err := common.ReadJSON(req, &body); err != nil {
		common.WriteArgumentErrors(res, map[string]string{"body": err.Error()})
		return
	}

	if body.After != "" && body.Index != nil {
		common.WriteArgumentErrors(res, map[string]string{"after": "cannot be used together with index"})
		return
	}

	var inserted []event.Event
	if body.After != "" {
		inserted, err = s.apiServer.InsertEventsAfter(ch, client, body.After, body.Events)
	} else {
		index := -1
		if body.Index != nil {
			index = *body.Index
		}

		inserted, err = s.apiServer.InsertEvents(ch, client, index, body.Events)
	}

	if err != nil {
		s.writeError(res, req, err)
		return
	}

	s.log.Debugf("inserted %d events on %s due to request from %s", len(inserted), ch, client)
	common.WriteJSON(res, http.StatusCreated, eventsResponse{Events: inserted})
}

func (s *Server) putEventsHandler(res http.ResponseWriter, req *http.Request) {
	ch, client, err := target(req)
	if err != nil {
		s.writeError(res, req, err)
		return
	}

	var body putEventsRequest
	if err := common.ReadJSON(req, &body); err != nil {
		common.WriteArgumentErrors(res, map[string]string{"body": err.Error()})
		return
	}

	if err := s.apiServer.ModifyEvents(ch, client, body.Events); err != nil {
		s.writeError(res, req, err)
		return
	}

	res.WriteHeader(http.StatusNoContent)
}

// deleteEventsHandler removes events listed by id query values, or every event when all is set.
func (s *Server) deleteEventsHandler(res http.ResponseWriter, req *http.Request) {
	ch, client, err := target(req)
	if err != nil {
		s.writeError(res, req, err)
		return
	}

	query := req.URL.Query()
	ids := query[idArg]
	switch {
	case query.Get(allArg) == "true" && len(ids) == 0:
		s.log.Infof("clearing %s due to request from %s", ch, client)
		err = s.apiServer.DeleteAllEvents(ch, client)
	case len(ids) > 0:
		err = s.apiServer.DeleteEvents(ch, client, ids)
	default:
		common.WriteArgumentErrors(res, map[string]string{idArg: "at least one id or all=true is required"})
		return
	}

	if err != nil {
		s.writeError(res, req, err)
		return
	}

	res.WriteHeader(http.StatusNoContent)
}

func (s *Server) postMoveEventsHandler(res http.ResponseWriter, req *http.Request) {
	ch, client, err := target(req)
	if err != nil {
		s.writeError(res, req, err)
		return
	}

	body := moveEventsRequest{Count: 1}
	if err := common.ReadJSON(req, &body); err != nil {
		common.WriteArgumentErrors(res, map[string]string{"body": err.Error()})
		return
	}

	if err := s.apiServer.MoveEvents(ch, client, body.From, body.Count, body.To); err != nil {
		s.writeError(res, req, err)
		return
	}

	res.WriteHeader(http.StatusNoContent)
}

func (s *Server) postRippleHandler(res http.ResponseWriter, req *http.Request) {
	ch, client, err := target(req)
	if err != nil {
		s.writeError(res, req, err)
		return
	}

	result, err := s.apiServer.RippleTime(ch, client, chi.URLParam(req, eventParam))
	if err != nil {
		s.writeError(res, req, err)
		return
	}

	common.WriteJSON(res, http.StatusOK, result)
}

func (s *Server) postEventCommandHandler(res http.ResponseWriter, req *http.Request) {
	ch, client, err := target(req)
	if err != nil {
		s.writeError(res, req, err)
		return
	}

	var body eventCommandRequest
	if err := common.ReadJSON(req, &body); err != nil {
		common.WriteArgumentErrors(res, map[string]string{"body": err.Error()})
		return
	}

	id := chi.URLParam(req, eventParam)
	if err := s.apiServer.PerformEventCommand(ch, client, id, body.Command); err != nil {
		s.writeError(res, req, err)
		return
	}

	res.WriteHeader(http.StatusNoContent)
}

func intPair(req *http.Request, firstKey, secondKey string) (int, int, error) {
	first, err := common.IntFromQuery(req, firstKey, 0)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s", api.ErrValidation, err)
	}

	second, err := common.IntFromQuery(req, secondKey, 0)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s", api.ErrValidation, err)
	}

	return first, second, nil
}

func filterFrom(req *http.Request) (event.Filter, error) {
	filter := event.Filter{
		Title: req.URL.Query().Get(titleArg),
	}

	for _, t := range req.URL.Query()[typeArg] {
		filter.Types = append(filter.Types, event.Type(t))
	}

	status, err := common.IntFromQuery(req, statusArg, 0)
	if err != nil {
		return event.Filter{}, fmt.Errorf("%w: %s", api.ErrValidation, err)
	}

	control, err := common.IntFromQuery(req, controlArg, 0)
	if err != nil {
		return event.Filter{}, fmt.Errorf("%w: %s", api.ErrValidation, err)
	}

	filter.Status = event.Status(status)
	filter.Control = event.Control(control)

	return filter, nil
}
