package rest

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/sarpt/list-coordinator/internal/common"
	"github.com/sarpt/list-coordinator/pkg/api"
	"github.com/sarpt/list-coordinator/pkg/channel"
	"github.com/sarpt/list-coordinator/pkg/device"
)

var errMissingClient = fmt.Errorf("%w: missing %s header", api.ErrValidation, clientHeader)

// statusFor maps coordinator errors to http status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, api.ErrUnknownNode), errors.Is(err, api.ErrListNotProvisioned):
		return http.StatusNotFound
	case errors.Is(err, api.ErrNodeNotRunning), errors.Is(err, device.ErrNotConnected):
		return http.StatusServiceUnavailable
	case errors.Is(err, api.ErrChannelLocked):
		return http.StatusConflict
	case errors.Is(err, api.ErrUnknownClient):
		return http.StatusUnauthorized
	case errors.Is(err, api.ErrValidation), errors.Is(err, api.ErrTimecodeParse),
		errors.Is(err, device.ErrNoSuchEvent), errors.Is(err, device.ErrUnknownCommand):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(res http.ResponseWriter, req *http.Request, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		s.log.WithError(err).Errorf("request %s %s from %s failed", req.Method, req.URL.Path, req.RemoteAddr)
	} else {
		s.log.WithError(err).Debugf("request %s %s from %s rejected", req.Method, req.URL.Path, req.RemoteAddr)
	}

	common.WriteJSON(res, code, err)
}

func channelFrom(req *http.Request) (channel.Channel, error) {
	number, err := strconv.Atoi(chi.URLParam(req, listParam))
	if err != nil || number < 1 {
		return channel.Channel{}, fmt.Errorf("%w: invalid list number '%s'", api.ErrValidation, chi.URLParam(req, listParam))
	}

	return channel.New(chi.URLParam(req, nodeParam), number), nil
}

func clientFrom(req *http.Request) (string, error) {
	client := req.Header.Get(clientHeader)
	if client == "" {
		return "", errMissingClient
	}

	return client, nil
}

// target resolves channel and client identity of a request addressing a list on behalf of a client.
func target(req *http.Request) (channel.Channel, string, error) {
	ch, err := channelFrom(req)
	if err != nil {
		return channel.Channel{}, "", err
	}

	client, err := clientFrom(req)
	if err != nil {
		return channel.Channel{}, "", err
	}

	return ch, client, nil
}
