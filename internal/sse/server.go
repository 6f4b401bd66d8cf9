package sse

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sarpt/list-coordinator/pkg/api"
)

const (
	name     = "SSE Server"
	pathBase = "sse"

	callbacksPath = "/callbacks"
	clientNameArg = "name"

	defaultBuffer    = 64
	defaultHeartbeat = 15 * time.Second
)

// Server registers SSE streams as coordinator clients.
type Server struct {
	apiServer api.PluginApi
	buffer    int
	cancel    context.CancelFunc
	ctx       context.Context
	heartbeat time.Duration
	log       logrus.FieldLogger
}

// Config controls behaviour of the SSE server.
// Buffer is the number of notifications queued per client before the client is dropped.
type Config struct {
	Buffer    int
	Heartbeat time.Duration
	Logger    logrus.FieldLogger
}

// NewServer prepares and returns SSE server to handle SSE connections.
func NewServer(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	buffer := cfg.Buffer
	if buffer <= 0 {
		buffer = defaultBuffer
	}

	heartbeat := cfg.Heartbeat
	if heartbeat <= 0 {
		heartbeat = defaultHeartbeat
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		buffer:    buffer,
		cancel:    cancel,
		ctx:       ctx,
		heartbeat: heartbeat,
		log:       logger.WithField("component", "sse.Server"),
	}
}

// Handler returns http.Handler responsible for SSE handling subtree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get(callbacksPath, s.callbacksHandler)

	return r
}

func (s *Server) Init(apiServer api.PluginApi) error {
	if apiServer == nil {
		return fmt.Errorf("%s requires coordinator api", name)
	}

	s.apiServer = apiServer
	return nil
}

func (s *Server) Name() string {
	return name
}

func (s *Server) PathBase() string {
	return pathBase
}

// Shutdown ends all open streams.
func (s *Server) Shutdown() {
	s.cancel()
}

// callbacksHandler keeps the stream open for as long as the client is connected.
// The first event carries the identity to be used in X-Client-Id of REST requests.
func (s *Server) callbacksHandler(res http.ResponseWriter, req *http.Request) {
	sseResWriter, err := sseResponseWriter(res)
	if err != nil {
		s.log.WithError(err).Errorf("could not start stream for %s", req.RemoteAddr)
		res.WriteHeader(http.StatusBadRequest)
		return
	}

	cl := newClient(uuid.NewString(), req.URL.Query().Get(clientNameArg), s.buffer)
	s.apiServer.ConnectClient(cl)
	defer func() {
		cl.Close()
		s.apiServer.DisconnectClient(cl.id)
		s.log.Infof("stream of client %s (%s) closed for %s", cl.id, cl.name, req.RemoteAddr)
	}()

	res.WriteHeader(http.StatusOK)
	err = sseResWriter.Send(message{
		category: clientCategory,
		name:     "registered",
		payload:  registeredPayload{Identity: cl.id, Name: cl.name},
	})
	if err != nil {
		s.log.WithError(err).Warnf("could not register client %s", cl.id)
		return
	}
	s.log.Infof("client %s (%s) registered for %s", cl.id, cl.name, req.RemoteAddr)

	heartbeat := time.NewTicker(s.heartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case msg := <-cl.messages:
			if err := sseResWriter.Send(msg); err != nil {
				s.log.WithError(err).Warnf("dropping client %s", cl.id)
				return
			}
		case <-heartbeat.C:
			if err := sseResWriter.Comment("heartbeat"); err != nil {
				s.log.WithError(err).Warnf("dropping client %s", cl.id)
				return
			}
		case <-cl.done:
			return
		case <-req.Context().Done():
			return
		case <-s.ctx.Done():
			return
		}
	}
}
