package rest

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/sarpt/list-coordinator/pkg/api"
)

const (
	name     = "REST Server"
	pathBase = "rest"

	clientHeader = "X-Client-Id"
)

var errNotInitialized = errors.New("rest server used before initialization")

// Config controls behaviour of the REST server.
type Config struct {
	AllowCORS bool
	Logger    logrus.FieldLogger
}

// Server is responsible for creating REST handlers, argument parsing and validation.
type Server struct {
	allowCORS bool
	apiServer api.PluginApi
	log       logrus.FieldLogger
}

// NewServer returns rest.Server instance.
func NewServer(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Server{
		allowCORS: cfg.AllowCORS,
		log:       logger.WithField("component", "rest.Server"),
	}
}

func (s *Server) Init(apiServer api.PluginApi) error {
	if apiServer == nil {
		return errNotInitialized
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

func (s *Server) Shutdown() {}
