package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi"
	"github.com/sirupsen/logrus"

	"github.com/sarpt/list-coordinator/pkg/device"
	"github.com/sarpt/list-coordinator/pkg/state"
	"github.com/sarpt/list-coordinator/pkg/state/pkg/subscribers"
)

const (
	logComponent = "api.Server"

	defaultNameRefreshEvery = 10
	defaultReapInterval     = 5 * time.Second
	defaultRefreshInterval  = time.Second
	shutdownTimeout         = 5 * time.Second
)

var (
	errNoPool = errors.New("device pool is required")
)

// Server coordinates lists of device nodes and serves them to clients through plugins.
type Server struct {
	address         string
	cancel          context.CancelFunc
	clients         map[string]subscribers.Callback
	clientsLock     *sync.RWMutex
	closeOnce       *sync.Once
	ctx             context.Context
	httpServer      *http.Server
	log             logrus.FieldLogger
	plugins         []Plugin
	pool            device.Pool
	reapInterval    time.Duration
	refreshInterval time.Duration
	repository      state.Repository
	updates         *updateLoop
	workers         *sync.WaitGroup
}

// Config controls behaviour of the api server.
type Config struct {
	Address string
	Logger  logrus.FieldLogger
	// NameRefreshEvery specifies how many update passes happen between refreshes of list names.
	NameRefreshEvery int
	Plugins          []Plugin
	Pool             device.Pool
	// ReapInterval specifies how often dead clients are looked for. Zero uses default, negative disables.
	ReapInterval time.Duration
	// RefreshInterval specifies how often lists of every node are refreshed. Zero uses default, negative disables.
	RefreshInterval time.Duration
}

// NewServer prepares server and starts its update loop. Nodes already connected in the pool are initialized.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Pool == nil {
		return nil, errNoPool
	}

	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}

	if cfg.NameRefreshEvery <= 0 {
		cfg.NameRefreshEvery = defaultNameRefreshEvery
	}

	if cfg.ReapInterval == 0 {
		cfg.ReapInterval = defaultReapInterval
	}

	if cfg.RefreshInterval == 0 {
		cfg.RefreshInterval = defaultRefreshInterval
	}

	ctx, cancel := context.WithCancel(context.Background())
	server := &Server{
		address:         cfg.Address,
		cancel:          cancel,
		clients:         map[string]subscribers.Callback{},
		clientsLock:     &sync.RWMutex{},
		closeOnce:       &sync.Once{},
		ctx:             ctx,
		log:             cfg.Logger.WithField("component", logComponent),
		pool:            cfg.Pool,
		reapInterval:    cfg.ReapInterval,
		refreshInterval: cfg.RefreshInterval,
		workers:         &sync.WaitGroup{},
	}

	server.repository = state.NewRepository(server.resolveNode)
	server.repository.Subscribers().OnReaped(server.handleReaped)
	server.repository.Lists().Subscribe(server.handleNodeChange)

	server.updates = newUpdateLoop(updateLoopConfig{
		init:             server.initNode,
		log:              cfg.Logger.WithField("component", "api.updateLoop"),
		maintain:         server.refreshListNames,
		nameRefreshEvery: cfg.NameRefreshEvery,
		remove:           server.removeNode,
		update:           server.updateNode,
	})
	server.updates.start()

	server.pool.Observe(server)
	for _, name := range server.pool.Configured() {
		node, ok := server.pool.Node(name)
		if ok && node.Connected() {
			server.updates.enqueueInit(name)
		}
	}

	server.startWorkers()

	for _, plugin := range cfg.Plugins {
		err := plugin.Init(server)
		if err != nil {
			server.Close()
			return nil, fmt.Errorf("could not initialize plugin %s: %w", plugin.Name(), err)
		}

		server.plugins = append(server.plugins, plugin)
	}

	server.httpServer = &http.Server{
		Addr:    server.address,
		Handler: server.Handler(),
	}

	return server, nil
}

// Handler returns handler with every plugin mounted under its path base.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()
	for _, plugin := range s.plugins {
		path := fmt.Sprintf("/%s", plugin.PathBase())
		router.Mount(path, plugin.Handler())
		s.log.Infof("plugin %s mounted at %s", plugin.Name(), path)
	}

	return router
}

// Serve starts handling plugin endpoints. Blocks until the http server stops serving.
func (s *Server) Serve() error {
	s.log.Infof("running server at %s", s.address)
	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}

// Close stops serving, the update loop and background workers. Safe to call multiple times.
func (s *Server) Close() {
	s.closeOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		for _, plugin := range s.plugins {
			plugin.Shutdown()
		}

		if s.httpServer != nil {
			if err := s.httpServer.Shutdown(ctx); err != nil {
				s.log.WithError(err).Warn("http server did not shut down cleanly")
			}
		}

		s.cancel()
		s.workers.Wait()
		s.updates.close()
		s.repository.Close()
		s.log.Info("server closed")
	})
}

func (s *Server) startWorkers() {
	if s.reapInterval > 0 {
		s.workers.Add(1)
		go func() {
			defer s.workers.Done()
			s.repository.Subscribers().Run(s.ctx, s.reapInterval)
		}()
	}

	if s.refreshInterval > 0 {
		s.workers.Add(1)
		go func() {
			defer s.workers.Done()
			s.refreshPeriodically(s.refreshInterval)
		}()
	}
}

func (s *Server) refreshPeriodically(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			for _, node := range s.repository.Lists().Nodes() {
				s.RequestUpdate(node)
			}
		}
	}
}
