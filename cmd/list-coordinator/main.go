package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/sarpt/goutils/pkg/listflag"
	"github.com/sirupsen/logrus"

	"github.com/sarpt/list-coordinator/cmd/list-coordinator/internal/utils"
	"github.com/sarpt/list-coordinator/internal/rest"
	"github.com/sarpt/list-coordinator/internal/sse"
	"github.com/sarpt/list-coordinator/pkg/api"
	"github.com/sarpt/list-coordinator/pkg/device/memory"
)

const (
	defaultAddress = "localhost:3001"

	addrFlag            = "addr"
	allowCorsFlag       = "allow-cors"
	appDirFlag          = "dir"
	connectFlag         = "connect"
	logLevelFlag        = "log-level"
	nodeFlag            = "node"
	refreshIntervalFlag = "refresh-interval"
	reapIntervalFlag    = "reap-interval"
	watchConfigFlag     = "watch-config"
)

var (
	address         *string
	allowCORS       *bool
	appDir          *string
	connect         *listflag.StringList
	logLevel        *string
	nodes           *listflag.StringList
	reapInterval    *time.Duration
	refreshInterval *time.Duration
	watchConfig     *bool
)

func init() {
	nodes = listflag.NewStringList([]string{})
	connect = listflag.NewStringList([]string{})

	flag.Var(nodes, nodeFlag, "simulated node in NAME:LISTS form. can be repeated")
	flag.Var(connect, connectFlag, "name of a node to connect on start. can be repeated")
	address = flag.String(addrFlag, defaultAddress, "address on which server should listen on")
	allowCORS = flag.Bool(allowCorsFlag, false, "when not provided, Cross Origin Site Requests will be rejected")
	appDir = flag.String(appDirFlag, utils.DefaultAppDir, "directory with config.json")
	logLevel = flag.String(logLevelFlag, logrus.InfoLevel.String(), "one of: trace, debug, info, warn, error")
	refreshInterval = flag.Duration(refreshIntervalFlag, 5*time.Second, "interval of lists refresh from devices. negative disables refresh")
	reapInterval = flag.Duration(reapIntervalFlag, 10*time.Second, "interval of dead clients removal. negative disables removal")
	watchConfig = flag.Bool(watchConfigFlag, true, "reload nodes when config.json changes")

	flag.Parse()
}

func main() {
	logger := logrus.New()
	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
	logger.SetLevel(level)
	log := logger.WithField("component", "main")

	dir, err := utils.HandleAppDir(*appDir)
	if err != nil {
		log.WithError(err).Fatal("could not prepare app dir")
	}

	configPath := utils.ConfigPath(dir)
	fileCfg, err := utils.LoadConfig(configPath)
	if err != nil {
		log.WithError(err).Fatal("could not load config")
	}

	flagsCfg := utils.Config{Connect: connect.Values()}
	for _, definition := range nodes.Values() {
		node, err := utils.ParseNode(definition)
		if err != nil {
			log.WithError(err).Fatal("invalid node flag")
		}

		flagsCfg.Nodes = append(flagsCfg.Nodes, node)
	}

	current := fileCfg.Merge(flagsCfg)
	pool := memory.NewPool(current.Nodes)
	for _, err := range utils.Reconcile(pool, utils.Config{}, current) {
		log.WithError(err).Warn("could not apply config")
	}

	server, err := api.NewServer(api.Config{
		Address: *address,
		Logger:  logger,
		Plugins: []api.Plugin{
			rest.NewServer(rest.Config{AllowCORS: *allowCORS, Logger: logger}),
			sse.NewServer(sse.Config{Logger: logger}),
		},
		Pool:            pool,
		ReapInterval:    *reapInterval,
		RefreshInterval: *refreshInterval,
	})
	if err != nil {
		log.WithError(err).Fatal("could not create server")
	}
	defer server.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if *watchConfig {
		lock := &sync.Mutex{}
		err := utils.WatchConfig(ctx, configPath, logger.WithField("component", "utils.WatchConfig"), func(fromFile utils.Config) {
			lock.Lock()
			defer lock.Unlock()

			next := fromFile.Merge(flagsCfg)
			for _, err := range utils.Reconcile(pool, current, next) {
				log.WithError(err).Warn("could not apply config change")
			}
			current = next
		})
		if err != nil {
			log.WithError(err).Warn("config changes will not be applied")
		}
	}

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		server.Close()
	}()

	log.Infof("configured nodes: %v", pool.Configured())
	if err := server.Serve(); err != nil {
		log.WithError(err).Error("server stopped")
	}
}
