package main

import (
	"context"
	"flag"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cbodonnell/hex/pkg/api"
	"github.com/cbodonnell/hex/pkg/log"
	"github.com/cbodonnell/hex/pkg/messages"
	"github.com/cbodonnell/hex/pkg/network"
	"github.com/cbodonnell/hex/pkg/repositories"
	"github.com/cbodonnell/hex/pkg/state"
	"github.com/cbodonnell/hex/pkg/version"
	"github.com/cbodonnell/hex/pkg/workers"
)

func main() {
	port := flag.Int("port", 9090, "port to listen on")
	allowOrigin := flag.String("allow-origin", "*", "value of the Access-Control-Allow-Origin header")
	logLevel := flag.String("log-level", "info", "Log level")
	saveInterval := flag.Duration("save-interval", 10*time.Second, "interval between saves of changed games")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting hex server version %s", version.Get())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	connStr := os.Getenv("HEX_DATABASE_URL")
	if connStr == "" {
		connStr = "sqlite://hex.db"
	}
	migrationsDir := os.Getenv("HEX_MIGRATIONS_DIR")
	if migrationsDir == "" {
		migrationsDir = "./migrations/sqlite"
	}

	u, err := url.Parse(connStr)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse connection string: %v", err))
	}

	var repository repositories.Repository
	switch u.Scheme {
	case "sqlite":
		repository, err = repositories.NewSQLiteRepository(ctx, u.Host+u.Path, migrationsDir)
		if err != nil {
			panic(fmt.Sprintf("Failed to create SQLite repository: %v", err))
		}
	case "postgres", "postgresql":
		repository, err = repositories.NewPostgresRepository(ctx, u.String())
		if err != nil {
			panic(fmt.Sprintf("Failed to create Postgres repository: %v", err))
		}
	default:
		panic(fmt.Sprintf("Unknown database type %s", u.Scheme))
	}
	defer repository.Close(context.Background())

	stateManager := state.NewInMemoryStateManager()
	watcherManager := network.NewWatcherManager()

	saveGameChannelSize := 100
	saveGameChan := make(chan workers.SaveGameRequest, saveGameChannelSize)
	saveGameWorker := workers.NewSaveGameWorker(workers.NewSaveGameWorkerOptions{
		Repository:   repository,
		SaveGameChan: saveGameChan,
		StateManager: stateManager,
		Interval:     *saveInterval,
	})
	saveGameWorkerDone := make(chan struct{})
	go func() {
		saveGameWorker.Start(ctx)
		close(saveGameWorkerDone)
	}()

	updateChannelSize := 1000
	updateChan := make(chan *messages.GameUpdate, updateChannelSize)
	broadcastWorker := workers.NewBroadcastUpdateWorker(workers.NewBroadcastUpdateWorkerOptions{
		WatcherManager: watcherManager,
		UpdateChan:     updateChan,
	})
	go broadcastWorker.Start(ctx)

	apiServerOpts := api.NewAPIServerOptions{
		Port:           *port,
		AllowOrigin:    *allowOrigin,
		Repository:     repository,
		StateManager:   stateManager,
		WatcherManager: watcherManager,
		SaveGameChan:   saveGameChan,
		UpdateChan:     updateChan,
	}
	tlsCertFile := os.Getenv("HEX_API_TLS_CERT_FILE")
	tlsKeyFile := os.Getenv("HEX_API_TLS_KEY_FILE")
	if tlsCertFile != "" && tlsKeyFile != "" {
		apiServerOpts.TLS = &api.TLSConfig{
			CertFile: tlsCertFile,
			KeyFile:  tlsKeyFile,
		}
	}
	server := api.NewAPIServer(apiServerOpts)
	go server.Start()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt
	log.Info("Shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Stop(shutdownCtx); err != nil {
		log.Error("Failed to stop server: %v", err)
	}
	cancel()
	<-saveGameWorkerDone
}
