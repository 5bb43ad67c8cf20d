package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cbodonnell/hex/pkg/api/handlers"
	"github.com/cbodonnell/hex/pkg/api/middleware"
	"github.com/cbodonnell/hex/pkg/log"
	"github.com/cbodonnell/hex/pkg/messages"
	"github.com/cbodonnell/hex/pkg/network"
	"github.com/cbodonnell/hex/pkg/repositories"
	"github.com/cbodonnell/hex/pkg/state"
	"github.com/cbodonnell/hex/pkg/workers"
	"github.com/gorilla/mux"
)

type APIServer struct {
	server *http.Server
	tls    *TLSConfig
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

type NewAPIServerOptions struct {
	Port           int
	AllowOrigin    string
	TLS            *TLSConfig
	Repository     repositories.Repository
	StateManager   state.StateManager
	WatcherManager *network.WatcherManager
	SaveGameChan   chan<- workers.SaveGameRequest
	UpdateChan     chan<- *messages.GameUpdate
}

// NewAPIServer creates a new http.Server for handling API requests
func NewAPIServer(opts NewAPIServerOptions) *APIServer {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: NewRouter(opts),
	}
	return &APIServer{
		server: server,
		tls:    opts.TLS,
	}
}

// NewRouter registers the game routes
func NewRouter(opts NewAPIServerOptions) *mux.Router {
	gamePath := fmt.Sprintf("/games/{%s}", handlers.GameIDVar)

	r := mux.NewRouter()
	r.Use(middleware.NewLoggingMiddleware())
	if opts.AllowOrigin != "" {
		r.Use(middleware.NewCORSMiddleware(opts.AllowOrigin))
		// preflight requests are answered by the CORS middleware
		r.Methods(http.MethodOptions).HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	}

	r.HandleFunc("/games", handlers.HandleListGames(opts.Repository)).Methods(http.MethodGet)
	r.HandleFunc("/games", handlers.HandleCreateGame(opts.StateManager, opts.SaveGameChan)).Methods(http.MethodPost)
	r.HandleFunc(gamePath, handlers.HandleGetGame(opts.Repository, opts.StateManager)).Methods(http.MethodGet)
	r.HandleFunc(gamePath, handlers.HandleDeleteGame(opts.Repository, opts.StateManager)).Methods(http.MethodDelete)
	r.HandleFunc(gamePath+"/moves", handlers.HandlePlayMove(opts.Repository, opts.StateManager, opts.SaveGameChan, opts.UpdateChan)).Methods(http.MethodPost)
	r.HandleFunc(gamePath+"/auto", handlers.HandleAutoMove(opts.Repository, opts.StateManager, opts.SaveGameChan, opts.UpdateChan)).Methods(http.MethodPost)
	r.HandleFunc(gamePath+"/watch", handlers.HandleWatchGame(opts.Repository, opts.StateManager, opts.WatcherManager)).Methods(http.MethodGet)

	return r
}

// Start starts the APIServer
func (s *APIServer) Start() {
	var listenAndServe func() error
	if s.tls != nil {
		log.Info("API server listening on %s with TLS", s.server.Addr)
		listenAndServe = func() error {
			return s.server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
		}
	} else {
		log.Info("API server listening on %s", s.server.Addr)
		listenAndServe = s.server.ListenAndServe
	}
	if err := listenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("API server closed")
			return
		}
		log.Error("API server error: %v", err)
	}
}

// Stop stops the APIServer
func (s *APIServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
