package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"todolist/config"
	"todolist/infras/otel"
	"todolist/infras/postgres"
	"todolist/shared/constant"
	"todolist/transport/http/response"
	"todolist/transport/http/router"
)

type ServerState int32

const (
	ServerStateStarting ServerState = iota
	ServerStateReady
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

type HTTP struct {
	Config *config.Config
	Router router.Router
	DB     *postgres.Connection
	Otel   otel.Otel

	state     atomic.Int32
	setupOnce sync.Once
	mux       *chi.Mux
}

func New(cfg *config.Config, r router.Router, db *postgres.Connection, ot otel.Otel) *HTTP {
	return &HTTP{
		Config: cfg,
		Router: r,
		DB:     db,
		Otel:   ot,
	}
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

func (h *HTTP) setState(state ServerState) {
	h.state.Store(int32(state))
}

// Serve runs the server until SIGINT or SIGTERM.
func (h *HTTP) Serve() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := h.Run(ctx); err != nil {
		log.Error().Err(err).Msg("HTTP server stopped with an error")
	}
}

// Run gates on the database, serves until ctx is done and then shuts down in
// two phases: a grace period during which /healthz reports 503 so that load
// balancers drain traffic, and a cleanup period bounding in-flight requests.
func (h *HTTP) Run(ctx context.Context) error {
	h.DB.Initialize(ctx)

	if ctx.Err() != nil {
		log.Info().Msg("Shutdown requested before the server started.")

		return nil
	}

	listener, err := net.Listen("tcp", net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port))
	if err != nil {
		return err
	}

	return h.serve(ctx, listener)
}

func (h *HTTP) serve(ctx context.Context, listener net.Listener) error {
	server := &http.Server{
		Handler:           h.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)

	go func() {
		log.Info().Str("addr", listener.Addr().String()).Msg("Starting up HTTP server.")

		serveErr <- server.Serve(listener)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	h.shutdown(server)

	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (h *HTTP) shutdown(server *http.Server) {
	shutdownConfig := h.Config.Server.Shutdown

	log.Info().Msg("Received shutdown signal.")

	if h.Config.Server.Env != config.EnvDevelopment {
		log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

		h.setState(ServerStateInGracePeriod)

		time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)
	}

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.setState(ServerStateInCleanupPeriod)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownConfig.CleanupPeriodSeconds)*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("Forcing HTTP server to close")

		_ = server.Close()
	}

	if err := h.Otel.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to flush traces")
	}

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}

// Handler returns the routed handler, building it on first use.
func (h *HTTP) Handler() http.Handler {
	h.setupOnce.Do(h.setupRoutes)

	return h.mux
}

func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Handler().ServeHTTP(w, r)
}

func (h *HTTP) setupRoutes() {
	h.mux = chi.NewRouter()

	h.mux.Get(constant.RouteHealth, h.healthCheck)
	h.mux.Group(func(r chi.Router) {
		h.Router.SetupRoutes(r)
	})

	h.setState(ServerStateReady)
}

func (h *HTTP) healthCheck(w http.ResponseWriter, _ *http.Request) {
	switch h.State() {
	case ServerStateReady:
		response.WithMessage(w, http.StatusOK, constant.ResponseOK)
	case ServerStateInGracePeriod, ServerStateInCleanupPeriod:
		response.WithPreparingShutdown(w)
	default:
		response.WithUnhealthy(w)
	}
}
