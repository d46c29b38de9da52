package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/nsqlite/mcpsqlite/internal/log"
	"github.com/nsqlite/mcpsqlite/internal/mcpsqlited/gateway"
	"github.com/nsqlite/mcpsqlite/internal/util/httputil"
)

// Gateway is the database access used by the server.
type Gateway interface {
	Execute(ctx context.Context, query string) (gateway.Result, error)
	ListTables(ctx context.Context) (gateway.Result, error)
}

// Config represents the configuration for a server.
type Config struct {
	// Logger is the shared logger.
	Logger log.Logger
	// Gateway runs the statements of every tool call.
	Gateway Gateway
	// ListenHost is the host to listen on.
	ListenHost string
	// ListenPort is the port to listen on.
	ListenPort string
	// MaxBodySize is the maximum accepted request body in bytes. Zero
	// means unlimited.
	MaxBodySize int64
}

// Server serves the tool-call endpoint.
type Server struct {
	logger      log.Logger
	gateway     Gateway
	listenHost  string
	listenPort  string
	maxBodySize int64
	server      http.Server
}

// NewServer creates a new server.
func NewServer(config Config) (*Server, error) {
	if !config.Logger.IsInitialized() {
		return nil, errors.New("logger is required")
	}
	if config.Gateway == nil {
		return nil, errors.New("gateway is required")
	}
	if config.MaxBodySize < 0 {
		return nil, errors.New("max body size cannot be negative")
	}
	if config.ListenHost == "" {
		config.ListenHost = "0.0.0.0"
	}
	if config.ListenPort == "" {
		config.ListenPort = "8000"
	}

	s := &Server{
		logger:      config.Logger,
		gateway:     config.Gateway,
		listenHost:  config.ListenHost,
		listenPort:  config.ListenPort,
		maxBodySize: config.MaxBodySize,
	}
	s.server = http.Server{
		Addr:    net.JoinHostPort(s.listenHost, s.listenPort),
		Handler: s.Handler(),
	}
	return s, nil
}

// Handler returns the router with every route of the server.
func (s *Server) Handler() http.Handler {
	build := httputil.CreateHandlerFuncBuilder(s.errorHandler)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /mcp", build(s.mcpHandler, s.logRequestMiddleware))
	return mux
}

// Start listens and serves until Stop is called.
func (s *Server) Start() error {
	localAddr := fmt.Sprintf("http://%s/mcp", net.JoinHostPort("localhost", s.listenPort))
	s.logger.InfoNs(log.NsServer, "server started at "+localAddr, log.KV{
		"listen_host": s.listenHost,
		"listen_port": s.listenPort,
	})

	err := s.server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Stop gracefully stops the server, waiting for in-flight requests until
// ctx is done.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
