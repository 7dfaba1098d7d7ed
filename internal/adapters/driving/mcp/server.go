package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/issue-fetcher/internal/logger"
)

// ServerName is the implementation name reported during initialisation.
const ServerName = "issue-fetcher"

// DefaultVersion is reported when no build version is supplied.
const DefaultVersion = "dev"

// Server exposes issue fetching to MCP clients.
// Every tool call and resource read performs exactly one upstream fetch.
type Server struct {
	ports  *Ports
	impl   *mcp.Implementation
	server *mcp.Server
}

// Option configures a Server.
type Option func(*Server)

// WithVersion sets the version reported to clients, normally the binary's
// build version. Empty values are ignored.
func WithVersion(v string) Option {
	return func(s *Server) {
		if v != "" {
			s.impl.Version = v
		}
	}
}

// NewServer creates a new MCP server with the given ports.
func NewServer(ports *Ports, opts ...Option) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	s := &Server{
		ports: ports,
		impl:  &mcp.Implementation{Name: ServerName, Version: DefaultVersion},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.server = mcp.NewServer(s.impl, nil)

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Run serves MCP over stdio.
// Stdout carries only protocol frames; log lines go to the logger's output,
// which is stderr unless redirected. It blocks until the client disconnects
// or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	logger.Info("mcp server listening", "transport", "stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP serves MCP over streamable HTTP on addr.
// Cancelling ctx shuts the listener down gracefully and returns nil.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	logger.Info("mcp server listening", "transport", "http", "addr", addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
