package server

import (
	"context"
	"net/http"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
)

// HTTPServer serves the MCP server over the streamable HTTP transport and
// exposes the health endpoints on the same listener.
type HTTPServer struct {
	mcpServer     *mcpserver.MCPServer
	httpServer    *http.Server
	healthChecker *HealthChecker
}

// NewHTTPServer creates an HTTP server for the given MCP server.
func NewHTTPServer(mcpServer *mcpserver.MCPServer) *HTTPServer {
	return &HTTPServer{
		mcpServer: mcpServer,
	}
}

// SetHealthChecker attaches a health checker whose endpoints are registered
// when the server starts.
func (s *HTTPServer) SetHealthChecker(h *HealthChecker) {
	s.healthChecker = h
}

// Start starts the HTTP server on the given address. It blocks until the
// server stops.
func (s *HTTPServer) Start(addr string) error {
	mux := http.NewServeMux()

	streamable := mcpserver.NewStreamableHTTPServer(s.mcpServer,
		mcpserver.WithEndpointPath("/mcp"),
	)
	mux.Handle("/mcp", streamable)

	if s.healthChecker != nil {
		s.healthChecker.RegisterHealthEndpoints(mux)
	}

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		// The connect tool blocks on a browser login; no write timeout so
		// long-running calls are not cut off mid-flow.
		IdleTimeout: 120 * time.Second,
	}

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
