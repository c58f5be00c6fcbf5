// ABOUTME: MCP server exposing the diary and profile to AI assistants.
// ABOUTME: Wraps the store and gateway behind stdio transport.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sehatsense/sehat/internal/gateway"
	"github.com/sehatsense/sehat/internal/store"
)

// Server wraps the MCP server with store and gateway access.
// The gateway may be nil when no API key is configured; tools that
// need it report a clear error instead.
type Server struct {
	mcpServer *mcp.Server
	store     *store.Store
	gw        *gateway.Gateway
}

// NewServer creates an MCP server over the given store and gateway.
func NewServer(st *store.Store, gw *gateway.Gateway) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "sehat",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		store:     st,
		gw:        gw,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
