package service

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/hitpoints/internal/services/mcp/domain"
)

const (
	// serverName identifies the MCP server to clients.
	serverName = "hitpoints-mcp"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// NewServer builds an MCP server exposing the body tools for session.
func NewServer(session domain.BodySession) (*mcp.Server, error) {
	if session == nil {
		return nil, errors.New("tracker session is required")
	}
	server := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	registerBodyTools(server, session)
	return server, nil
}

func registerBodyTools(server *mcp.Server, session domain.BodySession) {
	mcp.AddTool(server, domain.BodyStateTool(), domain.BodyStateHandler(session))
	mcp.AddTool(server, domain.BodySetValueTool(), domain.BodySetValueHandler(session))
	mcp.AddTool(server, domain.BodyDamageTool(), domain.BodyDamageHandler(session))
	mcp.AddTool(server, domain.BodyHealTool(), domain.BodyHealHandler(session))
	mcp.AddTool(server, domain.BodySeverTool(), domain.BodySeverHandler(session))
	mcp.AddTool(server, domain.BodyResetTool(), domain.BodyResetHandler(session))
}

// Run serves the body tools over stdio until ctx is cancelled or the client
// disconnects.
func Run(ctx context.Context, session domain.BodySession) error {
	return runWithTransport(ctx, session, &mcp.StdioTransport{})
}

func runWithTransport(ctx context.Context, session domain.BodySession, transport mcp.Transport) error {
	server, err := NewServer(session)
	if err != nil {
		return err
	}
	return server.Run(ctx, transport)
}
