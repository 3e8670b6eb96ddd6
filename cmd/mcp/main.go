// Package main serves a tracked body as MCP tools over stdio.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	mcpcmd "github.com/louisbranch/hitpoints/internal/cmd/mcp"
	entrypoint "github.com/louisbranch/hitpoints/internal/platform/cmd"
)

// main starts the MCP server on stdio. Logs go to stderr so stdout stays
// reserved for the protocol.
func main() {
	cfg, err := mcpcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetOutput(os.Stderr)
	log.SetPrefix(entrypoint.LogPrefix(entrypoint.ServiceMCP))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMCP, func(ctx context.Context) error {
		return mcpcmd.Run(ctx, cfg)
	}); err != nil {
		log.Fatalf("failed to serve MCP: %v", err)
	}
}
