// Package main runs the interactive body tracker.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	trackercmd "github.com/louisbranch/hitpoints/internal/cmd/tracker"
	entrypoint "github.com/louisbranch/hitpoints/internal/platform/cmd"
	"github.com/louisbranch/hitpoints/internal/platform/config"
)

func main() {
	cfg, err := trackercmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	log.SetPrefix(entrypoint.LogPrefix(entrypoint.ServiceTracker))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceTracker, func(ctx context.Context) error {
		return trackercmd.Run(ctx, cfg, os.Stdin, os.Stdout)
	}); err != nil {
		config.Exitf("Error: %v", err)
	}
}
