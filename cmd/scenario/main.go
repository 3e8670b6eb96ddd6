// Package main provides a CLI for running Lua body scenarios.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	scenariocmd "github.com/louisbranch/hitpoints/internal/cmd/scenario"
	entrypoint "github.com/louisbranch/hitpoints/internal/platform/cmd"
	"github.com/louisbranch/hitpoints/internal/platform/config"
)

func main() {
	cfg, err := scenariocmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	log.SetPrefix(entrypoint.LogPrefix(entrypoint.ServiceScenario))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := scenariocmd.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		config.Exitf("Error: %v", err)
	}
}
