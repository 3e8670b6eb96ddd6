package main

import (
	"context"
	"flag"
	"log"
	"os"

	entrypoint "github.com/louisbranch/hitpoints/internal/platform/cmd"
	"github.com/louisbranch/hitpoints/internal/platform/config"
	profileimporter "github.com/louisbranch/hitpoints/internal/tools/importer/profiles"
)

func main() {
	cfg, err := profileimporter.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	log.SetPrefix(entrypoint.LogPrefix(entrypoint.ServiceImporter))

	if err := profileimporter.Run(context.Background(), cfg, os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}
