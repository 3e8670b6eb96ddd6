// Package mcp parses MCP command flags and serves a tracked body over stdio.
package mcp

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/louisbranch/hitpoints/internal/platform/config"
	"github.com/louisbranch/hitpoints/internal/services/mcp/service"
	"github.com/louisbranch/hitpoints/internal/services/tracker/app"
	"github.com/louisbranch/hitpoints/internal/services/tracker/render"
)

// Config holds MCP command configuration.
type Config struct {
	app.StartupConfig
	Lang    string `env:"LANG"     envDefault:"en-US"`
	HTMLOut string `env:"HTML_OUT"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	cfg.BindFlags(fs)
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "locale for the HTML body sheet")
	fs.StringVar(&cfg.HTMLOut, "html-out", cfg.HTMLOut, "rewrite an HTML body sheet at this path after every change")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewSession builds the session the MCP server exposes.
func NewSession(ctx context.Context, cfg Config) (*app.Session, error) {
	profile, conds, err := app.LoadStartup(ctx, cfg.StartupConfig)
	if err != nil {
		return nil, fmt.Errorf("load startup: %w", err)
	}
	var opts []app.Option
	if path := strings.TrimSpace(cfg.HTMLOut); path != "" {
		opts = append(opts, app.WithRenderer(render.NewHTMLSheet(path, cfg.Lang, profile.Initial)))
	}
	session, err := app.NewSession(profile, conds, opts...)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	return session, nil
}

// Run starts the MCP protocol adapter on stdio.
func Run(ctx context.Context, cfg Config) error {
	session, err := NewSession(ctx, cfg)
	if err != nil {
		return err
	}
	log.Printf("serving profile %s over stdio", session.ProfileName())
	return service.Run(ctx, session)
}
