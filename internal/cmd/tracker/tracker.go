// Package tracker parses tracker command flags and runs the interactive
// body console.
package tracker

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/louisbranch/hitpoints/internal/platform/config"
	"github.com/louisbranch/hitpoints/internal/services/tracker/app"
	"github.com/louisbranch/hitpoints/internal/services/tracker/console"
	"github.com/louisbranch/hitpoints/internal/services/tracker/render"
)

// Config holds tracker command configuration.
type Config struct {
	app.StartupConfig
	Lang       string `env:"LANG"        envDefault:"en-US"`
	HTMLOut    string `env:"HTML_OUT"`
	HistoryOut string `env:"HISTORY_OUT"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	cfg.BindFlags(fs)
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "display locale (en-US, pt-BR)")
	fs.StringVar(&cfg.HTMLOut, "html-out", cfg.HTMLOut, "rewrite an HTML body sheet at this path after every change")
	fs.StringVar(&cfg.HistoryOut, "history-out", cfg.HistoryOut, "append a CSV row per cycle to this path")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts a session and drives it from in until quit or EOF.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	if in == nil {
		return errors.New("input is required")
	}
	if out == nil {
		out = io.Discard
	}

	profile, conds, err := app.LoadStartup(ctx, cfg.StartupConfig)
	if err != nil {
		return fmt.Errorf("load startup: %w", err)
	}

	text := render.NewText(out, cfg.Lang, profile.Initial)
	opts := []app.Option{app.WithRenderer(text)}

	if path := strings.TrimSpace(cfg.HTMLOut); path != "" {
		opts = append(opts, app.WithRenderer(render.NewHTMLSheet(path, cfg.Lang, profile.Initial)))
	}
	if path := strings.TrimSpace(cfg.HistoryOut); path != "" {
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create history file: %w", err)
		}
		defer file.Close()
		opts = append(opts, app.WithRenderer(render.NewHistory(file)))
	}

	session, err := app.NewSession(profile, conds, opts...)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	log.Printf("tracking profile %s", session.ProfileName())

	return console.New(session, text, out).Run(ctx, in)
}
