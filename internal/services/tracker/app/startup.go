package app

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/louisbranch/hitpoints/internal/services/tracker/bootstrap"
	"github.com/louisbranch/hitpoints/internal/services/tracker/domain/body"
	"github.com/louisbranch/hitpoints/internal/services/tracker/rules"
	storagesqlite "github.com/louisbranch/hitpoints/internal/services/tracker/storage/sqlite"
)

// StartupConfig selects the bootstrap profile and rules for a session.
type StartupConfig struct {
	ProfileFile string `env:"PROFILE_FILE"`
	ProfileName string `env:"PROFILE"`
	DBPath      string `env:"DB_PATH" envDefault:"data/profiles.db"`
	RulesPath   string `env:"RULES_FILE"`
}

// BindFlags registers startup flags on fs, using the current values as
// defaults so env settings survive when a flag is omitted.
func (c *StartupConfig) BindFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.ProfileFile, "profile-file", c.ProfileFile, "bootstrap profile JSON file")
	fs.StringVar(&c.ProfileName, "profile", c.ProfileName, "profile name in the catalog database")
	fs.StringVar(&c.DBPath, "db-path", c.DBPath, "profile catalog database path")
	fs.StringVar(&c.RulesPath, "rules", c.RulesPath, "death rules YAML file")
}

// Source picks the bootstrap source: an explicit file first, then a named
// catalog profile, then the embedded default. The returned close func
// releases any store opened for the lookup.
func (c StartupConfig) Source() (bootstrap.Source, func() error, error) {
	noop := func() error { return nil }
	if path := strings.TrimSpace(c.ProfileFile); path != "" {
		return bootstrap.FileSource{Path: path}, noop, nil
	}
	if name := strings.TrimSpace(c.ProfileName); name != "" {
		store, err := storagesqlite.Open(c.DBPath)
		if err != nil {
			return nil, noop, fmt.Errorf("open profile store: %w", err)
		}
		return bootstrap.StoreSource{Store: store, Name: name}, store.Close, nil
	}
	return bootstrap.EmbeddedSource{}, noop, nil
}

// LoadStartup resolves the bootstrap profile and compiled death rules.
func LoadStartup(ctx context.Context, cfg StartupConfig) (bootstrap.Profile, body.Conditions, error) {
	source, closeSource, err := cfg.Source()
	if err != nil {
		return bootstrap.Profile{}, body.Conditions{}, err
	}
	defer closeSource()

	profile, err := source.Load(ctx)
	if err != nil {
		return bootstrap.Profile{}, body.Conditions{}, err
	}
	conds, err := rules.Load(cfg.RulesPath)
	if err != nil {
		return bootstrap.Profile{}, body.Conditions{}, err
	}
	return profile, conds, nil
}
