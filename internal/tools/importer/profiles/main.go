// Package profileimporter loads bootstrap profile JSON files into the
// sqlite profile catalog.
//
// Each *.json file in the source directory is one profile named after the
// file. Every file is validated before anything is written, so a bad file
// leaves the catalog untouched.
package profileimporter

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/louisbranch/hitpoints/internal/services/tracker/bootstrap"
	"github.com/louisbranch/hitpoints/internal/services/tracker/storage"
	storagesqlite "github.com/louisbranch/hitpoints/internal/services/tracker/storage/sqlite"
)

// Config holds configuration for the profile importer.
type Config struct {
	Dir    string
	DBPath string
	DryRun bool
}

// ParseConfig parses CLI flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{
		DBPath: filepath.Join("data", "profiles.db"),
	}

	fs.StringVar(&cfg.Dir, "dir", "", "directory containing profile JSON files")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "profile catalog database path")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "validate without writing to the database")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if strings.TrimSpace(cfg.Dir) == "" {
		return Config{}, errors.New("dir is required")
	}
	return cfg, nil
}

type profileFile struct {
	name    string
	payload bootstrap.Payload
}

// Run executes the importer using the provided Config.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	dir := strings.TrimSpace(cfg.Dir)
	if dir == "" {
		return errors.New("dir is required")
	}

	files, err := readProfiles(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no profile files found in %s", dir)
	}

	if cfg.DryRun {
		_, err = fmt.Fprintf(out, "validated %d profile(s)\n", len(files))
		return err
	}

	store, err := storagesqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open profile store: %w", err)
	}
	defer store.Close()

	if err := importProfiles(ctx, store, files, dir); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "imported %d profile(s) into %s\n", len(files), cfg.DBPath)
	return err
}

func importProfiles(ctx context.Context, store storage.ProfileStore, files []profileFile, source string) error {
	for _, file := range files {
		stored := bootstrap.ToStored(file.name, file.payload)
		stored.Source = source
		if err := store.PutProfile(ctx, stored); err != nil {
			return fmt.Errorf("import %s: %w", file.name, err)
		}
	}
	return nil
}

func readProfiles(dir string) ([]profileFile, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	files := make([]profileFile, 0, len(paths))
	for _, path := range paths {
		payload, err := readPayload(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
		}
		if _, err := bootstrap.Build(payload); err != nil {
			return nil, fmt.Errorf("validate %s: %w", filepath.Base(path), err)
		}
		files = append(files, profileFile{
			name:    strings.TrimSuffix(filepath.Base(path), ".json"),
			payload: payload,
		})
	}
	return files, nil
}

func readPayload(path string) (bootstrap.Payload, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return bootstrap.DecodePayload(file)
}
