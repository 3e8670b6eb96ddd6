package bootstrap

import (
	"context"
	"fmt"

	apperrors "github.com/louisbranch/hitpoints/internal/platform/errors"
	"github.com/louisbranch/hitpoints/internal/services/tracker/storage"
)

// FileSource loads a profile from a JSON file.
type FileSource struct {
	Path string
}

// Load implements Source.
func (s FileSource) Load(context.Context) (Profile, error) {
	return LoadFile(s.Path)
}

// EmbeddedSource loads the built-in default profile.
type EmbeddedSource struct{}

// Load implements Source.
func (EmbeddedSource) Load(context.Context) (Profile, error) {
	return Default()
}

// StoreSource loads a named profile from the catalog.
type StoreSource struct {
	Store storage.ProfileStore
	Name  string
}

// Load implements Source.
func (s StoreSource) Load(ctx context.Context) (Profile, error) {
	if s.Store == nil {
		return Profile{}, apperrors.New(apperrors.CodeBootstrapUnavailable, "profile store is not configured")
	}
	stored, err := s.Store.GetProfile(ctx, s.Name)
	if err != nil {
		return Profile{}, apperrors.Wrap(apperrors.CodeBootstrapUnavailable, fmt.Sprintf("load profile %q", s.Name), err)
	}
	return FromStored(stored)
}
