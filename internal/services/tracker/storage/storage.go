// Package storage defines the profile catalog contract used to bootstrap
// tracker sessions.
//
// A profile is a named set of initial hit points. The catalog is read at
// session start only; body state itself is never persisted.
//
// Errors:
//   - ErrNotFound: requested profile is missing
package storage

import (
	"context"
	"time"

	apperrors "github.com/louisbranch/hitpoints/internal/platform/errors"
)

// ErrNotFound indicates a requested profile is missing.
var ErrNotFound = apperrors.New(apperrors.CodeProfileNotFound, "profile not found")

// ErrNameRequired indicates a profile was written without a name.
var ErrNameRequired = apperrors.New(apperrors.CodeProfileNameEmpty, "profile name is required")

// ProfilePart is one part row of a stored profile. Part uses the wire name.
type ProfilePart struct {
	Part    string
	Value   int
	Severed bool
}

// Profile is a named initial hit point table.
type Profile struct {
	Name      string
	Source    string
	Parts     []ProfilePart
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProfileStore reads and writes bootstrap profiles.
type ProfileStore interface {
	// PutProfile inserts or replaces a profile and all of its parts.
	PutProfile(ctx context.Context, profile Profile) error
	// GetProfile returns ErrNotFound if no profile has the name.
	GetProfile(ctx context.Context, name string) (Profile, error)
	// ListProfiles returns profile names in lexical order.
	ListProfiles(ctx context.Context) ([]string, error)
}
