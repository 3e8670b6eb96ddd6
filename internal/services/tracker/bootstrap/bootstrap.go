// Package bootstrap loads the initial hit point table a session starts from.
//
// The table is JSON keyed by part wire name:
//
//	{"head": {"value": 20, "severed": false}, ...}
//
// Every part must be present with a positive value. Severed flags are
// carried into the Profile so the session can latch them at start.
package bootstrap

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	apperrors "github.com/louisbranch/hitpoints/internal/platform/errors"
	"github.com/louisbranch/hitpoints/internal/services/tracker/domain/body"
	"github.com/louisbranch/hitpoints/internal/services/tracker/storage"
)

//go:embed initial_hit_points.json
var defaultPayload []byte

// ErrUnavailable indicates the bootstrap data could not produce a profile.
var ErrUnavailable = apperrors.New(apperrors.CodeBootstrapUnavailable, "bootstrap data unavailable")

// PartPayload is one entry of the bootstrap JSON.
type PartPayload struct {
	Value   int  `json:"value"`
	Severed bool `json:"severed"`
}

// Payload is the decoded bootstrap JSON keyed by part wire name.
type Payload map[string]PartPayload

// Profile is a validated bootstrap table.
type Profile struct {
	Name    string
	Initial body.InitialHitPoints
	// Severed lists limbs to latch when the session starts, in part order.
	Severed []body.Part
}

// Source produces a bootstrap profile.
type Source interface {
	Load(ctx context.Context) (Profile, error)
}

// Decode reads a bootstrap payload from r and builds the profile.
func Decode(r io.Reader) (Profile, error) {
	payload, err := DecodePayload(r)
	if err != nil {
		return Profile{}, err
	}
	return Build(payload)
}

// DecodePayload reads a raw bootstrap payload from r without validating it.
func DecodePayload(r io.Reader) (Payload, error) {
	var payload Payload
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&payload); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeBootstrapUnavailable, "decode bootstrap payload", err)
	}
	return payload, nil
}

// LoadFile reads and builds the bootstrap profile at path.
func LoadFile(path string) (Profile, error) {
	file, err := os.Open(path)
	if err != nil {
		return Profile{}, apperrors.Wrap(apperrors.CodeBootstrapUnavailable, "open bootstrap file", err)
	}
	defer file.Close()

	profile, err := Decode(file)
	if err != nil {
		return Profile{}, err
	}
	profile.Name = strings.TrimSuffix(filepath.Base(path), ".json")
	return profile, nil
}

// Default returns the embedded stock humanoid profile.
func Default() (Profile, error) {
	profile, err := Decode(bytes.NewReader(defaultPayload))
	if err != nil {
		return Profile{}, err
	}
	profile.Name = "default"
	return profile, nil
}

// Build validates payload and converts it into a profile.
func Build(payload Payload) (Profile, error) {
	if len(payload) == 0 {
		return Profile{}, ErrUnavailable
	}

	values := make(map[body.Part]int, len(payload))
	severed := map[body.Part]bool{}
	names := make([]string, 0, len(payload))
	for name := range payload {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		part, err := body.ParsePart(name)
		if err != nil {
			return Profile{}, apperrors.Wrap(apperrors.CodeBootstrapUnavailable, "bootstrap payload", err)
		}
		if _, dup := values[part]; dup {
			return Profile{}, apperrors.WithMetadata(apperrors.CodeBootstrapUnavailable,
				fmt.Sprintf("bootstrap payload repeats %s", part),
				map[string]string{"Part": part.String()})
		}
		entry := payload[name]
		values[part] = entry.Value
		if entry.Severed {
			severed[part] = true
		}
	}

	initial, err := body.NewInitialHitPoints(values)
	if err != nil {
		return Profile{}, apperrors.Wrap(apperrors.CodeBootstrapUnavailable, "bootstrap payload", err)
	}

	profile := Profile{Initial: initial}
	for _, part := range body.Parts() {
		if !severed[part] {
			continue
		}
		if !body.Severable(part) {
			return Profile{}, apperrors.WithMetadata(apperrors.CodeBootstrapUnavailable,
				fmt.Sprintf("bootstrap payload severs %s", part),
				map[string]string{"Part": part.String()})
		}
		profile.Severed = append(profile.Severed, part)
	}
	return profile, nil
}

// FromStored converts a catalog profile into a bootstrap profile.
func FromStored(stored storage.Profile) (Profile, error) {
	payload := make(Payload, len(stored.Parts))
	for _, part := range stored.Parts {
		payload[part.Part] = PartPayload{Value: part.Value, Severed: part.Severed}
	}
	profile, err := Build(payload)
	if err != nil {
		return Profile{}, err
	}
	profile.Name = stored.Name
	return profile, nil
}

// ToStored converts payload into the catalog representation, in part order.
func ToStored(name string, payload Payload) storage.Profile {
	stored := storage.Profile{Name: name}
	for _, part := range body.Parts() {
		entry, ok := payload[part.String()]
		if !ok {
			continue
		}
		stored.Parts = append(stored.Parts, storage.ProfilePart{
			Part:    part.String(),
			Value:   entry.Value,
			Severed: entry.Severed,
		})
	}
	return stored
}
