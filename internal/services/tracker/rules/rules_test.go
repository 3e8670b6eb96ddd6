package rules

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/louisbranch/hitpoints/internal/services/tracker/domain/body"
)

func TestDefaultRules(t *testing.T) {
	conds, err := Default()
	if err != nil {
		t.Fatalf("default rules: %v", err)
	}
	if conds.Total == nil || !conds.Total(0) || conds.Total(1) {
		t.Fatal("expected default total condition to fire at zero only")
	}
	if len(conds.Parts) != 0 {
		t.Fatalf("parts = %d, want 0", len(conds.Parts))
	}
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	conds, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if conds.Total == nil || !conds.Total(-3) {
		t.Fatal("expected stock total condition")
	}
}

func TestParseAllPredicateForms(t *testing.T) {
	conds, err := Parse([]byte(`
total:
  at_most: 10
parts:
  - name: decapitated
    part: head
    value_at_most: 0
  - name: lost-leg
    part: leg-left
    severed: true
  - name: crushed
    part: torso
    lua: "return value <= -10 and not severed"
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !conds.Total(10) || conds.Total(11) {
		t.Fatal("total threshold not applied")
	}
	if len(conds.Parts) != 3 {
		t.Fatalf("parts = %d, want 3", len(conds.Parts))
	}

	tests := []struct {
		index int
		rec   body.PartRecord
		want  bool
	}{
		{0, body.PartRecord{Value: 1}, false},
		{0, body.PartRecord{Value: 0}, true},
		{1, body.PartRecord{Value: 15}, false},
		{1, body.PartRecord{Value: 15, Severed: true}, true},
		{2, body.PartRecord{Value: -9}, false},
		{2, body.PartRecord{Value: -10}, true},
		{2, body.PartRecord{Value: -10, Severed: true}, false},
	}
	for _, tt := range tests {
		cond := conds.Parts[tt.index]
		if got := cond.Predicate(tt.rec); got != tt.want {
			t.Fatalf("%s(%+v) = %v, want %v", cond.Name, tt.rec, got, tt.want)
		}
	}
	if conds.Parts[0].Part != body.Head || conds.Parts[2].Part != body.Torso {
		t.Fatalf("parts out of order: %+v", conds.Parts)
	}
}

func TestParseRejectsInvalidRules(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "malformed", yaml: "total: ["},
		{name: "unknown key", yaml: "totals:\n  at_most: 0\n"},
		{name: "unknown part", yaml: "parts:\n  - part: tail\n    value_at_most: 0\n"},
		{name: "no predicate", yaml: "parts:\n  - part: head\n"},
		{name: "two predicates", yaml: "parts:\n  - part: head\n    value_at_most: 0\n    lua: \"return true\"\n"},
		{name: "severed head", yaml: "parts:\n  - part: head\n    severed: true\n"},
		{name: "lua syntax", yaml: "parts:\n  - part: head\n    lua: \"return value <=\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("error = %v, want %v", err, ErrInvalid)
			}
		})
	}
}

func TestLuaPredicateNonBooleanDoesNotFire(t *testing.T) {
	conds, err := Parse([]byte("parts:\n  - part: head\n    lua: \"return value\"\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if conds.Parts[0].Predicate(body.PartRecord{Value: 5}) {
		t.Fatal("expected non-boolean result not to fire")
	}
}

func TestLuaPredicateRuntimeErrorDoesNotFire(t *testing.T) {
	conds, err := Parse([]byte("parts:\n  - part: head\n    lua: \"error('boom')\"\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if conds.Parts[0].Predicate(body.PartRecord{}) {
		t.Fatal("expected runtime error not to fire")
	}
	// The state must stay usable after a failed call.
	if conds.Parts[0].Predicate(body.PartRecord{}) {
		t.Fatal("expected second call not to fire")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte("parts:\n  - part: head\n    value_at_most: 0\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	conds, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if conds.Parts[0].Name != "head" {
		t.Fatalf("name = %q, want head", conds.Parts[0].Name)
	}
	if conds.Total == nil || !conds.Total(0) {
		t.Fatal("omitted total should keep the stock condition")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("error = %v, want %v", err, ErrInvalid)
	}
}

func TestLuaPredicateCannotLoadCode(t *testing.T) {
	conds, err := Parse([]byte("parts:\n  - part: head\n    lua: \"return dofile == nil and loadfile == nil and load == nil\"\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !conds.Parts[0].Predicate(body.PartRecord{}) {
		t.Fatal("expected file and chunk loaders to be unavailable")
	}

	conds, err = Parse([]byte("parts:\n  - part: head\n    lua: \"return dofile('/etc/hostname') ~= nil\"\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if conds.Parts[0].Predicate(body.PartRecord{}) {
		t.Fatal("expected dofile call to fail and not fire")
	}
}
