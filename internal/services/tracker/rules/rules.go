// Package rules loads death conditions from YAML.
//
// A rules file has an optional total threshold and an ordered list of part
// conditions. Each part condition uses exactly one predicate form:
//
//	total:
//	  at_most: 0
//	parts:
//	  - name: decapitated
//	    part: head
//	    value_at_most: 0
//	  - name: lost-leg
//	    part: leg-left
//	    severed: true
//	  - name: crushed-torso
//	    part: torso
//	    lua: "return value <= -10"
//
// Lua predicates receive value and severed as locals and must return a
// boolean. Part conditions are evaluated in file order.
package rules

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "github.com/louisbranch/hitpoints/internal/platform/errors"
	"github.com/louisbranch/hitpoints/internal/services/tracker/domain/body"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid indicates a rules file could not be turned into conditions.
var ErrInvalid = apperrors.New(apperrors.CodeRulesInvalid, "rules invalid")

// File is the YAML shape of a rules file.
type File struct {
	Total *TotalRule `yaml:"total"`
	Parts []PartRule `yaml:"parts"`
}

// TotalRule fires when the aggregated total is at or below AtMost.
type TotalRule struct {
	AtMost int `yaml:"at_most"`
}

// PartRule is one per-part death condition.
type PartRule struct {
	Name        string `yaml:"name"`
	Part        string `yaml:"part"`
	ValueAtMost *int   `yaml:"value_at_most,omitempty"`
	Severed     bool   `yaml:"severed,omitempty"`
	Lua         string `yaml:"lua,omitempty"`
}

// Default returns the embedded stock rules.
func Default() (body.Conditions, error) {
	return Parse(defaultsYAML)
}

// Load reads rules from path. An empty path yields the stock rules.
func Load(path string) (body.Conditions, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return body.Conditions{}, apperrors.Wrap(apperrors.CodeRulesInvalid, "reading rules file", err)
	}
	return Parse(data)
}

// Parse decodes YAML rules into conditions. Unknown keys are rejected.
func Parse(data []byte) (body.Conditions, error) {
	var file File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return body.Conditions{}, apperrors.Wrap(apperrors.CodeRulesInvalid, "parsing rules", err)
	}
	return file.Conditions()
}

// Conditions compiles the file into evaluator conditions.
func (f File) Conditions() (body.Conditions, error) {
	conds := body.DefaultConditions()
	if f.Total != nil {
		conds.Total = body.TotalAtMost(f.Total.AtMost)
	}
	for i, rule := range f.Parts {
		cond, err := rule.compile()
		if err != nil {
			return body.Conditions{}, apperrors.Wrap(apperrors.CodeRulesInvalid,
				fmt.Sprintf("part rule %d", i+1), err)
		}
		conds.Parts = append(conds.Parts, cond)
	}
	return conds, nil
}

func (r PartRule) compile() (body.PartCondition, error) {
	part, err := body.ParsePart(r.Part)
	if err != nil {
		return body.PartCondition{}, err
	}
	name := strings.TrimSpace(r.Name)
	if name == "" {
		name = part.String()
	}

	forms := 0
	if r.ValueAtMost != nil {
		forms++
	}
	if r.Severed {
		forms++
	}
	if strings.TrimSpace(r.Lua) != "" {
		forms++
	}
	if forms != 1 {
		return body.PartCondition{}, fmt.Errorf("%s: exactly one of value_at_most, severed, lua is required", name)
	}

	cond := body.PartCondition{Part: part, Name: name}
	switch {
	case r.ValueAtMost != nil:
		threshold := *r.ValueAtMost
		cond.Predicate = func(rec body.PartRecord) bool { return rec.Value <= threshold }
	case r.Severed:
		if !body.Severable(part) {
			return body.PartCondition{}, fmt.Errorf("%s: %s cannot be severed", name, part)
		}
		cond.Predicate = func(rec body.PartRecord) bool { return rec.Severed }
	default:
		predicate, err := compileLua(name, r.Lua)
		if err != nil {
			return body.PartCondition{}, err
		}
		cond.Predicate = predicate.Eval
	}
	return cond, nil
}
