package body

import (
	"fmt"
	"strings"

	apperrors "github.com/louisbranch/hitpoints/internal/platform/errors"
)

// Part identifies one of the six tracked body parts.
type Part int

const (
	Head Part = iota
	Torso
	ArmLeft
	ArmRight
	LegLeft
	LegRight
)

// PartCount is the fixed number of tracked parts.
const PartCount = 6

var partNames = [PartCount]string{
	Head:     "head",
	Torso:    "torso",
	ArmLeft:  "arm-left",
	ArmRight: "arm-right",
	LegLeft:  "leg-left",
	LegRight: "leg-right",
}

// Parts returns every part in registration order.
func Parts() []Part {
	return []Part{Head, Torso, ArmLeft, ArmRight, LegLeft, LegRight}
}

// Limbs returns the four Tier-2 parts in registration order.
func Limbs() []Part {
	return []Part{ArmLeft, ArmRight, LegLeft, LegRight}
}

// Valid reports whether p is one of the six known parts.
func (p Part) Valid() bool {
	return p >= Head && p <= LegRight
}

// String returns the wire name of the part.
func (p Part) String() string {
	if !p.Valid() {
		return "unknown"
	}
	return partNames[p]
}

// ParsePart maps a wire name such as "arm-left" to its Part.
func ParsePart(value string) (Part, error) {
	name := strings.ToLower(strings.TrimSpace(value))
	for i, candidate := range partNames {
		if candidate == name {
			return Part(i), nil
		}
	}
	return 0, apperrors.WithMetadata(apperrors.CodeBodyUnknownPart,
		fmt.Sprintf("unknown body part %q", value),
		map[string]string{"Part": value})
}

// Tier classifies parts by how they cascade.
type Tier int

const (
	// Tier1 parts (head, torso) cascade into each other.
	Tier1 Tier = 1
	// Tier2 parts (limbs) cascade into the torso only.
	Tier2 Tier = 2
)

// TierOf returns the cascade tier of p. Unknown parts report 0.
func TierOf(p Part) Tier {
	switch p {
	case Head, Torso:
		return Tier1
	case ArmLeft, ArmRight, LegLeft, LegRight:
		return Tier2
	default:
		return 0
	}
}

// Counterpart returns the other Tier-1 part. Limbs have no counterpart.
func Counterpart(p Part) (Part, bool) {
	switch p {
	case Head:
		return Torso, true
	case Torso:
		return Head, true
	default:
		return 0, false
	}
}

// Severable reports whether p can be detached.
func Severable(p Part) bool {
	return TierOf(p) == Tier2
}
