package body

import (
	"fmt"

	apperrors "github.com/louisbranch/hitpoints/internal/platform/errors"
)

// ApplyCascade reconciles target after a connected part moved from prev to
// updated.
//
// Damage that takes the primary part below zero spills the negative
// remainder onto target. Healing a part that was negative drains the same
// amount back into target, clamped to target's own initial value. The clamp
// resets to the maximum instead of saturating; multi-hop cascades can
// therefore restore more or less than was spilled.
func ApplyCascade(state State, initial InitialHitPoints, target Part, prev, updated int) State {
	if !target.Valid() {
		return state
	}
	increment := prev - updated
	targetValue := state.Parts[target].Value

	switch {
	case increment > 0 && updated < 0:
		if prev >= 0 {
			return state.addValue(target, updated)
		}
		return state.addValue(target, -increment)
	case increment < 0 && prev < 0:
		candidate := targetValue - increment
		if updated >= 0 {
			candidate = targetValue - prev
		}
		if ceiling := initial.Max(target); candidate > ceiling {
			return state.setValue(target, ceiling)
		}
		return state.setValue(target, candidate)
	}
	return state
}

// Recalculate propagates the change of changed (whose value before the
// change was prev) through the cascade chain for tier.
//
// A limb cascades into the torso, and the torso's resulting delta then
// cascades into the head once. A Tier-1 part cascades into its counterpart.
// An unknown tier is an internal-consistency fault and leaves state as is.
func Recalculate(state State, initial InitialHitPoints, changed Part, tier Tier, prev int) (State, error) {
	if !changed.Valid() {
		return state, ErrUnknownPart
	}
	updated := state.Parts[changed].Value

	switch tier {
	case Tier2:
		torsoBefore := state.Parts[Torso].Value
		next := ApplyCascade(state, initial, Torso, prev, updated)
		next = ApplyCascade(next, initial, Head, torsoBefore, next.Parts[Torso].Value)
		return next, nil
	case Tier1:
		target, ok := Counterpart(changed)
		if !ok {
			return state, apperrors.WithMetadata(apperrors.CodeBodyUnknownTier,
				fmt.Sprintf("%s is not a tier 1 part", changed),
				map[string]string{"Part": changed.String(), "Tier": fmt.Sprint(int(tier))})
		}
		return ApplyCascade(state, initial, target, prev, updated), nil
	default:
		return state, apperrors.WithMetadata(apperrors.CodeBodyUnknownTier,
			fmt.Sprintf("unknown cascade tier %d for %s", int(tier), changed),
			map[string]string{"Part": changed.String(), "Tier": fmt.Sprint(int(tier))})
	}
}
