package body

import (
	"fmt"

	apperrors "github.com/louisbranch/hitpoints/internal/platform/errors"
)

// ApplySevered sets the severed latch of a limb.
//
// When the latch flips and the limb holds a negative remainder that no
// previous toggle has charged, the remainder is spilled into the torso and
// head as if the limb had just dropped from zero to its value. A toggle that
// does not change the latch cascades nothing. Severing never restores
// overflow already carried by the torso.
func ApplySevered(state State, initial InitialHitPoints, part Part, severed bool) (State, error) {
	if !part.Valid() {
		return state, ErrUnknownPart
	}
	if !Severable(part) {
		return state, apperrors.WithMetadata(apperrors.CodeBodyNotSeverable,
			fmt.Sprintf("%s cannot be severed", part),
			map[string]string{"Part": part.String()})
	}
	if state.Parts[part].Severed == severed {
		return state, nil
	}
	state.Parts[part].Severed = severed

	if state.charged[part] || state.Parts[part].Value >= 0 {
		return state, nil
	}
	next, err := Recalculate(state, initial, part, Tier2, 0)
	if err != nil {
		return state, err
	}
	next.charged[part] = true
	return next, nil
}
