package event

import (
	"fmt"

	apperrors "github.com/louisbranch/hitpoints/internal/platform/errors"
	"github.com/louisbranch/hitpoints/internal/services/tracker/domain/body"
)

// Damage builds the value change for taking amount points from part. The
// amount may not take the part below rules.MinValue.
func Damage(state body.State, rules Rules, part body.Part, amount int) (PartValueChanged, error) {
	if !part.Valid() {
		return PartValueChanged{}, body.ErrUnknownPart
	}
	current := state.Value(part)
	if limit := current - rules.MinValue(current); amount < 0 || amount > limit {
		return PartValueChanged{}, amountOutOfRange(part, amount, limit)
	}
	return ValueChange(part, current-amount), nil
}

// Heal builds the value change for restoring amount points to part, capped
// at the part's initial value. Amounts beyond the distance to the maximum
// plus one full body's worth of hit points are rejected.
func Heal(state body.State, rules Rules, part body.Part, amount int) (PartValueChanged, error) {
	if !part.Valid() {
		return PartValueChanged{}, body.ErrUnknownPart
	}
	current := state.Value(part)
	ceiling := rules.Initial.Max(part)
	missing := max(ceiling-current, 0)
	if limit := missing + rules.Initial.Sum(); amount < 0 || amount > limit {
		return PartValueChanged{}, amountOutOfRange(part, amount, limit)
	}
	if amount >= missing {
		return ValueChange(part, max(current, ceiling)), nil
	}
	return ValueChange(part, current+amount), nil
}

func amountOutOfRange(part body.Part, amount, limit int) error {
	return apperrors.WithMetadata(apperrors.CodeBodyInvalidAmount,
		fmt.Sprintf("%s amount %d is outside 0..%d", part, amount, limit),
		map[string]string{"Part": part.String(), "Limit": fmt.Sprint(limit)})
}
