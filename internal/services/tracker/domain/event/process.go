package event

import (
	"fmt"

	apperrors "github.com/louisbranch/hitpoints/internal/platform/errors"
	"github.com/louisbranch/hitpoints/internal/services/tracker/domain/body"
)

// Rules is the immutable per-session configuration events are folded under.
type Rules struct {
	Initial    body.InitialHitPoints
	Conditions body.Conditions
}

// MinValue is the lowest value an edit may set on a part currently holding
// current: one full body's worth of hit points below zero, or below current
// when it is already negative. Each edit then moves a value by a bounded
// step, so cascade arithmetic stays far from integer limits.
func (r Rules) MinValue(current int) int {
	return min(current, 0) - r.Initial.Sum()
}

// Result is the output of one cycle: the state plus everything derived from it.
type Result struct {
	State    body.State
	Total    int
	Vitality body.Vitality
}

// Evaluate derives the total and vitality for state.
func Evaluate(state body.State, rules Rules) Result {
	total := body.Total(state)
	return Result{
		State:    state,
		Total:    total,
		Vitality: body.Evaluate(state, total, rules.Conditions),
	}
}

// Process folds evt into state and returns the recomputed cycle result.
// On error the returned result describes the unchanged input state.
func Process(state body.State, rules Rules, evt Event) (Result, error) {
	next, err := apply(state, rules, evt)
	if err != nil {
		return Evaluate(state, rules), err
	}
	return Evaluate(next, rules), nil
}

func apply(state body.State, rules Rules, evt Event) (body.State, error) {
	switch evt := evt.(type) {
	case PartValueChanged:
		if err := validateValueChange(state, rules, evt); err != nil {
			return state, err
		}
		prev := state.Value(evt.Part)
		return body.Recalculate(state.WithValue(evt.Part, evt.NewValue), rules.Initial, evt.Part, evt.Tier, prev)
	case PartSeveredToggled:
		return body.ApplySevered(state, rules.Initial, evt.Part, evt.Severed)
	case ResetRequested:
		return Reset(rules)
	default:
		return state, ErrUnknownEvent
	}
}

// Reset builds a fresh state from the initial values and normalizes every
// limb through the severed handler.
func Reset(rules Rules) (body.State, error) {
	state := body.NewState(rules.Initial)
	for _, limb := range body.Limbs() {
		next, err := body.ApplySevered(state, rules.Initial, limb, false)
		if err != nil {
			return state, err
		}
		state = next
	}
	return state, nil
}

func validateValueChange(state body.State, rules Rules, evt PartValueChanged) error {
	if !evt.Part.Valid() {
		return body.ErrUnknownPart
	}
	if want := body.TierOf(evt.Part); evt.Tier != want {
		return apperrors.WithMetadata(apperrors.CodeBodyTierMismatch,
			fmt.Sprintf("%s is tier %d, event says %d", evt.Part, int(want), int(evt.Tier)),
			map[string]string{"Part": evt.Part.String(), "Tier": fmt.Sprint(int(evt.Tier))})
	}
	if state.Severed(evt.Part) {
		return apperrors.WithMetadata(apperrors.CodeBodyPartSevered,
			fmt.Sprintf("%s is severed", evt.Part),
			map[string]string{"Part": evt.Part.String()})
	}
	if ceiling := rules.Initial.Max(evt.Part); evt.NewValue > ceiling {
		return apperrors.WithMetadata(apperrors.CodeBodyValueAboveMaximum,
			fmt.Sprintf("%s value %d exceeds maximum %d", evt.Part, evt.NewValue, ceiling),
			map[string]string{"Part": evt.Part.String(), "Max": fmt.Sprint(ceiling)})
	}
	if floor := rules.MinValue(state.Value(evt.Part)); evt.NewValue < floor {
		return apperrors.WithMetadata(apperrors.CodeBodyValueBelowMinimum,
			fmt.Sprintf("%s value %d is below minimum %d", evt.Part, evt.NewValue, floor),
			map[string]string{"Part": evt.Part.String(), "Min": fmt.Sprint(floor)})
	}
	return nil
}
