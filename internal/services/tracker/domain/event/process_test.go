package event

import (
	"errors"
	"math"
	"testing"

	"github.com/louisbranch/hitpoints/internal/services/tracker/domain/body"
)

func testRules(t *testing.T) Rules {
	t.Helper()
	initial, err := body.NewInitialHitPoints(map[body.Part]int{
		body.Head:     20,
		body.Torso:    30,
		body.ArmLeft:  10,
		body.ArmRight: 10,
		body.LegLeft:  15,
		body.LegRight: 15,
	})
	if err != nil {
		t.Fatalf("NewInitialHitPoints: %v", err)
	}
	return Rules{Initial: initial, Conditions: body.DefaultConditions()}
}

func process(t *testing.T, state body.State, rules Rules, evt Event) Result {
	t.Helper()
	result, err := Process(state, rules, evt)
	if err != nil {
		t.Fatalf("Process(%s): %v", evt.Kind(), err)
	}
	return result
}

func TestProcessValueChangeCascadesAndAggregates(t *testing.T) {
	rules := testRules(t)
	state := body.NewState(rules.Initial)

	result := process(t, state, rules, ValueChange(body.ArmLeft, -5))

	if got := result.State.Value(body.Torso); got != 25 {
		t.Fatalf("torso = %d, want 25", got)
	}
	// head 20 + torso 25 + arm-right 10 + legs 30
	if result.Total != 85 {
		t.Fatalf("total = %d, want 85", result.Total)
	}
	if !result.Vitality.Alive {
		t.Fatalf("expected alive, got %+v", result.Vitality)
	}
}

func TestProcessDoesNotMutateInput(t *testing.T) {
	rules := testRules(t)
	state := body.NewState(rules.Initial)
	_ = process(t, state, rules, ValueChange(body.Head, -3))
	if state.Value(body.Head) != 20 || state.Value(body.Torso) != 30 {
		t.Fatal("input state was mutated")
	}
}

func TestProcessRejectsMalformedValueChange(t *testing.T) {
	rules := testRules(t)
	severed, err := body.ApplySevered(body.NewState(rules.Initial), rules.Initial, body.LegLeft, true)
	if err != nil {
		t.Fatalf("ApplySevered: %v", err)
	}

	tests := []struct {
		name  string
		state body.State
		evt   PartValueChanged
		want  error
	}{
		{"unknown part", body.NewState(rules.Initial), PartValueChanged{Part: body.Part(8), Tier: body.Tier2, NewValue: 1}, body.ErrUnknownPart},
		{"missing tier", body.NewState(rules.Initial), PartValueChanged{Part: body.Head, NewValue: 1}, ErrTierMismatch},
		{"wrong tier", body.NewState(rules.Initial), PartValueChanged{Part: body.ArmLeft, Tier: body.Tier1, NewValue: 1}, ErrTierMismatch},
		{"unrecognized tier", body.NewState(rules.Initial), PartValueChanged{Part: body.ArmLeft, Tier: body.Tier(5), NewValue: 1}, ErrTierMismatch},
		{"severed part", severed, ValueChange(body.LegLeft, 2), ErrPartSevered},
		{"above maximum", body.NewState(rules.Initial), ValueChange(body.Torso, 31), body.ErrValueAboveMaximum},
		{"below minimum", body.NewState(rules.Initial), ValueChange(body.Torso, -101), body.ErrValueBelowMinimum},
		{"min int", body.NewState(rules.Initial), ValueChange(body.ArmLeft, math.MinInt), body.ErrValueBelowMinimum},
		{"below minimum of negative part", body.NewState(rules.Initial).WithValue(body.Head, -40), ValueChange(body.Head, -141), body.ErrValueBelowMinimum},
		{"max int", body.NewState(rules.Initial), ValueChange(body.ArmLeft, math.MaxInt), body.ErrValueAboveMaximum},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Process(tt.state, rules, tt.evt)
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
			if result.State != tt.state {
				t.Fatal("expected unchanged state on rejection")
			}
			if result.Total != body.Total(tt.state) {
				t.Fatalf("total = %d, want %d", result.Total, body.Total(tt.state))
			}
		})
	}
}

type bogusEvent struct{}

func (bogusEvent) Kind() Kind { return "bogus" }

func TestProcessUnknownEvent(t *testing.T) {
	rules := testRules(t)
	if _, err := Process(body.NewState(rules.Initial), rules, bogusEvent{}); !errors.Is(err, ErrUnknownEvent) {
		t.Fatalf("error = %v, want %v", err, ErrUnknownEvent)
	}
}

func TestProcessSeverToggle(t *testing.T) {
	rules := testRules(t)
	state := body.NewState(rules.Initial)

	result := process(t, state, rules, PartSeveredToggled{Part: body.LegRight, Severed: true})
	if result.Total != 85 {
		t.Fatalf("total = %d, want 85", result.Total)
	}
	if result.State.Value(body.LegRight) != 15 {
		t.Fatalf("stored value changed to %d", result.State.Value(body.LegRight))
	}

	result = process(t, result.State, rules, PartSeveredToggled{Part: body.LegRight, Severed: false})
	if result.Total != 100 {
		t.Fatalf("total after reattach = %d, want 100", result.Total)
	}
}

func TestProcessSeverTierOneRejected(t *testing.T) {
	rules := testRules(t)
	_, err := Process(body.NewState(rules.Initial), rules, PartSeveredToggled{Part: body.Head, Severed: true})
	if !errors.Is(err, body.ErrNotSeverable) {
		t.Fatalf("error = %v, want %v", err, body.ErrNotSeverable)
	}
}

func TestProcessDeathByTotal(t *testing.T) {
	rules := testRules(t)
	state := body.NewState(rules.Initial)
	for _, part := range body.Parts() {
		state = process(t, state, rules, ValueChange(part, 0)).State
	}
	result := Evaluate(state, rules)
	if result.Vitality.Alive || result.Vitality.Cause.String() != "total" {
		t.Fatalf("expected death by total, got %+v", result.Vitality)
	}
}

func TestProcessResetIsIdempotent(t *testing.T) {
	rules := testRules(t)
	state := body.NewState(rules.Initial)
	state = process(t, state, rules, ValueChange(body.ArmLeft, -8)).State
	state = process(t, state, rules, PartSeveredToggled{Part: body.ArmLeft, Severed: true}).State
	state = process(t, state, rules, ValueChange(body.Head, -2)).State

	first := process(t, state, rules, ResetRequested{})
	second := process(t, first.State, rules, ResetRequested{})

	fresh := body.NewState(rules.Initial)
	if first.State != fresh || second.State != fresh {
		t.Fatalf("reset did not restore initial state: %+v", first.State.Parts)
	}
	if first.Total != rules.Initial.Sum() || !first.Vitality.Alive {
		t.Fatalf("unexpected reset result: total %d, vitality %+v", first.Total, first.Vitality)
	}
}

func TestProcessResetClearsDismembermentCharge(t *testing.T) {
	rules := testRules(t)
	state := body.NewState(rules.Initial)
	state = process(t, state, rules, ValueChange(body.ArmLeft, -5)).State                        // torso 25
	state = process(t, state, rules, PartSeveredToggled{Part: body.ArmLeft, Severed: true}).State // torso 20
	state = process(t, state, rules, ResetRequested{}).State

	state = process(t, state, rules, ValueChange(body.ArmLeft, -5)).State                         // torso 25
	state = process(t, state, rules, PartSeveredToggled{Part: body.ArmLeft, Severed: true}).State // torso 20

	if got := state.Value(body.Torso); got != 20 {
		t.Fatalf("torso = %d, want 20", got)
	}
}

func TestProcessValueAtMinimumStillCascades(t *testing.T) {
	rules := testRules(t)
	state := body.NewState(rules.Initial)

	result := process(t, state, rules, ValueChange(body.ArmLeft, -100))
	if got := result.State.Value(body.Torso); got != -70 {
		t.Fatalf("torso = %d, want -70", got)
	}
	if got := result.State.Value(body.Head); got != -50 {
		t.Fatalf("head = %d, want -50", got)
	}
	if result.Total != 40 {
		t.Fatalf("total = %d, want 40", result.Total)
	}
}
