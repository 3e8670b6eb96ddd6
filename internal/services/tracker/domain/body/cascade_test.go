package body

import (
	"errors"
	"testing"
)

func TestApplyCascade(t *testing.T) {
	tests := []struct {
		name        string
		targetValue int
		prev        int
		updated     int
		want        int
	}{
		{"damage staying positive", 30, 10, 4, 30},
		{"damage to exactly zero", 30, 10, 0, 30},
		{"crossing zero spills overflow", 30, 10, -5, 25},
		{"already negative spills full increment", 30, -5, -8, 27},
		{"healing positive part does nothing", 30, 4, 9, 30},
		{"healing to zero restores prev", 20, -5, 0, 25},
		{"healing past zero restores prev only", 20, -5, 3, 25},
		{"healing still negative restores increment", 20, -8, -3, 25},
		{"healing clamps to target maximum", 28, -5, 2, 30},
		{"healing negative target", -4, -6, 0, 2},
		{"no change", 30, -5, -5, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			initial := testInitial(t)
			state := stateWith(t, initial, map[Part]int{Torso: tt.targetValue})
			got := ApplyCascade(state, initial, Torso, tt.prev, tt.updated)
			if got.Value(Torso) != tt.want {
				t.Fatalf("torso = %d, want %d", got.Value(Torso), tt.want)
			}
		})
	}
}

func TestApplyCascadeClampUsesTargetMaximum(t *testing.T) {
	initial := testInitial(t)
	// Head max is 20; the primary (torso) max of 30 must not be used.
	state := stateWith(t, initial, map[Part]int{Head: 18})
	got := ApplyCascade(state, initial, Head, -6, 0)
	if got.Value(Head) != 20 {
		t.Fatalf("head = %d, want clamp to 20", got.Value(Head))
	}
}

func TestApplyCascadeDoesNotMutateInput(t *testing.T) {
	initial := testInitial(t)
	state := NewState(initial)
	_ = ApplyCascade(state, initial, Torso, 10, -5)
	if state.Value(Torso) != 30 {
		t.Fatalf("input state mutated: torso = %d", state.Value(Torso))
	}
}

func TestRecalculateLimbOverflowIntoTorso(t *testing.T) {
	initial := testInitial(t)
	state := stateWith(t, initial, map[Part]int{Torso: 30, ArmLeft: 10})

	state = changeValue(t, state, initial, ArmLeft, -5)

	assertValues(t, state, map[Part]int{ArmLeft: -5, Torso: 25, Head: 20})
}

func TestRecalculateTorsoReachesZeroLeavesHead(t *testing.T) {
	initial := testInitial(t)
	state := stateWith(t, initial, map[Part]int{Torso: 5, ArmLeft: 10})

	state = changeValue(t, state, initial, ArmLeft, -5)

	assertValues(t, state, map[Part]int{ArmLeft: -5, Torso: 0, Head: 20})
}

func TestRecalculateCascadesThroughTorsoIntoHead(t *testing.T) {
	initial := testInitial(t)
	state := stateWith(t, initial, map[Part]int{Torso: 5, Head: 20, ArmLeft: 10})

	state = changeValue(t, state, initial, ArmLeft, -10)

	assertValues(t, state, map[Part]int{ArmLeft: -10, Torso: -5, Head: 15})
}

func TestRecalculateHealingReversesPath(t *testing.T) {
	initial := testInitial(t)
	state := stateWith(t, initial, map[Part]int{Torso: 5, Head: 20, ArmLeft: 10})
	state = changeValue(t, state, initial, ArmLeft, -10)

	state = changeValue(t, state, initial, ArmLeft, 0)

	assertValues(t, state, map[Part]int{ArmLeft: 0, Torso: 5, Head: 20})
}

func TestRecalculatePartialHealing(t *testing.T) {
	initial := testInitial(t)
	state := stateWith(t, initial, map[Part]int{Torso: 5, Head: 20, ArmLeft: 10})
	state = changeValue(t, state, initial, ArmLeft, -10)

	state = changeValue(t, state, initial, ArmLeft, -4)

	assertValues(t, state, map[Part]int{ArmLeft: -4, Torso: 1, Head: 20})
}

func TestRecalculateHealingClampsTorso(t *testing.T) {
	initial := testInitial(t)
	state := stateWith(t, initial, map[Part]int{ArmLeft: 10})
	state = changeValue(t, state, initial, ArmLeft, -6) // torso 30 -> 24
	state = state.WithValue(Torso, 28)                  // torso healed directly

	state = changeValue(t, state, initial, ArmLeft, 10)

	if got := state.Value(Torso); got != 30 {
		t.Fatalf("torso = %d, want clamp to initial 30", got)
	}
}

func TestRecalculateTierOneCounterpart(t *testing.T) {
	initial := testInitial(t)

	state := changeValue(t, NewState(initial), initial, Head, -4)
	assertValues(t, state, map[Part]int{Head: -4, Torso: 26})

	state = changeValue(t, state, initial, Head, 5)
	assertValues(t, state, map[Part]int{Head: 5, Torso: 30})

	state = changeValue(t, state, initial, Torso, -2)
	assertValues(t, state, map[Part]int{Torso: -2, Head: 3})
}

func TestRecalculateTierOneDoesNotTouchLimbs(t *testing.T) {
	initial := testInitial(t)
	state := changeValue(t, NewState(initial), initial, Torso, -12)
	for _, limb := range Limbs() {
		if state.Value(limb) != initial.Max(limb) {
			t.Fatalf("%s changed to %d", limb, state.Value(limb))
		}
	}
}

func TestRecalculateUnknownTier(t *testing.T) {
	initial := testInitial(t)
	state := NewState(initial).WithValue(ArmLeft, -5)

	got, err := Recalculate(state, initial, ArmLeft, Tier(3), 10)
	if !errors.Is(err, ErrUnknownTier) {
		t.Fatalf("error = %v, want %v", err, ErrUnknownTier)
	}
	if got != state {
		t.Fatal("expected state to be returned unchanged")
	}
}

func TestRecalculateTierOneOnLimbIsRejected(t *testing.T) {
	initial := testInitial(t)
	_, err := Recalculate(NewState(initial), initial, LegLeft, Tier1, 15)
	if !errors.Is(err, ErrUnknownTier) {
		t.Fatalf("error = %v, want %v", err, ErrUnknownTier)
	}
}

func TestRecalculateUnknownPart(t *testing.T) {
	initial := testInitial(t)
	_, err := Recalculate(NewState(initial), initial, Part(7), Tier2, 0)
	if !errors.Is(err, ErrUnknownPart) {
		t.Fatalf("error = %v, want %v", err, ErrUnknownPart)
	}
}
