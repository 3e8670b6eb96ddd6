package body

import "testing"

// testInitial mirrors the default bootstrap profile.
func testInitial(t *testing.T) InitialHitPoints {
	t.Helper()
	initial, err := NewInitialHitPoints(map[Part]int{
		Head:     20,
		Torso:    30,
		ArmLeft:  10,
		ArmRight: 10,
		LegLeft:  15,
		LegRight: 15,
	})
	if err != nil {
		t.Fatalf("NewInitialHitPoints: %v", err)
	}
	return initial
}

func stateWith(t *testing.T, initial InitialHitPoints, values map[Part]int) State {
	t.Helper()
	state := NewState(initial)
	for part, value := range values {
		state = state.WithValue(part, value)
	}
	return state
}

// changeValue applies a value edit the way the event layer does.
func changeValue(t *testing.T, state State, initial InitialHitPoints, part Part, value int) State {
	t.Helper()
	prev := state.Value(part)
	next, err := Recalculate(state.WithValue(part, value), initial, part, TierOf(part), prev)
	if err != nil {
		t.Fatalf("Recalculate(%s): %v", part, err)
	}
	return next
}

func assertValues(t *testing.T, state State, want map[Part]int) {
	t.Helper()
	for part, value := range want {
		if got := state.Value(part); got != value {
			t.Fatalf("%s = %d, want %d", part, got, value)
		}
	}
}
