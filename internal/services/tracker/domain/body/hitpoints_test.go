package body

import (
	"errors"
	"testing"
)

func TestNewInitialHitPointsRequiresEveryPart(t *testing.T) {
	_, err := NewInitialHitPoints(map[Part]int{Head: 20, Torso: 30})
	if !errors.Is(err, ErrInvalidInitialHP) {
		t.Fatalf("error = %v, want %v", err, ErrInvalidInitialHP)
	}
}

func TestNewInitialHitPointsRejectsNonPositive(t *testing.T) {
	values := map[Part]int{Head: 20, Torso: 30, ArmLeft: 10, ArmRight: 0, LegLeft: 15, LegRight: 15}
	_, err := NewInitialHitPoints(values)
	if !errors.Is(err, ErrInvalidInitialHP) {
		t.Fatalf("error = %v, want %v", err, ErrInvalidInitialHP)
	}
}

func TestNewInitialHitPointsRejectsUnknownPart(t *testing.T) {
	values := map[Part]int{Head: 20, Torso: 30, ArmLeft: 10, ArmRight: 10, LegLeft: 15, LegRight: 15, Part(9): 1}
	_, err := NewInitialHitPoints(values)
	if !errors.Is(err, ErrUnknownPart) {
		t.Fatalf("error = %v, want %v", err, ErrUnknownPart)
	}
}

func TestInitialHitPointsAccessors(t *testing.T) {
	initial := testInitial(t)
	if initial.Max(Torso) != 30 {
		t.Fatalf("Max(torso) = %d", initial.Max(Torso))
	}
	if initial.Max(Part(99)) != 0 {
		t.Fatal("expected zero max for unknown part")
	}
	if initial.Sum() != 100 {
		t.Fatalf("Sum = %d, want 100", initial.Sum())
	}
	if initial.IsZero() {
		t.Fatal("expected initialized hit points")
	}
	if !(InitialHitPoints{}).IsZero() {
		t.Fatal("expected zero value to report IsZero")
	}
}

func TestNewStateMatchesInitial(t *testing.T) {
	initial := testInitial(t)
	state := NewState(initial)
	for _, part := range Parts() {
		record := state.Record(part)
		if record.Value != initial.Max(part) || record.Severed {
			t.Fatalf("%s record = %+v", part, record)
		}
	}
}
