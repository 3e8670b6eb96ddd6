package body

import "testing"

func TestEvaluateDefaultConditions(t *testing.T) {
	initial := testInitial(t)
	conds := DefaultConditions()

	alive := Evaluate(NewState(initial), 100, conds)
	if !alive.Alive || alive.Cause.Kind != CauseNone || alive.Cause.String() != "" {
		t.Fatalf("unexpected verdict %+v", alive)
	}

	for _, total := range []int{0, -3} {
		dead := Evaluate(NewState(initial), total, conds)
		if dead.Alive || dead.Cause.Kind != CauseTotal || dead.Cause.String() != "total" {
			t.Fatalf("total %d: unexpected verdict %+v", total, dead)
		}
	}
}

func TestEvaluateTotalWinsOverPartConditions(t *testing.T) {
	initial := testInitial(t)
	state := stateWith(t, initial, map[Part]int{Head: -1})
	conds := Conditions{
		Total: TotalAtMost(0),
		Parts: []PartCondition{{Part: Head, Name: "head destroyed", Predicate: func(r PartRecord) bool { return r.Value <= 0 }}},
	}

	got := Evaluate(state, 0, conds)
	if got.Alive || got.Cause.Kind != CauseTotal {
		t.Fatalf("expected total cause, got %+v", got)
	}
}

func TestEvaluatePartConditionsInRegistrationOrder(t *testing.T) {
	initial := testInitial(t)
	state := stateWith(t, initial, map[Part]int{Head: -1, Torso: -2})
	atOrBelowZero := func(r PartRecord) bool { return r.Value <= 0 }
	conds := Conditions{
		Total: TotalAtMost(0),
		Parts: []PartCondition{
			{Part: Torso, Name: "torso destroyed", Predicate: atOrBelowZero},
			{Part: Head, Name: "head destroyed", Predicate: atOrBelowZero},
		},
	}

	got := Evaluate(state, Total(state), conds)
	if got.Alive || got.Cause.Kind != CausePart || got.Cause.Part != Torso {
		t.Fatalf("expected torso cause, got %+v", got)
	}
	if got.Cause.String() != "torso" {
		t.Fatalf("cause name = %q", got.Cause.String())
	}
}

func TestEvaluateSkipsIncompleteConditions(t *testing.T) {
	initial := testInitial(t)
	conds := Conditions{
		Parts: []PartCondition{
			{Part: Head, Name: "no predicate"},
			{Part: Part(12), Name: "bad part", Predicate: func(PartRecord) bool { return true }},
		},
	}
	if got := Evaluate(NewState(initial), 0, conds); !got.Alive {
		t.Fatalf("expected alive without a total condition, got %+v", got)
	}
}
