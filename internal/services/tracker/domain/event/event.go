// Package event defines the input events a tracker session consumes and the
// single entry point that folds one event into a body state.
package event

import "github.com/louisbranch/hitpoints/internal/services/tracker/domain/body"

// Kind is a stable name for an event variant, used in logs and spans.
type Kind string

const (
	KindPartValueChanged   Kind = "part_value_changed"
	KindPartSeveredToggled Kind = "part_severed_toggled"
	KindResetRequested     Kind = "reset_requested"
)

// Event is one input to the tracker.
type Event interface {
	Kind() Kind
}

// PartValueChanged reports that a part's value was edited to NewValue.
// Tier must match the part's registered tier.
type PartValueChanged struct {
	Part     body.Part
	Tier     body.Tier
	NewValue int
}

// Kind implements Event.
func (PartValueChanged) Kind() Kind { return KindPartValueChanged }

// PartSeveredToggled reports that a limb's severed flag was set.
type PartSeveredToggled struct {
	Part    body.Part
	Severed bool
}

// Kind implements Event.
func (PartSeveredToggled) Kind() Kind { return KindPartSeveredToggled }

// ResetRequested replaces the state with a fresh copy of the initial values.
type ResetRequested struct{}

// Kind implements Event.
func (ResetRequested) Kind() Kind { return KindResetRequested }

// ValueChange builds a PartValueChanged with the part's registered tier.
func ValueChange(part body.Part, value int) PartValueChanged {
	return PartValueChanged{Part: part, Tier: body.TierOf(part), NewValue: value}
}
