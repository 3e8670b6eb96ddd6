package body

// PartRecord is the current value and severed latch of one part.
type PartRecord struct {
	Value   int
	Severed bool
}

// State is the snapshot of all six parts. All parts are always present.
type State struct {
	Parts [PartCount]PartRecord

	// charged marks limbs whose current negative remainder was already
	// spilled by a severed toggle. Cleared when the limb's value changes.
	charged [PartCount]bool
}

// NewState returns a state at initial values with nothing severed.
func NewState(initial InitialHitPoints) State {
	var state State
	for _, part := range Parts() {
		state.Parts[part] = PartRecord{Value: initial.Max(part)}
	}
	return state
}

// Record returns the record of p. Unknown parts return the zero record.
func (s State) Record(p Part) PartRecord {
	if !p.Valid() {
		return PartRecord{}
	}
	return s.Parts[p]
}

// Value returns the current value of p.
func (s State) Value(p Part) int {
	return s.Record(p).Value
}

// Severed reports whether p is detached.
func (s State) Severed(p Part) bool {
	return s.Record(p).Severed
}

// WithValue returns a copy of s with p set to value. The dismemberment
// charge for p is cleared since the remainder it described is gone.
func (s State) WithValue(p Part, value int) State {
	if !p.Valid() {
		return s
	}
	s.Parts[p].Value = value
	s.charged[p] = false
	return s
}

func (s State) addValue(p Part, delta int) State {
	s.Parts[p].Value += delta
	return s
}

func (s State) setValue(p Part, value int) State {
	s.Parts[p].Value = value
	return s
}
