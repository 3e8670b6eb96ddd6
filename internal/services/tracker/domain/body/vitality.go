package body

// CauseKind distinguishes what fired a death condition.
type CauseKind int

const (
	CauseNone CauseKind = iota
	CauseTotal
	CausePart
)

// Cause names the death condition that fired, if any.
type Cause struct {
	Kind CauseKind
	Part Part
}

// String returns "", "total", or the wire name of the part.
func (c Cause) String() string {
	switch c.Kind {
	case CauseTotal:
		return "total"
	case CausePart:
		return c.Part.String()
	default:
		return ""
	}
}

// Vitality is the alive/dead verdict of a body.
type Vitality struct {
	Alive bool
	Cause Cause
}

// PartCondition is a death predicate over one part's record.
type PartCondition struct {
	Part      Part
	Name      string
	Predicate func(PartRecord) bool
}

// Conditions is the registered set of death conditions. Part conditions are
// evaluated in slice order.
type Conditions struct {
	Total func(total int) bool
	Parts []PartCondition
}

// TotalAtMost returns a total predicate that fires at or below threshold.
func TotalAtMost(threshold int) func(int) bool {
	return func(total int) bool { return total <= threshold }
}

// DefaultConditions returns the stock rule set: dead when the total reaches
// zero, no per-part conditions.
func DefaultConditions() Conditions {
	return Conditions{Total: TotalAtMost(0)}
}

// Evaluate applies conds to state and its aggregated total. The total
// condition wins over part conditions; among part conditions the first
// registered match is reported.
func Evaluate(state State, total int, conds Conditions) Vitality {
	if conds.Total != nil && conds.Total(total) {
		return Vitality{Alive: false, Cause: Cause{Kind: CauseTotal}}
	}
	for _, cond := range conds.Parts {
		if cond.Predicate == nil || !cond.Part.Valid() {
			continue
		}
		if cond.Predicate(state.Parts[cond.Part]) {
			return Vitality{Alive: false, Cause: Cause{Kind: CausePart, Part: cond.Part}}
		}
	}
	return Vitality{Alive: true}
}
