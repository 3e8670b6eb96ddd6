// Package body implements the hit-point cascade engine for a six-part body.
//
// The engine is a set of pure functions over State, a fixed-cardinality
// record indexed by Part:
//   - ApplyCascade and Recalculate spill negative overflow from a changed
//     part onto its anatomical neighbour (limbs into the torso, the torso and
//     head into each other) and drain it back on healing,
//   - Total sums the living value of attached parts,
//   - Evaluate applies death conditions to the total and to single parts,
//   - ApplySevered toggles a limb's severed latch and charges any negative
//     remainder into the torso chain once.
//
// Every function takes State by value and returns the updated copy; callers
// own the only live instance.
package body
