// Package errors provides structured error handling for tracker boundaries.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Body errors
	CodeBodyUnknownPart        Code = "BODY_UNKNOWN_PART"
	CodeBodyUnknownTier        Code = "BODY_UNKNOWN_TIER"
	CodeBodyTierMismatch       Code = "BODY_TIER_MISMATCH"
	CodeBodyPartSevered        Code = "BODY_PART_SEVERED"
	CodeBodyNotSeverable       Code = "BODY_NOT_SEVERABLE"
	CodeBodyValueAboveMaximum  Code = "BODY_VALUE_ABOVE_MAXIMUM"
	CodeBodyValueBelowMinimum  Code = "BODY_VALUE_BELOW_MINIMUM"
	CodeBodyInvalidInitialHP   Code = "BODY_INVALID_INITIAL_HP"
	CodeBodyInvalidAmount      Code = "BODY_INVALID_AMOUNT"
	CodeBodyUnknownEvent       Code = "BODY_UNKNOWN_EVENT"
	CodeBootstrapUnavailable   Code = "BOOTSTRAP_UNAVAILABLE"
	CodeRulesInvalid           Code = "RULES_INVALID"
	CodeProfileNotFound        Code = "PROFILE_NOT_FOUND"
	CodeProfileNameEmpty       Code = "PROFILE_NAME_EMPTY"
	CodeScenarioAssertionError Code = "SCENARIO_ASSERTION_FAILED"
)

// Fatal reports whether the code marks an internal-consistency fault rather
// than a rejected input.
func (c Code) Fatal() bool {
	switch c {
	case CodeBodyUnknownTier:
		return true
	default:
		return false
	}
}
