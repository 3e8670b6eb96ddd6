package scenario

import (
	"fmt"
	"log"

	apperrors "github.com/louisbranch/hitpoints/internal/platform/errors"
)

// AssertionMode controls how expectation mismatches are reported.
type AssertionMode int

const (
	// AssertionStrict fails the scenario on the first mismatch.
	AssertionStrict AssertionMode = iota
	// AssertionLogOnly logs mismatches and keeps running.
	AssertionLogOnly
)

// ErrAssertionFailed marks an expectation mismatch.
var ErrAssertionFailed = apperrors.New(apperrors.CodeScenarioAssertionError, "scenario assertion failed")

// Assertions reports expectation results.
type Assertions struct {
	Mode   AssertionMode
	Logger *log.Logger
}

// Failf reports a failure that always stops the scenario.
func (a Assertions) Failf(format string, args ...any) error {
	return apperrors.New(apperrors.CodeScenarioAssertionError, fmt.Sprintf(format, args...))
}

// Assertf reports an expectation mismatch according to Mode.
func (a Assertions) Assertf(format string, args ...any) error {
	message := fmt.Sprintf(format, args...)
	if a.Mode == AssertionLogOnly {
		if a.Logger != nil {
			a.Logger.Printf("assertion: %s", message)
		}
		return nil
	}
	return fmt.Errorf("%w: %s", ErrAssertionFailed, message)
}
