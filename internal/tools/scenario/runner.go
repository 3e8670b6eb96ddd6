// Package scenario runs Lua body scenarios against an in-process tracker
// session.
package scenario

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/louisbranch/hitpoints/internal/services/tracker/app"
	"github.com/louisbranch/hitpoints/internal/services/tracker/bootstrap"
	"github.com/louisbranch/hitpoints/internal/services/tracker/domain/body"
)

// Config controls scenario execution.
type Config struct {
	Profile    bootstrap.Profile
	Conditions body.Conditions
	Assertions AssertionMode
	Verbose    bool
	Logger     *log.Logger
}

// DefaultConfig returns default runner configuration: the embedded profile
// and stock death conditions.
func DefaultConfig() (Config, error) {
	profile, err := bootstrap.Default()
	if err != nil {
		return Config{}, err
	}
	return Config{
		Profile:    profile,
		Conditions: body.DefaultConditions(),
		Assertions: AssertionStrict,
	}, nil
}

// Runner executes scenarios. Each scenario gets a fresh session.
type Runner struct {
	newSession func() (*app.Session, error)
	assertions Assertions
	logger     *log.Logger
	verbose    bool
}

// NewRunner prepares a scenario runner.
func NewRunner(cfg Config) (*Runner, error) {
	if cfg.Profile.Initial.IsZero() {
		return nil, errors.New("scenario profile is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "", 0)
	}
	conditions := cfg.Conditions
	if conditions.Total == nil && len(conditions.Parts) == 0 {
		conditions = body.DefaultConditions()
	}
	profile := cfg.Profile
	sessionLogger := log.New(io.Discard, "", 0)
	if cfg.Verbose {
		sessionLogger = logger
	}

	return &Runner{
		newSession: func() (*app.Session, error) {
			return app.NewSession(profile, conditions, app.WithLogger(sessionLogger))
		},
		assertions: Assertions{Mode: cfg.Assertions, Logger: logger},
		logger:     logger,
		verbose:    cfg.Verbose,
	}, nil
}

// RunFile loads and executes a scenario file.
func RunFile(ctx context.Context, cfg Config, path string) error {
	runner, err := NewRunner(cfg)
	if err != nil {
		return err
	}
	scenario, err := LoadScenarioFromFile(path)
	if err != nil {
		return err
	}
	return runner.RunScenario(ctx, scenario)
}

// RunScenario executes the scenario steps against a fresh session.
func (r *Runner) RunScenario(ctx context.Context, scenario *Scenario) error {
	if scenario == nil {
		return errors.New("scenario is required")
	}
	session, err := r.newSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	r.logf("scenario start: %s (%d steps)", scenario.Name, len(scenario.Steps))
	for index, step := range scenario.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		stepNumber := index + 1
		r.logf("step %d/%d start: %s", stepNumber, len(scenario.Steps), step.Kind)
		stepStart := time.Now()
		if err := r.runStep(ctx, session, step); err != nil {
			return fmt.Errorf("step %d (%s): %w", stepNumber, step.Kind, err)
		}
		r.logf("step %d/%d done: %s (%s)", stepNumber, len(scenario.Steps), step.Kind, time.Since(stepStart))
	}
	r.logf("scenario done: %s", scenario.Name)
	return nil
}

func (r *Runner) logf(format string, args ...any) {
	if !r.verbose || r.logger == nil {
		return
	}
	r.logger.Printf(format, args...)
}
