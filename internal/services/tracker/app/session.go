// Package app owns a single tracked body and runs input events through the
// domain one at a time.
package app

import (
	"context"
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/louisbranch/hitpoints/internal/platform/errors"
	"github.com/louisbranch/hitpoints/internal/services/tracker/bootstrap"
	"github.com/louisbranch/hitpoints/internal/services/tracker/domain/body"
	"github.com/louisbranch/hitpoints/internal/services/tracker/domain/event"
)

const tracerName = "github.com/louisbranch/hitpoints/internal/services/tracker/app"

// Renderer receives the result of every successful cycle.
type Renderer interface {
	Render(event.Result) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(event.Result) error

// Render implements Renderer.
func (f RendererFunc) Render(result event.Result) error { return f(result) }

// Option configures a Session.
type Option func(*Session)

// WithRenderer adds a renderer notified after each cycle, including the
// initial one.
func WithRenderer(r Renderer) Option {
	return func(s *Session) {
		if r != nil {
			s.renderers = append(s.renderers, r)
		}
	}
}

// WithLogger sets the cycle logger. Defaults to the std logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithTracer overrides the tracer used for cycle spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Session) { s.tracer = tracer }
}

// Session is the single owner of one body state.
type Session struct {
	mu        sync.Mutex
	profile   bootstrap.Profile
	rules     event.Rules
	current   event.Result
	renderers []Renderer
	logger    *log.Logger
	tracer    trace.Tracer
}

// NewSession starts a session from a bootstrap profile. Severed flags in the
// profile are latched through the dismemberment handler.
func NewSession(profile bootstrap.Profile, conds body.Conditions, opts ...Option) (*Session, error) {
	if profile.Initial.IsZero() {
		return nil, bootstrap.ErrUnavailable
	}

	s := &Session{
		profile: profile,
		rules:   event.Rules{Initial: profile.Initial, Conditions: conds},
		logger:  log.Default(),
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}

	state, err := s.startState()
	if err != nil {
		return nil, err
	}
	s.current = event.Evaluate(state, s.rules)
	s.render(s.current)
	return s, nil
}

func (s *Session) startState() (body.State, error) {
	state, err := event.Reset(s.rules)
	if err != nil {
		return body.State{}, err
	}
	for _, part := range s.profile.Severed {
		state, err = body.ApplySevered(state, s.rules.Initial, part, true)
		if err != nil {
			return body.State{}, apperrors.Wrap(apperrors.CodeBootstrapUnavailable, "apply bootstrap severed flags", err)
		}
	}
	return state, nil
}

// Apply runs evt through the domain. On success the session state is
// replaced and renderers are notified; on error the state is untouched and
// the returned result describes it.
func (s *Session) Apply(ctx context.Context, evt event.Event) (event.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applyLocked(ctx, evt)
}

// Damage applies a damage amount to part.
func (s *Session) Damage(ctx context.Context, part body.Part, amount int) (event.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	evt, err := event.Damage(s.current.State, s.rules, part, amount)
	if err != nil {
		return s.current, err
	}
	return s.applyLocked(ctx, evt)
}

// Heal applies a heal amount to part, capped at its maximum.
func (s *Session) Heal(ctx context.Context, part body.Part, amount int) (event.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	evt, err := event.Heal(s.current.State, s.rules, part, amount)
	if err != nil {
		return s.current, err
	}
	return s.applyLocked(ctx, evt)
}

func (s *Session) applyLocked(ctx context.Context, evt event.Event) (event.Result, error) {
	kind := "unknown"
	if evt != nil {
		kind = string(evt.Kind())
	}
	_, span := s.tracer.Start(ctx, "tracker.apply", trace.WithAttributes(
		attribute.String("event.kind", kind),
	))
	defer span.End()

	result, err := event.Process(s.current.State, s.rules, evt)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if apperrors.CodeOf(err).Fatal() {
			s.logf("fatal %s: %v", kind, err)
		} else {
			s.logf("rejected %s: %v", kind, err)
		}
		return result, err
	}

	s.current = result
	span.SetAttributes(
		attribute.Int("body.total", result.Total),
		attribute.Bool("body.alive", result.Vitality.Alive),
	)
	s.logf("%s total=%d alive=%t cause=%s", kind, result.Total, result.Vitality.Alive, result.Vitality.Cause)
	s.render(result)
	return result, nil
}

// Snapshot returns the latest cycle result.
func (s *Session) Snapshot() event.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Initial returns the session maxima.
func (s *Session) Initial() body.InitialHitPoints {
	return s.rules.Initial
}

// ProfileName returns the bootstrap profile name.
func (s *Session) ProfileName() string {
	return s.profile.Name
}

func (s *Session) render(result event.Result) {
	for _, r := range s.renderers {
		if err := r.Render(result); err != nil {
			s.logf("render: %v", err)
		}
	}
}

func (s *Session) logf(format string, args ...any) {
	if s.logger == nil {
		return
	}
	s.logger.Printf(format, args...)
}
