package scenario

import (
	"context"

	apperrors "github.com/louisbranch/hitpoints/internal/platform/errors"
	"github.com/louisbranch/hitpoints/internal/services/tracker/app"
	"github.com/louisbranch/hitpoints/internal/services/tracker/domain/body"
	"github.com/louisbranch/hitpoints/internal/services/tracker/domain/event"
)

func (r *Runner) runStep(ctx context.Context, session *app.Session, step Step) error {
	err := r.dispatch(ctx, session, step)
	if step.ExpectError == "" {
		return err
	}
	if err == nil {
		return r.assertf("expected error %s, got none", step.ExpectError)
	}
	if got := string(apperrors.CodeOf(err)); got != step.ExpectError {
		return r.assertf("expected error %s, got %s (%v)", step.ExpectError, got, err)
	}
	return nil
}

func (r *Runner) dispatch(ctx context.Context, session *app.Session, step Step) error {
	switch step.Kind {
	case "set":
		part, err := body.ParsePart(stringArg(step.Args, "part"))
		if err != nil {
			return err
		}
		_, err = session.Apply(ctx, event.ValueChange(part, intArg(step.Args, "value")))
		return err
	case "damage":
		part, err := body.ParsePart(stringArg(step.Args, "part"))
		if err != nil {
			return err
		}
		_, err = session.Damage(ctx, part, intArg(step.Args, "amount"))
		return err
	case "heal":
		part, err := body.ParsePart(stringArg(step.Args, "part"))
		if err != nil {
			return err
		}
		_, err = session.Heal(ctx, part, intArg(step.Args, "amount"))
		return err
	case "sever", "attach":
		part, err := body.ParsePart(stringArg(step.Args, "part"))
		if err != nil {
			return err
		}
		_, err = session.Apply(ctx, event.PartSeveredToggled{Part: part, Severed: step.Kind == "sever"})
		return err
	case "reset":
		_, err := session.Apply(ctx, event.ResetRequested{})
		return err
	case "expect_part":
		return r.expectPart(session.Snapshot(), step)
	case "expect_severed":
		part, err := body.ParsePart(stringArg(step.Args, "part"))
		if err != nil {
			return err
		}
		want := boolArg(step.Args, "severed")
		if got := session.Snapshot().State.Severed(part); got != want {
			return r.assertf("%s severed = %t, want %t", part, got, want)
		}
		return nil
	case "expect_total":
		want := intArg(step.Args, "value")
		if got := session.Snapshot().Total; got != want {
			return r.assertf("total = %d, want %d", got, want)
		}
		return nil
	case "expect_alive":
		if v := session.Snapshot().Vitality; !v.Alive {
			return r.assertf("expected alive, dead by %s", v.Cause)
		}
		return nil
	case "expect_dead":
		v := session.Snapshot().Vitality
		if v.Alive {
			return r.assertf("expected dead, body is alive")
		}
		if want := stringArg(step.Args, "cause"); want != "" && v.Cause.String() != want {
			return r.assertf("death cause = %s, want %s", v.Cause, want)
		}
		return nil
	default:
		return r.failf("unknown step kind %q", step.Kind)
	}
}

func (r *Runner) expectPart(result event.Result, step Step) error {
	part, err := body.ParsePart(stringArg(step.Args, "part"))
	if err != nil {
		return err
	}
	want := intArg(step.Args, "value")
	if got := result.State.Value(part); got != want {
		return r.assertf("%s = %d, want %d", part, got, want)
	}
	return nil
}

func (r *Runner) failf(format string, args ...any) error {
	return r.assertions.Failf(format, args...)
}

func (r *Runner) assertf(format string, args ...any) error {
	return r.assertions.Assertf(format, args...)
}

func stringArg(args map[string]any, key string) string {
	value, _ := args[key].(string)
	return value
}

func intArg(args map[string]any, key string) int {
	switch value := args[key].(type) {
	case int:
		return value
	case int64:
		return int(value)
	case float64:
		return int(value)
	default:
		return 0
	}
}

func boolArg(args map[string]any, key string) bool {
	value, _ := args[key].(bool)
	return value
}

