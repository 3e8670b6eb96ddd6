package console

import (
	"bufio"
	"context"
	"fmt"
	"io"

	apperrors "github.com/louisbranch/hitpoints/internal/platform/errors"
	"github.com/louisbranch/hitpoints/internal/services/tracker/app"
	"github.com/louisbranch/hitpoints/internal/services/tracker/domain/event"
	"github.com/louisbranch/hitpoints/internal/services/tracker/render"
)

const prompt = "> "

// Console reads commands and drives a session.
type Console struct {
	session *app.Session
	text    *render.Text
	out     io.Writer
}

// New returns a console bound to session. Output and error messages are
// written to out through text.
func New(session *app.Session, text *render.Text, out io.Writer) *Console {
	return &Console{session: session, text: text, out: out}
}

// Run reads lines from in until quit, EOF or ctx cancellation. Rejected
// input is reported and the loop continues; only fatal domain errors end it.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprint(c.out, prompt)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil
		}
		cmd, err := ParseCommand(scanner.Text())
		if err != nil {
			fmt.Fprintln(c.out, err)
			fmt.Fprint(c.out, prompt)
			continue
		}
		if cmd.Verb == VerbQuit {
			return nil
		}
		if err := c.Execute(ctx, cmd); err != nil {
			if apperrors.CodeOf(err).Fatal() {
				return err
			}
			fmt.Fprintln(c.out, c.text.ErrorMessage(err))
		}
		fmt.Fprint(c.out, prompt)
	}
	return scanner.Err()
}

// Execute runs one parsed command against the session.
func (c *Console) Execute(ctx context.Context, cmd Command) error {
	var err error
	switch cmd.Verb {
	case "":
		return nil
	case VerbSet:
		_, err = c.session.Apply(ctx, event.ValueChange(cmd.Part, cmd.Amount))
	case VerbDamage:
		_, err = c.session.Damage(ctx, cmd.Part, cmd.Amount)
	case VerbHeal:
		_, err = c.session.Heal(ctx, cmd.Part, cmd.Amount)
	case VerbSever:
		_, err = c.session.Apply(ctx, event.PartSeveredToggled{Part: cmd.Part, Severed: true})
	case VerbAttach:
		_, err = c.session.Apply(ctx, event.PartSeveredToggled{Part: cmd.Part, Severed: false})
	case VerbReset:
		_, err = c.session.Apply(ctx, event.ResetRequested{})
	case VerbShow:
		err = c.text.Render(c.session.Snapshot())
	case VerbHelp:
		_, err = io.WriteString(c.out, usage)
	default:
		err = fmt.Errorf("unsupported command %q", cmd.Verb)
	}
	return err
}
