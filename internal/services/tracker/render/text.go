package render

import (
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	apperrors "github.com/louisbranch/hitpoints/internal/platform/errors"
	"github.com/louisbranch/hitpoints/internal/platform/i18n/catalog"
	"github.com/louisbranch/hitpoints/internal/services/tracker/domain/body"
	"github.com/louisbranch/hitpoints/internal/services/tracker/domain/event"
)

// localizer resolves tracker strings for one locale.
type localizer struct {
	tag     language.Tag
	printer *message.Printer
	bundle  *catalog.Bundle
}

func newLocalizer(lang string) localizer {
	bundle := catalog.Default()
	tag := bundle.Tag(lang)
	return localizer{tag: tag, printer: message.NewPrinter(tag), bundle: bundle}
}

func (l localizer) sprintf(key string, args ...any) string {
	return l.printer.Sprintf(key, args...)
}

func (l localizer) partName(p body.Part) string {
	return l.sprintf("tracker.part." + p.String())
}

func (l localizer) cause(c body.Cause) string {
	switch c.Kind {
	case body.CauseTotal:
		return l.sprintf("tracker.cause.total")
	case body.CausePart:
		return l.partName(c.Part)
	default:
		return ""
	}
}

func (l localizer) status(v body.Vitality) string {
	if v.Alive {
		return l.sprintf("tracker.status.alive")
	}
	return l.sprintf("tracker.status.dead", l.cause(v.Cause))
}

// Text writes a plain-text body summary after every cycle.
type Text struct {
	w       io.Writer
	initial body.InitialHitPoints
	loc     localizer
}

// NewText returns a text renderer for the given language. Unsupported
// languages fall back to English.
func NewText(w io.Writer, lang string, initial body.InitialHitPoints) *Text {
	return &Text{w: w, initial: initial, loc: newLocalizer(lang)}
}

// Format returns the text summary of result.
func (t *Text) Format(result event.Result) string {
	var b strings.Builder
	for _, part := range body.Parts() {
		rec := result.State.Record(part)
		b.WriteString(t.loc.sprintf("tracker.line.part", t.loc.partName(part), rec.Value, t.initial.Max(part)))
		if rec.Severed {
			b.WriteString("  [" + t.loc.sprintf("tracker.line.severed") + "]")
		}
		b.WriteByte('\n')
	}
	b.WriteString(t.loc.sprintf("tracker.line.total", result.Total, t.initial.Sum()))
	b.WriteByte('\n')
	b.WriteString(t.loc.status(result.Vitality))
	b.WriteByte('\n')
	return b.String()
}

// Render implements app.Renderer.
func (t *Text) Render(result event.Result) error {
	_, err := io.WriteString(t.w, t.Format(result))
	return err
}

// ErrorMessage returns the localized message for err's code, falling back
// to the error text when the code has no catalog entry.
func (t *Text) ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if msg, ok := t.loc.bundle.Message(t.loc.tag.String(), "errors."+string(apperrors.CodeOf(err))); ok {
		return msg
	}
	return err.Error()
}
