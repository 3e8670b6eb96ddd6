package render

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/louisbranch/hitpoints/internal/services/tracker/domain/body"
	"github.com/louisbranch/hitpoints/internal/services/tracker/domain/event"
)

// Sheet renders a static HTML body sheet for result. Inputs carry the part
// maximum; severed parts are disabled and marked is-severed; the part or
// total that killed the body is marked is-dead.
func Sheet(result event.Result, initial body.InitialHitPoints, lang string) templ.Component {
	loc := newLocalizer(lang)
	fields := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, part := range body.Parts() {
			if err := partField(loc, result, initial, part).Render(ctx, w); err != nil {
				return err
			}
		}
		return sheetFooter(loc, result).Render(ctx, w)
	})
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return sheetSection(loc, result).Render(templ.WithChildren(ctx, fields), w)
	})
}

// sheetSection wraps the children of ctx in the sheet section.
func sheetSection(loc localizer, result event.Result) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b tagWriter
		b.open("section",
			attr("class", "body-sheet"),
			attr("data-alive", strconv.FormatBool(result.Vitality.Alive)),
			attr("lang", loc.tag.String()),
		)
		if err := b.flush(w); err != nil {
			return err
		}
		if err := templ.GetChildren(ctx).Render(ctx, w); err != nil {
			return err
		}
		b.close("section")
		return b.flush(w)
	})
}

func partField(loc localizer, result event.Result, initial body.InitialHitPoints, part body.Part) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		rec := result.State.Record(part)
		name := part.String()
		id := "hp-" + name
		dead := result.Vitality.Cause.Kind == body.CausePart && result.Vitality.Cause.Part == part

		var b tagWriter
		b.open("div", attr("class", classes("part", classIf("is-severed", rec.Severed))), attr("data-svg-id", name))
		b.open("label", attr("for", id))
		b.text(loc.partName(part))
		b.close("label")
		b.open("input",
			attr("type", "number"),
			attr("id", id),
			attr("data-hp-id", name),
			attr("data-tier", strconv.Itoa(int(body.TierOf(part)))),
			attr("value", strconv.Itoa(rec.Value)),
			attr("max", strconv.Itoa(initial.Max(part))),
			attr("class", classIf("is-dead", dead)),
			flag("disabled", rec.Severed),
		)
		if body.Severable(part) {
			b.open("input", attr("type", "checkbox"), attr("data-sever", name), flag("checked", rec.Severed))
		}
		b.close("div")
		return b.flush(w)
	})
}

func sheetFooter(loc localizer, result event.Result) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b tagWriter
		b.open("output", attr("data-hp-id", "total"), attr("class", classIf("is-dead", result.Vitality.Cause.Kind == body.CauseTotal)))
		b.text(strconv.Itoa(result.Total))
		b.close("output")
		b.open("p", attr("class", "status"))
		b.text(loc.status(result.Vitality))
		b.close("p")
		b.open("button", attr("type", "button"), attr("data-hp-id", "reset"))
		b.text(loc.sprintf("tracker.sheet.reset"))
		b.close("button")
		return b.flush(w)
	})
}

// attribute is a single HTML attribute. Empty values are omitted; flags
// render bare when set.
type attribute struct {
	name  string
	value string
	flag  bool
	set   bool
}

func attr(name, value string) attribute {
	return attribute{name: name, value: value, set: value != ""}
}

func flag(name string, on bool) attribute {
	return attribute{name: name, flag: true, set: on}
}

func classes(names ...string) string {
	kept := names[:0:0]
	for _, name := range names {
		if name != "" {
			kept = append(kept, name)
		}
	}
	return strings.Join(kept, " ")
}

func classIf(name string, on bool) string {
	if on {
		return name
	}
	return ""
}

// tagWriter buffers markup; every attribute value and text node passes
// through templ.EscapeString.
type tagWriter struct {
	b strings.Builder
}

func (t *tagWriter) open(tag string, attrs ...attribute) {
	t.b.WriteString("<" + tag)
	for _, a := range attrs {
		if !a.set {
			continue
		}
		t.b.WriteString(" " + a.name)
		if !a.flag {
			t.b.WriteString(`="` + templ.EscapeString(a.value) + `"`)
		}
	}
	t.b.WriteString(">")
}

func (t *tagWriter) text(s string) {
	t.b.WriteString(templ.EscapeString(s))
}

func (t *tagWriter) close(tag string) {
	t.b.WriteString("</" + tag + ">")
}

func (t *tagWriter) flush(w io.Writer) error {
	_, err := io.WriteString(w, t.b.String())
	t.b.Reset()
	return err
}


// HTMLSheet rewrites an HTML file with the body sheet after every cycle.
type HTMLSheet struct {
	path    string
	lang    string
	initial body.InitialHitPoints
}

// NewHTMLSheet returns a renderer that writes the sheet to path.
func NewHTMLSheet(path, lang string, initial body.InitialHitPoints) *HTMLSheet {
	return &HTMLSheet{path: path, lang: lang, initial: initial}
}

// Render implements app.Renderer.
func (h *HTMLSheet) Render(result event.Result) error {
	if h == nil {
		return nil
	}
	file, err := os.Create(h.path)
	if err != nil {
		return fmt.Errorf("create html sheet: %w", err)
	}
	if err := Sheet(result, h.initial, h.lang).Render(context.Background(), file); err != nil {
		_ = file.Close()
		return fmt.Errorf("render html sheet: %w", err)
	}
	return file.Close()
}
