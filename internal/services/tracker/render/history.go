package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/louisbranch/hitpoints/internal/services/tracker/domain/body"
	"github.com/louisbranch/hitpoints/internal/services/tracker/domain/event"
)

// HistoryRecord is one CSV row per cycle.
type HistoryRecord struct {
	Cycle    int    `csv:"cycle"`
	Head     int    `csv:"head"`
	Torso    int    `csv:"torso"`
	ArmLeft  int    `csv:"arm_left"`
	ArmRight int    `csv:"arm_right"`
	LegLeft  int    `csv:"leg_left"`
	LegRight int    `csv:"leg_right"`
	Severed  string `csv:"severed"`
	Total    int    `csv:"total"`
	Alive    bool   `csv:"alive"`
	Cause    string `csv:"cause"`
}

// NewHistoryRecord flattens result into a CSV row.
func NewHistoryRecord(cycle int, result event.Result) HistoryRecord {
	var severed []string
	for _, part := range body.Parts() {
		if result.State.Severed(part) {
			severed = append(severed, part.String())
		}
	}
	return HistoryRecord{
		Cycle:    cycle,
		Head:     result.State.Value(body.Head),
		Torso:    result.State.Value(body.Torso),
		ArmLeft:  result.State.Value(body.ArmLeft),
		ArmRight: result.State.Value(body.ArmRight),
		LegLeft:  result.State.Value(body.LegLeft),
		LegRight: result.State.Value(body.LegRight),
		Severed:  strings.Join(severed, "|"),
		Total:    result.Total,
		Alive:    result.Vitality.Alive,
		Cause:    result.Vitality.Cause.String(),
	}
}

// History appends one CSV row per cycle. The first row carries headers.
type History struct {
	w             io.Writer
	cycle         int
	headerWritten bool
}

// NewHistory returns a history renderer writing to w.
func NewHistory(w io.Writer) *History {
	return &History{w: w}
}

// Render implements app.Renderer.
func (h *History) Render(result event.Result) error {
	if h == nil {
		return nil
	}
	records := []HistoryRecord{NewHistoryRecord(h.cycle, result)}
	if !h.headerWritten {
		if err := gocsv.Marshal(records, h.w); err != nil {
			return fmt.Errorf("writing history: %w", err)
		}
		h.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, h.w); err != nil {
			return fmt.Errorf("writing history: %w", err)
		}
	}
	h.cycle++
	return nil
}
