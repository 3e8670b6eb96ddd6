package domain

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/hitpoints/internal/services/tracker/domain/body"
	"github.com/louisbranch/hitpoints/internal/services/tracker/domain/event"
)

// BodySession is the tracker session surface the tools drive.
type BodySession interface {
	Apply(ctx context.Context, evt event.Event) (event.Result, error)
	Damage(ctx context.Context, part body.Part, amount int) (event.Result, error)
	Heal(ctx context.Context, part body.Part, amount int) (event.Result, error)
	Snapshot() event.Result
	Initial() body.InitialHitPoints
	ProfileName() string
}

// BodyPartView is one part in a tool result.
type BodyPartView struct {
	Part    string `json:"part" jsonschema:"part wire name"`
	Tier    int    `json:"tier" jsonschema:"1 for head and torso, 2 for limbs"`
	Value   int    `json:"value" jsonschema:"current hit points, may be negative"`
	Max     int    `json:"max" jsonschema:"initial hit points of the part"`
	Severed bool   `json:"severed" jsonschema:"whether the limb is severed"`
}

// BodyStateResult is the body snapshot returned by every body tool.
type BodyStateResult struct {
	Profile  string         `json:"profile" jsonschema:"bootstrap profile name"`
	Parts    []BodyPartView `json:"parts" jsonschema:"parts in head, torso, arm-left, arm-right, leg-left, leg-right order"`
	Total    int            `json:"total" jsonschema:"sum of positive values of attached parts"`
	MaxTotal int            `json:"max_total" jsonschema:"sum of initial hit points"`
	Alive    bool           `json:"alive" jsonschema:"false once a death condition fires"`
	Cause    string         `json:"cause,omitempty" jsonschema:"total or the part wire name that killed the body"`
}

// BodyStateInput is the empty input of body_state.
type BodyStateInput struct{}

// BodySetValueInput sets a part to an absolute value.
type BodySetValueInput struct {
	Part  string `json:"part" jsonschema:"part wire name: head, torso, arm-left, arm-right, leg-left, leg-right"`
	Value int    `json:"value" jsonschema:"new value, at most the part maximum"`
}

// BodyAmountInput damages or heals a part by an amount.
type BodyAmountInput struct {
	Part   string `json:"part" jsonschema:"part wire name"`
	Amount int    `json:"amount" jsonschema:"non-negative number of hit points"`
}

// BodySeverInput toggles the severed flag of a limb.
type BodySeverInput struct {
	Part    string `json:"part" jsonschema:"limb wire name: arm-left, arm-right, leg-left, leg-right"`
	Severed bool   `json:"severed" jsonschema:"true to sever, false to reattach"`
}

// BodyResetInput is the empty input of body_reset.
type BodyResetInput struct{}

// BodyStateTool defines the body_state tool.
func BodyStateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "body_state",
		Description: "Returns current hit points, severed limbs, total and alive/dead verdict of the tracked body.",
	}
}

// BodySetValueTool defines the body_set_value tool.
func BodySetValueTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "body_set_value",
		Description: "Sets a body part to an absolute value. Negative values cascade overflow into connected parts.",
	}
}

// BodyDamageTool defines the body_damage tool.
func BodyDamageTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "body_damage",
		Description: "Takes hit points from a body part. Overflow below zero cascades from limbs to torso to head.",
	}
}

// BodyHealTool defines the body_heal tool.
func BodyHealTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "body_heal",
		Description: "Restores hit points to a body part, up to its maximum, recovering cascaded overflow.",
	}
}

// BodySeverTool defines the body_sever tool.
func BodySeverTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "body_sever",
		Description: "Severs or reattaches a limb. Severed limbs stop counting toward the total and reject edits.",
	}
}

// BodyResetTool defines the body_reset tool.
func BodyResetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "body_reset",
		Description: "Restores every part to its initial hit points and reattaches all limbs.",
	}
}

// BodyStateHandler returns the current snapshot.
func BodyStateHandler(session BodySession) mcp.ToolHandlerFor[BodyStateInput, BodyStateResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ BodyStateInput) (*mcp.CallToolResult, BodyStateResult, error) {
		return nil, bodyStateResult(session, session.Snapshot()), nil
	}
}

// BodySetValueHandler applies a value change.
func BodySetValueHandler(session BodySession) mcp.ToolHandlerFor[BodySetValueInput, BodyStateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input BodySetValueInput) (*mcp.CallToolResult, BodyStateResult, error) {
		part, err := body.ParsePart(input.Part)
		if err != nil {
			return nil, BodyStateResult{}, err
		}
		return respond(session, func() (event.Result, error) {
			return session.Apply(ctx, event.ValueChange(part, input.Value))
		})
	}
}

// BodyDamageHandler applies damage.
func BodyDamageHandler(session BodySession) mcp.ToolHandlerFor[BodyAmountInput, BodyStateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input BodyAmountInput) (*mcp.CallToolResult, BodyStateResult, error) {
		part, err := body.ParsePart(input.Part)
		if err != nil {
			return nil, BodyStateResult{}, err
		}
		return respond(session, func() (event.Result, error) {
			return session.Damage(ctx, part, input.Amount)
		})
	}
}

// BodyHealHandler applies healing.
func BodyHealHandler(session BodySession) mcp.ToolHandlerFor[BodyAmountInput, BodyStateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input BodyAmountInput) (*mcp.CallToolResult, BodyStateResult, error) {
		part, err := body.ParsePart(input.Part)
		if err != nil {
			return nil, BodyStateResult{}, err
		}
		return respond(session, func() (event.Result, error) {
			return session.Heal(ctx, part, input.Amount)
		})
	}
}

// BodySeverHandler toggles a limb's severed flag.
func BodySeverHandler(session BodySession) mcp.ToolHandlerFor[BodySeverInput, BodyStateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input BodySeverInput) (*mcp.CallToolResult, BodyStateResult, error) {
		part, err := body.ParsePart(input.Part)
		if err != nil {
			return nil, BodyStateResult{}, err
		}
		return respond(session, func() (event.Result, error) {
			return session.Apply(ctx, event.PartSeveredToggled{Part: part, Severed: input.Severed})
		})
	}
}

// BodyResetHandler resets the body.
func BodyResetHandler(session BodySession) mcp.ToolHandlerFor[BodyResetInput, BodyStateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ BodyResetInput) (*mcp.CallToolResult, BodyStateResult, error) {
		return respond(session, func() (event.Result, error) {
			return session.Apply(ctx, event.ResetRequested{})
		})
	}
}

func respond(session BodySession, apply func() (event.Result, error)) (*mcp.CallToolResult, BodyStateResult, error) {
	result, err := apply()
	if err != nil {
		return nil, BodyStateResult{}, err
	}
	return nil, bodyStateResult(session, result), nil
}

func bodyStateResult(session BodySession, result event.Result) BodyStateResult {
	initial := session.Initial()
	out := BodyStateResult{
		Profile:  strings.TrimSpace(session.ProfileName()),
		Total:    result.Total,
		MaxTotal: initial.Sum(),
		Alive:    result.Vitality.Alive,
		Cause:    result.Vitality.Cause.String(),
	}
	for _, part := range body.Parts() {
		rec := result.State.Record(part)
		out.Parts = append(out.Parts, BodyPartView{
			Part:    part.String(),
			Tier:    int(body.TierOf(part)),
			Value:   rec.Value,
			Max:     initial.Max(part),
			Severed: rec.Severed,
		})
	}
	return out
}
