package handlers

import (
	"github.com/industry-digital/flux-game-sub002/internal/command"
	"github.com/industry-digital/flux-game-sub002/internal/handler"
	"github.com/industry-digital/flux-game-sub002/internal/intent"
	"github.com/industry-digital/flux-game-sub002/internal/transformer"
)

func init() {
	handler.Register(func() handler.Handler { return &Advance{} })
}

// TypeAdvance is ADVANCE's command type (spec §8 scenario 3).
const TypeAdvance command.Type = "ADVANCE"

// AdvancePayload carries the parsed distance and movement flags onto the
// command.
type AdvancePayload struct {
	Distance string
	Stealth  bool
	Fast     bool
}

// AdvanceEvent is emitted by Advance.Reduce.
type AdvanceEvent struct {
	Actor    string
	Distance string
	Stealth  bool
	Fast     bool
}

// Advance parses "advance <n> [--stealth] [--fast]". Its reducer is a
// pure no-op with respect to world state: it exists to prove option
// parsing (flag vs string values) flows end-to-end through execution,
// not to model real movement (spec §8 scenario 3).
type Advance struct{}

func (Advance) Type() command.Type { return TypeAdvance }

func (Advance) Parse(pctx *handler.ParserContext, in *intent.Intent) (*command.Command, error) {
	if in.Verb != "advance" || len(in.Tokens) == 0 {
		return nil, nil
	}

	return &command.Command{
		Type: TypeAdvance,
		Payload: AdvancePayload{
			Distance: in.Tokens[0],
			Stealth:  in.Options.IsFlag("stealth"),
			Fast:     in.Options.IsFlag("fast"),
		},
	}, nil
}

func (Advance) Reduce(ctx *transformer.Context, cmd command.Command) (*transformer.Context, error) {
	payload, _ := cmd.Payload.(AdvancePayload)
	ctx.Emit(transformer.Event{
		Name:     "ADVANCE",
		Actor:    cmd.Actor,
		Location: cmd.Location,
		Session:  cmd.Session,
		Payload: AdvanceEvent{
			Actor:    string(cmd.Actor),
			Distance: payload.Distance,
			Stealth:  payload.Stealth,
			Fast:     payload.Fast,
		},
	})
	return ctx, nil
}
