package handlers

import (
	"github.com/industry-digital/flux-game-sub002/internal/command"
	"github.com/industry-digital/flux-game-sub002/internal/handler"
	"github.com/industry-digital/flux-game-sub002/internal/intent"
	"github.com/industry-digital/flux-game-sub002/internal/transformer"
	"github.com/industry-digital/flux-game-sub002/internal/urn"
)

func init() {
	handler.Register(func() handler.Handler { return &Strike{} })
}

// TypeStrike is STRIKE's command type (spec §8 scenario 6).
const TypeStrike command.Type = "STRIKE"

// StrikePayload carries the resolved target.
type StrikePayload struct {
	Target urn.URN
}

// StrikeEvent is emitted by Strike.Reduce; it carries the session URN
// forward onto the event exactly as scenario 6 requires.
type StrikeEvent struct {
	Actor   string
	Target  string
	Session string
}

// Strike parses "strike <target>" and proves that a session URN on the
// originating intent survives resolution, dispatch, and reduction intact
// (spec §8 scenario 6: session threading).
type Strike struct{}

func (Strike) Type() command.Type { return TypeStrike }

func (Strike) Parse(pctx *handler.ParserContext, in *intent.Intent) (*command.Command, error) {
	if in.Verb != "strike" || len(in.Tokens) == 0 {
		return nil, nil
	}

	target, ok := pctx.Resolver.ResolveActor(in, in.Tokens[0], true)
	if !ok {
		return nil, nil
	}

	return &command.Command{
		Type:    TypeStrike,
		Payload: StrikePayload{Target: target.URN},
	}, nil
}

func (Strike) Reduce(ctx *transformer.Context, cmd command.Command) (*transformer.Context, error) {
	payload, _ := cmd.Payload.(StrikePayload)
	ctx.Emit(transformer.Event{
		Name:     "STRIKE",
		Actor:    cmd.Actor,
		Location: cmd.Location,
		Session:  cmd.Session,
		Payload: StrikeEvent{
			Actor:   string(cmd.Actor),
			Target:  string(payload.Target),
			Session: string(cmd.Session),
		},
	})
	return ctx, nil
}
