package handlers

import (
	"github.com/industry-digital/flux-game-sub002/internal/command"
	"github.com/industry-digital/flux-game-sub002/internal/handler"
	"github.com/industry-digital/flux-game-sub002/internal/intent"
	"github.com/industry-digital/flux-game-sub002/internal/transformer"
	"github.com/industry-digital/flux-game-sub002/internal/urn"
)

func init() {
	handler.Register(func() handler.Handler { return &Attack{} })
}

// TypeAttack is ATTACK's command type (spec §8 scenario 1).
const TypeAttack command.Type = "ATTACK"

// AttackPayload carries the resolved target onto the command, so Reduce
// never has to re-resolve it.
type AttackPayload struct {
	Target urn.URN
}

// AttackEvent is emitted by Attack.Reduce.
type AttackEvent struct {
	Actor  string
	Target string
}

// Attack parses "attack <target>", resolving target against the actor's
// current location via the parser context's resolver (spec §4.3). Combat
// resolution itself is out of scope: this handler only proves
// resolution flows correctly into dispatch.
type Attack struct{}

func (Attack) Type() command.Type { return TypeAttack }

func (Attack) Parse(pctx *handler.ParserContext, in *intent.Intent) (*command.Command, error) {
	if in.Verb != "attack" || len(in.Tokens) == 0 {
		return nil, nil
	}

	target, ok := pctx.Resolver.ResolveActor(in, in.Tokens[0], true)
	if !ok {
		return nil, nil
	}

	return &command.Command{
		Type:    TypeAttack,
		Payload: AttackPayload{Target: target.URN},
	}, nil
}

func (Attack) Reduce(ctx *transformer.Context, cmd command.Command) (*transformer.Context, error) {
	payload, _ := cmd.Payload.(AttackPayload)
	ctx.Emit(transformer.Event{
		Name:     "ATTACK",
		Actor:    cmd.Actor,
		Location: cmd.Location,
		Session:  cmd.Session,
		Payload:  AttackEvent{Actor: string(cmd.Actor), Target: string(payload.Target)},
	})
	return ctx, nil
}
