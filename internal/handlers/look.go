// Package handlers is the reference handler set that exercises
// internal/handler's registry and executor end-to-end (SPEC_FULL.md
// §4.9): look, attack, advance, strike, and @credit. None perform real
// combat/economy math; the full catalog remains an external collaborator
// per spec.md §1's Non-goals.
package handlers

import (
	"github.com/industry-digital/flux-game-sub002/internal/command"
	"github.com/industry-digital/flux-game-sub002/internal/handler"
	"github.com/industry-digital/flux-game-sub002/internal/intent"
	"github.com/industry-digital/flux-game-sub002/internal/transformer"
)

func init() {
	handler.Register(func() handler.Handler { return &Look{} })
}

// TypeLook is the command type look's parser produces.
const TypeLook command.Type = "LOOK"

// LookEvent is emitted by Look.Reduce.
type LookEvent struct {
	Actor    string
	Location string
}

// Look parses bare "look"/"look around" and reports the actor's current
// location; it never changes world state (spec §8, implicit baseline
// scenario for the pipeline's simplest verb).
type Look struct{}

func (Look) Type() command.Type { return TypeLook }

func (Look) Parse(pctx *handler.ParserContext, in *intent.Intent) (*command.Command, error) {
	if in.Verb != "look" {
		return nil, nil
	}
	return &command.Command{Type: TypeLook}, nil
}

func (Look) Reduce(ctx *transformer.Context, cmd command.Command) (*transformer.Context, error) {
	ctx.Emit(transformer.Event{
		Name:     "LOOK",
		Actor:    cmd.Actor,
		Location: cmd.Location,
		Session:  cmd.Session,
		Payload:  LookEvent{Actor: string(cmd.Actor), Location: string(cmd.Location)},
	})
	return ctx, nil
}
