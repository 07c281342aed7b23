// Package handler defines the Handler contract every concrete command
// handler must honor, and implements the two machines that depend on
// it: the parser registry (resolveCommandFromIntent) and the handler
// registry + executor (spec §4.5, §4.6).
package handler

import (
	"github.com/industry-digital/flux-game-sub002/internal/command"
	"github.com/industry-digital/flux-game-sub002/internal/intent"
	"github.com/industry-digital/flux-game-sub002/internal/resolver"
	"github.com/industry-digital/flux-game-sub002/internal/transformer"
)

// ParserContext is the context handed to a handler's Parse step: the
// turn's TransformerContext overlaid with the entity-resolution API
// (spec §4.5 step 1, "context ⊕ entityResolverApi(context)").
type ParserContext struct {
	*transformer.Context
	Resolver *resolver.Resolver
}

// Handler is the contract every concrete command handler must honor
// (spec §4.6):
//   - Type is a string tag unique across the registry.
//   - Parse is pure; a nil Command means "not mine". An error means an
//     internal invariant violation, not "didn't match" — it is declared
//     on the context by the parser registry, not returned to the caller.
//   - Reduce is pure with respect to its own inputs; it may read
//     ctx.World but must produce (and return) a new context rather than
//     mutate the one it was given when world state changes.
type Handler interface {
	Type() command.Type
	Parse(pctx *ParserContext, in *intent.Intent) (*command.Command, error)
	Reduce(ctx *transformer.Context, cmd command.Command) (*transformer.Context, error)
}
