package handler

import (
	"fmt"
	"sync"

	"github.com/industry-digital/flux-game-sub002/internal/command"
	"github.com/industry-digital/flux-game-sub002/internal/fluxlog"
	"github.com/industry-digital/flux-game-sub002/internal/intent"
	"github.com/industry-digital/flux-game-sub002/internal/resolver"
	"github.com/industry-digital/flux-game-sub002/internal/transformer"
)

const (
	// CodeInvalidSyntax is declared when no parser claims an intent, or
	// when a command arrives with no type set (spec §4.5 step 4, §4.6
	// step 1).
	CodeInvalidSyntax = "INVALID_SYNTAX"

	// CodeInvalidAction is declared when a command's type has no
	// registered handler (spec §4.6 step 2).
	CodeInvalidAction = "INVALID_ACTION"
)

// Factory constructs one Handler instance. Registered factories run once,
// at first registry access (spec §4.6's "lazily initialized... First
// call constructs every handler once").
type Factory func() Handler

var (
	registryMu sync.RWMutex
	factories  []Factory

	cacheOnce sync.Once
	cacheMu   sync.RWMutex
	byType    map[command.Type]Handler
	ordered   []Handler
)

// Register adds a handler factory to the fixed, declaration-ordered list
// enumerated at registry construction (spec §4.5: "the declaration order
// of the handler list is the spec"). Call from an init() in the package
// implementing the concrete handler.
func Register(f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	factories = append(factories, f)
}

// clearHandlerCache resets the lazily built registry so the next call to
// handlers()/handlerByType rebuilds it from the current factory list.
// Tests only; no production caller should use this (spec §4.6).
func clearHandlerCache() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	cacheOnce = sync.Once{}
	byType = nil
	ordered = nil
}

// ClearHandlerCache is the exported form of clearHandlerCache, for tests
// in other packages that need to reset handler state between cases.
func ClearHandlerCache() { clearHandlerCache() }

func buildRegistry() {
	registryMu.RLock()
	fs := make([]Factory, len(factories))
	copy(fs, factories)
	registryMu.RUnlock()

	m := make(map[command.Type]Handler, len(fs))
	list := make([]Handler, 0, len(fs))
	for _, f := range fs {
		h := f()
		m[h.Type()] = h
		list = append(list, h)
	}

	cacheMu.Lock()
	byType = m
	ordered = list
	cacheMu.Unlock()
}

func handlers() []Handler {
	cacheOnce.Do(buildRegistry)
	cacheMu.RLock()
	defer cacheMu.RUnlock()
	return ordered
}

func handlerByType(t command.Type) (Handler, bool) {
	cacheOnce.Do(buildRegistry)
	cacheMu.RLock()
	defer cacheMu.RUnlock()
	h, ok := byType[t]
	return h, ok
}

// ResolveCommandFromIntent implements spec §4.5's resolveCommandFromIntent:
// it tries every registered parser in declaration order, overlays the
// intent's actor/location/session/id/ts onto whichever one first claims
// the intent, and declares INVALID_SYNTAX if none do.
//
// A parser that panics does not abort resolution: the panic is recovered,
// declared as a soft error correlated to the intent's id, and the next
// parser is tried (spec §4.5 step 3).
func ResolveCommandFromIntent(ctx *transformer.Context, r *resolver.Resolver, in *intent.Intent) *command.Command {
	log := fluxlog.For(fluxlog.Dispatch)
	pctx := &ParserContext{Context: ctx, Resolver: r}

	for _, h := range handlers() {
		log.Debugw("trying parser", "type", h.Type(), "intent_id", in.ID, "verb", in.Verb)
		cmd, err := tryParse(h, pctx, in)
		if err != nil {
			log.Warnw("parser failed", "type", h.Type(), "intent_id", in.ID, "error", err)
			ctx.DeclareError(err.Error(), in.ID)
			continue
		}
		if cmd == nil {
			continue
		}

		cmd.Actor = in.Actor
		cmd.Location = in.Location
		cmd.Session = in.Session
		cmd.ID = in.ID
		cmd.TS = in.TS
		return cmd
	}

	log.Warnw("no parser matched", "intent_id", in.ID, "verb", in.Verb)
	ctx.DeclareError(CodeInvalidSyntax, in.ID)
	return nil
}

// tryParse invokes h.Parse, converting a panic into an error so one
// misbehaving parser cannot prevent the registry from trying the rest.
func tryParse(h Handler, pctx *ParserContext, in *intent.Intent) (cmd *command.Command, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("parser %s panicked: %v", h.Type(), rec)
		}
	}()
	return h.Parse(pctx, in)
}

// ExecuteCommand implements spec §4.6's executeCommand: dispatch cmd to
// its registered handler's Reduce, with missing-type, unknown-type, and
// reducer-panic all surfacing as soft errors on the returned context
// rather than as Go errors.
//
// Per spec's key invariant, an unknown command type returns ctx itself
// (so result.World is reference-identical to the input's), not a clone.
func ExecuteCommand(ctx *transformer.Context, cmd command.Command) *transformer.Context {
	log := fluxlog.For(fluxlog.Dispatch)

	if cmd.Type == "" {
		log.Warnw("command missing type", "command_id", cmd.ID)
		ctx.DeclareError(CodeInvalidSyntax, cmd.ID)
		return ctx
	}

	h, ok := handlerByType(cmd.Type)
	if !ok {
		log.Warnw("no handler registered for command type", "type", cmd.Type, "command_id", cmd.ID)
		ctx.DeclareError(CodeInvalidAction, cmd.ID)
		return ctx
	}

	log.Debugw("dispatching", "type", cmd.Type, "command_id", cmd.ID)
	next, err := tryReduce(h, ctx, cmd)
	if err != nil {
		log.Warnw("reducer failed", "type", cmd.Type, "command_id", cmd.ID, "error", err)
		ctx.DeclareError(fmt.Sprintf("%s: %v", cmd.Type, err), cmd.ID)
		return ctx
	}
	return next
}

// tryReduce invokes h.Reduce, converting a panic into an error so a
// handler can never escape ExecuteCommand via a runtime panic (spec
// §4.6: "Handlers never throw out of executeCommand"), grounded in the
// teacher's api_scheduler recover-to-error pattern.
func tryReduce(h Handler, ctx *transformer.Context, cmd command.Command) (next *transformer.Context, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%v", rec)
		}
	}()
	return h.Reduce(ctx, cmd)
}
