// Package transformer implements the per-turn TransformerContext: the
// mutable-per-turn facade that bundles the world snapshot, id/clock
// sources, event and error channels, and the narrow collaborator
// capability interfaces handlers depend on.
package transformer

import (
	"github.com/industry-digital/flux-game-sub002/internal/intent"
	"github.com/industry-digital/flux-game-sub002/internal/urn"
	"github.com/industry-digital/flux-game-sub002/internal/world"
)

// Event is a single domain event a handler's reduce step appended.
// Payload follows the handler's own event schema; that schema is out of
// scope for this core (spec §6).
type Event struct {
	Name          string
	Actor         urn.URN
	Location      urn.URN
	Session       urn.URN
	CorrelationID string
	Payload       any
}

// ContextError is a declared soft failure: something the pipeline
// recovered from without aborting the turn.
type ContextError struct {
	Code          string
	CorrelationID string
}

// Context is the per-turn facade threaded through resolution and
// execution. It is created once per turn, mutated in place by handlers,
// and returned; callers needing isolation must Clone before handing it
// to a handler.
type Context struct {
	World *world.Projection

	events []Event
	errs   []ContextError

	uniqID    func() string
	timestamp func() int64

	Equipment EquipmentAPI
	Party     PartyAPI
	Currency  CurrencyAPI
	Schema    SchemaManager
	Mass      MassAPI
}

// Option configures a Context at construction time.
type Option func(*Context)

// WithUniqID overrides the context's id source (tests supply
// deterministic sequences).
func WithUniqID(f func() string) Option {
	return func(c *Context) { c.uniqID = f }
}

// WithTimestamp overrides the context's clock source.
func WithTimestamp(f func() int64) Option {
	return func(c *Context) { c.timestamp = f }
}

// WithEquipment wires the equipment collaborator.
func WithEquipment(api EquipmentAPI) Option { return func(c *Context) { c.Equipment = api } }

// WithParty wires the party collaborator.
func WithParty(api PartyAPI) Option { return func(c *Context) { c.Party = api } }

// WithCurrency wires the currency collaborator.
func WithCurrency(api CurrencyAPI) Option { return func(c *Context) { c.Currency = api } }

// WithSchema wires the schema/translation collaborator.
func WithSchema(api SchemaManager) Option { return func(c *Context) { c.Schema = api } }

// WithMass wires the mass collaborator.
func WithMass(api MassAPI) Option { return func(c *Context) { c.Mass = api } }

// New builds a turn's Context over the given world snapshot. Default
// uniqid/timestamp sources match intent.NewID / intent.NowMillis so a
// context's auxiliary ids share the same wire format as intent ids.
func New(w *world.Projection, opts ...Option) *Context {
	c := &Context{
		World:     w,
		uniqID:    intent.NewID,
		timestamp: intent.NowMillis,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// UniqID returns a fresh id from the context's injected source.
func (c *Context) UniqID() string { return c.uniqID() }

// Timestamp returns the current time from the context's injected clock.
func (c *Context) Timestamp() int64 { return c.timestamp() }

// Emit appends a domain event. Order of emission is preserved.
func (c *Context) Emit(e Event) {
	c.events = append(c.events, e)
}

// Events returns the events appended so far, in emission order. The
// returned slice must not be mutated by the caller.
func (c *Context) Events() []Event { return c.events }

// DeclareError appends a soft error without aborting the turn. This is
// the ONLY path by which handler/resolution failures surface; the
// executor never returns them by value (spec §6/§7).
func (c *Context) DeclareError(codeOrMessage string, correlationID ...string) {
	id := ""
	if len(correlationID) > 0 {
		id = correlationID[0]
	}
	c.errs = append(c.errs, ContextError{Code: codeOrMessage, CorrelationID: id})
}

// Errors returns the declared soft errors, in declaration order.
func (c *Context) Errors() []ContextError { return c.errs }

// Clone returns a context that shares the World snapshot by reference
// but owns an independent copy of the event/error buffers, so appends on
// the clone never affect the original (spec §3 "Lifecycle").
func (c *Context) Clone() *Context {
	clone := *c
	clone.events = append([]Event(nil), c.events...)
	clone.errs = append([]ContextError(nil), c.errs...)
	return &clone
}
