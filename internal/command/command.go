// Package command defines the Command envelope a handler's parse step
// produces from an Intent, and which the executor later reduces against
// a TransformerContext.
package command

import "github.com/industry-digital/flux-game-sub002/internal/urn"

// Type identifies which registered handler owns a Command.
type Type string

// Command is a handler-validated, typed action. Payload is the
// handler-specific argument set; only the owning handler's type guard
// interprets it.
type Command struct {
	Type     Type
	ID       string
	TS       int64
	Actor    urn.URN
	Location urn.URN
	Session  urn.URN
	Payload  any
}

// HasSession reports whether the command carries a session URN.
func (c Command) HasSession() bool { return c.Session != "" }
