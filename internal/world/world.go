// Package world defines the opaque per-turn snapshot the resolver and
// handlers read. It carries no domain logic: callers treat a
// WorldProjection as immutable once constructed, producing a
// structurally new one when state changes (spec's world-rebinding
// contract).
package world

import "github.com/industry-digital/flux-game-sub002/internal/urn"

// Actor is the minimal actor identity the pipeline reads: its name (for
// exact/prefix name matching) and its current location (for
// location-scoped resolution and tie-breaking).
type Actor struct {
	URN      urn.URN
	Name     string
	Location urn.URN
	Shell    string
}

// Place is the minimal place identity the pipeline reads.
type Place struct {
	URN  urn.URN
	Name string
}

// Item is the minimal item identity the pipeline reads. OwnerActor is
// empty when unowned.
type Item struct {
	URN        urn.URN
	Name       string
	OwnerActor urn.URN
}

// Group is the minimal group identity the pipeline reads.
type Group struct {
	URN     urn.URN
	Name    string
	Members []urn.URN
}

// Session is the minimal session identity the pipeline reads.
type Session struct {
	URN  urn.URN
	Kind string
}

// Projection is an immutable-by-convention snapshot of every entity kind
// the pipeline can resolve, keyed by URN.
type Projection struct {
	Actors   map[urn.URN]Actor
	Places   map[urn.URN]Place
	Items    map[urn.URN]Item
	Groups   map[urn.URN]Group
	Sessions map[urn.URN]Session
}

// New builds an empty projection with initialized maps, ready for
// callers to populate before handing it to a turn.
func New() *Projection {
	return &Projection{
		Actors:   make(map[urn.URN]Actor),
		Places:   make(map[urn.URN]Place),
		Items:    make(map[urn.URN]Item),
		Groups:   make(map[urn.URN]Group),
		Sessions: make(map[urn.URN]Session),
	}
}
