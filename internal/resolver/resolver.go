// Package resolver builds the per-turn lookup structures over a
// WorldProjection (name trie, exact-name map, location index) and maps
// intent tokens to actors/places with deterministic, ranked
// tie-breaking (spec §4.3).
package resolver

import (
	"sort"
	"strings"

	"github.com/industry-digital/flux-game-sub002/internal/fluxlog"
	"github.com/industry-digital/flux-game-sub002/internal/intent"
	"github.com/industry-digital/flux-game-sub002/internal/transformer"
	"github.com/industry-digital/flux-game-sub002/internal/urn"
	"github.com/industry-digital/flux-game-sub002/internal/world"
)

// defaultMinPrefixLen is findByPrefix's default minimum prefix length,
// used when New is not given a WithMinPrefixLen option.
const defaultMinPrefixLen = 2

// defaultPrefixMatchThreshold caps how much of a matched prefix counts
// toward the resolver's tie-break score by default (spec GLOSSARY
// "Prefix match threshold"); overridable via fluxconfig.ResolverConfig.
const defaultPrefixMatchThreshold = 3

const sameLocationBonus = 100

const actorURNPrefix = "flux:actor:"

// Option configures a Resolver at construction time, mirroring
// internal/transformer's functional-options pattern.
type Option func(*Resolver)

// WithPrefixMatchThreshold overrides the cap on how much of a matched
// prefix counts toward the tie-break score (fluxconfig.ResolverConfig).
func WithPrefixMatchThreshold(n int) Option {
	return func(r *Resolver) { r.prefixMatchThreshold = n }
}

// WithMinPrefixLen overrides the minimum prefix length findByPrefix will
// match on (fluxconfig.ResolverConfig).
func WithMinPrefixLen(n int) Option {
	return func(r *Resolver) { r.minPrefixLen = n }
}

// Resolver is a pure function of the WorldProjection it was built from:
// it performs no mutation of world or intent and is safe to reuse for
// every token resolved within one turn.
type Resolver struct {
	world *world.Projection

	exactNameLookup  map[string]urn.URN
	actorTrie        *trie
	actorsByLocation map[urn.URN][]urn.URN

	prefixMatchThreshold int
	minPrefixLen         int
}

// New builds a Resolver's lookup structures in one pass over w.Actors.
// Actors are visited in URN order so that trie insertion order — and
// therefore findByPrefix's tie-break order — is deterministic across
// runs, since Go map iteration order is not (spec §9's "determinism of
// tie-breaks" requirement, resolved here by sorting at build time).
func New(w *world.Projection, opts ...Option) *Resolver {
	r := &Resolver{
		world:                w,
		exactNameLookup:      make(map[string]urn.URN, len(w.Actors)),
		actorTrie:            newTrie(),
		actorsByLocation:     make(map[urn.URN][]urn.URN),
		prefixMatchThreshold: defaultPrefixMatchThreshold,
		minPrefixLen:         defaultMinPrefixLen,
	}
	for _, opt := range opts {
		opt(r)
	}

	ordered := make([]urn.URN, 0, len(w.Actors))
	for u := range w.Actors {
		ordered = append(ordered, u)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	for _, u := range ordered {
		a := w.Actors[u]
		lname := strings.ToLower(a.Name)
		r.exactNameLookup[lname] = u // later entries overwrite; collision winner is unspecified (spec §4.3)
		r.actorTrie.insert(lname, u)
		r.actorsByLocation[a.Location] = append(r.actorsByLocation[a.Location], u)
	}

	fluxlog.For(fluxlog.Resolve).Debugw("built resolver", "actors", len(ordered))
	return r
}

// ResolveActor maps a token to an Actor following spec §4.3's exact
// algorithm: exact URN (no fallthrough), exact name, then ranked prefix
// match over the trie.
func (r *Resolver) ResolveActor(in *intent.Intent, token string, matchLocation bool) (world.Actor, bool) {
	lower := strings.ToLower(token)

	if strings.HasPrefix(lower, actorURNPrefix) {
		a, ok := r.world.Actors[urn.URN(lower)]
		if !ok {
			return world.Actor{}, false
		}
		if matchLocation && a.Location != in.Location {
			return world.Actor{}, false
		}
		return a, true
	}

	if u, ok := r.exactNameLookup[lower]; ok {
		a := r.world.Actors[u]
		if !matchLocation || a.Location == in.Location {
			return a, true
		}
		// Exact name matched but failed the location check: fall
		// through to prefix matching rather than failing outright.
	}

	candidates := r.actorTrie.findByPrefix(lower, r.minPrefixLen)
	if len(candidates) == 0 {
		return world.Actor{}, false
	}

	var best world.Actor
	bestScore := -1
	found := false

	for _, cu := range candidates {
		a := r.world.Actors[cu]
		if matchLocation && a.Location != in.Location {
			continue
		}

		name := strings.ToLower(a.Name)
		prefixLen := commonPrefixLen(lower, name)
		if cap := min3(len(lower), len(name), r.prefixMatchThreshold); prefixLen > cap {
			prefixLen = cap
		}
		if prefixLen < r.minPrefixLen {
			continue
		}

		score := prefixLen
		if a.Location == in.Location {
			score += sameLocationBonus
		}

		if score > bestScore {
			bestScore = score
			best = a
			found = true
		}
	}

	return best, found
}

// ResolvePlace returns the intent's current location regardless of the
// supplied token. This mirrors spec §9's documented open question: the
// current contract is a placeholder that always resolves "here", and
// place-by-name resolution is left to handlers that need it.
func (r *Resolver) ResolvePlace(in *intent.Intent, token string) (world.Place, bool) {
	p, ok := r.world.Places[in.Location]
	return p, ok
}

// ResolveEquippedWeapon reads the issuing actor's equipped weapon via
// the context's EquipmentAPI collaborator (spec §4.3).
func (r *Resolver) ResolveEquippedWeapon(ctx *transformer.Context, in *intent.Intent) (world.Item, bool) {
	if ctx.Equipment == nil {
		return world.Item{}, false
	}
	return ctx.Equipment.GetEquippedWeapon(in.Actor)
}

func commonPrefixLen(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
