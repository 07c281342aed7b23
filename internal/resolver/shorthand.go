package resolver

import (
	"fmt"
	"strings"

	"github.com/industry-digital/flux-game-sub002/internal/urn"
)

// shortPrefixes is the configured short-form prefix list per entity
// type (spec §4.4).
var shortPrefixes = map[urn.Kind][]string{
	urn.Actor: {"a", "actor"},
	urn.Place: {"p", "place"},
	urn.Item:  {"i", "item"},
}

// ResolveShorthand normalizes a player-typed URN-ish token to a full
// flux:<kind>:... URN. It performs no world-existence check; it is a
// pure syntactic transform, and is idempotent: applying it twice
// produces the same result as applying it once (spec §8).
func ResolveShorthand(kind urn.Kind, token string) (urn.URN, bool) {
	if token == "" {
		return "", false
	}

	full := fmt.Sprintf("flux:%s:", kind)
	if strings.HasPrefix(token, full) {
		return urn.URN(token), true
	}

	for _, short := range shortPrefixes[kind] {
		prefix := short + ":"
		if strings.HasPrefix(token, prefix) {
			return urn.URN(full + token[len(prefix):]), true
		}
	}

	// Contains ":" (a bare fragment) or not: both cases just prepend
	// the full prefix per spec §4.4.
	return urn.URN(full + token), true
}

// ResolveActorURN is ResolveShorthand specialized to actor URNs.
func ResolveActorURN(token string) (urn.URN, bool) { return ResolveShorthand(urn.Actor, token) }

// ResolvePlaceURN is ResolveShorthand specialized to place URNs.
func ResolvePlaceURN(token string) (urn.URN, bool) { return ResolveShorthand(urn.Place, token) }

// ResolveItemURN is ResolveShorthand specialized to item URNs.
func ResolveItemURN(token string) (urn.URN, bool) { return ResolveShorthand(urn.Item, token) }
