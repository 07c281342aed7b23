package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/industry-digital/flux-game-sub002/internal/intent"
	"github.com/industry-digital/flux-game-sub002/internal/urn"
	"github.com/industry-digital/flux-game-sub002/internal/world"
)

const square = urn.URN("flux:place:test:square")
const tavern = urn.URN("flux:place:test:tavern")

func fixtureWorld() *world.Projection {
	w := world.New()
	w.Places[square] = world.Place{URN: square, Name: "Town Square"}
	w.Places[tavern] = world.Place{URN: tavern, Name: "Tavern"}
	w.Actors["flux:actor:test:alice"] = world.Actor{URN: "flux:actor:test:alice", Name: "Alice", Location: square}
	w.Actors["flux:actor:test:bob"] = world.Actor{URN: "flux:actor:test:bob", Name: "Bob", Location: square}
	w.Actors["flux:actor:test:bobby"] = world.Actor{URN: "flux:actor:test:bobby", Name: "Bobby", Location: tavern}
	return w
}

func fixtureIntent(t *testing.T, actorURN, locationURN urn.URN) *intent.Intent {
	t.Helper()
	f := intent.NewFactory(func() string { return "fixedid0000000000000000" }, func() int64 { return 1 })
	in, err := f.Build(intent.Input{Actor: actorURN, Location: locationURN, Text: "noop"})
	require.NoError(t, err)
	return in
}

func TestResolveActor_ExactURN(t *testing.T) {
	r := New(fixtureWorld())
	in := fixtureIntent(t, "flux:actor:test:alice", square)
	a, ok := r.ResolveActor(in, "flux:actor:test:bob", true)
	require.True(t, ok)
	assert.Equal(t, urn.URN("flux:actor:test:bob"), a.URN)
}

func TestResolveActor_ExactURN_WrongLocationFails(t *testing.T) {
	r := New(fixtureWorld())
	in := fixtureIntent(t, "flux:actor:test:alice", square)
	_, ok := r.ResolveActor(in, "flux:actor:test:bobby", true)
	assert.False(t, ok, "exact URN match never falls through, per spec")
}

func TestResolveActor_MalformedURNDoesNotFallThroughToName(t *testing.T) {
	w := fixtureWorld()
	// An actor literally named "flux..." would otherwise collide with
	// the URN-prefix branch; the resolver must not fall through to
	// name matching once it detects the flux:actor: prefix.
	w.Actors["flux:actor:test:fluxbot"] = world.Actor{URN: "flux:actor:test:fluxbot", Name: "flux:actor:ghost", Location: square}
	r := New(w)
	in := fixtureIntent(t, "flux:actor:test:alice", square)
	_, ok := r.ResolveActor(in, "flux:actor:ghost", true)
	assert.False(t, ok)
}

func TestResolveActor_ExactName(t *testing.T) {
	r := New(fixtureWorld())
	in := fixtureIntent(t, "flux:actor:test:alice", square)
	a, ok := r.ResolveActor(in, "bob", true)
	require.True(t, ok)
	assert.Equal(t, urn.URN("flux:actor:test:bob"), a.URN)
}

func TestResolveActor_PrefixMatch(t *testing.T) {
	r := New(fixtureWorld())
	in := fixtureIntent(t, "flux:actor:test:alice", tavern)
	a, ok := r.ResolveActor(in, "bobb", true)
	require.True(t, ok)
	assert.Equal(t, urn.URN("flux:actor:test:bobby"), a.URN)
}

func TestResolveActor_PrefixMatchPrefersSameLocation(t *testing.T) {
	r := New(fixtureWorld())
	in := fixtureIntent(t, "flux:actor:test:alice", square)
	a, ok := r.ResolveActor(in, "bo", false)
	require.True(t, ok)
	assert.Equal(t, urn.URN("flux:actor:test:bob"), a.URN, "same-location bob should outrank tavern-bound bobby")
}

func TestResolveActor_NoMatch(t *testing.T) {
	r := New(fixtureWorld())
	in := fixtureIntent(t, "flux:actor:test:alice", square)
	_, ok := r.ResolveActor(in, "zzz", true)
	assert.False(t, ok)
}

func TestResolveActor_SingleCharPrefixNeverMatches(t *testing.T) {
	r := New(fixtureWorld())
	in := fixtureIntent(t, "flux:actor:test:alice", square)
	_, ok := r.ResolveActor(in, "b", true)
	assert.False(t, ok)
}

func TestResolveActor_Idempotent(t *testing.T) {
	w := fixtureWorld()
	in := fixtureIntent(t, "flux:actor:test:alice", square)
	r1 := New(w)
	r2 := New(w)
	a1, ok1 := r1.ResolveActor(in, "bob", true)
	a2, ok2 := r2.ResolveActor(in, "bob", true)
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, a1, a2)
}

func TestTrie_FindsEveryProperPrefix(t *testing.T) {
	r := New(fixtureWorld())
	for _, prefix := range []string{"bo", "bob", "bobb", "bobby"} {
		got := r.actorTrie.findByPrefix(prefix, defaultMinPrefixLen)
		assert.Contains(t, got, urn.URN("flux:actor:test:bobby"), "prefix %q", prefix)
	}
}

func TestResolvePlace_ReturnsCurrentLocationRegardlessOfToken(t *testing.T) {
	r := New(fixtureWorld())
	in := fixtureIntent(t, "flux:actor:test:alice", square)
	p, ok := r.ResolvePlace(in, "tavern")
	require.True(t, ok)
	assert.Equal(t, square, p.URN, "open question: place-by-name is not yet implemented")
}

func TestResolveActorURN_Shorthand(t *testing.T) {
	u, ok := ResolveActorURN("a:bob")
	require.True(t, ok)
	assert.Equal(t, urn.URN("flux:actor:bob"), u)

	u, ok = ResolveActorURN("actor:bob")
	require.True(t, ok)
	assert.Equal(t, urn.URN("flux:actor:bob"), u)

	u, ok = ResolveActorURN("npc:guard")
	require.True(t, ok)
	assert.Equal(t, urn.URN("flux:actor:npc:guard"), u)

	u, ok = ResolveActorURN("flux:actor:already:full")
	require.True(t, ok)
	assert.Equal(t, urn.URN("flux:actor:already:full"), u)
}

func TestResolveActorURN_Idempotent(t *testing.T) {
	for _, tok := range []string{"a:bob", "npc:guard", "plain", "flux:actor:already:full"} {
		once, _ := ResolveActorURN(tok)
		twice, _ := ResolveActorURN(string(once))
		assert.Equal(t, once, twice)
	}
}

func TestResolveActorURN_Empty(t *testing.T) {
	_, ok := ResolveActorURN("")
	assert.False(t, ok)
}

func TestNew_WithMinPrefixLenRaisesTheFloor(t *testing.T) {
	r := New(fixtureWorld(), WithMinPrefixLen(4), WithPrefixMatchThreshold(4))
	in := fixtureIntent(t, "flux:actor:test:alice", square)

	_, ok := r.ResolveActor(in, "ali", false)
	assert.False(t, ok, "a 3-char prefix token should no longer match with a 4-char floor")

	a, ok := r.ResolveActor(in, "bobb", false)
	require.True(t, ok)
	assert.Equal(t, urn.URN("flux:actor:test:bobby"), a.URN)
}

func TestNew_WithPrefixMatchThresholdOverridesDefault(t *testing.T) {
	r := New(fixtureWorld(), WithPrefixMatchThreshold(1))
	assert.Equal(t, 1, r.prefixMatchThreshold)

	r = New(fixtureWorld())
	assert.Equal(t, defaultPrefixMatchThreshold, r.prefixMatchThreshold)
}
