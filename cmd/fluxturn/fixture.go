package main

import (
	"github.com/industry-digital/flux-game-sub002/internal/urn"
	"github.com/industry-digital/flux-game-sub002/internal/world"
)

// fixtureWorld builds the small town-square-and-tavern world the run
// subcommand drives a turn against. It exists to give the pipeline's
// ambient stack (logging, config) a realistic process entry point,
// matching how the teacher always pairs library packages with a cmd/
// entry point.
func fixtureWorld() *world.Projection {
	w := world.New()

	square := urn.URN("flux:place:fixture:square")
	tavern := urn.URN("flux:place:fixture:tavern")
	w.Places[square] = world.Place{URN: square, Name: "Town Square"}
	w.Places[tavern] = world.Place{URN: tavern, Name: "The Rusty Tankard"}

	alice := urn.URN("flux:actor:fixture:alice")
	bob := urn.URN("flux:actor:fixture:bob")
	w.Actors[alice] = world.Actor{URN: alice, Name: "Alice", Location: square}
	w.Actors[bob] = world.Actor{URN: bob, Name: "Bob", Location: square}

	return w
}

const fixtureActor = urn.URN("flux:actor:fixture:alice")
const fixtureLocation = urn.URN("flux:place:fixture:square")
