package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/industry-digital/flux-game-sub002/internal/command"
	"github.com/industry-digital/flux-game-sub002/internal/intent"
	"github.com/industry-digital/flux-game-sub002/internal/resolver"
	"github.com/industry-digital/flux-game-sub002/internal/transformer"
	"github.com/industry-digital/flux-game-sub002/internal/urn"
	"github.com/industry-digital/flux-game-sub002/internal/world"
)

type stubHandler struct {
	typ      command.Type
	parseFn  func(*ParserContext, *intent.Intent) (*command.Command, error)
	reduceFn func(*transformer.Context, command.Command) (*transformer.Context, error)
}

func (s *stubHandler) Type() command.Type { return s.typ }

func (s *stubHandler) Parse(pctx *ParserContext, in *intent.Intent) (*command.Command, error) {
	if s.parseFn == nil {
		return nil, nil
	}
	return s.parseFn(pctx, in)
}

func (s *stubHandler) Reduce(ctx *transformer.Context, cmd command.Command) (*transformer.Context, error) {
	if s.reduceFn == nil {
		return ctx, nil
	}
	return s.reduceFn(ctx, cmd)
}

// withRegistry replaces the package-level factory list wholesale for the
// duration of a test, restoring it afterward so tests don't leak
// registrations into each other.
func withRegistry(t *testing.T, fs ...Factory) {
	t.Helper()
	registryMu.Lock()
	old := factories
	factories = append([]Factory(nil), fs...)
	registryMu.Unlock()
	clearHandlerCache()

	t.Cleanup(func() {
		registryMu.Lock()
		factories = old
		registryMu.Unlock()
		clearHandlerCache()
	})
}

func testIntent(t *testing.T, text string) *intent.Intent {
	t.Helper()
	f := intent.NewFactory(func() string { return "cmdid000000000000000000" }, func() int64 { return 42 })
	in, err := f.Build(intent.Input{Actor: "flux:actor:test:alice", Location: "flux:place:test:square", Text: text})
	require.NoError(t, err)
	return in
}

func TestResolveCommandFromIntent_FirstMatchWins(t *testing.T) {
	one := &stubHandler{typ: "ONE", parseFn: func(*ParserContext, *intent.Intent) (*command.Command, error) {
		return nil, nil
	}}
	two := &stubHandler{typ: "TWO", parseFn: func(*ParserContext, *intent.Intent) (*command.Command, error) {
		return &command.Command{Type: "TWO"}, nil
	}}
	three := &stubHandler{typ: "THREE", parseFn: func(*ParserContext, *intent.Intent) (*command.Command, error) {
		t.Fatal("parser THREE should never run once TWO has matched")
		return nil, nil
	}}
	withRegistry(t, func() Handler { return one }, func() Handler { return two }, func() Handler { return three })

	ctx := transformer.New(world.New())
	in := testIntent(t, "look")
	cmd := ResolveCommandFromIntent(ctx, resolver.New(world.New()), in)

	require.NotNil(t, cmd)
	assert.Equal(t, command.Type("TWO"), cmd.Type)
	assert.Empty(t, ctx.Errors())
}

func TestResolveCommandFromIntent_OverlaysIntentFields(t *testing.T) {
	h := &stubHandler{typ: "LOOK", parseFn: func(*ParserContext, *intent.Intent) (*command.Command, error) {
		return &command.Command{Type: "LOOK"}, nil
	}}
	withRegistry(t, func() Handler { return h })

	ctx := transformer.New(world.New())
	in := testIntent(t, "look")
	in.Session = urn.URN("flux:session:test:s1")
	cmd := ResolveCommandFromIntent(ctx, resolver.New(world.New()), in)

	require.NotNil(t, cmd)
	assert.Equal(t, in.Actor, cmd.Actor)
	assert.Equal(t, in.Location, cmd.Location)
	assert.Equal(t, in.Session, cmd.Session, "session URN roundtrip is a hard contract")
	assert.Equal(t, in.ID, cmd.ID)
	assert.Equal(t, in.TS, cmd.TS)
}

func TestResolveCommandFromIntent_NoMatchDeclaresInvalidSyntax(t *testing.T) {
	h := &stubHandler{typ: "LOOK"}
	withRegistry(t, func() Handler { return h })

	ctx := transformer.New(world.New())
	in := testIntent(t, "xyzzy")
	cmd := ResolveCommandFromIntent(ctx, resolver.New(world.New()), in)

	assert.Nil(t, cmd)
	require.Len(t, ctx.Errors(), 1)
	assert.Equal(t, CodeInvalidSyntax, ctx.Errors()[0].Code)
	assert.Equal(t, in.ID, ctx.Errors()[0].CorrelationID)
}

func TestResolveCommandFromIntent_PanickingParserContinuesToNext(t *testing.T) {
	bad := &stubHandler{typ: "BAD", parseFn: func(*ParserContext, *intent.Intent) (*command.Command, error) {
		panic("boom")
	}}
	good := &stubHandler{typ: "GOOD", parseFn: func(*ParserContext, *intent.Intent) (*command.Command, error) {
		return &command.Command{Type: "GOOD"}, nil
	}}
	withRegistry(t, func() Handler { return bad }, func() Handler { return good })

	ctx := transformer.New(world.New())
	in := testIntent(t, "look")
	cmd := ResolveCommandFromIntent(ctx, resolver.New(world.New()), in)

	require.NotNil(t, cmd)
	assert.Equal(t, command.Type("GOOD"), cmd.Type)
	require.Len(t, ctx.Errors(), 1, "the panicking parser's failure is declared, not swallowed silently")
}

func TestResolveCommandFromIntent_ErroringParserContinuesToNext(t *testing.T) {
	bad := &stubHandler{typ: "BAD", parseFn: func(*ParserContext, *intent.Intent) (*command.Command, error) {
		return nil, errors.New("invariant violated")
	}}
	good := &stubHandler{typ: "GOOD", parseFn: func(*ParserContext, *intent.Intent) (*command.Command, error) {
		return &command.Command{Type: "GOOD"}, nil
	}}
	withRegistry(t, func() Handler { return bad }, func() Handler { return good })

	ctx := transformer.New(world.New())
	cmd := ResolveCommandFromIntent(ctx, resolver.New(world.New()), testIntent(t, "look"))

	require.NotNil(t, cmd)
	require.Len(t, ctx.Errors(), 1)
}

func TestExecuteCommand_MissingTypeDeclaresInvalidSyntax(t *testing.T) {
	withRegistry(t)
	ctx := transformer.New(world.New())
	result := ExecuteCommand(ctx, command.Command{ID: "c1"})

	require.Len(t, result.Errors(), 1)
	assert.Equal(t, CodeInvalidSyntax, result.Errors()[0].Code)
	assert.Same(t, ctx.World, result.World)
}

func TestExecuteCommand_UnknownTypePreservesWorldByReference(t *testing.T) {
	withRegistry(t)
	w := world.New()
	ctx := transformer.New(w)
	result := ExecuteCommand(ctx, command.Command{Type: "GHOST", ID: "c1"})

	require.Len(t, result.Errors(), 1)
	assert.Equal(t, CodeInvalidAction, result.Errors()[0].Code)
	assert.Equal(t, "c1", result.Errors()[0].CorrelationID)
	assert.Same(t, w, result.World, "unknown command types must preserve world by reference identity")
}

func TestExecuteCommand_DispatchesToHandlerReduce(t *testing.T) {
	newWorld := world.New()
	h := &stubHandler{typ: "LOOK", reduceFn: func(ctx *transformer.Context, cmd command.Command) (*transformer.Context, error) {
		next := transformer.New(newWorld)
		return next, nil
	}}
	withRegistry(t, func() Handler { return h })

	ctx := transformer.New(world.New())
	result := ExecuteCommand(ctx, command.Command{Type: "LOOK", ID: "c1"})

	assert.Same(t, newWorld, result.World)
	assert.Empty(t, result.Errors())
}

func TestExecuteCommand_ReducerPanicDeclaresErrorAndReturnsOriginalContext(t *testing.T) {
	h := &stubHandler{typ: "LOOK", reduceFn: func(ctx *transformer.Context, cmd command.Command) (*transformer.Context, error) {
		panic("reducer exploded")
	}}
	withRegistry(t, func() Handler { return h })

	w := world.New()
	ctx := transformer.New(w)
	result := ExecuteCommand(ctx, command.Command{Type: "LOOK", ID: "c1"})

	assert.Same(t, ctx, result, "a panicking reducer must return the original context unchanged")
	require.Len(t, result.Errors(), 1)
	assert.Contains(t, result.Errors()[0].Code, "LOOK")
}

func TestExecuteCommand_ReducerErrorDeclaresErrorAndReturnsOriginalContext(t *testing.T) {
	h := &stubHandler{typ: "LOOK", reduceFn: func(ctx *transformer.Context, cmd command.Command) (*transformer.Context, error) {
		return nil, errors.New("nope")
	}}
	withRegistry(t, func() Handler { return h })

	ctx := transformer.New(world.New())
	result := ExecuteCommand(ctx, command.Command{Type: "LOOK", ID: "c1"})

	assert.Same(t, ctx, result)
	require.Len(t, result.Errors(), 1)
	assert.Contains(t, result.Errors()[0].Code, "nope")
}
