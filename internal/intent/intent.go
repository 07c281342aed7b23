// Package intent turns a raw line of player text into a structured,
// validated Intent: verb, arguments, options, and the actor/location/
// session URNs the turn is scoped to.
package intent

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/industry-digital/flux-game-sub002/internal/fluxlog"
	"github.com/industry-digital/flux-game-sub002/internal/urn"
)

// ErrInvalidInput is the sentinel every hard validation failure wraps
// (spec §7: input validation errors bubble to the caller rather than
// being captured on a context).
var ErrInvalidInput = errors.New("invalid intent input")

var base62Re = regexp.MustCompile(`^[0-9A-Za-z]+$`)

// Input is everything the factory needs to build an Intent. ID and TS
// are optional; when absent the factory's injected sources supply them.
// Session is optional; its zero value means "no session".
type Input struct {
	ID       string
	TS       int64
	HasTS    bool
	Actor    urn.URN
	Location urn.URN
	Session  urn.URN
	Text     string
}

// Intent is the frozen result of parsing one line of input. Callers must
// not mutate its slices/maps; treat it as immutable once returned.
type Intent struct {
	ID         string
	TS         int64
	Actor      urn.URN
	Location   urn.URN
	Session    urn.URN
	Text       string
	Normalized string
	Verb       string
	Tokens     []string
	Uniques    map[string]struct{}
	Options    Options
}

// HasSession reports whether the intent carries a session URN.
func (i *Intent) HasSession() bool { return i.Session != "" }

// Factory builds Intents with injectable id/clock sources, per spec
// §4.2's dependency-injection requirement (tests supply deterministic
// overrides; production wires a real clock/id generator).
type Factory struct {
	UniqID    func() string
	Timestamp func() int64
}

// NewFactory constructs a Factory. Either argument may be nil to fall
// back to the package defaults (NewID / current Unix millis).
func NewFactory(uniqID func() string, timestamp func() int64) *Factory {
	if uniqID == nil {
		uniqID = NewID
	}
	if timestamp == nil {
		timestamp = NowMillis
	}
	return &Factory{UniqID: uniqID, Timestamp: timestamp}
}

// Build validates in and tokenizes its text into an Intent. Validation
// failures are hard errors (wrapped ErrInvalidInput) per spec §7; a
// malformed option never fails the build, it simply falls through to
// argument handling per §4.2.
func (f *Factory) Build(in Input) (*Intent, error) {
	if in.ID != "" && !base62Re.MatchString(in.ID) {
		return nil, fmt.Errorf("%w: id %q is not base62", ErrInvalidInput, in.ID)
	}
	if !urn.Validate(urn.Actor, in.Actor) {
		return nil, fmt.Errorf("%w: actor %q is not a valid actor urn", ErrInvalidInput, in.Actor)
	}
	if in.Location != "" && !urn.Validate(urn.Place, in.Location) {
		return nil, fmt.Errorf("%w: location %q is not a valid place urn", ErrInvalidInput, in.Location)
	}
	if in.Session != "" && !urn.Validate(urn.Session, in.Session) {
		return nil, fmt.Errorf("%w: session %q is not a valid session urn", ErrInvalidInput, in.Session)
	}

	id := in.ID
	if id == "" {
		id = f.UniqID()
	}
	ts := in.TS
	if !in.HasTS {
		ts = f.Timestamp()
	}

	text := strings.TrimSpace(in.Text)
	normalized := strings.ToLower(text)

	verb, tokens, uniques, options := split(tokenize(text))
	fluxlog.For(fluxlog.Tokenize).Debugw("tokenized input", "verb", verb, "tokens", tokens, "options", len(options))

	return &Intent{
		ID:         id,
		TS:         ts,
		Actor:      in.Actor,
		Location:   in.Location,
		Session:    in.Session,
		Text:       text,
		Normalized: normalized,
		Verb:       verb,
		Tokens:     tokens,
		Uniques:    uniques,
		Options:    options,
	}, nil
}

// optionEq matches "--name=value" on an already-detagged (quote-stripped
// by the tokenizer) token body.
var optionEq = regexp.MustCompile(`^--([^=]+)=(.*)$`)

// split performs the verb/option/argument pass of spec §4.2 over the
// filtered, emitted token stream.
func split(raw []rawToken) (verb string, tokens []string, uniques map[string]struct{}, options Options) {
	options = make(Options)
	uniques = make(map[string]struct{})

	var kept []string
	for _, t := range raw {
		if keep(t) {
			kept = append(kept, t.emitted())
		}
	}

	if len(kept) == 0 {
		return "", nil, uniques, options
	}

	verb = kept[0]
	for _, tok := range kept[1:] {
		if len(tok) > 2 && strings.HasPrefix(tok, "--") {
			if m := optionEq.FindStringSubmatch(tok); m != nil {
				name, value := m[1], m[2]
				value = stripOuterMatchingQuotes(value)
				options[name] = StringValue(value)
				continue
			}
			name := tok[2:]
			options[name] = flagValue
			continue
		}
		tokens = append(tokens, tok)
		uniques[tok] = struct{}{}
	}
	return verb, tokens, uniques, options
}

// stripOuterMatchingQuotes removes a leading/trailing quote pair from s
// when both ends carry the same quote character (" or '). Defensive:
// the tokenizer already consumes quote delimiters as it lexes, so this
// only fires for values the tokenizer passed through untouched.
func stripOuterMatchingQuotes(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if (first == '"' || first == '\'') && first == last {
		return s[1 : len(s)-1]
	}
	return s
}
