// Package urn implements the flux URN taxonomy: validation, parsing, and
// construction of namespaced identifiers of the form flux:<type>:<id...>.
package urn

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Kind is one of the entity namespaces this core recognizes.
type Kind string

const (
	Actor   Kind = "actor"
	Place   Kind = "place"
	Item    Kind = "item"
	Group   Kind = "group"
	Session Kind = "session"
	Schema  Kind = "schema"
)

func (k Kind) valid() bool {
	switch k {
	case Actor, Place, Item, Group, Session, Schema:
		return true
	default:
		return false
	}
}

// URN is an opaque tagged string. Equality is byte equality; the type
// prefix is always lowercase, the id segments preserve issuer case.
type URN string

// ErrInvalidURN is returned (wrapped) by Make and Parse on any malformed
// type or segment.
var ErrInvalidURN = errors.New("invalid urn")

// segmentRe matches a single well-formed id segment: letters/digits,
// optionally chained by single hyphens or colons. No leading/trailing
// hyphen, no double hyphen, no underscore, no whitespace.
var segmentRe = regexp.MustCompile(`^[A-Za-z0-9]+(?:[-:][A-Za-z0-9]+)*$`)

// Make joins non-empty segments with ":" under the flux:<type>: prefix.
// Empty segments are dropped rather than emitted as empty id components.
func Make(kind Kind, segments ...string) (URN, error) {
	if !kind.valid() {
		return "", fmt.Errorf("%w: unknown type %q", ErrInvalidURN, kind)
	}
	kept := make([]string, 0, len(segments))
	for _, s := range segments {
		if s != "" {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return "", fmt.Errorf("%w: no id segments for type %q", ErrInvalidURN, kind)
	}
	id := strings.Join(kept, ":")
	if !segmentRe.MatchString(id) {
		return "", fmt.Errorf("%w: malformed id %q", ErrInvalidURN, id)
	}
	return URN(fmt.Sprintf("flux:%s:%s", kind, id)), nil
}

// Parse splits a URN into its type and id segments. It fails with
// ErrInvalidURN for anything that is not well-formed for a recognized type.
func Parse(u URN) (Kind, []string, error) {
	parts := strings.SplitN(string(u), ":", 3)
	if len(parts) != 3 || parts[0] != "flux" {
		return "", nil, fmt.Errorf("%w: %q", ErrInvalidURN, u)
	}
	kind := Kind(parts[1])
	if !kind.valid() {
		return "", nil, fmt.Errorf("%w: unknown type %q", ErrInvalidURN, kind)
	}
	if !segmentRe.MatchString(parts[2]) {
		return "", nil, fmt.Errorf("%w: malformed id %q", ErrInvalidURN, parts[2])
	}
	return kind, strings.Split(parts[2], ":"), nil
}

// Validate reports whether u is a well-formed URN of the given kind.
func Validate(kind Kind, u URN) bool {
	got, _, err := Parse(u)
	return err == nil && got == kind
}

// IsWellFormed reports whether u is a well-formed URN of any recognized kind.
func IsWellFormed(u URN) bool {
	_, _, err := Parse(u)
	return err == nil
}
