// Package sanitize cleans human-supplied free-form strings (shell names,
// party labels) to a restricted character set before they're persisted
// or rendered (spec §4.8).
package sanitize

import (
	"errors"
	"fmt"
	"strings"

	"github.com/industry-digital/flux-game-sub002/internal/fluxlog"
)

// MaxLength is the longest string Clean will accept after cleaning.
const MaxLength = 50

var (
	// ErrNotAString is returned by CleanAny when its argument is not a Go
	// string (for callers that bridge from a dynamically typed source).
	// Clean never returns it; Clean("") fails with ErrEmpty.
	ErrNotAString = errors.New("sanitize: not a string")

	// ErrEmpty is returned when the cleaned result has no characters left.
	ErrEmpty = errors.New("sanitize: empty")

	// ErrTooLong is returned when the cleaned result exceeds MaxLength.
	ErrTooLong = errors.New("sanitize: too long")
)

// isKept reports whether r belongs to spec §4.8's retained alphabet:
// ASCII letters, digits, space, or the Latin-1 Supplement's extended
// letters (code points 192-255, minus × and ÷, the two symbols in that
// range).
func isKept(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ':
		return true
	case r >= 192 && r <= 255:
		return r != 215 && r != 247 // × and ÷ are symbols, not letters
	default:
		return false
	}
}

// Clean filters s down to spec §4.8's retained alphabet, collapses runs
// of internal spaces to one, and trims leading/trailing space. It fails
// with ErrEmpty or ErrTooLong if the result is unusable.
func Clean(s string) (string, error) {
	var b strings.Builder
	lastWasSpace := false
	for _, r := range s {
		if !isKept(r) {
			continue
		}
		if r == ' ' {
			if lastWasSpace || b.Len() == 0 {
				continue
			}
			lastWasSpace = true
			b.WriteRune(r)
			continue
		}
		lastWasSpace = false
		b.WriteRune(r)
	}

	out := strings.TrimRight(b.String(), " ")
	if out == "" {
		fluxlog.For(fluxlog.Sanitize).Debugw("cleaned to empty", "input", s)
		return "", ErrEmpty
	}
	if len(out) > MaxLength {
		fluxlog.For(fluxlog.Sanitize).Debugw("cleaned result too long", "length", len(out))
		return "", fmt.Errorf("%w: %d > %d", ErrTooLong, len(out), MaxLength)
	}
	return out, nil
}

// CleanAny is Clean for callers bridging from a dynamically typed host
// value (e.g. a JSON-decoded field) rather than a Go string directly.
func CleanAny(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", ErrNotAString
	}
	return Clean(s)
}
