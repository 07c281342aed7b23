package intent

import "strings"

// rawToken is a single lexed token before the verb/option/arg split.
// original preserves source case; quoted records whether the token came
// from a quoted span (which exempts it from lowercasing; the
// single-character filter applies to it like any other token).
type rawToken struct {
	normalized string
	original   string
	quoted     bool
}

func isDelimiter(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isQuote(r rune) bool {
	return r == '"' || r == '\''
}

// tokenize performs the quote-aware single pass lex described in
// spec §4.2: whitespace outside quotes delimits tokens, quotes (both
// ' and ") open/close a span during which whitespace is not a
// delimiter, and each emitted token carries whether it was quoted so
// that the caller can decide between its normalized and original-case
// form.
func tokenize(text string) []rawToken {
	var tokens []rawToken
	var current, originalCurrent strings.Builder
	inQuotes := false
	var quoteChar rune
	tokenWasQuoted := false

	normalized := strings.ToLower(text)
	normRunes := []rune(normalized)
	origRunes := []rune(text)
	// normalized and original share length because ToLower over the
	// byte-for-byte ASCII/Latin-1 surface this core accepts never
	// changes rune count.
	n := len(normRunes)
	if len(origRunes) < n {
		n = len(origRunes)
	}

	flush := func() {
		if current.Len() == 0 {
			return
		}
		tok := rawToken{
			normalized: current.String(),
			original:   originalCurrent.String(),
			quoted:     tokenWasQuoted,
		}
		tokens = append(tokens, tok)
		current.Reset()
		originalCurrent.Reset()
		tokenWasQuoted = false
	}

	for i := 0; i < n; i++ {
		nr := normRunes[i]
		or := origRunes[i]

		if inQuotes {
			if nr == quoteChar {
				inQuotes = false
				continue
			}
			current.WriteRune(nr)
			originalCurrent.WriteRune(or)
			continue
		}

		if isQuote(nr) {
			inQuotes = true
			quoteChar = nr
			tokenWasQuoted = true
			continue
		}

		if isDelimiter(nr) {
			flush()
			continue
		}

		current.WriteRune(nr)
		originalCurrent.WriteRune(or)
	}
	flush()

	return tokens
}

// keep applies the token filter from spec §4.2/§6/§8: drop empty tokens,
// drop single-byte tokens unless that byte is an ASCII digit.
func keep(t rawToken) bool {
	if len(t.normalized) == 0 {
		return false
	}
	if len(t.normalized) == 1 {
		c := t.normalized[0]
		return c >= '0' && c <= '9'
	}
	return true
}

// emitted returns the text this token contributes downstream: its
// original case if it was quoted, otherwise its normalized (lowercased)
// form.
func (t rawToken) emitted() string {
	if t.quoted {
		return t.original
	}
	return t.normalized
}
