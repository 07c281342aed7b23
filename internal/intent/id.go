package intent

import (
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
)

const base62Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// defaultIDLen is the default BASE62 intent id length (spec §3:
// "typically 24 chars"); overridable via fluxconfig.IntentConfig.IDLength.
const defaultIDLen = 24

// NewID returns a fresh BASE62 intent id of defaultIDLen characters,
// sourced from a UUIDv4's random bits.
func NewID() string {
	return NewIDWithLength(defaultIDLen)
}

// NewIDWithLength is NewID with a caller-chosen length, so
// fluxconfig.IntentConfig.IDLength can tune it without changing NewID's
// default.
func NewIDWithLength(n int) string {
	raw := uuid.New()
	num := new(big.Int).SetBytes(raw[:])

	var sb strings.Builder
	base := big.NewInt(62)
	mod := new(big.Int)
	for num.Sign() > 0 {
		num.DivMod(num, base, mod)
		sb.WriteByte(base62Alphabet[mod.Int64()])
	}
	encoded := reverse(sb.String())
	if len(encoded) >= n {
		return encoded[:n]
	}
	return strings.Repeat("0", n-len(encoded)) + encoded
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// NowMillis returns the current monotonic-adjacent wall clock time as
// Unix milliseconds, the default Timestamp source for Factory.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
