package handler

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain guards the package's lazily-cached registry state: nothing in
// this package starts a background goroutine, but the cache's sync.Once
// makes it the one package in this module where stray goroutine leakage
// from a misbehaving test would be easy to miss without an explicit
// check (SPEC_FULL.md §3.4).
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
