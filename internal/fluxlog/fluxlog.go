// Package fluxlog provides categorized, config-gated logging for the
// intent pipeline, grounded on the teacher's internal/logging package and
// its cmd/nerd/main.go zap wiring: a small set of named categories, one
// *zap.Logger built per process according to debug mode, and a no-op
// logger returned for any category the config disables.
package fluxlog

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category names the pipeline stage a log line belongs to.
type Category string

const (
	Tokenize Category = "tokenize"
	Resolve  Category = "resolve"
	Dispatch Category = "dispatch"
	Reduce   Category = "reduce"
	Sanitize Category = "sanitize"
)

var allCategories = []Category{Tokenize, Resolve, Dispatch, Reduce, Sanitize}

// Categories returns every category fluxlog knows about, in declaration
// order.
func Categories() []Category {
	return append([]Category(nil), allCategories...)
}

// Options configures the process-wide logger (spec-adjacent to
// fluxconfig.Config.Logging; kept decoupled so fluxlog has no import on
// fluxconfig).
type Options struct {
	DebugMode  bool
	Categories map[string]bool // nil/missing entries default to enabled
}

var (
	mu         sync.RWMutex
	base       *zap.Logger
	opts       Options
	configured bool
)

// Configure builds the process-wide zap logger from o. Safe to call
// more than once (e.g. after a config reload); the most recent call
// wins. Until Configure is called every category counts as enabled, but
// For returns a no-op logger, so nothing is written.
func Configure(o Options) error {
	level := zapcore.InfoLevel
	if o.DebugMode {
		level = zapcore.DebugLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)

	l, err := cfg.Build()
	if err != nil {
		return err
	}

	mu.Lock()
	if base != nil {
		_ = base.Sync()
	}
	base = l
	opts = o
	configured = true
	mu.Unlock()
	return nil
}

func enabled(c Category) bool {
	mu.RLock()
	defer mu.RUnlock()
	if !configured {
		return true
	}
	if opts.Categories == nil {
		return true
	}
	v, ok := opts.Categories[string(c)]
	return !ok || v
}

// For returns a logger scoped to category c, with a "category" field
// attached. Returns a no-op logger if c is disabled in the active
// config, so call sites never need their own enablement checks.
func For(c Category) *zap.SugaredLogger {
	if !enabled(c) {
		return zap.NewNop().Sugar()
	}
	mu.RLock()
	l := base
	mu.RUnlock()
	if l == nil {
		l = zap.NewNop()
	}
	return l.With(zap.String("category", string(c))).Sugar()
}

// Sync flushes any buffered log entries; call at process shutdown.
func Sync() {
	mu.RLock()
	l := base
	mu.RUnlock()
	if l != nil {
		_ = l.Sync()
	}
}
