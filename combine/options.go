// SPDX-License-Identifier: MIT

// Package combine: functional configuration for the combine engine.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic output: options change scheduling only, never the Grid or Table.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package combine

import (
	"runtime"

	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers selects runtime.GOMAXPROCS(0) workers when left at 0.
	DefaultWorkers = 0

	// DefaultMinBandRows is the smallest band handed to one worker. Small grids
	// therefore run on fewer goroutines than DefaultWorkers would allow.
	DefaultMinBandRows = 64
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid  = "combine: WithWorkers: n must be >= 0"
	panicBandRowsInvalid = "combine: WithMinBandRows: n must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly; last wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	workers     int         // 0 ⇒ GOMAXPROCS
	minBandRows int         // >= 1
	log         *zap.Logger // nil ⇒ package Logger()
}

// WithWorkers bounds the number of goroutines encoding bands.
// n == 0 selects runtime.GOMAXPROCS(0); n == 1 yields a single band encoded
// by one scalar loop on the calling goroutine. Panics when n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithMinBandRows sets the minimum number of rows per band. Panics when n < 1.
func WithMinBandRows(n int) Option {
	if n < 1 {
		panic(panicBandRowsInvalid)
	}

	return func(o *Options) { o.minBandRows = n }
}

// WithLogger routes this call's diagnostics to l instead of the package logger.
// A nil l keeps the package logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.log = l }
}

// gatherOptions applies opts over the defaults and resolves the automatic values.
func gatherOptions(opts ...Option) Options {
	o := Options{
		workers:     DefaultWorkers,
		minBandRows: DefaultMinBandRows,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers == 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	if o.log == nil {
		o.log = Logger()
	}

	return o
}

// Workers reports the resolved worker count.
func (o Options) Workers() int { return o.workers }

// MinBandRows reports the resolved minimum band height.
func (o Options) MinBandRows() int { return o.minBandRows }

// ResolveOptions returns the effective configuration for opts.
// Useful for logging what a call will do before running it.
func ResolveOptions(opts ...Option) Options { return gatherOptions(opts...) }
