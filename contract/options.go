// SPDX-License-Identifier: MIT

package contract

import (
	"log/slog"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicModeInvalid = "contract: WithMode: mode must be ModeIgnore, ModeLog or ModePanic"
)

// ---------- Public option type (functional) ----------

// Option mutates the pending configuration. Safe to apply repeatedly.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options is the configuration resolved by Configure.
type Options struct {
	mode      Mode
	logger    *slog.Logger
	setLogger bool
}

// WithMode selects the reporting mode.
// Implementation:
//   - Stage 1: validate m is a declared Mode.
//   - Stage 2: return a setter that records m.
//
// Errors:
//   - Panics with a stable message when m is unknown.
func WithMode(m Mode) Option {
	if !m.Valid() {
		panic(panicModeInvalid)
	}

	return func(o *Options) { o.mode = m }
}

// WithLogger routes ModeLog warnings to l. A nil logger restores silence.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.logger = l
		o.setLogger = true
	}
}

// Configure applies opts on top of the current settings and installs the
// result. Options not mentioned keep their current value.
func Configure(opts ...Option) {
	o := Options{mode: CurrentMode()}
	for _, opt := range opts {
		opt(&o)
	}

	currentMode.Store(int32(o.mode))
	if o.setLogger {
		SetLogger(o.logger)
	}
}
