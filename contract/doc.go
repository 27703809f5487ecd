// SPDX-License-Identifier: MIT

// Package contract decides what happens when a caller breaks a qmath
// precondition: inverting a singular matrix, dividing by zero, normalising a
// zero axis, inverting a zero scale.
//
// The fast paths in matrix and transform never return errors. Instead they
// call Check once at the API boundary, and the process-wide Mode picks the
// outcome:
//
//   - ModeIgnore: proceed; the result may hold ±Inf or NaN.
//   - ModeLog: emit a slog warning through the configured logger, then proceed.
//   - ModePanic: panic with a *ContractError wrapping the sentinel.
//
// The default is ModeIgnore. Building with -tags qmath_debug makes ModePanic
// the default. Code that cannot guarantee its inputs should call the Try…
// variants, which return the sentinel error and never consult the mode.
//
// Configuration:
//
//	contract.Configure(
//		contract.WithMode(contract.ModeLog),
//		contract.WithLogger(slog.Default()),
//	)
//
// Mode and logger are stored atomically and may be changed while other
// goroutines compute.
package contract
