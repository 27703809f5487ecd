// SPDX-License-Identifier: MIT

package contract

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// Mode selects how contract violations are reported.
type Mode int32

const (
	// ModeIgnore proceeds silently with whatever the arithmetic produces.
	ModeIgnore Mode = iota
	// ModeLog logs a warning and proceeds.
	ModeLog
	// ModePanic panics with a *ContractError.
	ModePanic
)

// String returns the lower-case mode name.
func (m Mode) String() string {
	switch m {
	case ModeIgnore:
		return "ignore"
	case ModeLog:
		return "log"
	case ModePanic:
		return "panic"
	default:
		return fmt.Sprintf("Mode(%d)", int32(m))
	}
}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool {
	return m >= ModeIgnore && m <= ModePanic
}

var currentMode atomic.Int32

func init() {
	currentMode.Store(int32(defaultMode))
}

// CurrentMode returns the active mode.
func CurrentMode() Mode {
	return Mode(currentMode.Load())
}

// SetMode installs m and returns the previous mode.
// It panics if m is not a declared mode.
func SetMode(m Mode) Mode {
	if !m.Valid() {
		panic(panicModeInvalid)
	}

	return Mode(currentMode.Swap(int32(m)))
}

// DefaultMode is the mode chosen at build time (see qmath_debug).
func DefaultMode() Mode { return defaultMode }

// ContractError is the panic value raised in ModePanic.
type ContractError struct {
	Op  string // operation that detected the violation, e.g. "Matrix3x3.Invert"
	Err error  // sentinel describing the violation
}

// Error implements error.
func (e *ContractError) Error() string {
	return "contract violation: " + e.Op + ": " + e.Err.Error()
}

// Unwrap exposes the sentinel to errors.Is.
func (e *ContractError) Unwrap() error { return e.Err }

// Check reports a violation of the precondition named by op when ok is false.
// It returns ok so callers can branch on it when they want to.
//
// Behavior per mode:
//   - ModeIgnore: no effect.
//   - ModeLog: Logger().Warn("contract violation", "op", op, "err", err).
//   - ModePanic: panic(&ContractError{Op: op, Err: err}).
func Check(op string, ok bool, err error) bool {
	if ok {
		return true
	}

	switch CurrentMode() {
	case ModeLog:
		Logger().Warn("contract violation", "op", op, "err", err)
	case ModePanic:
		panic(&ContractError{Op: op, Err: err})
	}

	return false
}

// Recover converts a *ContractError panic back into an error. Use it as
//
//	defer contract.Recover(&err)
//
// when calling fast-path code under ModePanic. Other panics are re-raised.
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}

	var ce *ContractError
	if e, ok := r.(error); ok && errors.As(e, &ce) {
		*errp = ce
		return
	}

	panic(r)
}
