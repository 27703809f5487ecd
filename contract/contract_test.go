// SPDX-License-Identifier: MIT

package contract_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/katalvlaran/qmath/contract"
	"github.com/stretchr/testify/require"
)

var errBroken = errors.New("test: broken precondition")

// useMode installs m for the duration of the test.
func useMode(t *testing.T, m contract.Mode) {
	t.Helper()
	prev := contract.SetMode(m)
	t.Cleanup(func() {
		contract.SetMode(prev)
		contract.SetLogger(nil)
	})
}

// TestCheckPassesThrough verifies that satisfied preconditions never report.
func TestCheckPassesThrough(t *testing.T) {
	useMode(t, contract.ModePanic)

	require.NotPanics(t, func() {
		require.True(t, contract.Check("op", true, errBroken)) // ok=true is a no-op
	})
}

// TestCheckIgnore proceeds silently.
func TestCheckIgnore(t *testing.T) {
	useMode(t, contract.ModeIgnore)

	var buf bytes.Buffer
	contract.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	require.False(t, contract.Check("op", false, errBroken)) // reports the failure to the caller
	require.Empty(t, buf.String())                           // but logs nothing
}

// TestCheckLog emits one warning and proceeds.
func TestCheckLog(t *testing.T) {
	useMode(t, contract.ModeLog)

	var buf bytes.Buffer
	contract.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	require.False(t, contract.Check("Matrix3x3.Invert", false, errBroken))
	out := buf.String()
	require.Contains(t, out, "level=WARN")
	require.Contains(t, out, `msg="contract violation"`)
	require.Contains(t, out, "op=Matrix3x3.Invert")
	require.Contains(t, out, "broken precondition")
}

// TestCheckPanic raises a *ContractError that unwraps to the sentinel.
func TestCheckPanic(t *testing.T) {
	useMode(t, contract.ModePanic)

	defer func() {
		r := recover()
		require.NotNil(t, r)

		err, ok := r.(error)
		require.True(t, ok)                // panic value is an error
		require.ErrorIs(t, err, errBroken) // wrapping the sentinel

		var ce *contract.ContractError
		require.ErrorAs(t, err, &ce)
		require.Equal(t, "Scale3x3.Invert", ce.Op)
		require.Equal(t, "contract violation: Scale3x3.Invert: test: broken precondition", ce.Error())
	}()

	contract.Check("Scale3x3.Invert", false, errBroken)
	t.Fatal("Check did not panic")
}

// TestRecover turns a contract panic back into an error.
func TestRecover(t *testing.T) {
	useMode(t, contract.ModePanic)

	run := func() (err error) {
		defer contract.Recover(&err)
		contract.Check("op", false, errBroken)
		return nil
	}

	require.ErrorIs(t, run(), errBroken)

	other := func() (err error) {
		defer contract.Recover(&err)
		panic("unrelated")
	}
	require.PanicsWithValue(t, "unrelated", func() { _ = other() })
}

// TestConfigure applies options and keeps unspecified settings.
func TestConfigure(t *testing.T) {
	useMode(t, contract.ModeIgnore)

	var buf bytes.Buffer
	contract.Configure(
		contract.WithMode(contract.ModeLog),
		contract.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))),
	)
	require.Equal(t, contract.ModeLog, contract.CurrentMode())

	contract.Configure() // no options: nothing changes
	require.Equal(t, contract.ModeLog, contract.CurrentMode())

	contract.Check("op", false, errBroken)
	require.NotEmpty(t, buf.String())

	contract.Configure(contract.WithLogger(nil)) // silence again
	buf.Reset()
	contract.Check("op", false, errBroken)
	require.Empty(t, buf.String())
}

// TestInvalidMode panics on programmer error.
func TestInvalidMode(t *testing.T) {
	require.Panics(t, func() { contract.WithMode(contract.Mode(7)) })
	require.Panics(t, func() { contract.SetMode(contract.Mode(-1)) })
}

// TestModeString covers the textual names.
func TestModeString(t *testing.T) {
	require.Equal(t, "ignore", contract.ModeIgnore.String())
	require.Equal(t, "log", contract.ModeLog.String())
	require.Equal(t, "panic", contract.ModePanic.String())
	require.Equal(t, "Mode(9)", contract.Mode(9).String())
	require.True(t, contract.DefaultMode().Valid())
}
