// Package contract implements the ContractViolation taxonomy shared by the torus and lwe packages.
//
// The arithmetic kernels have no error channel: matching dimensions, well-formed keys and
// correctly sized buffers are preconditions owned by the caller. When checks are enabled,
// a violated precondition panics with a *Violation instead of silently producing garbage.
// Checks are enabled by default in builds tagged tlwe_debug; test suites switch them on
// by setting [Enabled]. Release builds skip them.
package contract

import (
	"errors"
	"fmt"
)

// ErrContractViolation is the sentinel matched by every *Violation through [errors.Is].
var ErrContractViolation = errors.New("contract violation")

// Enabled reports whether precondition checks are active.
// It must only be changed before any check runs, typically from the init function of a test file.
var Enabled = debugBuild

// Violation describes a violated precondition.
type Violation struct {
	Op     string
	Reason string
}

// Error implements the error interface.
func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrContractViolation, v.Op, v.Reason)
}

// Is allows errors.Is(err, ErrContractViolation).
func (v *Violation) Is(target error) bool {
	return target == ErrContractViolation
}

// Assert panics with a *Violation for op if checks are enabled and cond is false.
func Assert(cond bool, op, reason string) {
	if Enabled && !cond {
		panic(&Violation{Op: op, Reason: reason})
	}
}

// Assertf is [Assert] with a formatted reason. The reason is only formatted on failure.
func Assertf(cond bool, op, format string, args ...interface{}) {
	if Enabled && !cond {
		panic(&Violation{Op: op, Reason: fmt.Sprintf(format, args...)})
	}
}

// Recover converts a recovered *Violation into an error and re-panics anything else.
// It is meant to be deferred by callers that prefer an error over a panic:
//
//	defer contract.Recover(&err)
func Recover(err *error) {
	if r := recover(); r != nil {
		v, ok := r.(*Violation)
		if !ok {
			panic(r)
		}
		*err = v
	}
}
