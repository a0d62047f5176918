package vm

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed enumeration of fault kinds the engine can
// raise. Every fallible engine operation returns one of these (wrapped
// in a *TrapError), never a panic.
type ErrorKind int

const (
	// InvalidInstruction indicates the opcode/funct fields do not
	// match any defined instruction.
	InvalidInstruction ErrorKind = iota
	// InvalidRegister indicates a register index >= 32.
	InvalidRegister
	// InvalidMemory indicates an address out of range, a region
	// straddle, or a store into the code region.
	InvalidMemory
	// NoSyscallFunction indicates ecall executed with no host
	// callback configured.
	NoSyscallFunction
	// InstructionLimitReached indicates the step budget was
	// exhausted; this is informational, not fatal, and the engine
	// remains resumable.
	InstructionLimitReached
)

// String names the error kind.
func (k ErrorKind) String() string {
	switch k {
	case InvalidInstruction:
		return "InvalidInstruction"
	case InvalidRegister:
		return "InvalidRegister"
	case InvalidMemory:
		return "InvalidMemory"
	case NoSyscallFunction:
		return "NoSyscallFunction"
	case InstructionLimitReached:
		return "InstructionLimitReached"
	default:
		return "Unknown"
	}
}

// TrapError is the error type every fallible vm operation returns.
// It carries the closed Kind plus a human-readable message and,
// optionally, a wrapped cause.
type TrapError struct {
	Kind    ErrorKind
	Msg     string
	Wrapped error
}

// Error implements the error interface.
func (e *TrapError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Wrapped)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Unwrap supports errors.Is/errors.As against the wrapped cause.
func (e *TrapError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is the sentinel for this error's Kind,
// so callers can write errors.Is(err, vm.ErrNoSyscallFunction) instead
// of type-asserting and comparing Kind by hand.
func (e *TrapError) Is(target error) bool {
	sentinel, ok := kindSentinels[e.Kind]
	return ok && target == sentinel
}

// Sentinel errors, one per Kind, for errors.Is comparisons that don't
// need the full TrapError (e.g. a host checking "did ecall trap
// because no syscall function was configured").
var (
	ErrInvalidInstruction      = errors.New("invalid instruction")
	ErrInvalidRegister         = errors.New("invalid register")
	ErrInvalidMemory           = errors.New("invalid memory access")
	ErrNoSyscallFunction       = errors.New("no syscall function registered")
	ErrInstructionLimitReached = errors.New("instruction limit reached")
)

var kindSentinels = map[ErrorKind]error{
	InvalidInstruction:      ErrInvalidInstruction,
	InvalidRegister:         ErrInvalidRegister,
	InvalidMemory:           ErrInvalidMemory,
	NoSyscallFunction:       ErrNoSyscallFunction,
	InstructionLimitReached: ErrInstructionLimitReached,
}

func trap(kind ErrorKind, format string, args ...any) *TrapError {
	return &TrapError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
