package vm

// execSystem executes ECALL and EBREAK. Any other immediate under
// OpSystem is not a defined instruction.
//
// ECALL: if a syscall function is configured, reads the syscall number
// from A7 and the arguments from A0-A5, invokes the host, and writes
// the result back following the host's Result<i32, i32> convention:
// success stores (0, value) in (A0, A1); failure stores (1, err) in
// (A0, A1). Execution continues. With no syscall function configured,
// ecall traps with NoSyscallFunction.
//
// EBREAK: halts by returning the continuation flag false, without
// advancing PC.
func (e *Engine) execSystem(i IType) (bool, error) {
	switch i.Imm {
	case ImmEBREAK:
		return false, nil
	case ImmECALL:
		return e.execEcall()
	default:
		return false, trap(InvalidInstruction, "unknown SYSTEM immediate 0x%X", i.Imm)
	}
}

func (e *Engine) execEcall() (bool, error) {
	if e.Config.Syscall == nil {
		return false, &TrapError{Kind: NoSyscallFunction, Msg: "ecall executed with no syscall function configured"}
	}

	number, err := e.Regs.Get(RegA7)
	if err != nil {
		return false, err
	}

	var args [SyscallArgCount]int32
	for i := 0; i < SyscallArgCount; i++ {
		v, err := e.Regs.Get(RegA0 + i)
		if err != nil {
			return false, err
		}
		args[i] = v
	}

	// A0 carries the Result discriminant (0 = Ok, non-zero = Err); A1
	// carries the payload (the return value on success, the error
	// code on failure). This is the reference guest toolchain's
	// Result<i32, i32> ABI, preserved byte-for-byte (see DESIGN.md).
	value, callErr := e.Config.Syscall(number, args, e.Memory)
	if callErr != nil {
		if err := e.Regs.Set(RegA0, 1); err != nil {
			return false, err
		}
		if err := e.Regs.Set(RegA1, errCode(callErr)); err != nil {
			return false, err
		}
	} else {
		if err := e.Regs.Set(RegA0, 0); err != nil {
			return false, err
		}
		if err := e.Regs.Set(RegA1, value); err != nil {
			return false, err
		}
	}

	e.PC += InstructionSize
	return true, nil
}

// SyscallError lets a host syscall function return a specific i32
// error code for the guest to observe in A1, instead of an opaque
// marker.
type SyscallError int32

func (e SyscallError) Error() string {
	return "syscall error"
}

// errCode extracts the i32 error code a syscall function returned, or
// 0 if it wasn't a SyscallError.
func errCode(err error) int32 {
	if se, ok := err.(SyscallError); ok {
		return int32(se)
	}
	return 0
}
