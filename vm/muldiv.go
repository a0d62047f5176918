package vm

import "math"

// execMulDiv executes the RV32M extension instructions: MUL, MULH,
// MULHSU, MULHU, DIV, DIVU, REM, REMU.
func (e *Engine) execMulDiv(r RType) (bool, error) {
	a, err := e.Regs.Get(r.RS1)
	if err != nil {
		return false, err
	}
	b, err := e.Regs.Get(r.RS2)
	if err != nil {
		return false, err
	}

	var result int32
	switch r.Funct3 {
	case Funct3MUL:
		result = a * b
	case Funct3MULH:
		result = int32(mulHigh64(int64(a), int64(b)))
	case Funct3MULHSU:
		result = int32(mulHighSU64(int64(a), uint64(uint32(b))))
	case Funct3MULHU:
		result = int32(uint32(mulHighU64(uint64(uint32(a)), uint64(uint32(b)))))
	case Funct3DIV:
		result = divSigned(a, b)
	case Funct3DIVU:
		result = int32(divUnsigned(uint32(a), uint32(b)))
	case Funct3REM:
		result = remSigned(a, b)
	case Funct3REMU:
		result = int32(remUnsigned(uint32(a), uint32(b)))
	default:
		return false, trap(InvalidInstruction, "unknown RV32M funct3 0x%X", r.Funct3)
	}

	if err := e.Regs.Set(r.RD, result); err != nil {
		return false, err
	}
	e.PC += InstructionSize
	return true, nil
}

func mulHigh64(a, b int64) int64 {
	return (a * b) >> 32
}

func mulHighU64(a, b uint64) uint64 {
	return (a * b) >> 32
}

func mulHighSU64(a int64, b uint64) int64 {
	return (a * int64(b)) >> 32
}

// divSigned implements RV32M's two signed-division special cases:
// divide-by-zero yields -1, and INT_MIN / -1 yields INT_MIN (instead
// of trapping on overflow, as two's-complement division would).
func divSigned(a, b int32) int32 {
	if b == 0 {
		return -1
	}
	if a == math.MinInt32 && b == -1 {
		return a
	}
	return a / b
}

// remSigned mirrors divSigned's special cases: divide-by-zero yields
// the dividend, and INT_MIN % -1 yields 0.
func remSigned(a, b int32) int32 {
	if b == 0 {
		return a
	}
	if a == math.MinInt32 && b == -1 {
		return 0
	}
	return a % b
}

// divUnsigned: divide-by-zero yields all-ones (0xFFFFFFFF).
func divUnsigned(a, b uint32) uint32 {
	if b == 0 {
		return 0xFFFFFFFF
	}
	return a / b
}

// remUnsigned: divide-by-zero yields the dividend.
func remUnsigned(a, b uint32) uint32 {
	if b == 0 {
		return a
	}
	return a % b
}
