package vm

// execBranch executes a B-type branch: compares rs1 and rs2 per the
// funct3 selector, then sets PC <- PC + imm if taken or PC <- PC + 4
// otherwise. Both additions wrap.
func (e *Engine) execBranch(b BType) (bool, error) {
	a, err := e.Regs.Get(b.RS1)
	if err != nil {
		return false, err
	}
	c, err := e.Regs.Get(b.RS2)
	if err != nil {
		return false, err
	}

	var taken bool
	switch b.Funct3 {
	case Funct3BEQ:
		taken = a == c
	case Funct3BNE:
		taken = a != c
	case Funct3BLT:
		taken = a < c
	case Funct3BGE:
		taken = a >= c
	case Funct3BLTU:
		taken = uint32(a) < uint32(c)
	case Funct3BGEU:
		taken = uint32(a) >= uint32(c)
	default:
		return false, trap(InvalidInstruction, "unknown branch funct3 0x%X", b.Funct3)
	}

	if taken {
		e.PC = uint32(int32(e.PC) + b.Imm)
	} else {
		e.PC += InstructionSize
	}
	return true, nil
}
