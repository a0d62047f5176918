package vm

// execJAL executes JAL rd, imm: writes PC + 4 into rd (skipped if
// rd == 0) and sets PC <- PC + imm.
func (e *Engine) execJAL(j JType) (bool, error) {
	returnAddr := int32(e.PC + InstructionSize)
	if err := e.Regs.Set(j.RD, returnAddr); err != nil {
		return false, err
	}
	e.PC = uint32(int32(e.PC) + j.Imm)
	return true, nil
}

// execJALR executes JALR rd, rs1, imm: writes PC + 4 into rd (skipped
// if rd == 0) and sets PC <- (rs1 + imm) with the low bit cleared.
func (e *Engine) execJALR(i IType) (bool, error) {
	rs1, err := e.Regs.Get(i.RS1)
	if err != nil {
		return false, err
	}

	target := uint32(rs1+i.Imm) &^ 1
	returnAddr := int32(e.PC + InstructionSize)
	if err := e.Regs.Set(i.RD, returnAddr); err != nil {
		return false, err
	}
	e.PC = target
	return true, nil
}
