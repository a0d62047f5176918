package vm

// execLUI executes LUI rd, imm: writes the U-type immediate into rd.
func (e *Engine) execLUI(u UType) (bool, error) {
	if err := e.Regs.Set(u.RD, u.Imm); err != nil {
		return false, err
	}
	e.PC += InstructionSize
	return true, nil
}

// execAUIPC executes AUIPC rd, imm: writes PC + imm (wrapping) into
// rd.
func (e *Engine) execAUIPC(u UType) (bool, error) {
	result := int32(e.PC) + u.Imm
	if err := e.Regs.Set(u.RD, result); err != nil {
		return false, err
	}
	e.PC += InstructionSize
	return true, nil
}
