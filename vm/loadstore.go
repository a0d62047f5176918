package vm

// execLoad executes an I-type load: LB, LH, LW, LBU, LHU. The address
// is rs1 + imm (wrapping signed add, interpreted as an unsigned 32-bit
// address for the memory interface).
func (e *Engine) execLoad(i IType) (bool, error) {
	base, err := e.Regs.Get(i.RS1)
	if err != nil {
		return false, err
	}
	addr := uint32(base + i.Imm)

	var result int32
	switch i.Funct3 {
	case Funct3LB:
		b, err := readByte(e.Memory, addr)
		if err != nil {
			return false, err
		}
		result = int32(int8(b))
	case Funct3LBU:
		b, err := readByte(e.Memory, addr)
		if err != nil {
			return false, err
		}
		result = int32(b)
	case Funct3LH:
		h, err := readHalf(e.Memory, addr)
		if err != nil {
			return false, err
		}
		result = int32(int16(h))
	case Funct3LHU:
		h, err := readHalf(e.Memory, addr)
		if err != nil {
			return false, err
		}
		result = int32(h)
	case Funct3LW:
		w, err := readWord(e.Memory, addr)
		if err != nil {
			return false, err
		}
		result = int32(w)
	default:
		return false, trap(InvalidInstruction, "unknown load funct3 0x%X", i.Funct3)
	}

	if err := e.Regs.Set(i.RD, result); err != nil {
		return false, err
	}
	e.PC += InstructionSize
	return true, nil
}

// execStore executes an S-type store: SB, SH, SW. The address is
// rs1 + imm; the low N bytes of rs2 are stored.
func (e *Engine) execStore(s SType) (bool, error) {
	base, err := e.Regs.Get(s.RS1)
	if err != nil {
		return false, err
	}
	addr := uint32(base + s.Imm)

	value, err := e.Regs.Get(s.RS2)
	if err != nil {
		return false, err
	}

	switch s.Funct3 {
	case Funct3SB:
		err = writeByteAt(e.Memory, addr, byte(value))
	case Funct3SH:
		err = writeHalf(e.Memory, addr, uint16(value))
	case Funct3SW:
		err = writeWord(e.Memory, addr, uint32(value))
	default:
		return false, trap(InvalidInstruction, "unknown store funct3 0x%X", s.Funct3)
	}
	if err != nil {
		return false, err
	}

	e.PC += InstructionSize
	return true, nil
}
