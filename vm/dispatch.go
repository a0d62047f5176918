package vm

// dispatch decodes word's opcode and routes to the matching decoder
// and executor. It is the single fetch-decode-execute junction point:
// every opcode handled here, anything else traps InvalidInstruction.
func (e *Engine) dispatch(word uint32) (bool, error) {
	switch opcode(word) {
	case OpOpImm:
		return e.execOpImm(DecodeI(word))
	case OpOp:
		r := DecodeR(word)
		if r.Funct7 == Funct7MExt {
			return e.execMulDiv(r)
		}
		return e.execOp(r)
	case OpLUI:
		return e.execLUI(DecodeU(word))
	case OpAUIPC:
		return e.execAUIPC(DecodeU(word))
	case OpBranch:
		return e.execBranch(DecodeB(word))
	case OpJAL:
		return e.execJAL(DecodeJ(word))
	case OpJALR:
		return e.execJALR(DecodeI(word))
	case OpLoad:
		return e.execLoad(DecodeI(word))
	case OpStore:
		return e.execStore(DecodeS(word))
	case OpSystem:
		return e.execSystem(DecodeI(word))
	case OpMiscMem:
		// FENCE: no-op in a single-hart, single-memory-view engine.
		e.PC += InstructionSize
		return true, nil
	default:
		return false, trap(InvalidInstruction, "unknown opcode 0x%X", opcode(word))
	}
}
