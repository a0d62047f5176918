package vm

// RV32I[M] opcodes (bits [6:0] of the instruction word). Each selects
// one instruction format; funct3/funct7 disambiguate within it.
const (
	OpLoad    = 0x03 // I-type: LB, LH, LW, LBU, LHU
	OpMiscMem = 0x0F // FENCE (treated as a no-op here; no multi-hart ordering to enforce)
	OpOpImm   = 0x13 // I-type: ADDI, SLTI, SLTIU, XORI, ORI, ANDI, SLLI, SRLI, SRAI
	OpAUIPC   = 0x17 // U-type
	OpStore   = 0x23 // S-type: SB, SH, SW
	OpOp      = 0x33 // R-type: ADD/SUB, SLL, SLT, SLTU, XOR, SRL/SRA, OR, AND, and RV32M
	OpLUI     = 0x37 // U-type
	OpBranch  = 0x63 // B-type: BEQ, BNE, BLT, BGE, BLTU, BGEU
	OpJALR    = 0x67 // I-type
	OpJAL     = 0x6F // J-type
	OpSystem  = 0x73 // I-type: ECALL, EBREAK
)

// funct3 values for OpOpImm / OpOp (shared between immediate and
// register-register ALU forms).
const (
	Funct3ADD   = 0x0 // ADD/ADDI, SUB (funct7 distinguishes)
	Funct3SLL   = 0x1
	Funct3SLT   = 0x2
	Funct3SLTU  = 0x3
	Funct3XOR   = 0x4
	Funct3SR    = 0x5 // SRL/SRLI, SRA/SRAI (funct7/imm top bits distinguish)
	Funct3OR    = 0x6
	Funct3AND   = 0x7
)

// funct3 values for OpLoad / OpStore.
const (
	Funct3LB  = 0x0
	Funct3LH  = 0x1
	Funct3LW  = 0x2
	Funct3LBU = 0x4
	Funct3LHU = 0x5

	Funct3SB = 0x0
	Funct3SH = 0x1
	Funct3SW = 0x2
)

// funct3 values for OpBranch.
const (
	Funct3BEQ  = 0x0
	Funct3BNE  = 0x1
	Funct3BLT  = 0x4
	Funct3BGE  = 0x5
	Funct3BLTU = 0x6
	Funct3BGEU = 0x7
)

// funct7 values distinguishing ADD/SUB and SRL/SRA, and selecting the
// RV32M extension within OpOp.
const (
	Funct7Base = 0x00
	Funct7Alt  = 0x20 // SUB, SRA
	Funct7MExt = 0x01 // MUL, MULH, MULHSU, MULHU, DIV, DIVU, REM, REMU
)

// funct3 values for the RV32M extension (OpOp, Funct7MExt).
const (
	Funct3MUL    = 0x0
	Funct3MULH   = 0x1
	Funct3MULHSU = 0x2
	Funct3MULHU  = 0x3
	Funct3DIV    = 0x4
	Funct3DIVU   = 0x5
	Funct3REM    = 0x6
	Funct3REMU   = 0x7
)

// OpSystem immediates: ECALL has imm==0, EBREAK has imm==1.
const (
	ImmECALL  = 0x000
	ImmEBREAK = 0x001
)

// SignBit32 is the mask for bit 31 of a 32-bit word.
const SignBit32 = uint32(1) << 31
