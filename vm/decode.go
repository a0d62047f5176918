package vm

// Decoded instruction formats. Each is a transient value extracted
// from a 32-bit instruction word: constructed at decode time, consumed
// by the matching executor, never stored.

// RType holds the fields of an R-type (register, register, register)
// instruction: no immediate.
type RType struct {
	Opcode uint32
	RD     int
	Funct3 uint32
	RS1    int
	RS2    int
	Funct7 uint32
}

// IType holds the fields of an I-type instruction: a sign-extended
// 12-bit immediate.
type IType struct {
	Opcode uint32
	RD     int
	Funct3 uint32
	RS1    int
	Imm    int32
}

// SType holds the fields of an S-type (store) instruction.
type SType struct {
	Opcode uint32
	Funct3 uint32
	RS1    int
	RS2    int
	Imm    int32
}

// BType holds the fields of a B-type (branch) instruction. Imm is
// always a multiple of two.
type BType struct {
	Opcode uint32
	Funct3 uint32
	RS1    int
	RS2    int
	Imm    int32
}

// UType holds the fields of a U-type (upper immediate) instruction.
type UType struct {
	Opcode uint32
	RD     int
	Imm    int32
}

// JType holds the fields of a J-type (jump) instruction. Imm is always
// a multiple of two.
type JType struct {
	Opcode uint32
	RD     int
	Imm    int32
}

func opcode(word uint32) uint32 { return word & 0x7F }
func funct3(word uint32) uint32 { return (word >> 12) & 0x7 }
func funct7(word uint32) uint32 { return (word >> 25) & 0x7F }
func rd(word uint32) int        { return int((word >> 7) & 0x1F) }
func rs1(word uint32) int       { return int((word >> 15) & 0x1F) }
func rs2(word uint32) int       { return int((word >> 20) & 0x1F) }

// signExtend sign-extends the low `bits` bits of value to a full
// 32-bit signed integer, using an arithmetic shift.
func signExtend(value uint32, bits uint) int32 {
	shift := 32 - bits
	return int32(value<<shift) >> shift
}

// DecodeR decodes word as an R-type instruction.
func DecodeR(word uint32) RType {
	return RType{
		Opcode: opcode(word),
		RD:     rd(word),
		Funct3: funct3(word),
		RS1:    rs1(word),
		RS2:    rs2(word),
		Funct7: funct7(word),
	}
}

// DecodeI decodes word as an I-type instruction. imm[11:0] = bits
// [31:20], sign-extended.
func DecodeI(word uint32) IType {
	imm := word >> 20
	return IType{
		Opcode: opcode(word),
		RD:     rd(word),
		Funct3: funct3(word),
		RS1:    rs1(word),
		Imm:    signExtend(imm, 12),
	}
}

// DecodeS decodes word as an S-type instruction. imm = {imm[11:5],
// imm[4:0]} = {bits[31:25], bits[11:7]}, sign-extended.
func DecodeS(word uint32) SType {
	imm := (((word >> 25) & 0x7F) << 5) | ((word >> 7) & 0x1F)
	return SType{
		Opcode: opcode(word),
		Funct3: funct3(word),
		RS1:    rs1(word),
		RS2:    rs2(word),
		Imm:    signExtend(imm, 12),
	}
}

// DecodeB decodes word as a B-type instruction. imm = {bit31, bit7,
// bits[30:25], bits[11:8], 0}, sign-extended; bit 0 is always zero.
func DecodeB(word uint32) BType {
	bit12 := (word >> 31) & 0x1
	bit11 := (word >> 7) & 0x1
	bits10_5 := (word >> 25) & 0x3F
	bits4_1 := (word >> 8) & 0xF

	imm := (bit12 << 12) | (bit11 << 11) | (bits10_5 << 5) | (bits4_1 << 1)
	return BType{
		Opcode: opcode(word),
		Funct3: funct3(word),
		RS1:    rs1(word),
		RS2:    rs2(word),
		Imm:    signExtend(imm, 13),
	}
}

// DecodeU decodes word as a U-type instruction. imm = bits[31:12]
// shifted left 12, i.e. word & 0xFFFFF000 interpreted as signed.
func DecodeU(word uint32) UType {
	return UType{
		Opcode: opcode(word),
		RD:     rd(word),
		Imm:    int32(word & 0xFFFFF000),
	}
}

// DecodeJ decodes word as a J-type instruction. imm = {bit31,
// bits[19:12], bit20, bits[30:21], 0}, sign-extended; bit 0 is always
// zero.
func DecodeJ(word uint32) JType {
	bit20 := (word >> 31) & 0x1
	bits19_12 := (word >> 12) & 0xFF
	bit11 := (word >> 20) & 0x1
	bits10_1 := (word >> 21) & 0x3FF

	imm := (bit20 << 20) | (bits19_12 << 12) | (bit11 << 11) | (bits10_1 << 1)
	return JType{
		Opcode: opcode(word),
		RD:     rd(word),
		Imm:    signExtend(imm, 21),
	}
}
