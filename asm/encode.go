package asm

import (
	"fmt"
	"strings"

	"github.com/rv32sandbox/emu/vm"
)

// encodeLine encodes a single instruction line at address addr.
func encodeLine(text string, addr uint32, labels map[string]uint32) (uint32, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty instruction")
	}
	mnemonic := strings.ToLower(fields[0])
	ops := fields[1:]

	switch mnemonic {
	case "addi", "slti", "sltiu", "xori", "ori", "andi", "slli", "srli", "srai":
		return encodeOpImm(mnemonic, ops)
	case "add", "sub", "sll", "slt", "sltu", "xor", "srl", "sra", "or", "and":
		return encodeOp(mnemonic, ops)
	case "mul", "mulh", "mulhsu", "mulhu", "div", "divu", "rem", "remu":
		return encodeMulDiv(mnemonic, ops)
	case "lb", "lh", "lw", "lbu", "lhu":
		return encodeLoad(mnemonic, ops)
	case "sb", "sh", "sw":
		return encodeStore(mnemonic, ops)
	case "lui":
		return encodeU(vm.OpLUI, ops)
	case "auipc":
		return encodeU(vm.OpAUIPC, ops)
	case "beq", "bne", "blt", "bge", "bltu", "bgeu":
		return encodeBranch(mnemonic, addr, ops, labels)
	case "jal":
		return encodeJAL(addr, ops, labels)
	case "jalr":
		return encodeJALR(ops)
	case "ecall":
		return encodeSystem(vm.ImmECALL)
	case "ebreak":
		return encodeSystem(vm.ImmEBREAK)
	case "nop":
		return encodeOpImm("addi", []string{"zero,", "zero,", "0"})
	case "li":
		return encodeLI(ops)
	case "mv":
		return encodeOpImm("addi", []string{ops[0], ops[1] + ",", "0"})
	case "j":
		return encodeJAL(addr, append([]string{"zero,"}, ops...), labels)
	case "ret":
		return encodeJALR([]string{"zero,", "ra,", "0"})
	default:
		return 0, fmt.Errorf("unknown mnemonic %q", mnemonic)
	}
}

func encodeRType(opcode, rd, funct3, rs1, rs2, funct7 uint32) uint32 {
	return funct7<<25 | rs2<<20 | rs1<<15 | funct3<<12 | rd<<7 | opcode
}

func encodeIType(opcode, rd, funct3, rs1 uint32, imm int32) uint32 {
	return (uint32(imm)&0xFFF)<<20 | rs1<<15 | funct3<<12 | rd<<7 | opcode
}

func encodeSType(opcode, funct3, rs1, rs2 uint32, imm int32) uint32 {
	u := uint32(imm)
	return ((u>>5)&0x7F)<<25 | rs2<<20 | rs1<<15 | funct3<<12 | (u&0x1F)<<7 | opcode
}

func encodeUType(opcode, rd uint32, imm int32) uint32 {
	return uint32(imm)&0xFFFFF000 | rd<<7 | opcode
}

func encodeBType(funct3, rs1, rs2 uint32, imm int32) uint32 {
	u := uint32(imm)
	bit12 := (u >> 12) & 0x1
	bit11 := (u >> 11) & 0x1
	bits10_5 := (u >> 5) & 0x3F
	bits4_1 := (u >> 1) & 0xF
	return bit12<<31 | bits10_5<<25 | rs2<<20 | rs1<<15 | funct3<<12 | bits4_1<<8 | bit11<<7 | vm.OpBranch
}

func encodeJType(rd uint32, imm int32) uint32 {
	u := uint32(imm)
	bit20 := (u >> 20) & 0x1
	bits10_1 := (u >> 1) & 0x3FF
	bit11 := (u >> 11) & 0x1
	bits19_12 := (u >> 12) & 0xFF
	return bit20<<31 | bits10_1<<21 | bit11<<20 | bits19_12<<12 | rd<<7 | vm.OpJAL
}

var opImmFunct3 = map[string]uint32{
	"addi": vm.Funct3ADD, "slti": vm.Funct3SLT, "sltiu": vm.Funct3SLTU,
	"xori": vm.Funct3XOR, "ori": vm.Funct3OR, "andi": vm.Funct3AND,
	"slli": vm.Funct3SLL, "srli": vm.Funct3SR, "srai": vm.Funct3SR,
}

func encodeOpImm(mnemonic string, ops []string) (uint32, error) {
	if len(ops) != 3 {
		return 0, fmt.Errorf("%s requires 3 operands", mnemonic)
	}
	rd, err := parseRegister(ops[0])
	if err != nil {
		return 0, err
	}
	rs1, err := parseRegister(ops[1])
	if err != nil {
		return 0, err
	}
	imm, err := resolveImmediate(ops[2], 0, nil, false)
	if err != nil {
		return 0, err
	}
	if mnemonic == "srai" {
		imm |= 0x400
	}
	return encodeIType(vm.OpOpImm, rd, opImmFunct3[mnemonic], rs1, imm), nil
}

var opFunct3 = map[string]uint32{
	"add": vm.Funct3ADD, "sub": vm.Funct3ADD, "sll": vm.Funct3SLL, "slt": vm.Funct3SLT,
	"sltu": vm.Funct3SLTU, "xor": vm.Funct3XOR, "srl": vm.Funct3SR, "sra": vm.Funct3SR,
	"or": vm.Funct3OR, "and": vm.Funct3AND,
}

func encodeOp(mnemonic string, ops []string) (uint32, error) {
	if len(ops) != 3 {
		return 0, fmt.Errorf("%s requires 3 operands", mnemonic)
	}
	rd, err := parseRegister(ops[0])
	if err != nil {
		return 0, err
	}
	rs1, err := parseRegister(ops[1])
	if err != nil {
		return 0, err
	}
	rs2, err := parseRegister(ops[2])
	if err != nil {
		return 0, err
	}
	funct7 := vm.Funct7Base
	if mnemonic == "sub" || mnemonic == "sra" {
		funct7 = vm.Funct7Alt
	}
	return encodeRType(vm.OpOp, rd, opFunct3[mnemonic], rs1, rs2, uint32(funct7)), nil
}

var mulDivFunct3 = map[string]uint32{
	"mul": vm.Funct3MUL, "mulh": vm.Funct3MULH, "mulhsu": vm.Funct3MULHSU, "mulhu": vm.Funct3MULHU,
	"div": vm.Funct3DIV, "divu": vm.Funct3DIVU, "rem": vm.Funct3REM, "remu": vm.Funct3REMU,
}

func encodeMulDiv(mnemonic string, ops []string) (uint32, error) {
	if len(ops) != 3 {
		return 0, fmt.Errorf("%s requires 3 operands", mnemonic)
	}
	rd, err := parseRegister(ops[0])
	if err != nil {
		return 0, err
	}
	rs1, err := parseRegister(ops[1])
	if err != nil {
		return 0, err
	}
	rs2, err := parseRegister(ops[2])
	if err != nil {
		return 0, err
	}
	return encodeRType(vm.OpOp, rd, mulDivFunct3[mnemonic], rs1, rs2, uint32(vm.Funct7MExt)), nil
}

var loadFunct3 = map[string]uint32{
	"lb": vm.Funct3LB, "lh": vm.Funct3LH, "lw": vm.Funct3LW, "lbu": vm.Funct3LBU, "lhu": vm.Funct3LHU,
}

func encodeLoad(mnemonic string, ops []string) (uint32, error) {
	if len(ops) != 2 {
		return 0, fmt.Errorf("%s requires 2 operands", mnemonic)
	}
	rd, err := parseRegister(ops[0])
	if err != nil {
		return 0, err
	}
	immTok, regTok, err := splitOffsetForm(ops[1])
	if err != nil {
		return 0, err
	}
	rs1, err := parseRegister(regTok)
	if err != nil {
		return 0, err
	}
	imm, err := resolveImmediate(immTok, 0, nil, false)
	if err != nil {
		return 0, err
	}
	return encodeIType(vm.OpLoad, rd, loadFunct3[mnemonic], rs1, imm), nil
}

var storeFunct3 = map[string]uint32{
	"sb": vm.Funct3SB, "sh": vm.Funct3SH, "sw": vm.Funct3SW,
}

func encodeStore(mnemonic string, ops []string) (uint32, error) {
	if len(ops) != 2 {
		return 0, fmt.Errorf("%s requires 2 operands", mnemonic)
	}
	rs2, err := parseRegister(ops[0])
	if err != nil {
		return 0, err
	}
	immTok, regTok, err := splitOffsetForm(ops[1])
	if err != nil {
		return 0, err
	}
	rs1, err := parseRegister(regTok)
	if err != nil {
		return 0, err
	}
	imm, err := resolveImmediate(immTok, 0, nil, false)
	if err != nil {
		return 0, err
	}
	return encodeSType(vm.OpStore, storeFunct3[mnemonic], rs1, rs2, imm), nil
}

func encodeU(opcode uint32, ops []string) (uint32, error) {
	if len(ops) != 2 {
		return 0, fmt.Errorf("expected 2 operands for U-type instruction")
	}
	rd, err := parseRegister(ops[0])
	if err != nil {
		return 0, err
	}
	imm, err := resolveImmediate(ops[1], 0, nil, false)
	if err != nil {
		return 0, err
	}
	return encodeUType(opcode, rd, imm), nil
}

var branchFunct3 = map[string]uint32{
	"beq": vm.Funct3BEQ, "bne": vm.Funct3BNE, "blt": vm.Funct3BLT,
	"bge": vm.Funct3BGE, "bltu": vm.Funct3BLTU, "bgeu": vm.Funct3BGEU,
}

func encodeBranch(mnemonic string, addr uint32, ops []string, labels map[string]uint32) (uint32, error) {
	if len(ops) != 3 {
		return 0, fmt.Errorf("%s requires 3 operands", mnemonic)
	}
	rs1, err := parseRegister(ops[0])
	if err != nil {
		return 0, err
	}
	rs2, err := parseRegister(ops[1])
	if err != nil {
		return 0, err
	}
	imm, err := resolveImmediate(ops[2], addr, labels, true)
	if err != nil {
		return 0, err
	}
	return encodeBType(branchFunct3[mnemonic], rs1, rs2, imm), nil
}

func encodeJAL(addr uint32, ops []string, labels map[string]uint32) (uint32, error) {
	if len(ops) != 2 {
		return 0, fmt.Errorf("jal requires 2 operands")
	}
	rd, err := parseRegister(ops[0])
	if err != nil {
		return 0, err
	}
	imm, err := resolveImmediate(ops[1], addr, labels, true)
	if err != nil {
		return 0, err
	}
	return encodeJType(rd, imm), nil
}

func encodeJALR(ops []string) (uint32, error) {
	if len(ops) != 3 {
		return 0, fmt.Errorf("jalr requires 3 operands")
	}
	rd, err := parseRegister(ops[0])
	if err != nil {
		return 0, err
	}
	rs1, err := parseRegister(ops[1])
	if err != nil {
		return 0, err
	}
	imm, err := resolveImmediate(ops[2], 0, nil, false)
	if err != nil {
		return 0, err
	}
	return encodeIType(vm.OpJALR, rd, 0, rs1, imm), nil
}

func encodeSystem(imm uint32) (uint32, error) {
	return encodeIType(vm.OpSystem, 0, 0, 0, int32(imm)), nil
}

func encodeLI(ops []string) (uint32, error) {
	if len(ops) != 2 {
		return 0, fmt.Errorf("li requires 2 operands")
	}
	return encodeOpImm("addi", []string{ops[0], "zero,", ops[1]})
}
