package vm

import "testing"

func TestShiftAmount_MasksToLow5Bits(t *testing.T) {
	tests := []struct {
		v    int32
		want uint32
	}{
		{32, 0},
		{33, 1},
		{5, 5},
		{-1, 31}, // low 5 bits of all-ones
	}
	for _, tt := range tests {
		got := shiftAmount(tt.v)
		if got != tt.want {
			t.Errorf("shiftAmount(%d) = %d, want %d", tt.v, got, tt.want)
		}
	}
}

func TestExecOpImm_ShiftBy32MasksToZero(t *testing.T) {
	e := &Engine{}
	if err := e.Regs.Set(RegT0, 1); err != nil {
		t.Fatalf("Set: unexpected error: %v", err)
	}
	// SLLI with a raw immediate of 32: only the low 5 bits (0) apply.
	if _, err := e.execOpImm(IType{RD: RegT1, Funct3: Funct3SLL, RS1: RegT0, Imm: 32}); err != nil {
		t.Fatalf("execOpImm: unexpected error: %v", err)
	}
	got, _ := e.Regs.Get(RegT1)
	if got != 1 {
		t.Errorf("t1 = %d, want 1 (shift by 32 masked to shift by 0)", got)
	}
}

func TestExecOpImm_AddiZeroMatchesAddX0(t *testing.T) {
	eImm := &Engine{}
	_ = eImm.Regs.Set(RegT0, 77)
	if _, err := eImm.execOpImm(IType{RD: RegA0, Funct3: Funct3ADD, RS1: RegT0, Imm: 0}); err != nil {
		t.Fatalf("execOpImm: unexpected error: %v", err)
	}
	gotImm, _ := eImm.Regs.Get(RegA0)

	eReg := &Engine{}
	_ = eReg.Regs.Set(RegT0, 77)
	if _, err := eReg.execOp(RType{RD: RegA0, Funct3: Funct3ADD, Funct7: Funct7Base, RS1: RegT0, RS2: RegZero}); err != nil {
		t.Fatalf("execOp: unexpected error: %v", err)
	}
	gotReg, _ := eReg.Regs.Get(RegA0)

	if gotImm != gotReg {
		t.Errorf("ADDI rd,rs,0 = %d, ADD rd,rs,x0 = %d; want equal", gotImm, gotReg)
	}
}

func TestExecOp_AddSubDisambiguatedByFunct7(t *testing.T) {
	e := &Engine{}
	_ = e.Regs.Set(RegT0, 10)
	_ = e.Regs.Set(RegT1, 3)

	if _, err := e.execOp(RType{RD: RegA0, Funct3: Funct3ADD, Funct7: Funct7Base, RS1: RegT0, RS2: RegT1}); err != nil {
		t.Fatalf("execOp ADD: unexpected error: %v", err)
	}
	add, _ := e.Regs.Get(RegA0)
	if add != 13 {
		t.Errorf("ADD = %d, want 13", add)
	}

	if _, err := e.execOp(RType{RD: RegA1, Funct3: Funct3ADD, Funct7: Funct7Alt, RS1: RegT0, RS2: RegT1}); err != nil {
		t.Fatalf("execOp SUB: unexpected error: %v", err)
	}
	sub, _ := e.Regs.Get(RegA1)
	if sub != 7 {
		t.Errorf("SUB = %d, want 7", sub)
	}
}

func TestExecBranch_NegativeOffsetLoop(t *testing.T) {
	e := &Engine{PC: 100}
	cont, err := e.execBranch(BType{Funct3: Funct3BEQ, RS1: RegZero, RS2: RegZero, Imm: -4})
	if err != nil {
		t.Fatalf("execBranch: unexpected error: %v", err)
	}
	if !cont {
		t.Error("execBranch returned cont=false, want true")
	}
	if e.PC != 96 {
		t.Errorf("PC = %d, want 96", e.PC)
	}
}
