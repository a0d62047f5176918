package vm

import "testing"

func TestExecJALR_ClearsLowBit(t *testing.T) {
	e := &Engine{PC: 0x200}
	if err := e.Regs.Set(RegT0, 0x100); err != nil {
		t.Fatalf("Set: unexpected error: %v", err)
	}

	if _, err := e.execJALR(IType{RD: RegRA, RS1: RegT0, Imm: 0x7}); err != nil {
		t.Fatalf("execJALR: unexpected error: %v", err)
	}

	if e.PC != 0x106 {
		t.Errorf("PC = 0x%X, want 0x106 (low bit cleared)", e.PC)
	}
	ra, _ := e.Regs.Get(RegRA)
	if ra != 0x204 {
		t.Errorf("ra = 0x%X, want original PC + 4 = 0x204", uint32(ra))
	}
}

func TestExecJAL_SkipsReturnWriteForX0(t *testing.T) {
	e := &Engine{PC: 0x100}
	if _, err := e.execJAL(JType{RD: RegZero, Imm: 0x20}); err != nil {
		t.Fatalf("execJAL: unexpected error: %v", err)
	}
	if e.PC != 0x120 {
		t.Errorf("PC = 0x%X, want 0x120", e.PC)
	}
	zero, _ := e.Regs.Get(RegZero)
	if zero != 0 {
		t.Errorf("x0 = %d, want 0 (write skipped)", zero)
	}
}
