package vm

import "testing"

func TestExecAUIPC_PositiveImmediate(t *testing.T) {
	e := &Engine{PC: 1}
	if _, err := e.execAUIPC(UType{RD: 1, Imm: 0x1000}); err != nil {
		t.Fatalf("execAUIPC: unexpected error: %v", err)
	}
	got, _ := e.Regs.Get(1)
	if got != 0x1001 {
		t.Errorf("rd = 0x%X, want 0x1001", got)
	}
	if e.PC != 5 {
		t.Errorf("PC = %d, want 5", e.PC)
	}
}

func TestExecAUIPC_NegativeImmediate(t *testing.T) {
	e := &Engine{PC: 1}
	if _, err := e.execAUIPC(UType{RD: 1, Imm: -0x1000}); err != nil {
		t.Fatalf("execAUIPC: unexpected error: %v", err)
	}
	got, _ := e.Regs.Get(1)
	if got != -0xFFF {
		t.Errorf("rd = %d, want %d", got, -0xFFF)
	}
	if e.PC != 5 {
		t.Errorf("PC = %d, want 5", e.PC)
	}
}

func TestExecAUIPC_ZeroImmediateIsCurrentPC(t *testing.T) {
	e := &Engine{PC: 0x1000}
	if _, err := e.execAUIPC(UType{RD: 2, Imm: 0}); err != nil {
		t.Fatalf("execAUIPC: unexpected error: %v", err)
	}
	got, _ := e.Regs.Get(2)
	if got != 0x1000 {
		t.Errorf("rd = 0x%X, want current PC 0x1000", got)
	}
}

func TestExecLUI(t *testing.T) {
	e := &Engine{}
	if _, err := e.execLUI(UType{RD: 3, Imm: int32(0x12345000)}); err != nil {
		t.Fatalf("execLUI: unexpected error: %v", err)
	}
	got, _ := e.Regs.Get(3)
	if got != int32(0x12345000) {
		t.Errorf("rd = 0x%X, want 0x12345000", uint32(got))
	}
}
