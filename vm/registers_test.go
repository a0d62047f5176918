package vm

import "testing"

func TestRegisters_ZeroIsWiredLow(t *testing.T) {
	var r Registers
	if err := r.Set(RegZero, 42); err != nil {
		t.Fatalf("Set(x0) returned error: %v", err)
	}
	got, err := r.Get(RegZero)
	if err != nil {
		t.Fatalf("Get(x0) returned error: %v", err)
	}
	if got != 0 {
		t.Errorf("x0 = %d, want 0 after attempted write", got)
	}
}

func TestRegisters_SetGetRoundTrip(t *testing.T) {
	var r Registers
	if err := r.Set(RegA0, -7); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	got, err := r.Get(RegA0)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got != -7 {
		t.Errorf("a0 = %d, want -7", got)
	}
}

func TestRegisters_OutOfRange(t *testing.T) {
	var r Registers
	if _, err := r.Get(32); err == nil {
		t.Error("Get(32) expected error, got nil")
	}
	if _, err := r.Get(-1); err == nil {
		t.Error("Get(-1) expected error, got nil")
	}
	if err := r.Set(32, 1); err == nil {
		t.Error("Set(32, 1) expected error, got nil")
	}
}

func TestRegisters_Reset(t *testing.T) {
	var r Registers
	_ = r.Set(RegT0, 99)
	r.Reset()
	got, _ := r.Get(RegT0)
	if got != 0 {
		t.Errorf("t0 after Reset = %d, want 0", got)
	}
}
