package vm

import "testing"

func TestFlatMemory_BoundaryLoad(t *testing.T) {
	ram := make([]byte, 16)
	mem := NewFlatMemory(nil, ram)

	// Load at RAM_base + RAM_len - 4 succeeds (word read, last 4 bytes).
	if _, err := mem.Load32(RAMOffset + 12); err != nil {
		t.Errorf("Load32 at last word: unexpected error: %v", err)
	}

	// Load at RAM_base + RAM_len - 3 straddles the boundary and traps.
	if _, err := mem.Load32(RAMOffset + 13); err == nil {
		t.Error("Load32 one byte past the last whole word: expected error, got nil")
	}
}

func TestFlatMemory_CodeRegionReadOnly(t *testing.T) {
	code := []byte{1, 2, 3, 4}
	mem := NewFlatMemory(code, nil)

	if err := mem.Store8(0, [1]byte{0xFF}); err == nil {
		t.Error("Store8 into code region: expected error, got nil")
	}
	b, err := mem.Load8(0)
	if err != nil {
		t.Fatalf("Load8 from code region: unexpected error: %v", err)
	}
	if b[0] != 1 {
		t.Errorf("code byte 0 = %d, want 1 (unchanged)", b[0])
	}
}

func TestFlatMemory_StoreLoadRoundTrip(t *testing.T) {
	ram := make([]byte, 16)
	mem := NewFlatMemory(nil, ram)

	if err := writeWord(mem, RAMOffset, 0xDEADBEEF); err != nil {
		t.Fatalf("writeWord: unexpected error: %v", err)
	}
	got, err := readWord(mem, RAMOffset)
	if err != nil {
		t.Fatalf("readWord: unexpected error: %v", err)
	}
	if got != 0xDEADBEEF {
		t.Errorf("round-tripped word = 0x%X, want 0xDEADBEEF", got)
	}
}

func TestFlatMemory_UnmappedAddress(t *testing.T) {
	mem := NewFlatMemory([]byte{1, 2, 3, 4}, make([]byte, 4))
	if _, err := mem.Load8(0x1000); err == nil {
		t.Error("Load8 at unmapped address: expected error, got nil")
	}
}
