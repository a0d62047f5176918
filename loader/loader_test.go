package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rv32sandbox/emu/vm"
)

func TestLoad_PlacesCodeAndZeroedRAM(t *testing.T) {
	code := []byte{0x13, 0x05, 0x0A, 0x00}
	mem := Load(code, 16)

	b, err := mem.Load8(0)
	if err != nil {
		t.Fatalf("Load8(0): unexpected error: %v", err)
	}
	if b[0] != 0x13 {
		t.Errorf("code byte 0 = 0x%X, want 0x13", b[0])
	}

	b, err = mem.Load8(vm.RAMOffset)
	if err != nil {
		t.Fatalf("Load8(RAMOffset): unexpected error: %v", err)
	}
	if b[0] != 0 {
		t.Errorf("RAM byte 0 = 0x%X, want 0", b[0])
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "program.bin")
	code := []byte{0x73, 0x00, 0x10, 0x00} // ebreak
	if err := os.WriteFile(path, code, 0644); err != nil {
		t.Fatalf("WriteFile: unexpected error: %v", err)
	}

	mem, err := LoadFile(path, 0)
	if err != nil {
		t.Fatalf("LoadFile: unexpected error: %v", err)
	}
	b, err := mem.Load8(0)
	if err != nil {
		t.Fatalf("Load8(0): unexpected error: %v", err)
	}
	if b[0] != 0x73 {
		t.Errorf("code byte 0 = 0x%X, want 0x73", b[0])
	}
}

func TestNewEngine_RunsLoadedCode(t *testing.T) {
	code := []byte{
		0x13, 0x05, 0xA0, 0x00, // addi a0, x0, 10
		0x73, 0x00, 0x10, 0x00, // ebreak
	}
	engine, err := NewEngine(code, 0, vm.Config{})
	if err != nil {
		t.Fatalf("NewEngine: unexpected error: %v", err)
	}

	result, err := engine.Run()
	if err != nil {
		t.Fatalf("Run: unexpected error: %v", err)
	}
	if result != vm.RunHalted {
		t.Errorf("result = %v, want RunHalted", result)
	}
	a0, _ := engine.Regs.Get(vm.RegA0)
	if a0 != 10 {
		t.Errorf("a0 = %d, want 10", a0)
	}
}
