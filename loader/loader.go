// Package loader places raw code and RAM images into a vm.Engine,
// with no assembler, symbol table, or directive processing involved:
// the sandbox only ever consumes flat binaries (spec.md §6).
package loader

import (
	"fmt"
	"os"

	"github.com/rv32sandbox/emu/vm"
)

// LoadFile reads a flat code binary from path and constructs a
// FlatMemory with a RAM region of ramSize zeroed bytes.
func LoadFile(path string, ramSize uint) (*vm.FlatMemory, error) {
	code, err := os.ReadFile(path) // #nosec G304 -- caller-controlled program path
	if err != nil {
		return nil, fmt.Errorf("failed to read program file: %w", err)
	}
	return Load(code, ramSize), nil
}

// Load constructs a FlatMemory over the given code image and a RAM
// region of ramSize zeroed bytes.
func Load(code []byte, ramSize uint) *vm.FlatMemory {
	return vm.NewFlatMemory(code, make([]byte, ramSize))
}

// NewEngine builds a ready-to-run engine: memory loaded from a flat
// code image, PC at the start of the code region, configured per cfg.
func NewEngine(code []byte, ramSize uint, cfg vm.Config) (*vm.Engine, error) {
	mem := Load(code, ramSize)
	engine, err := vm.NewEngine(mem, cfg)
	if err != nil {
		return nil, err
	}
	return engine, nil
}
