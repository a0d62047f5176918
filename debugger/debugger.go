// Package debugger is a terminal single-step inspector for a
// vm.Engine: register/memory/PC view driven by tcell/tview, with
// step, continue, and quit key bindings.
package debugger

import (
	"fmt"
	"strings"

	"github.com/rv32sandbox/emu/vm"
)

// Debugger wraps an Engine with the state the TUI needs on top of it:
// a command/output log and the memory-view scroll position.
type Debugger struct {
	Engine        *vm.Engine
	MemoryAddress uint32
	History       *History
	output        strings.Builder
	halted        bool
	lastErr       error
}

// NewDebugger wraps engine for inspection starting at its current PC.
func NewDebugger(engine *vm.Engine) *Debugger {
	return &Debugger{
		Engine:        engine,
		MemoryAddress: engine.PC,
		History:       NewHistory(1000),
	}
}

// Step executes exactly one instruction and records the outcome.
func (d *Debugger) Step() {
	if d.halted {
		d.writeOutput("engine has already halted\n")
		return
	}
	cont, err := d.Engine.Step()
	d.History.Record(d.Engine.PC)
	if err != nil {
		d.halted = true
		d.lastErr = err
		d.writeOutput(fmt.Sprintf("trap: %v\n", err))
		return
	}
	if !cont {
		d.halted = true
		d.writeOutput("halted (ebreak)\n")
	}
}

// Continue runs until halt, trap, or the engine's configured
// instruction limit yields.
func (d *Debugger) Continue() {
	if d.halted {
		d.writeOutput("engine has already halted\n")
		return
	}
	result, err := d.Engine.Run()
	if err != nil {
		d.halted = true
		d.lastErr = err
		d.writeOutput(fmt.Sprintf("trap: %v\n", err))
		return
	}
	switch result {
	case vm.RunHalted:
		d.halted = true
		d.writeOutput("halted (ebreak)\n")
	case vm.RunYielded:
		d.writeOutput(fmt.Sprintf("yielded at step %d (instruction limit reached)\n", d.Engine.StepsTaken))
	}
}

// Halted reports whether the wrapped engine has stopped running.
func (d *Debugger) Halted() bool {
	return d.halted
}

func (d *Debugger) writeOutput(s string) {
	d.output.WriteString(s)
}

// GetOutput returns and clears accumulated output text.
func (d *Debugger) GetOutput() string {
	s := d.output.String()
	d.output.Reset()
	return s
}

// RegisterLines formats all 32 registers, four per row, ABI-named.
func (d *Debugger) RegisterLines() []string {
	var lines []string
	for row := 0; row < 8; row++ {
		var cols []string
		for col := 0; col < 4; col++ {
			i := row*4 + col
			v, _ := d.Engine.Regs.Get(i)
			cols = append(cols, fmt.Sprintf("%-4s=0x%08X", vm.RegisterName(i), uint32(v)))
		}
		lines = append(lines, strings.Join(cols, "  "))
	}
	lines = append(lines, fmt.Sprintf("PC  =0x%08X  steps=%d", d.Engine.PC, d.Engine.StepsTaken))
	return lines
}

// MemoryLines formats bytesPerLine*rows bytes of memory starting at
// d.MemoryAddress, 16 bytes per row.
func (d *Debugger) MemoryLines(rows int) []string {
	const bytesPerLine = 16
	var lines []string
	addr := d.MemoryAddress
	for r := 0; r < rows; r++ {
		var hex []string
		for i := uint32(0); i < bytesPerLine; i++ {
			b, err := d.Engine.Memory.Load8(addr + i)
			if err != nil {
				hex = append(hex, "--")
				continue
			}
			hex = append(hex, fmt.Sprintf("%02X", b[0]))
		}
		lines = append(lines, fmt.Sprintf("0x%08X: %s", addr, strings.Join(hex, " ")))
		addr += bytesPerLine
	}
	return lines
}
