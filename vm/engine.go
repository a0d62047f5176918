package vm

// SyscallFunc is the host-supplied callback invoked on ecall. number
// is read from A7, args from A0-A5. A successful call writes 0 to A0
// and its return value to A1; a failed call writes 1 to A0 and its
// error code to A1 (see Engine.execSystem). The
// callback may read or mutate memory through the passed view.
type SyscallFunc func(number int32, args [SyscallArgCount]int32, mem Memory) (int32, error)

// Config is the value-typed bundle of recognized embedding options.
type Config struct {
	// Syscall is invoked on ecall; if nil, ecall traps with
	// NoSyscallFunction.
	Syscall SyscallFunc
	// InstructionLimit caps the number of steps a single Run call will
	// take before returning RunYielded (with a nil error). Zero means
	// unlimited.
	InstructionLimit uint64
}

// RunResult is the outcome of a Run call.
type RunResult int

const (
	// RunHalted means the engine executed ebreak and stopped cleanly.
	RunHalted RunResult = iota
	// RunYielded means the configured instruction limit was reached;
	// the engine is resumable by calling Run again.
	RunYielded
)

// Engine is the RV32I[M] virtual CPU: register file, program counter,
// memory view, and configuration. It is strictly single-threaded;
// multiple Engines may run concurrently provided each owns a disjoint
// Memory.
type Engine struct {
	Regs   Registers
	PC     uint32
	Memory Memory
	Config Config

	// StepsTaken counts instructions executed since the engine was
	// constructed or last Reset, for diagnostics and instruction-limit
	// accounting across repeated Run calls.
	StepsTaken uint64
}

// NewEngine constructs an engine with zeroed registers and PC at
// address 0. The host may overwrite PC before calling Run, e.g. to
// start execution from RAM.
func NewEngine(mem Memory, cfg Config) (*Engine, error) {
	if mem == nil {
		return nil, trap(InvalidMemory, "memory must not be nil")
	}
	return &Engine{Memory: mem, Config: cfg}, nil
}

// Reset zeroes registers and resets PC to 0. Memory is not touched.
func (e *Engine) Reset() {
	e.Regs.Reset()
	e.PC = 0
	e.StepsTaken = 0
}

// fetch reads the 4-byte instruction word at PC.
func (e *Engine) fetch() (uint32, error) {
	word, err := readWord(e.Memory, e.PC)
	if err != nil {
		return 0, err
	}
	return word, nil
}

// Step executes exactly one instruction. It returns (true, nil) to
// keep running, (false, nil) on a clean halt (ebreak), or a non-nil
// *TrapError on a fault. Step never advances past ebreak and never
// loops internally.
func (e *Engine) Step() (bool, error) {
	word, err := e.fetch()
	if err != nil {
		return false, err
	}

	cont, err := e.dispatch(word)
	if err != nil {
		return false, err
	}
	e.StepsTaken++
	return cont, nil
}

// Run repeatedly steps until the engine halts (ebreak), a step budget
// is exhausted, or a step returns an error. If InstructionLimit is
// configured, Run performs at most that many steps before returning
// RunYielded; the engine's PC is left at the next instruction to
// execute, so a later Run call resumes exactly where this one left
// off.
func (e *Engine) Run() (RunResult, error) {
	var taken uint64
	for {
		if e.Config.InstructionLimit > 0 && taken >= e.Config.InstructionLimit {
			return RunYielded, nil
		}

		cont, err := e.Step()
		if err != nil {
			return RunHalted, err
		}
		taken++
		if !cont {
			return RunHalted, nil
		}
	}
}
