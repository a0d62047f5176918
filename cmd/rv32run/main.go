// Command rv32run loads a flat RV32I[M] binary and runs it to
// completion, or drops into a step debugger with -debug.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/rv32sandbox/emu/config"
	"github.com/rv32sandbox/emu/debugger"
	"github.com/rv32sandbox/emu/loader"
	"github.com/rv32sandbox/emu/vm"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		configPath  = flag.String("config", "", "Path to config file (default: XDG config dir)")
		ramSize     = flag.Uint("ram-size", 0, "RAM size in bytes (0 = use config default)")
		entryPoint  = flag.String("entry", "", "Entry point address, hex or decimal (empty = use config default)")
		maxSteps    = flag.Uint64("max-steps", 0, "Instruction limit before yielding (0 = use config default)")
		traceFlag   = flag.Bool("trace", false, "Enable execution trace")
		debugMode   = flag.Bool("debug", false, "Start in the TUI step debugger instead of running to completion")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("rv32run %s (commit %s, built %s)\n", Version, Commit, Date)
		os.Exit(0)
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: rv32run [options] <flat-binary>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	codeFile := flag.Arg(0)

	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFrom(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		os.Exit(1)
	}

	ram := cfg.Execution.RAMSize
	if *ramSize != 0 {
		ram = *ramSize
	}

	engine, err := loadEngine(codeFile, ram, cfg, *maxSteps)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading %s: %v\n", codeFile, err)
		os.Exit(1)
	}

	if *entryPoint != "" {
		addr, err := parseAddress(*entryPoint)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -entry: %v\n", err)
			os.Exit(1)
		}
		engine.PC = addr
	}

	if *debugMode {
		d := debugger.NewDebugger(engine)
		if err := debugger.RunTUI(d); err != nil {
			fmt.Fprintf(os.Stderr, "debugger error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *traceFlag || cfg.Execution.EnableTrace {
		runTraced(engine, cfg.Trace.OutputFile, cfg.Trace.MaxEntries)
		return
	}
	runToCompletion(engine)
}

func loadEngine(codeFile string, ram uint, cfg *config.Config, maxSteps uint64) (*vm.Engine, error) {
	code, err := os.ReadFile(codeFile)
	if err != nil {
		return nil, fmt.Errorf("reading code file: %w", err)
	}
	mem := loader.Load(code, ram)

	limit := cfg.Execution.InstructionLimit
	if maxSteps != 0 {
		limit = maxSteps
	}
	vmCfg := vm.Config{InstructionLimit: limit}
	engine, err := vm.NewEngine(mem, vmCfg)
	if err != nil {
		return nil, fmt.Errorf("constructing engine: %w", err)
	}

	addr, err := parseAddress(cfg.Execution.EntryPoint)
	if err != nil {
		return nil, fmt.Errorf("config entry_point: %w", err)
	}
	engine.PC = addr
	return engine, nil
}

func parseAddress(s string) (uint32, error) {
	var addr uint32
	if _, err := fmt.Sscanf(s, "0x%x", &addr); err == nil {
		return addr, nil
	}
	if _, err := fmt.Sscanf(s, "%d", &addr); err == nil {
		return addr, nil
	}
	return 0, fmt.Errorf("unparseable address %q", s)
}

func runToCompletion(engine *vm.Engine) {
	for {
		result, err := engine.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "trap: %v\n", err)
			os.Exit(1)
		}
		if result == vm.RunHalted {
			a0, _ := engine.Regs.Get(vm.RegA0)
			fmt.Printf("halted after %d steps, a0=%d\n", engine.StepsTaken, int32(a0))
			return
		}
		// RunYielded: instruction limit reached without halting.
		fmt.Fprintf(os.Stderr, "instruction limit reached after %d steps\n", engine.StepsTaken)
		os.Exit(1)
	}
}

// runTraced steps one instruction at a time, logging each PC to the
// configured trace file, up to maxEntries lines.
func runTraced(engine *vm.Engine, outputFile string, maxEntries int) {
	f, err := os.Create(outputFile) // #nosec G304 -- operator-configured trace path
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating trace file %s: %v\n", outputFile, err)
		os.Exit(1)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	defer w.Flush()

	for n := 0; maxEntries == 0 || n < maxEntries; n++ {
		pc := engine.PC
		cont, err := engine.Step()
		fmt.Fprintf(w, "%08d pc=0x%08X\n", n, pc)
		if err != nil {
			w.Flush()
			fmt.Fprintf(os.Stderr, "trap: %v\n", err)
			os.Exit(1)
		}
		if !cont {
			w.Flush()
			a0, _ := engine.Regs.Get(vm.RegA0)
			fmt.Printf("halted after %d steps, a0=%d\n", engine.StepsTaken, int32(a0))
			return
		}
	}
	w.Flush()
	fmt.Fprintf(os.Stderr, "trace limit (%d entries) reached before halt\n", maxEntries)
	os.Exit(1)
}
