// Package asm is a minimal two-pass RV32I[M] assembler (one pass to
// collect labels, one to encode): enough mnemonic coverage to
// hand-write compliance fixtures and test programs as flat binaries,
// not a general toolchain. No macros, no preprocessor, no linker, no
// relocations beyond label offsets resolved within a single source file.
package asm

import (
	"fmt"
	"strings"
)

// Assemble encodes source into a flat little-endian instruction
// stream starting at address 0. Each non-blank, non-label,
// non-comment line is exactly one instruction (4 bytes).
func Assemble(source string) ([]byte, error) {
	lines := splitLines(source)

	labels, err := scanLabels(lines)
	if err != nil {
		return nil, err
	}

	var out []byte
	addr := uint32(0)
	for lineNo, line := range lines {
		text, isLabel := stripLabel(line)
		if isLabel {
			continue
		}
		if text == "" {
			continue
		}

		word, err := encodeLine(text, addr, labels)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo+1, err)
		}
		out = append(out, byte(word), byte(word>>8), byte(word>>16), byte(word>>24))
		addr += 4
	}
	return out, nil
}

func splitLines(source string) []string {
	return strings.Split(source, "\n")
}

// scanLabels does a first pass over the source assigning each
// "name:" line the address of the instruction that follows it.
func scanLabels(lines []string) (map[string]uint32, error) {
	labels := make(map[string]uint32)
	addr := uint32(0)
	for _, line := range lines {
		text, isLabel := stripLabel(line)
		if isLabel {
			name := strings.TrimSpace(strings.SplitN(line, ":", 2)[0])
			if _, exists := labels[name]; exists {
				return nil, fmt.Errorf("duplicate label %q", name)
			}
			labels[name] = addr
			continue
		}
		if text == "" {
			continue
		}
		addr += 4
	}
	return labels, nil
}

// stripLabel removes comments and, if the line is purely a "name:"
// label, reports isLabel=true. A line may not mix a label and an
// instruction; that keeps the scanner single-pass and simple.
func stripLabel(line string) (text string, isLabel bool) {
	line = stripComment(line)
	line = strings.TrimSpace(line)
	if line == "" {
		return "", false
	}
	if strings.HasSuffix(line, ":") {
		return "", true
	}
	return line, false
}

func stripComment(line string) string {
	if i := strings.IndexAny(line, "#;"); i >= 0 {
		line = line[:i]
	}
	if i := strings.Index(line, "//"); i >= 0 {
		line = line[:i]
	}
	return line
}
