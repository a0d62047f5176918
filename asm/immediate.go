package asm

import (
	"fmt"
	"strconv"
)

// resolveImmediate parses a decimal or 0x-hex literal, or looks tok up
// as a label, returning its address relative to pc when relative is
// true (branch/jal targets), or absolute otherwise.
func resolveImmediate(tok string, pc uint32, labels map[string]uint32, relative bool) (int32, error) {
	tok = trimComma(tok)

	if addr, ok := labels[tok]; ok {
		if relative {
			return int32(addr) - int32(pc), nil
		}
		return int32(addr), nil
	}

	n, err := strconv.ParseInt(tok, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid immediate or undefined label %q", tok)
	}
	return int32(n), nil
}

// splitOffsetForm parses "imm(reg)" memory operands, e.g. "4(sp)".
func splitOffsetForm(tok string) (imm string, reg string, err error) {
	tok = trimComma(tok)
	open := -1
	close := -1
	for i, c := range tok {
		if c == '(' {
			open = i
		}
		if c == ')' {
			close = i
		}
	}
	if open < 0 || close < 0 || close < open {
		return "", "", fmt.Errorf("expected imm(reg) operand, got %q", tok)
	}
	imm = tok[:open]
	if imm == "" {
		imm = "0"
	}
	reg = tok[open+1 : close]
	return imm, reg, nil
}
