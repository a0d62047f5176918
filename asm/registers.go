package asm

import (
	"fmt"
	"strconv"
)

var registerNames = map[string]uint32{
	"zero": 0, "ra": 1, "sp": 2, "gp": 3, "tp": 4,
	"t0": 5, "t1": 6, "t2": 7,
	"s0": 8, "fp": 8, "s1": 9,
	"a0": 10, "a1": 11, "a2": 12, "a3": 13, "a4": 14, "a5": 15, "a6": 16, "a7": 17,
	"s2": 18, "s3": 19, "s4": 20, "s5": 21, "s6": 22, "s7": 23,
	"s8": 24, "s9": 25, "s10": 26, "s11": 27,
	"t3": 28, "t4": 29, "t5": 30, "t6": 31,
}

// parseRegister accepts both ABI names (a0, sp, ...) and raw xN form.
func parseRegister(tok string) (uint32, error) {
	tok = trimComma(tok)
	if len(tok) > 1 && (tok[0] == 'x' || tok[0] == 'X') {
		n, err := strconv.Atoi(tok[1:])
		if err == nil && n >= 0 && n < 32 {
			return uint32(n), nil
		}
	}
	if r, ok := registerNames[tok]; ok {
		return r, nil
	}
	return 0, fmt.Errorf("unknown register %q", tok)
}

func trimComma(s string) string {
	for len(s) > 0 && s[len(s)-1] == ',' {
		s = s[:len(s)-1]
	}
	return s
}
