package vm

// Standard RV32I calling-convention register names, mapped to their
// register-file index. Mirrors the reference implementation's
// Register enum one-for-one.
const (
	RegZero = 0  // hardwired to 0
	RegRA   = 1  // return address
	RegSP   = 2  // stack pointer
	RegGP   = 3  // global pointer
	RegTP   = 4  // thread pointer
	RegT0   = 5  // temporary
	RegT1   = 6  // temporary
	RegT2   = 7  // temporary
	RegS0   = 8  // saved / frame pointer
	RegS1   = 9  // saved
	RegA0   = 10 // argument / return value
	RegA1   = 11 // argument / return value
	RegA2   = 12 // argument
	RegA3   = 13 // argument
	RegA4   = 14 // argument
	RegA5   = 15 // argument
	RegA6   = 16 // argument
	RegA7   = 17 // argument / syscall number
	RegS2   = 18 // saved
	RegS3   = 19 // saved
	RegS4   = 20 // saved
	RegS5   = 21 // saved
	RegS6   = 22 // saved
	RegS7   = 23 // saved
	RegS8   = 24 // saved
	RegS9   = 25 // saved
	RegS10  = 26 // saved
	RegS11  = 27 // saved
	RegT3   = 28 // temporary
	RegT4   = 29 // temporary
	RegT5   = 30 // temporary
	RegT6   = 31 // temporary
)

// SyscallArgCount is the number of syscall argument registers (A0-A5).
const SyscallArgCount = 6

// regNames is used by disassembly/debugger output.
var regNames = [RegisterCount]string{
	"zero", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
	"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
	"a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7",
	"s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6",
}

// RegisterName returns the ABI name for register index i, or "" if i
// is out of range.
func RegisterName(i int) string {
	if i < 0 || i >= RegisterCount {
		return ""
	}
	return regNames[i]
}
