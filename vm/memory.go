package vm

// RAMOffset is the fixed address at which the writable RAM region
// begins. The host must link its binary's data/stack at this address.
const RAMOffset = 0x80000000

// InstructionSize is the width, in bytes, of every RV32 instruction
// word.
const InstructionSize = 4

// Memory is the polymorphic byte-addressable store the engine reads
// code and data through. Implementations must be bounds-checked: every
// operation returns an *TrapError with Kind InvalidMemory rather than
// panicking on out-of-range or straddling access. Loads are permitted
// in both the code and RAM regions; stores must fail in the code
// region.
type Memory interface {
	Load8(addr uint32) ([1]byte, error)
	Load16(addr uint32) ([2]byte, error)
	Load32(addr uint32) ([4]byte, error)
	Store8(addr uint32, v [1]byte) error
	Store16(addr uint32, v [2]byte) error
	Store32(addr uint32, v [4]byte) error
}

// FlatMemory is the default Memory backing: a read-only code slice
// based at address 0 and a writable RAM slice based at RAMOffset. The
// two regions never overlap; the engine trusts that invariant rather
// than re-checking it on every access.
type FlatMemory struct {
	Code []byte
	RAM  []byte
}

// NewFlatMemory constructs a FlatMemory view over the given code and
// RAM slices. Neither slice is copied; the caller retains ownership
// and may inspect it after execution.
func NewFlatMemory(code, ram []byte) *FlatMemory {
	return &FlatMemory{Code: code, RAM: ram}
}

// region locates the byte slice and in-slice offset backing addr, and
// whether that region is writable.
func (m *FlatMemory) region(addr uint32, n uint32) (slice []byte, offset uint32, writable bool, err error) {
	codeLen := uint32(len(m.Code))
	if addr < codeLen {
		if addr+n > codeLen {
			return nil, 0, false, trap(InvalidMemory, "access at 0x%08X straddles the code region boundary", addr)
		}
		return m.Code, addr, false, nil
	}

	ramLen := uint32(len(m.RAM))
	if addr >= RAMOffset && addr-RAMOffset < ramLen {
		off := addr - RAMOffset
		if off+n > ramLen {
			return nil, 0, false, trap(InvalidMemory, "access at 0x%08X straddles the RAM region boundary", addr)
		}
		return m.RAM, off, true, nil
	}

	return nil, 0, false, trap(InvalidMemory, "address 0x%08X is not mapped", addr)
}

// Load8 reads a single byte.
func (m *FlatMemory) Load8(addr uint32) ([1]byte, error) {
	slice, off, _, err := m.region(addr, 1)
	if err != nil {
		return [1]byte{}, err
	}
	return [1]byte{slice[off]}, nil
}

// Load16 reads a little-endian halfword.
func (m *FlatMemory) Load16(addr uint32) ([2]byte, error) {
	slice, off, _, err := m.region(addr, 2)
	if err != nil {
		return [2]byte{}, err
	}
	return [2]byte{slice[off], slice[off+1]}, nil
}

// Load32 reads a little-endian word.
func (m *FlatMemory) Load32(addr uint32) ([4]byte, error) {
	slice, off, _, err := m.region(addr, 4)
	if err != nil {
		return [4]byte{}, err
	}
	return [4]byte{slice[off], slice[off+1], slice[off+2], slice[off+3]}, nil
}

// Store8 writes a single byte; fails in the code region.
func (m *FlatMemory) Store8(addr uint32, v [1]byte) error {
	slice, off, writable, err := m.region(addr, 1)
	if err != nil {
		return err
	}
	if !writable {
		return trap(InvalidMemory, "store to read-only code region at 0x%08X", addr)
	}
	slice[off] = v[0]
	return nil
}

// Store16 writes a little-endian halfword; fails in the code region.
func (m *FlatMemory) Store16(addr uint32, v [2]byte) error {
	slice, off, writable, err := m.region(addr, 2)
	if err != nil {
		return err
	}
	if !writable {
		return trap(InvalidMemory, "store to read-only code region at 0x%08X", addr)
	}
	slice[off], slice[off+1] = v[0], v[1]
	return nil
}

// Store32 writes a little-endian word; fails in the code region.
func (m *FlatMemory) Store32(addr uint32, v [4]byte) error {
	slice, off, writable, err := m.region(addr, 4)
	if err != nil {
		return err
	}
	if !writable {
		return trap(InvalidMemory, "store to read-only code region at 0x%08X", addr)
	}
	slice[off], slice[off+1], slice[off+2], slice[off+3] = v[0], v[1], v[2], v[3]
	return nil
}
