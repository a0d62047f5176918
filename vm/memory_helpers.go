package vm

import "encoding/binary"

// readWord reads a little-endian 32-bit word from mem at addr.
func readWord(mem Memory, addr uint32) (uint32, error) {
	b, err := mem.Load32(addr)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

// readHalf reads a little-endian 16-bit halfword from mem at addr.
func readHalf(mem Memory, addr uint32) (uint16, error) {
	b, err := mem.Load16(addr)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b[:]), nil
}

// readByte reads a single byte from mem at addr.
func readByte(mem Memory, addr uint32) (byte, error) {
	b, err := mem.Load8(addr)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// writeWord writes a little-endian 32-bit word to mem at addr.
func writeWord(mem Memory, addr uint32, value uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], value)
	return mem.Store32(addr, b)
}

// writeHalf writes a little-endian 16-bit halfword to mem at addr.
func writeHalf(mem Memory, addr uint32, value uint16) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], value)
	return mem.Store16(addr, b)
}

// writeByteAt writes a single byte to mem at addr.
func writeByteAt(mem Memory, addr uint32, value byte) error {
	return mem.Store8(addr, [1]byte{value})
}
