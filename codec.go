package jdxi

import "fmt"

// Pure helpers for keeping SysEx payloads inside the 7-bit-safe range
// 0x00-0x7F. Every split has a matching join that is its exact inverse.
// Feeding a value wider than the declared bit width is a programming error
// and panics; these functions never silently wrap.

// SplitByte splits an 8-bit value into its high and low nibbles.
func SplitByte(v byte) (hi, lo byte) {
	return v >> 4, v & 0x0F
}

// JoinNibbles is the inverse of SplitByte. Panics if either nibble exceeds
// 4 bits.
func JoinNibbles(hi, lo byte) byte {
	if hi > 0x0F || lo > 0x0F {
		panic(fmt.Sprintf("jdxi: nibble out of range: hi=%#x lo=%#x", hi, lo))
	}
	return hi<<4 | lo
}

// Split16 splits a 16-bit value into four nibbles, most significant first.
func Split16(v uint16) [4]byte {
	return [4]byte{
		byte(v >> 12 & 0x0F),
		byte(v >> 8 & 0x0F),
		byte(v >> 4 & 0x0F),
		byte(v & 0x0F),
	}
}

// Join16 is the inverse of Split16. Panics if any nibble exceeds 4 bits.
func Join16(n [4]byte) uint16 {
	var v uint16
	for _, b := range n {
		if b > 0x0F {
			panic(fmt.Sprintf("jdxi: nibble out of range: %#x", b))
		}
		v = v<<4 | uint16(b)
	}
	return v
}

// Split32 splits a 32-bit value into eight nibbles, most significant first.
func Split32(v uint32) [8]byte {
	var n [8]byte
	for i := range n {
		n[i] = byte(v >> (28 - 4*i) & 0x0F)
	}
	return n
}

// Join32 is the inverse of Split32. Panics if any nibble exceeds 4 bits.
func Join32(n [8]byte) uint32 {
	var v uint32
	for _, b := range n {
		if b > 0x0F {
			panic(fmt.Sprintf("jdxi: nibble out of range: %#x", b))
		}
		v = v<<4 | uint32(b)
	}
	return v
}

// NibbleData makes an arbitrary payload 7-bit safe for transmission: any
// byte above 0x7F is split into its two nibbles, bytes at or below pass
// through unchanged.
func NibbleData(data []byte) []byte {
	out := make([]byte, 0, len(data))
	for _, b := range data {
		if b > 0x7F {
			hi, lo := SplitByte(b)
			out = append(out, hi, lo)
			continue
		}
		out = append(out, b)
	}
	return out
}

// EncodeRoland7Bit splits a 28-bit value into four 7-bit bytes, most
// significant group first. This is the encoding RQ1 uses for its size
// field. Panics above 28 bits.
func EncodeRoland7Bit(v uint32) [4]byte {
	if v > 0x0FFFFFFF {
		panic(fmt.Sprintf("jdxi: value exceeds 28 bits: %#x", v))
	}
	return [4]byte{
		byte(v >> 21 & 0x7F),
		byte(v >> 14 & 0x7F),
		byte(v >> 7 & 0x7F),
		byte(v & 0x7F),
	}
}

// DecodeRoland7Bit is the inverse of EncodeRoland7Bit. Panics if any byte
// has its top bit set.
func DecodeRoland7Bit(b [4]byte) uint32 {
	var v uint32
	for _, g := range b {
		if g > 0x7F {
			panic(fmt.Sprintf("jdxi: 7-bit group out of range: %#x", g))
		}
		v = v<<7 | uint32(g)
	}
	return v
}

// Encode14Bit splits a 14-bit value into two 7-bit bytes, most significant
// first, the way pitch-bend style values travel. Panics above 14 bits.
func Encode14Bit(v uint16) [2]byte {
	if v > 0x3FFF {
		panic(fmt.Sprintf("jdxi: value exceeds 14 bits: %#x", v))
	}
	return [2]byte{byte(v >> 7 & 0x7F), byte(v & 0x7F)}
}

// Decode14Bit is the inverse of Encode14Bit.
func Decode14Bit(b [2]byte) uint16 {
	for _, g := range b {
		if g > 0x7F {
			panic(fmt.Sprintf("jdxi: 7-bit group out of range: %#x", g))
		}
	}
	return uint16(b[0])<<7 | uint16(b[1])
}
