package shared

import (
	"math/bits"
)

// UintBE decodes up to 4 bytes as a Big-Endian unsigned integer.
func UintBE(b []byte) uint32 {
	var v uint32
	for _, byt := range b {
		v = v<<8 | uint32(byt)
	}
	return v
}

// NumBits returns the number of bits needed to represent v, at least 1.
func NumBits(v uint64) int {
	if v == 0 {
		return 1
	}
	return bits.Len64(v)
}
