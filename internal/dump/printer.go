package dump

import (
	"strings"

	"github.com/spacemeshos/bitcursor/bitstream"
)

// FormatBits renders the width LS bits of v, MSB first.
func FormatBits(v uint32, width int) string {
	var sb strings.Builder
	sb.Grow(width)
	for bit := width - 1; bit >= 0; bit-- {
		mask := uint32(1) << uint(bit)
		if v&mask == mask {
			sb.WriteString("1")
		} else {
			sb.WriteString("0")
		}
	}
	return sb.String()
}

// FormatBitSlice renders bits as a string of 0s and 1s.
func FormatBitSlice(bits []bitstream.Bit) string {
	var sb strings.Builder
	sb.Grow(len(bits))
	for _, bit := range bits {
		if bit == bitstream.One {
			sb.WriteString("1")
		} else {
			sb.WriteString("0")
		}
	}
	return sb.String()
}
