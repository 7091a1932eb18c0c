package shared

import (
	"fmt"
	"io"

	"github.com/spacemeshos/bitcursor/bitstream"
)

// GranSpecificReader provides a wrapper for bitstream.BitReader to allow
// granularity-specific access to the stream according to the defined item
// size, where bit-granular and byte-granular sizes are supported via a
// specialized code path.
type GranSpecificReader struct {
	ReadNext func() (uint32, error)
}

// NewGranSpecificReader returns a reader of itemBitSize-wide items,
// 1 <= itemBitSize <= 32.
//
// ReadNext returns io.EOF when no item could be started. An item cut short by
// the end of the stream is returned with a *PartialItemError, holding only the
// bits actually read.
func NewGranSpecificReader(br *bitstream.BitReader, itemBitSize int) (*GranSpecificReader, error) {
	if itemBitSize <= 0 || itemBitSize > bitstream.MaxBits {
		return nil, fmt.Errorf("%w: item size %d out of range [1, %d]", bitstream.ErrInvalidArgument, itemBitSize, bitstream.MaxBits)
	}

	gsReader := new(GranSpecificReader)
	if itemBitSize%8 == 0 {
		// Byte-granular reader is using the whole-byte path directly.
		b := make([]byte, itemBitSize/8)
		gsReader.ReadNext = func() (uint32, error) {
			n, err := io.ReadFull(br, b)
			switch err {
			case nil:
				return UintBE(b), nil
			case io.ErrUnexpectedEOF:
				return UintBE(b[:n]), &PartialItemError{Bits: n * 8, ItemBitSize: itemBitSize}
			default:
				return 0, err
			}
		}
	} else {
		// Bit-granular reader is reading the bits one by one.
		gsReader.ReadNext = func() (uint32, error) {
			bits, err := br.ReadBitsToSlice(itemBitSize)
			if err != nil {
				return 0, err
			}

			var v uint32
			for _, bit := range bits {
				v = v<<1 | uint32(bit)
			}
			if len(bits) < itemBitSize {
				return v, &PartialItemError{Bits: len(bits), ItemBitSize: itemBitSize}
			}
			return v, nil
		}
	}

	return gsReader, nil
}
