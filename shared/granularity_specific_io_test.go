package shared_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/bitcursor/bitstream"
	"github.com/spacemeshos/bitcursor/shared"
)

var (
	NewGranSpecificReader = shared.NewGranSpecificReader
)

func TestGranSpecificReader_BitGranular(t *testing.T) {
	req := require.New(t)

	// Write one byte ([0b11111111])
	buf := bytes.NewBuffer(nil)
	_, err := buf.Write([]byte{0xFF})
	req.NoError(err)

	// Read one bit.
	gsReader, err := NewGranSpecificReader(bitstream.NewReader(buf), 1)
	req.NoError(err)
	item, err := gsReader.ReadNext()
	req.NoError(err)
	req.Equal(uint32(1), item)
}

func TestGranSpecificReader_ByteGranular(t *testing.T) {
	req := require.New(t)

	// Write two bytes ([0b11111111, 0b11111111])
	buf := bytes.NewBuffer(nil)
	_, err := buf.Write([]byte{0xFF, 0xFF})
	req.NoError(err)

	// Read 16 bits.
	gsReader, err := NewGranSpecificReader(bitstream.NewReader(buf), 16)
	req.NoError(err)
	item, err := gsReader.ReadNext()
	req.NoError(err)
	req.Equal(uint32(0xFFFF), item)

	_, err = gsReader.ReadNext()
	req.Equal(io.EOF, err)
}

func TestGranSpecificReader_Partial(t *testing.T) {
	for _, tc := range []struct {
		name     string
		size     int
		expected []uint32
		last     uint32
		lastBits int
	}{
		{"bits", 3, []uint32{3, 5, 0, 6, 2, 5, 6, 3, 3, 5}, 0, 2},
		{"bytes", 24, []uint32{0x746573}, 0x74, 8},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			req := require.New(t)

			gsReader, err := NewGranSpecificReader(bitstream.NewReader(strings.NewReader("test")), tc.size)
			req.NoError(err)
			for _, e := range tc.expected {
				item, err := gsReader.ReadNext()
				req.NoError(err)
				req.Equal(e, item)
			}

			item, err := gsReader.ReadNext()
			req.ErrorIs(err, shared.ErrPartialItem)
			req.Equal(tc.last, item)
			var partial *shared.PartialItemError
			req.ErrorAs(err, &partial)
			req.Equal(tc.lastBits, partial.Bits)
			req.Equal(tc.size, partial.ItemBitSize)

			_, err = gsReader.ReadNext()
			req.Equal(io.EOF, err)
		})
	}
}

func TestGranSpecificReader_InvalidSize(t *testing.T) {
	req := require.New(t)

	br := bitstream.NewReader(strings.NewReader("test"))
	_, err := NewGranSpecificReader(br, 0)
	req.ErrorIs(err, bitstream.ErrInvalidArgument)
	_, err = NewGranSpecificReader(br, 33)
	req.ErrorIs(err, bitstream.ErrInvalidArgument)
}
