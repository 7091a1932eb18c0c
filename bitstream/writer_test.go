package bitstream_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/bitcursor/bitstream"
)

func TestWriteBits(t *testing.T) {
	req := require.New(t)

	buf := bytes.NewBuffer(nil)
	w := NewWriter(buf)
	for _, v := range []uint32{3, 5, 0, 6, 2, 5, 6, 3, 3, 5} {
		req.NoError(w.WriteBits(v, 3))
	}
	req.NoError(w.WriteBits(0, 2))
	req.NoError(w.Flush(One))

	req.Equal("test", buf.String())
}

func TestWriteBits_InvalidArgument(t *testing.T) {
	req := require.New(t)

	w := NewWriter(bytes.NewBuffer(nil))
	req.ErrorIs(w.WriteBits(1, 0), bitstream.ErrInvalidArgument)
	req.ErrorIs(w.WriteBits(1, 33), bitstream.ErrInvalidArgument)
}

func TestWriteByte_Realigns(t *testing.T) {
	req := require.New(t)

	buf := bytes.NewBuffer(nil)
	w := NewWriter(buf)
	req.NoError(w.WriteBits(0xF, 4))
	req.NoError(w.WriteByte(0xAA))
	req.NoError(w.Flush(Zero))

	req.Equal([]byte{0xF0, 0xAA}, buf.Bytes())
}

func TestFlush(t *testing.T) {
	req := require.New(t)

	buf := bytes.NewBuffer(nil)
	w := NewWriter(buf)
	req.NoError(w.WriteBit(Zero))
	req.NoError(w.Flush(One))
	req.NoError(w.Flush(One))

	req.Equal([]byte{0x7F}, buf.Bytes())
}

func TestString(t *testing.T) {
	req := require.New(t)

	s := "a string"
	br := NewReader(bytes.NewBufferString(s))
	buf := bytes.NewBuffer(nil)
	bw := NewWriter(buf)

	bits, err := br.ReadBitsToSlice(1 << 10)
	req.NoError(err)
	req.Len(bits, len(s)*8)
	for _, bit := range bits {
		req.NoError(bw.WriteBit(bit))
	}

	req.Equal(s, buf.String())
}

func TestBadWriter_0(t *testing.T) {
	req := require.New(t)

	bw := NewWriter(&badWriter{})
	for i := 0; i < 7; i++ {
		err := bw.WriteBit(One)
		req.NoError(err)
	}
	err := bw.WriteBit(One)
	req.Equal(ErrBadWriter, err)
}

func TestBadWriter_1(t *testing.T) {
	req := require.New(t)

	bw := NewWriter(&badWriter{})
	err := bw.WriteBits(256, 9)
	req.Equal(ErrBadWriter, err)
}

type badWriter struct{}

var ErrBadWriter = errors.New("bad writer")

func (w *badWriter) Write(p []byte) (n int, err error) {
	return 0, ErrBadWriter
}
