package bitstream

import (
	"fmt"
	"io"
)

// BitWriter writes bits to an io.Writer, MSB first.
type BitWriter struct {
	stream  io.Writer
	pending [1]byte
	// Number of bits already set in pending, from the MS end.
	alignment uint8
}

// NewWriter returns a new instance of BitWriter.
func NewWriter(w io.Writer) *BitWriter {
	bw := new(BitWriter)
	bw.stream = w
	return bw
}

// WriteBits writes the n LS bits of val, 1 <= n <= 32, most-significant first.
func (bw *BitWriter) WriteBits(val uint32, n int) error {
	if n <= 0 || n > MaxBits {
		return fmt.Errorf("%w: bit count %d out of range [1, %d]", ErrInvalidArgument, n, MaxBits)
	}

	for i := n - 1; i >= 0; i-- {
		if err := bw.WriteBit(Bit(val>>uint(i)) & 1); err != nil {
			return err
		}
	}

	return nil
}

// WriteByte writes a single whole byte. A partially written byte is first
// flushed with zero padding, mirroring BitReader.ReadByte.
func (bw *BitWriter) WriteByte(b byte) error {
	if err := bw.Flush(Zero); err != nil {
		return err
	}

	if n, err := bw.stream.Write([]byte{b}); n != 1 || err != nil {
		if err == nil {
			err = io.ErrShortWrite
		}
		return err
	}

	return nil
}

// WriteBit writes a single bit, MSB first.
func (bw *BitWriter) WriteBit(bit Bit) error {
	if bit&1 == 1 {
		bw.pending[0] |= 1 << (7 - bw.alignment)
	}

	bw.alignment++

	if bw.alignment == 8 {
		if n, err := bw.stream.Write(bw.pending[:]); n != 1 || err != nil {
			if err == nil {
				err = io.ErrShortWrite
			}
			return err
		}
		bw.pending[0] = 0
		bw.alignment = 0
	}

	return nil
}

// Flush flushes the currently pending byte to the stream by filling it with bit.
func (bw *BitWriter) Flush(bit Bit) error {
	for bw.alignment != 0 {
		if err := bw.WriteBit(bit); err != nil {
			return err
		}
	}

	return nil
}
