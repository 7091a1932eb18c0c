package bitstream

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// BitReader reads bits from a Source, MSB first.
//
// It is not safe for concurrent use. The underlying source is not owned by
// the reader: closing it is left to the caller.
type BitReader struct {
	src     Source
	pending byte
	// Unconsumed bits of pending, counted from the MS end. Always in [0, 8].
	pendingBits uint8

	logger *zap.Logger
}

// NewReader returns a new instance of BitReader reading from r.
func NewReader(r io.Reader, opts ...OptionFunc) *BitReader {
	options := applyOpts(opts...)
	return &BitReader{
		src:    NewSource(r),
		logger: options.logger,
	}
}

// ReadBit reads the next single bit from the stream, MSB first.
// It returns io.EOF once the source is exhausted.
func (br *BitReader) ReadBit() (Bit, error) {
	if br.pendingBits == 0 {
		b, err := br.src.ReadByte()
		if err != nil {
			return Zero, err
		}
		br.pending = b
		br.pendingBits = 8
	}
	br.pendingBits--

	return Bit(br.pending>>br.pendingBits) & 1, nil
}

// ReadBits reads the next n bits, 1 <= n <= 32, as an unsigned integer whose
// most-significant bit is the first bit read.
//
// If the stream ends before the first bit, ReadBits returns 0, io.EOF.
// If it ends after at least one bit was read, the value of the bits read so
// far is returned with a nil error.
func (br *BitReader) ReadBits(n int) (uint32, error) {
	if n <= 0 || n > MaxBits {
		return 0, fmt.Errorf("%w: bit count %d out of range [1, %d]", ErrInvalidArgument, n, MaxBits)
	}

	bit, err := br.ReadBit()
	if err != nil {
		return 0, err
	}

	val := uint32(bit)
	for i := 1; i < n; i++ {
		bit, err := br.ReadBit()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
		val = val<<1 | uint32(bit)
	}

	return val, nil
}

// ReadBitsToSlice reads up to n bits, n >= 1, one Bit per element.
//
// If the stream ends before the first bit, an empty slice is returned with
// io.EOF. If it ends later, the bits read so far are returned with a nil
// error, so the result is shorter than n.
func (br *BitReader) ReadBitsToSlice(n int) ([]Bit, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: bit count %d must be positive", ErrInvalidArgument, n)
	}

	bit, err := br.ReadBit()
	if err == io.EOF {
		return []Bit{}, io.EOF
	}
	if err != nil {
		return nil, err
	}

	bits := make([]Bit, 1, minInt(n, maxPrealloc))
	bits[0] = bit
	for len(bits) < n {
		bit, err := br.ReadBit()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		bits = append(bits, bit)
	}

	return bits, nil
}

// maxPrealloc bounds the capacity allocated upfront by ReadBitsToSlice, which
// may be asked for far more bits than the source holds.
const maxPrealloc = 64

func minInt(x, y int) int {
	if x < y {
		return x
	}
	return y
}

// Align drops the unconsumed bits of the pending byte, if any, and returns
// how many were dropped. Every byte-level method calls it first: bits read
// with ReadBit are never combined with bytes read afterwards.
func (br *BitReader) Align() int {
	dropped := int(br.pendingBits)
	if dropped > 0 {
		br.logger.Debug("dropping unconsumed bits of pending byte", zap.Int("bits", dropped))
	}
	br.pending = 0
	br.pendingBits = 0
	return dropped
}

// Buffered returns the number of bits of the pending byte not yet read.
func (br *BitReader) Buffered() int {
	return int(br.pendingBits)
}

// ReadByte reads the next whole byte from the source. Pending bits are dropped.
func (br *BitReader) ReadByte() (byte, error) {
	br.Align()
	return br.src.ReadByte()
}

// Read reads whole bytes from the source into p. Pending bits are dropped.
func (br *BitReader) Read(p []byte) (int, error) {
	br.Align()
	return br.src.Read(p)
}

// Skip skips up to n bytes of the source and returns the number actually
// skipped. Pending bits are dropped.
func (br *BitReader) Skip(n int64) (int64, error) {
	br.Align()
	return br.src.Skip(n)
}

// MarkSupported reports whether the source supports Mark and Reset.
func (br *BitReader) MarkSupported() bool {
	return br.src.MarkSupported()
}

// Mark records the source position. Pending bits are kept.
func (br *BitReader) Mark() {
	br.src.Mark()
}

// Reset repositions the source to its last mark. Pending bits are dropped.
func (br *BitReader) Reset() error {
	br.Align()
	return br.src.Reset()
}
