// Package bitstream provides wrappers for io.Writer and io.Reader to allow
// bit-granularity access to the stream, following the MSB pattern, where
// most-significant bits are written/read first.
//
// A BitReader holds at most one pending byte. Every byte-level operation
// (ReadByte, Read, Skip, Reset) drops the unconsumed bits of that byte before
// delegating to the underlying Source, so mixing bit and byte reads always
// re-synchronizes to the next byte boundary.
package bitstream

import (
	"errors"
)

type Bit uint8

const (
	Zero Bit = 0
	One  Bit = 1
)

// MaxBits is the widest value ReadBits and WriteBits accept.
const MaxBits = 32

var (
	// ErrInvalidArgument is returned, before any I/O, for a bit count outside
	// the accepted range.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrResetNotSupported is returned by sources without mark/reset support.
	ErrResetNotSupported = errors.New("mark/reset not supported")
)
