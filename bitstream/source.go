package bitstream

import (
	"errors"
	"fmt"
	"io"
)

// Source is the byte-level capability a BitReader consumes.
type Source interface {
	io.Reader
	io.ByteReader

	// Skip discards up to n bytes and returns how many were actually skipped.
	Skip(n int64) (int64, error)

	// MarkSupported reports whether Mark and Reset can be used.
	MarkSupported() bool

	// Mark records the current position. A source that was never marked
	// resets to the position it was created at.
	Mark()

	// Reset repositions the source to the last mark.
	Reset() error
}

// NewSource adapts r to a Source. An io.ReadSeeker gets mark/reset support,
// any other reader is consumed as a forward-only stream.
func NewSource(r io.Reader) Source {
	switch r := r.(type) {
	case Source:
		return r
	case io.ReadSeeker:
		// Pipes and terminals are io.ReadSeekers that can't seek.
		if s, err := newSeekSource(r); err == nil {
			return s
		}
		return &streamSource{r: r}
	default:
		return &streamSource{r: r}
	}
}

// streamSource is a forward-only Source.
type streamSource struct {
	r   io.Reader
	buf [1]byte
}

// A compile time check to ensure that streamSource fully implements the Source interface.
var _ Source = (*streamSource)(nil)

func (s *streamSource) Read(p []byte) (int, error) {
	return s.r.Read(p)
}

func (s *streamSource) ReadByte() (byte, error) {
	if br, ok := s.r.(io.ByteReader); ok {
		return br.ReadByte()
	}
	if _, err := io.ReadFull(s.r, s.buf[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			err = io.EOF
		}
		return 0, err
	}
	return s.buf[0], nil
}

func (s *streamSource) Skip(n int64) (int64, error) {
	if n <= 0 {
		return 0, nil
	}
	skipped, err := io.CopyN(io.Discard, s.r, n)
	if err == io.EOF {
		err = nil
	}
	return skipped, err
}

func (s *streamSource) MarkSupported() bool { return false }

func (s *streamSource) Mark() {}

func (s *streamSource) Reset() error {
	return ErrResetNotSupported
}

// seekSource is a Source over an io.ReadSeeker, marking positions by offset.
type seekSource struct {
	rs   io.ReadSeeker
	mark int64
	err  error
	buf  [1]byte
}

// A compile time check to ensure that seekSource fully implements the Source interface.
var _ Source = (*seekSource)(nil)

func newSeekSource(rs io.ReadSeeker) (*seekSource, error) {
	mark, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}
	return &seekSource{rs: rs, mark: mark}, nil
}

func (s *seekSource) Read(p []byte) (int, error) {
	return s.rs.Read(p)
}

func (s *seekSource) ReadByte() (byte, error) {
	if _, err := io.ReadFull(s.rs, s.buf[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			err = io.EOF
		}
		return 0, err
	}
	return s.buf[0], nil
}

// Skip never moves past the end of the data.
func (s *seekSource) Skip(n int64) (int64, error) {
	if n <= 0 {
		return 0, nil
	}
	cur, err := s.rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	end, err := s.rs.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if cur >= end {
		// Restore a position past the end, Skip never moves backward.
		if _, err := s.rs.Seek(cur, io.SeekStart); err != nil {
			return 0, err
		}
		return 0, nil
	}
	target := cur + n
	if target > end || target < cur {
		target = end
	}
	if _, err := s.rs.Seek(target, io.SeekStart); err != nil {
		return 0, err
	}
	return target - cur, nil
}

func (s *seekSource) MarkSupported() bool { return true }

func (s *seekSource) Mark() {
	s.mark, s.err = s.rs.Seek(0, io.SeekCurrent)
}

func (s *seekSource) Reset() error {
	if s.err != nil {
		return fmt.Errorf("invalid mark: %w", s.err)
	}
	_, err := s.rs.Seek(s.mark, io.SeekStart)
	return err
}
