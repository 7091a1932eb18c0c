package persistence

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spacemeshos/bitcursor/bitstream"
)

// FileSource is a buffered, mark-capable bitstream.Source over a file.
type FileSource struct {
	file *os.File
	buf  *bufio.Reader

	mark    int64
	markErr error
}

// A compile time check to ensure that FileSource fully implements the bitstream.Source interface.
var _ bitstream.Source = (*FileSource)(nil)

// OpenFile opens name for reading. The initial mark is the start of the file.
func OpenFile(name string) (*FileSource, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open file for bit reader: %w", err)
	}

	return &FileSource{
		file: file,
		buf:  bufio.NewReader(file),
	}, nil
}

func (s *FileSource) Name() string {
	return s.file.Name()
}

func (s *FileSource) Read(p []byte) (int, error) {
	return s.buf.Read(p)
}

func (s *FileSource) ReadByte() (byte, error) {
	return s.buf.ReadByte()
}

// Position returns the offset of the next byte to be read.
func (s *FileSource) Position() (int64, error) {
	off, err := s.file.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, fmt.Errorf("failed to get position of %v: %w", s.file.Name(), err)
	}
	return off - int64(s.buf.Buffered()), nil
}

// Skip skips up to n bytes, never moving past the end of the file.
func (s *FileSource) Skip(n int64) (int64, error) {
	if n <= 0 {
		return 0, nil
	}

	pos, err := s.Position()
	if err != nil {
		return 0, err
	}
	size, err := s.Size()
	if err != nil {
		return 0, err
	}

	if pos >= size {
		return 0, nil
	}

	target := pos + n
	if target > size || target < pos {
		target = size
	}
	if err := s.seek(target); err != nil {
		return 0, err
	}
	return target - pos, nil
}

func (s *FileSource) MarkSupported() bool { return true }

func (s *FileSource) Mark() {
	s.mark, s.markErr = s.Position()
}

func (s *FileSource) Reset() error {
	if s.markErr != nil {
		return fmt.Errorf("invalid mark: %w", s.markErr)
	}
	return s.seek(s.mark)
}

// Size returns the size of the file in bytes.
func (s *FileSource) Size() (int64, error) {
	info, err := s.file.Stat()
	if err != nil {
		return 0, fmt.Errorf("failed to get stats for %v: %w", s.file.Name(), err)
	}
	return info.Size(), nil
}

func (s *FileSource) Close() error {
	return s.file.Close()
}

func (s *FileSource) seek(pos int64) error {
	if _, err := s.file.Seek(pos, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek in %v: %w", s.file.Name(), err)
	}
	s.buf.Reset(s.file)
	return nil
}
