package bitstream_test

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/bitcursor/bitstream"
)

func TestNewSource_Source(t *testing.T) {
	req := require.New(t)

	src := bitstream.NewSource(strings.NewReader("test"))
	req.True(src.MarkSupported())
	req.Equal(src, bitstream.NewSource(src))
}

func TestNewSource_Stream(t *testing.T) {
	req := require.New(t)

	src := bitstream.NewSource(iotest.OneByteReader(bytes.NewBufferString("test")))
	req.False(src.MarkSupported())

	b, err := src.ReadByte()
	req.NoError(err)
	req.Equal(byte('t'), b)

	n, err := src.Skip(-1)
	req.NoError(err)
	req.Zero(n)

	n, err = src.Skip(2)
	req.NoError(err)
	req.Equal(int64(2), n)

	b, err = src.ReadByte()
	req.NoError(err)
	req.Equal(byte('t'), b)

	_, err = src.ReadByte()
	req.Equal(io.EOF, err)

	src.Mark()
	req.ErrorIs(src.Reset(), bitstream.ErrResetNotSupported)
}

func TestNewSource_Seeker(t *testing.T) {
	req := require.New(t)

	r := strings.NewReader("test")
	_, err := r.Seek(1, io.SeekStart)
	req.NoError(err)

	// The initial mark is where the source was created.
	src := bitstream.NewSource(r)
	n, err := src.Skip(2)
	req.NoError(err)
	req.Equal(int64(2), n)
	req.NoError(src.Reset())

	b, err := src.ReadByte()
	req.NoError(err)
	req.Equal(byte('e'), b)

	n, err = src.Skip(0)
	req.NoError(err)
	req.Zero(n)

	src.Mark()
	p := make([]byte, 4)
	k, err := io.ReadFull(src, p)
	req.Equal(io.ErrUnexpectedEOF, err)
	req.Equal(2, k)
	req.NoError(src.Reset())

	k, err = src.Read(p)
	req.NoError(err)
	req.Equal("st", string(p[:k]))
}

func TestNewSource_Pipe(t *testing.T) {
	req := require.New(t)

	pr, pw, err := os.Pipe()
	req.NoError(err)
	t.Cleanup(func() { _ = pr.Close() })
	go func() {
		_, _ = pw.Write([]byte("test"))
		_ = pw.Close()
	}()

	br := bitstream.NewReader(pr)
	req.False(br.MarkSupported())

	n, err := br.Skip(2)
	req.NoError(err)
	req.Equal(int64(2), n)

	b, err := br.ReadByte()
	req.NoError(err)
	req.Equal(byte('s'), b)

	req.ErrorIs(br.Reset(), bitstream.ErrResetNotSupported)
}

func TestNewSource_SkipPastEnd(t *testing.T) {
	req := require.New(t)

	r := strings.NewReader("test")
	_, err := r.Seek(10, io.SeekStart)
	req.NoError(err)

	src := bitstream.NewSource(r)
	n, err := src.Skip(1)
	req.NoError(err)
	req.Zero(n)

	pos, err := r.Seek(0, io.SeekCurrent)
	req.NoError(err)
	req.Equal(int64(10), pos)

	_, err = src.ReadByte()
	req.Equal(io.EOF, err)
}
