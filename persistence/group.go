package persistence

import (
	"errors"
	"io"

	"github.com/spacemeshos/bitcursor/bitstream"
)

// GroupSource joins several FileSources into one continuous bitstream.Source.
type GroupSource struct {
	sources []*FileSource
	active  int

	markIndex int
	markPos   int64
	markErr   error
}

// A compile time check to ensure that GroupSource fully implements the bitstream.Source interface.
var _ bitstream.Source = (*GroupSource)(nil)

// Group groups a slice of FileSource into one continuous source. All of them
// must be positioned at their start.
func Group(sources []*FileSource) (*GroupSource, error) {
	if len(sources) < 2 {
		return nil, errors.New("number of sources must be at least 2")
	}
	for _, s := range sources {
		if s == nil {
			return nil, errors.New("nil sources are not allowed")
		}
	}

	return &GroupSource{sources: sources}, nil
}

func (g *GroupSource) Read(p []byte) (int, error) {
	n, err := g.sources[g.active].Read(p)
	if err == io.EOF && n == 0 && g.active < len(g.sources)-1 {
		if err := g.advance(); err != nil {
			return 0, err
		}
		return g.Read(p)
	}
	return n, err
}

func (g *GroupSource) ReadByte() (byte, error) {
	b, err := g.sources[g.active].ReadByte()
	if err == io.EOF && g.active < len(g.sources)-1 {
		if err := g.advance(); err != nil {
			return 0, err
		}
		return g.ReadByte()
	}
	return b, err
}

func (g *GroupSource) Skip(n int64) (int64, error) {
	var skipped int64
	for skipped < n {
		k, err := g.sources[g.active].Skip(n - skipped)
		skipped += k
		if err != nil {
			return skipped, err
		}
		if skipped == n || g.active == len(g.sources)-1 {
			break
		}
		if err := g.advance(); err != nil {
			return skipped, err
		}
	}
	return skipped, nil
}

func (g *GroupSource) MarkSupported() bool { return true }

func (g *GroupSource) Mark() {
	g.markIndex = g.active
	g.markPos, g.markErr = g.sources[g.active].Position()
}

func (g *GroupSource) Reset() error {
	if g.markErr != nil {
		return g.markErr
	}
	g.active = g.markIndex
	return g.sources[g.active].seek(g.markPos)
}

// Size returns the total size of the grouped files.
func (g *GroupSource) Size() (int64, error) {
	var total int64
	for _, s := range g.sources {
		size, err := s.Size()
		if err != nil {
			return 0, err
		}
		total += size
	}
	return total, nil
}

func (g *GroupSource) Close() error {
	var firstErr error
	for _, s := range g.sources {
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// advance moves to the start of the next source. A previous Reset may have
// left it anywhere.
func (g *GroupSource) advance() error {
	g.active++
	return g.sources[g.active].seek(0)
}
