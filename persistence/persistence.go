// Package persistence provides file-backed bitstream sources.
package persistence

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spacemeshos/bitcursor/bitstream"
)

// Source is a closable, sized bitstream.Source.
type Source interface {
	bitstream.Source
	Size() (int64, error)
	Close() error
}

// Open returns a source for path. A directory is opened as the group of its
// regular files, ordered by the numeric suffix of their names ("part-0",
// "part-1", ...).
func Open(path string) (Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("input not found: %w", err)
	}
	if !info.IsDir() {
		return OpenFile(path)
	}

	sources, err := OpenDir(path)
	if err != nil {
		return nil, err
	}
	if len(sources) == 1 {
		return sources[0], nil
	}

	g, err := Group(sources)
	if err != nil {
		closeAll(sources)
		return nil, err
	}
	return g, nil
}

// OpenDir opens every regular file of dir, in numerical order.
func OpenDir(dir string) ([]*FileSource, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("input directory not found: %w", err)
	}

	var files []os.DirEntry
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			files = append(files, entry)
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("input directory (%v) is empty", dir)
	}
	sort.SliceStable(files, func(i, j int) bool {
		a, okA := partIndex(files[i].Name())
		b, okB := partIndex(files[j].Name())
		if !okA || !okB {
			return files[i].Name() < files[j].Name()
		}
		return a < b
	})

	sources := make([]*FileSource, 0, len(files))
	for _, file := range files {
		s, err := OpenFile(filepath.Join(dir, file.Name()))
		if err != nil {
			closeAll(sources)
			return nil, err
		}
		sources = append(sources, s)
	}

	return sources, nil
}

// partIndex parses the number after the last "-" of a part file name.
func partIndex(name string) (int64, bool) {
	idx, err := strconv.ParseInt(name[strings.LastIndex(name, "-")+1:], 10, 64)
	return idx, err == nil
}

func closeAll(sources []*FileSource) {
	for _, s := range sources {
		_ = s.Close()
	}
}
