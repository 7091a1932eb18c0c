// Package dump renders the content of a bit stream as fixed-width values.
package dump

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"code.cloudfoundry.org/bytefmt"
	"github.com/olekukonko/tablewriter"
	"go.uber.org/zap"

	"github.com/spacemeshos/bitcursor/bitstream"
	"github.com/spacemeshos/bitcursor/config"
	"github.com/spacemeshos/bitcursor/shared"
)

// Stats summarizes one pass over the stream.
type Stats struct {
	Values int
	Bits   uint64
	// Partial is set if the last value was cut short by the end of the stream.
	Partial bool
}

func (s Stats) String() string {
	str := fmt.Sprintf("%d values, %s read", s.Values, bytefmt.ByteSize((s.Bits+7)/8))
	if s.Partial {
		str += ", last value partial"
	}
	return str
}

// Value is a single value read from the stream.
type Value struct {
	// Offset is the position of the first bit of the value, relative to
	// where the pass started.
	Offset uint64
	Bits   int
	V      uint32
}

// Values reads cfg.Count values of cfg.Width bits (all values if cfg.Count
// is 0) from the current position of br.
func Values(br *bitstream.BitReader, cfg config.Config) ([]Value, error) {
	gsReader, err := shared.NewGranSpecificReader(br, cfg.Width)
	if err != nil {
		return nil, err
	}

	var values []Value
	var offset uint64
	for cfg.Count == 0 || len(values) < cfg.Count {
		v, err := gsReader.ReadNext()
		var partial *shared.PartialItemError
		switch {
		case err == nil:
			values = append(values, Value{Offset: offset, Bits: cfg.Width, V: v})
			offset += uint64(cfg.Width)
		case errors.As(err, &partial):
			values = append(values, Value{Offset: offset, Bits: partial.Bits, V: v})
			return values, nil
		case err == io.EOF:
			return values, nil
		default:
			return values, err
		}
	}

	return values, nil
}

// Dump writes the values read from br to w, in cfg.Format.
func Dump(br *bitstream.BitReader, cfg config.Config, w io.Writer, logger *zap.Logger) (Stats, error) {
	values, err := Values(br, cfg)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to read values: %w", err)
	}

	var stats Stats
	for _, v := range values {
		stats.Values++
		stats.Bits += uint64(v.Bits)
		stats.Partial = v.Bits < cfg.Width
	}
	logger.Debug("values read",
		zap.Int("values", stats.Values),
		zap.Uint64("bits", stats.Bits),
		zap.Bool("partial", stats.Partial),
	)

	switch cfg.Format {
	case config.FormatPlain:
		for _, v := range values {
			if _, err := fmt.Fprintf(w, "%d\t%s\t%d\n", v.Offset, FormatBits(v.V, v.Bits), v.V); err != nil {
				return stats, err
			}
		}
	default:
		table := tablewriter.NewWriter(w)
		table.SetAutoFormatHeaders(false)
		table.SetAutoWrapText(false)
		table.SetHeader([]string{"Offset", "Bits", "Dec", "Hex"})
		table.SetAlignment(tablewriter.ALIGN_RIGHT)
		for _, v := range values {
			table.Append([]string{
				strconv.FormatUint(v.Offset, 10),
				FormatBits(v.V, v.Bits),
				strconv.FormatUint(uint64(v.V), 10),
				fmt.Sprintf("%#x", v.V),
			})
		}
		table.SetFooter([]string{"", "", "", stats.String()})
		table.Render()
	}

	return stats, nil
}

// Bits writes up to n bits read from br to w as a single line of 0s and 1s,
// and returns how many were written. An exhausted stream writes nothing.
func Bits(br *bitstream.BitReader, n int, w io.Writer) (int, error) {
	bits, err := br.ReadBitsToSlice(n)
	if err == io.EOF {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	if _, err := fmt.Fprintln(w, FormatBitSlice(bits)); err != nil {
		return 0, err
	}
	return len(bits), nil
}

// Run skips cfg.Skip bytes of br and dumps its values. If cfg.Rewind is set,
// the stream is reset to the position after the skip and dumped once more.
func Run(br *bitstream.BitReader, cfg config.Config, w io.Writer, logger *zap.Logger) ([]Stats, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Skip > 0 {
		skipped, err := br.Skip(cfg.Skip)
		if err != nil {
			return nil, fmt.Errorf("failed to skip: %w", err)
		}
		if skipped < cfg.Skip {
			logger.Warn("input shorter than skip", zap.Int64("skip", cfg.Skip), zap.Int64("skipped", skipped))
		}
	}

	if cfg.Rewind {
		if !br.MarkSupported() {
			return nil, fmt.Errorf("input can't be rewound: %w", bitstream.ErrResetNotSupported)
		}
		br.Mark()
	}

	stats, err := Dump(br, cfg, w, logger)
	if err != nil {
		return nil, err
	}
	if !cfg.Rewind {
		return []Stats{stats}, nil
	}

	logger.Info("rewinding input", zap.Stringer("first pass", stats))
	if err := br.Reset(); err != nil {
		return nil, fmt.Errorf("failed to rewind: %w", err)
	}
	again, err := Dump(br, cfg, w, logger)
	if err != nil {
		return nil, err
	}
	return []Stats{stats, again}, nil
}
