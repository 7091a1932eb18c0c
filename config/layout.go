package config

// Layout describes how a stream of a known size splits into values.
type Layout struct {
	// NumValues is the number of full-width values.
	NumValues uint64
	// TrailingBits is the width of the last, partial value. 0 if there is none.
	TrailingBits uint64
}

// DeriveLayout returns the layout of size bytes, after skipping cfg.Skip
// bytes, read as cfg.Width-bit values.
func DeriveLayout(cfg Config, size int64) Layout {
	remaining := size - cfg.Skip
	if remaining <= 0 || cfg.Width <= 0 {
		return Layout{}
	}

	totalBits := uint64(remaining) * 8
	return Layout{
		NumValues:    totalBits / uint64(cfg.Width),
		TrailingBits: totalBits % uint64(cfg.Width),
	}
}
