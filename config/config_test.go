package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/bitcursor/config"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	require.NoError(t, cfg.Validate())

	for _, tc := range []struct {
		name   string
		modify func(*config.Config)
	}{
		{"width too small", func(c *config.Config) { c.Width = 0 }},
		{"width too large", func(c *config.Config) { c.Width = 33 }},
		{"negative count", func(c *config.Config) { c.Count = -1 }},
		{"negative skip", func(c *config.Config) { c.Skip = -1 }},
		{"unknown format", func(c *config.Config) { c.Format = "xml" }},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := config.DefaultConfig()
			tc.modify(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestValidate_Bounds(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Rewind = true
	cfg.Format = config.FormatPlain
	cfg.Width = config.MinWidth
	require.NoError(t, cfg.Validate())
	cfg.Width = config.MaxWidth
	require.NoError(t, cfg.Validate())
}

func TestDeriveLayout(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Width = 3
	require.Equal(t, config.Layout{NumValues: 10, TrailingBits: 2}, config.DeriveLayout(cfg, 4))

	cfg.Skip = 1
	require.Equal(t, config.Layout{NumValues: 8, TrailingBits: 0}, config.DeriveLayout(cfg, 4))

	cfg.Skip = 10
	require.Equal(t, config.Layout{}, config.DeriveLayout(cfg, 4))
}
