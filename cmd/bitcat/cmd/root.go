package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spacemeshos/smutil"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/bitcursor/bitstream"
	"github.com/spacemeshos/bitcursor/config"
	"github.com/spacemeshos/bitcursor/persistence"
)

var (
	// Version is the version of the binary.
	Version = "0.0.0"

	// Commit is the commit hash of the binary.
	Commit = ""

	cfgFile  string
	logLevel string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bitcat",
	Short: "Read files bit by bit",
	Long: `bitcat reads a file, a directory of numbered part files, or stdin,
and prints its content as values of an arbitrary bit width (1 to 32 bits).
Settings can be given as flags or in a configuration file (--config).`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = Version
	if Commit != "" {
		rootCmd.Version = fmt.Sprintf("%s (%s)", Version, Commit)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	defaults := config.DefaultConfig()
	flags := rootCmd.PersistentFlags()

	flags.StringVar(&cfgFile, "config", "", "Path to configuration file")
	flags.StringVar(&logLevel, "log-level", zapcore.InfoLevel.String(), "log level (debug, info, warn, error)")

	flags.Int("width", defaults.Width, "number of bits per value, 1 to 32")
	flags.Int("count", defaults.Count, "number of values to read, 0 reads until the end of the input")
	flags.Int64("skip", defaults.Skip, "number of bytes to skip before reading")
	flags.String("format", defaults.Format, "output format (table, plain)")
	flags.Bool("rewind", defaults.Rewind, "after reading, reset to the position following --skip and read again")
}

// loadConfig merges, from lowest to highest priority, the defaults, the
// configuration file and the flags set on the command line.
func loadConfig(cmd *cobra.Command, args []string) (config.Config, error) {
	vip := viper.New()
	if cfgFile != "" {
		vip.SetConfigFile(smutil.GetCanonicalPath(cfgFile))
		if err := vip.ReadInConfig(); err != nil {
			return config.Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := vip.BindPFlags(cmd.Flags()); err != nil {
		return config.Config{}, fmt.Errorf("failed to bind flags: %w", err)
	}

	cfg := config.DefaultConfig()
	if err := vip.Unmarshal(&cfg); err != nil {
		return config.Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if len(args) > 0 {
		cfg.Input = args[0]
	}
	if cfg.Input != "" {
		cfg.Input = smutil.GetCanonicalPath(cfg.Input)
	}

	return cfg, cfg.Validate()
}

func newLogger() (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	zapCfg := zap.Config{
		Level:    zap.NewAtomicLevelAt(level),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "T",
			LevelKey:       "L",
			NameKey:        "N",
			MessageKey:     "M",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return zapCfg.Build()
}

// openInput returns a bit reader over cfg.Input, or over the command input
// if it is empty. The returned closer must be called once done.
func openInput(cmd *cobra.Command, cfg config.Config, logger *zap.Logger) (*bitstream.BitReader, io.Closer, error) {
	if cfg.Input == "" {
		logger.Debug("reading stdin")
		return bitstream.NewReader(bufio.NewReader(cmd.InOrStdin()), bitstream.WithLogger(logger)), io.NopCloser(nil), nil
	}

	src, err := persistence.Open(cfg.Input)
	if err != nil {
		return nil, nil, err
	}
	size, err := src.Size()
	if err != nil {
		_ = src.Close()
		return nil, nil, err
	}
	layout := config.DeriveLayout(cfg, size)
	logger.Debug("opened input",
		zap.String("input", cfg.Input),
		zap.Int64("size", size),
		zap.Uint64("values", layout.NumValues),
		zap.Uint64("trailing bits", layout.TrailingBits),
	)

	return bitstream.NewReader(src, bitstream.WithLogger(logger)), src, nil
}
