package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spacemeshos/bitcursor/internal/dump"
)

var numBits int

// bitsCmd represents the bits command.
var bitsCmd = &cobra.Command{
	Use:   "bits [file|dir]",
	Short: "Print the input as a string of bits",
	Long: `bits skips --skip bytes of the input and prints the next --num bits as 0s and 1s.
Fewer bits are printed if the input ends first.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, args)
		if err != nil {
			return err
		}
		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer logger.Sync()

		br, closer, err := openInput(cmd, cfg, logger)
		if err != nil {
			return err
		}
		defer closer.Close()

		if _, err := br.Skip(cfg.Skip); err != nil {
			return fmt.Errorf("failed to skip: %w", err)
		}
		n, err := dump.Bits(br, numBits, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		logger.Debug("bits printed", zap.Int("requested", numBits), zap.Int("printed", n))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bitsCmd)

	bitsCmd.Flags().IntVar(&numBits, "num", 64, "number of bits to print")
}
