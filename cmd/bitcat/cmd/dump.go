package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spacemeshos/bitcursor/internal/dump"
)

// dumpCmd represents the dump command.
var dumpCmd = &cobra.Command{
	Use:   "dump [file|dir]",
	Short: "Print the input as fixed-width values",
	Long: `dump skips --skip bytes of the input and prints --count values of --width bits,
most-significant bit first. A last value cut short by the end of the input is
printed with the bits that were available.`,
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

		stats, err := dump.Run(br, cfg, cmd.OutOrStdout(), logger)
		if err != nil {
			return err
		}
		for i, s := range stats {
			logger.Info("dump completed", zap.Int("pass", i+1), zap.Stringer("stats", s))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
