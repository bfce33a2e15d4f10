package decompress

import (
	"fmt"
	"os"

	"hufftext/internal/logging"
	"hufftext/pkg"

	"github.com/spf13/cobra"
)

var DecompressCmd = &cobra.Command{
	Use:   "decompress [input] [output]",
	Short: "Decompress a file",
	Long:  "Rebuild the code tree from a compressed file's frequency table and restore the original bytes.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger := logging.New(verbose)
		in, out := args[0], args[1]

		stats, err := pkg.Decompress(in, out)
		if err != nil {
			logger.Error("Decompression failed", "input", in, "err", err)
			os.Exit(1)
		}
		logger.Debug("Decompressed", "format", stats.Format, "symbols", stats.Symbols, "bits", stats.EncodedBits)
		fmt.Printf("Decompression complete! Saved %s to %s\n", in, out)
	},
}
