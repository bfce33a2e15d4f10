package compress

import (
	"fmt"
	"os"

	"hufftext/internal/logging"
	"hufftext/pkg"

	"github.com/c2h5oh/datasize"
	"github.com/spf13/cobra"
)

var (
	format string
	wrap   int
)

var CompressCmd = &cobra.Command{
	Use:   "compress [input] [output]",
	Short: "Compress a file",
	Long:  "Compress a file with a Huffman code built from its byte frequencies.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger := logging.New(verbose)
		in, out := args[0], args[1]

		f, err := pkg.ParseFormat(format)
		if err != nil {
			logger.Error("Invalid flag", "err", err)
			os.Exit(2)
		}

		stats, err := pkg.Compress(in, out, pkg.CompressOptions{Format: f, Wrap: wrap})
		if err != nil {
			logger.Error("Compression failed", "input", in, "err", err)
			os.Exit(1)
		}
		logger.Debug("Compressed", "symbols", stats.Symbols, "bits", stats.EncodedBits, "format", stats.Format)
		fmt.Printf("Compression complete! Saved %s to %s (%s -> %s, %.1f%%)\n", in, out,
			datasize.ByteSize(stats.RawSize).HumanReadable(),
			datasize.ByteSize(stats.CompressedSize).HumanReadable(),
			stats.Ratio()*100)
	},
}

func init() {
	CompressCmd.Flags().StringVarP(&format, "format", "f", "text", "Output layout: text|packed")
	CompressCmd.Flags().IntVarP(&wrap, "wrap", "W", 0, "Wrap the text bit block every N characters (0 = one line)")
}
