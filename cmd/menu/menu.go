package menu

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"hufftext/internal/logging"
	"hufftext/pkg"

	"github.com/ledgerwatch/log/v3"
	"github.com/spf13/cobra"
)

var MenuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive compress/decompress menu",
	Long:  "Pick an operation from a numbered menu and enter the source and destination paths.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		Run(os.Stdin, cmd.OutOrStdout(), logging.New(verbose))
	},
}

// Run performs one menu selection. Failures are reported to out and logged;
// they never end the process.
func Run(in io.Reader, out io.Writer, logger log.Logger) {
	sc := bufio.NewScanner(in)
	prompt := func(label string) (string, bool) {
		fmt.Fprint(out, label)
		if !sc.Scan() {
			return "", false
		}
		return strings.TrimSpace(sc.Text()), true
	}

	fmt.Fprintln(out, "Huffman File Compressor")
	fmt.Fprintln(out, "1. Compress a file")
	fmt.Fprintln(out, "2. Decompress a file")
	choice, ok := prompt("Choose an option: ")
	if !ok {
		return
	}

	switch choice {
	case "1":
		src, ok := prompt("Enter source file: ")
		if !ok {
			return
		}
		dst, ok := prompt("Enter destination file: ")
		if !ok {
			return
		}
		if _, err := pkg.Compress(src, dst, pkg.CompressOptions{}); err != nil {
			logger.Error("Compression failed", "input", src, "err", err)
			fmt.Fprintf(out, "Error: %s\n", err)
			return
		}
		fmt.Fprintf(out, "Compression complete! Saved to %s\n", dst)
	case "2":
		src, ok := prompt("Enter compressed file: ")
		if !ok {
			return
		}
		dst, ok := prompt("Enter output file: ")
		if !ok {
			return
		}
		if _, err := pkg.Decompress(src, dst); err != nil {
			logger.Error("Decompression failed", "input", src, "err", err)
			fmt.Fprintf(out, "Error: %s\n", err)
			return
		}
		fmt.Fprintf(out, "Decompression complete! Saved to %s\n", dst)
	default:
		fmt.Fprintln(out, "Invalid selection!")
	}
}
