package inspect

import (
	"fmt"
	"os"
	"strconv"

	"hufftext/internal/logging"
	"hufftext/pkg"

	"github.com/c2h5oh/datasize"
	"github.com/spf13/cobra"
)

var InspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "View a compressed file",
	Long:  "Inspect the frequency table and code lengths of a compressed file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		file := args[0]
		quiet, _ := cmd.Flags().GetBool("quiet")
		verbose, _ := cmd.Flags().GetBool("verbose")

		rep, err := pkg.Inspect(file)
		if err != nil {
			logging.New(verbose).Error("Inspect failed", "file", file, "err", err)
			os.Exit(1)
		}

		fmt.Printf("File %s:\n", file)
		fmt.Printf("\tFormat: %s\n\tSymbols: %d\n\tOriginal: %s\n\tEncoded bits: %d\n\tCompressed: %s (%.1f%%)\n",
			rep.Format, rep.Symbols,
			datasize.ByteSize(rep.RawSize).HumanReadable(),
			rep.EncodedBits,
			datasize.ByteSize(rep.CompressedSize).HumanReadable(),
			rep.Ratio()*100)
		if quiet {
			return
		}

		fmt.Println("=====================")
		for i, e := range rep.Entries {
			fmt.Printf("%d:\t%-8s\tCount: %d\tCode: %s\n", i, strconv.Quote(string([]byte{e.Symbol})), e.Count, e.Code)
		}
	},
}

func init() {
	InspectCmd.Flags().BoolP("quiet", "Q", false, "Only print the summary")
}
