package main

import (
	compress "hufftext/cmd/compress"
	decompress "hufftext/cmd/decompress"
	inspect "hufftext/cmd/inspect"
	menu "hufftext/cmd/menu"
	serve "hufftext/cmd/serve"
	version "hufftext/cmd/version"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hufftext",
	Short: "Huffman file compressor",
	Long:  "hufftext compresses single files losslessly with a Huffman prefix code.",
}

func main() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(compress.CompressCmd)
	rootCmd.AddCommand(decompress.DecompressCmd)
	rootCmd.AddCommand(inspect.InspectCmd)
	rootCmd.AddCommand(menu.MenuCmd)
	rootCmd.AddCommand(serve.ServeCmd)
	rootCmd.AddCommand(version.VersionCmd)
	rootCmd.Execute()
}
