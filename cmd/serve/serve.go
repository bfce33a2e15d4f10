package serve

import (
	"os"

	"hufftext/internal/logging"
	"hufftext/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var addr string

var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve compress/decompress over HTTP",
	Long:  "Start an HTTP server that compresses and decompresses uploaded files.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger := logging.New(verbose)

		if !verbose {
			gin.SetMode(gin.ReleaseMode)
		}
		r := server.New(server.Dependencies{
			Handler: server.NewHandler(logger),
			Logger:  logger,
		})
		r.MaxMultipartMemory = server.MaxUpload

		logger.Info("Starting server", "addr", addr)
		if err := r.Run(addr); err != nil {
			logger.Error("Server stopped", "err", err)
			os.Exit(1)
		}
	},
}

func init() {
	ServeCmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "Listen address")
}
