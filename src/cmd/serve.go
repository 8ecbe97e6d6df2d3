package cmd

import (
	"github.com/knightsbridge-digital/intake/src/server"
	"github.com/knightsbridge-digital/intake/src/utils/logger"

	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the intake REST API",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		controller, err := server.NewController(conf)
		if err != nil {
			return
		}

		err = controller.Start()
		if err != nil {
			return
		}

		<-ctx.Done()

		controller.StopWait()

		return
	},
	PostRunE: func(cmd *cobra.Command, args []string) (err error) {
		log := logger.NewSublogger("serve-cmd")
		log.Debug("Finished serve command")
		return
	},
}
