package cmd

import (
	"github.com/knightsbridge-digital/intake/src/utils/logger"
	"github.com/knightsbridge-digital/intake/src/utils/model"

	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(migrateCmd)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		err = model.Migrate(ctx, conf)
		if err != nil {
			return
		}
		logger.NewSublogger("migrate-cmd").Info("Migrations applied")
		return
	},
}
