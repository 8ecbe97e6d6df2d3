package cmd

import (
	"github.com/knightsbridge-digital/intake/src/payment"
	"github.com/knightsbridge-digital/intake/src/utils/model"
	monitor_checkout "github.com/knightsbridge-digital/intake/src/utils/monitoring/checkout"

	"github.com/robfig/cron"
	"github.com/spf13/cobra"
)

var sweepOnce bool

func init() {
	sweepCmd.Flags().BoolVar(&sweepOnce, "once", false, "run a single sweep and exit")
	RootCmd.AddCommand(sweepCmd)
}

// Standalone expiry sweep, for deployments that keep the API serving and the
// housekeeping in separate processes
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Expire submissions that sat unpaid past the expiry window",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		monitor := monitor_checkout.NewMonitor().
			WithMaxHistorySize(30)

		db, err := model.NewConnection(ctx, conf, "sweep")
		if err != nil {
			return
		}
		defer func() {
			sqlDb, dbErr := db.DB()
			if dbErr == nil {
				sqlDb.Close()
			}
		}()

		sweeper := payment.NewSweeper(conf).
			WithDB(db).
			WithMonitor(monitor)

		if sweepOnce {
			sweeper.RunNow()
			return
		}

		scheduler := cron.New()
		err = scheduler.AddFunc(conf.Checkout.SweepSchedule, sweeper.RunNow)
		if err != nil {
			return
		}
		scheduler.Start()
		defer scheduler.Stop()

		<-ctx.Done()
		return
	},
}
