package server

import (
	"github.com/knightsbridge-digital/intake/src/checkout"
	"github.com/knightsbridge-digital/intake/src/payment"
	"github.com/knightsbridge-digital/intake/src/storage"
	"github.com/knightsbridge-digital/intake/src/utils/config"
	"github.com/knightsbridge-digital/intake/src/utils/model"
	monitor_checkout "github.com/knightsbridge-digital/intake/src/utils/monitoring/checkout"
	"github.com/knightsbridge-digital/intake/src/utils/task"
)

type Controller struct {
	*task.Task
}

// Sets up and runs the whole intake service: database, stores, payment
// clients, sweeper and the REST server
func NewController(config *config.Config) (self *Controller, err error) {
	self = new(Controller)

	self.Task = task.NewTask(config, "controller")

	monitor := monitor_checkout.NewMonitor().
		WithMaxHistorySize(30)

	db, err := model.NewConnection(self.Ctx, config, "serve")
	if err != nil {
		return
	}

	store := checkout.NewStore(config).
		WithDB(db).
		WithMonitor(monitor)

	fileStore := storage.NewFileStore(&config.Storage).
		WithMonitor(monitor)

	orchestrator := payment.NewOrchestrator(config).
		WithDB(db).
		WithMonitor(monitor)

	sweeper := payment.NewSweeper(config).
		WithDB(db).
		WithMonitor(monitor)

	server := NewServer(config).
		WithMonitor(monitor).
		WithStore(store).
		WithFileStore(fileStore).
		WithOrchestrator(orchestrator).
		WithSweeper(sweeper)

	self.Task = self.Task.
		WithSubtask(monitor.Task).
		WithSubtask(store.Task).
		WithSubtask(sweeper.Task).
		WithSubtask(server.Task).
		WithOnAfterStop(func() {
			sqlDb, err := db.DB()
			if err != nil {
				self.Log.WithError(err).Warn("Failed to get database handle on shutdown")
				return
			}
			err = sqlDb.Close()
			if err != nil {
				self.Log.WithError(err).Warn("Failed to close database connection")
			}
		})

	return
}
