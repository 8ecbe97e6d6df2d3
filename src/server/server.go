package server

import (
	"context"
	"net/http"
	"runtime"

	"github.com/knightsbridge-digital/intake/src/checkout"
	"github.com/knightsbridge-digital/intake/src/payment"
	"github.com/knightsbridge-digital/intake/src/storage"
	"github.com/knightsbridge-digital/intake/src/utils/config"
	"github.com/knightsbridge-digital/intake/src/utils/monitoring"
	"github.com/knightsbridge-digital/intake/src/utils/task"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Rest API server, serves the intake endpoints, the admin endpoints and the
// monitor counters
type Server struct {
	*task.Task

	httpServer *http.Server
	Router     *gin.Engine

	monitor      monitoring.Monitor
	store        *checkout.Store
	fileStore    *storage.FileStore
	orchestrator *payment.Orchestrator
	sweeper      *payment.Sweeper
}

func NewServer(config *config.Config) (self *Server) {
	self = new(Server)

	self.Task = task.NewTask(config, "server").
		WithSubtaskFunc(self.run).
		WithOnStop(self.stop)

	self.Router = gin.New()

	self.httpServer = &http.Server{
		Addr:    self.Config.Rest.ListenAddress,
		Handler: self.Router,
	}

	return
}

func (self *Server) WithMonitor(monitor monitoring.Monitor) *Server {
	self.monitor = monitor
	return self
}

func (self *Server) WithStore(store *checkout.Store) *Server {
	self.store = store
	return self
}

func (self *Server) WithFileStore(fileStore *storage.FileStore) *Server {
	self.fileStore = fileStore
	return self
}

func (self *Server) WithOrchestrator(orchestrator *payment.Orchestrator) *Server {
	self.orchestrator = orchestrator
	return self
}

func (self *Server) WithSweeper(sweeper *payment.Sweeper) *Server {
	self.sweeper = sweeper
	return self
}

func (self *Server) run() (err error) {
	if self.Config.IsDevelopment {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	if self.Config.Profiler.Enabled {
		runtime.SetBlockProfileRate(self.Config.Profiler.BlockProfileRate)
		pprof.Register(self.Router)
	}

	v1 := self.Router.Group("v1")
	{
		v1.POST("quote", self.onGetQuote)
		v1.POST("submissions", self.onSaveSubmission)
		v1.POST("contact", self.onContactMessage)

		v1.POST("payments", self.onCreatePayment)
		v1.POST("payments/status", self.onUpdatePaymentStatus)

		v1.POST("uploads/:field", self.onUploadDocument)
		v1.DELETE("uploads", self.onDeleteDocument)

		v1.GET("admin/submissions", self.onGetSubmissions)
		v1.GET("admin/credentials", self.onGetAdminCredentials)
		v1.PUT("admin/credentials", self.onUpdateAdminCredentials)

		v1.GET("health", self.monitor.OnGetHealth)
		v1.GET("state", self.monitor.OnGetState)
	}

	registry := prometheus.NewRegistry()
	err = registry.Register(self.monitor.GetPrometheusCollector())
	if err != nil {
		return
	}
	self.Router.GET("metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Stored documents get served straight from disk
	self.Router.Static("files", self.Config.Storage.Dir)

	self.Log.WithField("address", self.Config.Rest.ListenAddress).Info("Started REST server")
	err = self.httpServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		self.Log.WithError(err).Error("Failed to start REST server")
		return
	}
	return nil
}

func (self *Server) stop() {
	ctx, cancel := context.WithTimeout(context.Background(), self.Config.StopTimeout)
	defer cancel()

	err := self.httpServer.Shutdown(ctx)
	if err != nil {
		self.Log.WithError(err).Error("Failed to gracefully shutdown REST server")
		return
	}
}
