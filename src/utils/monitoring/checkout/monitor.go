package monitor_checkout

import (
	"math"
	"net/http"
	"time"

	"github.com/knightsbridge-digital/intake/src/utils/monitoring/report"
	"github.com/knightsbridge-digital/intake/src/utils/task"

	"github.com/gammazero/deque"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Stores and computes monitor counters
type Monitor struct {
	*task.Task

	Report report.Report

	historySize int

	collector *Collector

	// Submission processing speed
	SubmissionCounts *deque.Deque[uint64]
}

func NewMonitor() (self *Monitor) {
	self = new(Monitor)

	self.Report = report.Report{
		Run:      &report.RunReport{},
		Checkout: &report.CheckoutReport{},
		Payment:  &report.PaymentReport{},
	}

	self.Report.Run.State.StartTimestamp.Store(time.Now().Unix())

	self.collector = NewCollector().WithMonitor(self)

	self.Task = task.NewTask(nil, "monitor").
		WithPeriodicSubtaskFunc(time.Minute, self.monitorSubmissions)
	return
}

func (self *Monitor) WithMaxHistorySize(maxHistorySize int) *Monitor {
	self.historySize = maxHistorySize

	self.SubmissionCounts = deque.New[uint64](self.historySize)

	return self
}

func (self *Monitor) GetReport() *report.Report {
	return &self.Report
}

func (self *Monitor) GetPrometheusCollector() (collector prometheus.Collector) {
	return self.collector
}

func round(f float64) float64 {
	return math.Round(f*100) / 100
}

// Measure submission processing speed
func (self *Monitor) monitorSubmissions() (err error) {
	loaded := self.Report.Checkout.State.SubmissionsSaved.Load()
	if loaded == 0 {
		// Neglect the first 0
		return
	}

	self.SubmissionCounts.PushBack(loaded)
	if self.SubmissionCounts.Len() > self.historySize {
		self.SubmissionCounts.PopFront()
	}
	value := float64(self.SubmissionCounts.Back()-self.SubmissionCounts.Front()) / float64(self.SubmissionCounts.Len())
	self.Report.Checkout.State.AverageSubmissionsSavedPerMinute.Store(round(value))
	return
}

func (self *Monitor) IsOK() bool {
	// The intake is demand-driven, an idle service is a healthy service.
	// Only report a problem when the database keeps rejecting writes.
	return self.Report.Checkout.Errors.DbSubmissionInsert.Load() == 0 ||
		self.Report.Checkout.State.SubmissionsSaved.Load() > 0
}

func (self *Monitor) OnGetState(c *gin.Context) {
	self.Report.Run.State.UpForSeconds.Store(uint64(time.Now().Unix() - self.Report.Run.State.StartTimestamp.Load()))
	c.JSON(http.StatusOK, &self.Report)
}

func (self *Monitor) OnGetHealth(c *gin.Context) {
	if self.IsOK() {
		c.Status(http.StatusOK)
	} else {
		c.Status(http.StatusServiceUnavailable)
	}
}
