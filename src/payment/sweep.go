package payment

import (
	"context"
	"time"

	"github.com/knightsbridge-digital/intake/src/utils/config"
	"github.com/knightsbridge-digital/intake/src/utils/model"
	"github.com/knightsbridge-digital/intake/src/utils/monitoring"
	"github.com/knightsbridge-digital/intake/src/utils/task"

	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

const sweepThrottleKey = "sweep"

// Sweeper expires submissions that sat unpaid past the expiry window.
// It runs periodically and can be nudged by the admin listing, the nudge is
// throttled so a busy dashboard doesn't hammer the database.
type Sweeper struct {
	*task.Task

	db       *gorm.DB
	monitor  monitoring.Monitor
	throttle *cache.Cache
}

func NewSweeper(config *config.Config) (self *Sweeper) {
	self = new(Sweeper)

	self.throttle = cache.New(config.Checkout.SweepThrottle, 2*config.Checkout.SweepThrottle)

	self.Task = task.NewTask(config, "sweeper").
		WithPeriodicSubtaskFunc(config.Checkout.SweepInterval, self.sweep)

	return
}

func (self *Sweeper) WithDB(db *gorm.DB) *Sweeper {
	self.db = db
	return self
}

func (self *Sweeper) WithMonitor(monitor monitoring.Monitor) *Sweeper {
	self.monitor = monitor
	return self
}

// RunNow sweeps immediately unless a sweep already ran within the throttle
// window
func (self *Sweeper) RunNow() {
	_, found := self.throttle.Get(sweepThrottleKey)
	if found {
		return
	}
	err := self.sweep()
	if err != nil {
		self.Log.WithError(err).Error("On-demand sweep failed")
	}
}

func (self *Sweeper) sweep() (err error) {
	self.throttle.SetDefault(sweepThrottleKey, time.Now())

	ctx, cancel := context.WithTimeout(self.Ctx, self.Config.Checkout.SweepTimeout)
	defer cancel()

	cutoff := time.Now().Add(-self.Config.Checkout.ExpiryWindow)
	result := self.db.WithContext(ctx).
		Table(model.TableFormSubmissions).
		Where("payment_status IN ?", []model.PaymentStatus{
			model.PaymentStatusPending,
			model.PaymentStatusProcessing,
		}).
		Where("created_at < ?", cutoff).
		Updates(map[string]interface{}{
			"payment_status": model.PaymentStatusExpired,
			"updated_at":     time.Now(),
		})
	err = result.Error
	if err != nil {
		self.Log.WithError(err).Error("Failed to expire stale submissions")
		self.monitor.GetReport().Payment.Errors.DbExpirySweep.Inc()
		return
	}

	self.monitor.GetReport().Payment.State.LastSweepTimestamp.Store(time.Now().Unix())
	if result.RowsAffected > 0 {
		self.Log.WithField("count", result.RowsAffected).Info("Expired stale submissions")
		self.monitor.GetReport().Payment.State.SubmissionsExpired.Add(uint64(result.RowsAffected))
	}
	return
}
