package payment

import (
	"context"
	"errors"
	"time"

	"github.com/knightsbridge-digital/intake/src/utils/logger"
	"github.com/knightsbridge-digital/intake/src/utils/model"
	"github.com/knightsbridge-digital/intake/src/utils/monitoring"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CanTransition tells whether a payment status change is allowed.
// Repeating the current status is always fine, terminal statuses never move,
// pending may go anywhere and processing only forward.
func CanTransition(from, to model.PaymentStatus) bool {
	switch {
	case from == to:
		return true
	case from.IsTerminal():
		return false
	case from == model.PaymentStatusPending:
		return true
	case from == model.PaymentStatusProcessing:
		return to.IsTerminal()
	}
	return false
}

// StatusUpdater applies provider callbacks to the database, guarding the
// transition rules under a row lock
type StatusUpdater struct {
	db      *gorm.DB
	monitor monitoring.Monitor
	log     *logrus.Entry
}

func NewStatusUpdater() (self *StatusUpdater) {
	self = new(StatusUpdater)
	self.log = logger.NewSublogger("payment-status")
	return
}

func (self *StatusUpdater) WithDB(db *gorm.DB) *StatusUpdater {
	self.db = db
	return self
}

func (self *StatusUpdater) WithMonitor(monitor monitoring.Monitor) *StatusUpdater {
	self.monitor = monitor
	return self
}

// UpdateStatus moves one submission to the given status. Repeated updates
// with the same status succeed without touching the row.
func (self *StatusUpdater) UpdateStatus(ctx context.Context, submissionId string, to model.PaymentStatus) (err error) {
	err = self.db.WithContext(ctx).Transaction(func(tx *gorm.DB) (err error) {
		var submission model.Submission
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Table(model.TableFormSubmissions).
			Where("id = ?", submissionId).
			First(&submission).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				err = ErrSubmissionNotFound
			}
			return
		}

		if submission.PaymentStatus == to {
			return
		}

		if !CanTransition(submission.PaymentStatus, to) {
			self.log.WithField("id", submissionId).
				WithField("from", submission.PaymentStatus).
				WithField("to", to).
				Warn("Rejected payment status transition")
			self.monitor.GetReport().Payment.Errors.InvalidTransition.Inc()
			err = ErrInvalidTransition
			return
		}

		err = tx.Table(model.TableFormSubmissions).
			Where("id = ?", submissionId).
			Updates(map[string]interface{}{
				"payment_status": to,
				"updated_at":     time.Now(),
			}).
			Error
		if err != nil {
			return
		}

		self.monitor.GetReport().Payment.State.StatusUpdates.Inc()
		return
	})

	if err != nil && !errors.Is(err, ErrInvalidTransition) && !errors.Is(err, ErrSubmissionNotFound) {
		self.log.WithError(err).WithField("id", submissionId).Error("Failed to update payment status")
		self.monitor.GetReport().Payment.Errors.DbStatusUpdate.Inc()
	}
	return
}
