package payment

import (
	"context"
	"errors"

	"github.com/knightsbridge-digital/intake/src/checkout"
	"github.com/knightsbridge-digital/intake/src/utils/config"
	"github.com/knightsbridge-digital/intake/src/utils/logger"
	"github.com/knightsbridge-digital/intake/src/utils/model"
	"github.com/knightsbridge-digital/intake/src/utils/monitoring"

	"github.com/rs/xid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Orchestrator drives one submission through checkout, picking the right
// provider and recording the status change
type Orchestrator struct {
	db      *gorm.DB
	monitor monitoring.Monitor
	log     *logrus.Entry

	card    *CardClient
	crypto  *CryptoClient
	updater *StatusUpdater
}

func NewOrchestrator(config *config.Config) (self *Orchestrator) {
	self = new(Orchestrator)
	self.log = logger.NewSublogger("payment")
	self.card = NewCardClient(&config.Payment)
	self.crypto = NewCryptoClient(&config.Payment)
	self.updater = NewStatusUpdater()
	return
}

func (self *Orchestrator) WithDB(db *gorm.DB) *Orchestrator {
	self.db = db
	self.updater = self.updater.WithDB(db)
	return self
}

func (self *Orchestrator) WithMonitor(monitor monitoring.Monitor) *Orchestrator {
	self.monitor = monitor
	self.updater = self.updater.WithMonitor(monitor)
	return self
}

func (self *Orchestrator) WithCardClient(card *CardClient) *Orchestrator {
	self.card = card
	return self
}

func (self *Orchestrator) WithCryptoClient(crypto *CryptoClient) *Orchestrator {
	self.crypto = crypto
	return self
}

// CreatePayment starts a checkout session for a saved submission and moves it
// to processing. Submissions that already finished can't be paid again.
func (self *Orchestrator) CreatePayment(ctx context.Context, submissionId string, method Method, currency CryptoCurrency) (out *Session, err error) {
	var submission model.Submission
	err = self.db.WithContext(ctx).
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

	if submission.PaymentStatus.IsTerminal() {
		err = ErrInvalidTransition
		return
	}

	orderId := "order_" + xid.New().String()

	quote := checkout.Quote{
		Items: []checkout.LineItem{{Name: "Token launch services", Price: submission.PaymentAmount}},
		Total: submission.PaymentAmount,
	}

	switch method {
	case MethodCard:
		out, err = self.card.CreateSession(ctx, submissionId, orderId, &quote)
		if err != nil {
			self.monitor.GetReport().Payment.Errors.CardProvider.Inc()
			return
		}
	case MethodCrypto:
		out, err = self.crypto.CreateInvoice(ctx, submissionId, orderId, submission.PaymentAmount, currency)
		if err != nil {
			self.monitor.GetReport().Payment.Errors.CryptoProvider.Inc()
			return
		}
	default:
		err = ErrUnknownMethod
		return
	}

	err = self.updater.UpdateStatus(ctx, submissionId, model.PaymentStatusProcessing)
	if err != nil {
		return
	}

	self.log.WithField("id", submissionId).
		WithField("method", method).
		WithField("order_id", orderId).
		Info("Created checkout session")
	self.monitor.GetReport().Payment.State.PaymentsCreated.Inc()
	return
}

// UpdateStatus applies a provider callback
func (self *Orchestrator) UpdateStatus(ctx context.Context, submissionId string, to model.PaymentStatus) (err error) {
	return self.updater.UpdateStatus(ctx, submissionId, to)
}
