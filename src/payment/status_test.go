package payment

import (
	"testing"

	"github.com/knightsbridge-digital/intake/src/utils/model"

	"github.com/stretchr/testify/suite"
)

func TestStatusSuite(t *testing.T) {
	suite.Run(t, new(StatusSuite))
}

type StatusSuite struct {
	suite.Suite
}

func allStatuses() []model.PaymentStatus {
	return []model.PaymentStatus{
		model.PaymentStatusPending,
		model.PaymentStatusProcessing,
		model.PaymentStatusCompleted,
		model.PaymentStatusCancelled,
		model.PaymentStatusExpired,
	}
}

func (self *StatusSuite) TestSameStatusAlwaysAllowed() {
	for _, status := range allStatuses() {
		self.True(CanTransition(status, status), string(status))
	}
}

func (self *StatusSuite) TestTerminalStatusesNeverMove() {
	terminal := []model.PaymentStatus{
		model.PaymentStatusCompleted,
		model.PaymentStatusCancelled,
		model.PaymentStatusExpired,
	}
	for _, from := range terminal {
		for _, to := range allStatuses() {
			if from == to {
				continue
			}
			self.False(CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func (self *StatusSuite) TestPendingMovesAnywhere() {
	for _, to := range allStatuses() {
		self.True(CanTransition(model.PaymentStatusPending, to), string(to))
	}
}

func (self *StatusSuite) TestProcessingOnlyMovesForward() {
	self.False(CanTransition(model.PaymentStatusProcessing, model.PaymentStatusPending))
	self.True(CanTransition(model.PaymentStatusProcessing, model.PaymentStatusCompleted))
	self.True(CanTransition(model.PaymentStatusProcessing, model.PaymentStatusCancelled))
	self.True(CanTransition(model.PaymentStatusProcessing, model.PaymentStatusExpired))
}

func (self *StatusSuite) TestParseMethod() {
	method, err := ParseMethod("card")
	self.NoError(err)
	self.Equal(MethodCard, method)

	method, err = ParseMethod("crypto")
	self.NoError(err)
	self.Equal(MethodCrypto, method)

	_, err = ParseMethod("barter")
	self.ErrorIs(err, ErrUnknownMethod)
}

func (self *StatusSuite) TestParseCryptoCurrency() {
	currency, err := ParseCryptoCurrency("BTC")
	self.NoError(err)
	self.Equal(CryptoCurrencyBtc, currency)

	currency, err = ParseCryptoCurrency("USDTTRC20")
	self.NoError(err)
	self.Equal(CryptoCurrencyUsdt, currency)

	_, err = ParseCryptoCurrency("DOGE")
	self.ErrorIs(err, ErrUnknownCryptoCurrency)
}
