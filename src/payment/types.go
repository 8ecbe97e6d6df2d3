package payment

import (
	"errors"
)

type Method string

const (
	MethodCard   Method = "card"
	MethodCrypto Method = "crypto"
)

// Pay currencies accepted by the crypto provider
type CryptoCurrency string

const (
	CryptoCurrencyBtc  CryptoCurrency = "BTC"
	CryptoCurrencyUsdt CryptoCurrency = "USDTTRC20"
)

var (
	ErrUnknownMethod         = errors.New("unknown payment method")
	ErrUnknownCryptoCurrency = errors.New("unknown crypto currency")
	ErrInvalidTransition     = errors.New("invalid payment status transition")
	ErrSubmissionNotFound    = errors.New("submission not found")
)

// Session is a started checkout at one of the providers. CheckoutUrl is where
// the client gets redirected to pay.
type Session struct {
	SubmissionId string `json:"submission_id"`
	Method       Method `json:"method"`
	OrderId      string `json:"order_id"`
	ProviderId   string `json:"provider_id"`
	CheckoutUrl  string `json:"checkout_url"`
}

func ParseMethod(s string) (method Method, err error) {
	method = Method(s)
	switch method {
	case MethodCard, MethodCrypto:
		return
	}
	err = ErrUnknownMethod
	return
}

func ParseCryptoCurrency(s string) (currency CryptoCurrency, err error) {
	currency = CryptoCurrency(s)
	switch currency {
	case CryptoCurrencyBtc, CryptoCurrencyUsdt:
		return
	}
	err = ErrUnknownCryptoCurrency
	return
}
