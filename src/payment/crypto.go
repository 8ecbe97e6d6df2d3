package payment

import (
	"context"
	"fmt"

	"github.com/knightsbridge-digital/intake/src/utils/config"
	"github.com/knightsbridge-digital/intake/src/utils/logger"
	"github.com/knightsbridge-digital/intake/src/utils/task"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// CryptoClient creates hosted crypto invoices, priced in USD and paid in the
// selected currency
type CryptoClient struct {
	client *resty.Client
	config *config.Payment
	log    *logrus.Entry
}

type cryptoInvoiceRequest struct {
	PriceAmount      int64  `json:"price_amount"`
	PriceCurrency    string `json:"price_currency"`
	PayCurrency      string `json:"pay_currency"`
	OrderId          string `json:"order_id"`
	OrderDescription string `json:"order_description"`
	SuccessUrl       string `json:"success_url"`
	CancelUrl        string `json:"cancel_url"`
}

type cryptoInvoice struct {
	Id         string `json:"id"`
	InvoiceUrl string `json:"invoice_url"`
}

func NewCryptoClient(config *config.Payment) (self *CryptoClient) {
	self = new(CryptoClient)
	self.config = config
	self.log = logger.NewSublogger("crypto-client")

	self.client = resty.New().
		SetBaseURL(config.CryptoUrl).
		SetTimeout(config.RequestTimeout).
		SetHeader("x-api-key", config.CryptoApiKey)

	return
}

func (self *CryptoClient) CreateInvoice(ctx context.Context, submissionId, orderId string, amount int64, currency CryptoCurrency) (out *Session, err error) {
	request := cryptoInvoiceRequest{
		PriceAmount:      amount,
		PriceCurrency:    "usd",
		PayCurrency:      string(currency),
		OrderId:          orderId,
		OrderDescription: "Token launch services",
		SuccessUrl:       fmt.Sprintf("%s/payment-success?submissionId=%s", self.config.PublicUrl, submissionId),
		CancelUrl:        fmt.Sprintf("%s/payment-cancelled?submissionId=%s", self.config.PublicUrl, submissionId),
	}

	var invoice *cryptoInvoice
	err = task.NewRetry().
		WithContext(ctx).
		WithMaxInterval(self.config.BackoffMaxInterval).
		WithMaxElapsedTime(self.config.BackoffMaxElapsedTime).
		WithOnError(func(err error) {
			self.log.WithError(err).Warn("Failed to create crypto invoice, retrying")
		}).
		Run(func() (err error) {
			resp, err := self.client.R().
				SetContext(ctx).
				SetBody(&request).
				SetResult(cryptoInvoice{}).
				Post("/v1/invoice")
			if err != nil {
				return
			}
			if !resp.IsSuccess() {
				err = fmt.Errorf("crypto invoice request failed with status %d", resp.StatusCode())
				return
			}

			var ok bool
			invoice, ok = resp.Result().(*cryptoInvoice)
			if !ok || invoice.InvoiceUrl == "" {
				err = fmt.Errorf("failed to parse crypto invoice response")
				return
			}
			return
		})
	if err != nil {
		return
	}

	out = &Session{
		SubmissionId: submissionId,
		Method:       MethodCrypto,
		OrderId:      orderId,
		ProviderId:   invoice.Id,
		CheckoutUrl:  invoice.InvoiceUrl,
	}
	return
}
