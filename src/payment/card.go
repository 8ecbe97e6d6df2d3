package payment

import (
	"context"
	"fmt"

	"github.com/knightsbridge-digital/intake/src/checkout"
	"github.com/knightsbridge-digital/intake/src/utils/config"
	"github.com/knightsbridge-digital/intake/src/utils/logger"
	"github.com/knightsbridge-digital/intake/src/utils/task"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// CardClient starts hosted card-checkout sessions. The API is form-encoded,
// one price_data line per quote item, amounts in the smallest currency unit.
type CardClient struct {
	client *resty.Client
	config *config.Payment
	log    *logrus.Entry
}

type cardSession struct {
	Id  string `json:"id"`
	Url string `json:"url"`
}

func NewCardClient(config *config.Payment) (self *CardClient) {
	self = new(CardClient)
	self.config = config
	self.log = logger.NewSublogger("card-client")

	self.client = resty.New().
		SetBaseURL(config.CardUrl).
		SetTimeout(config.RequestTimeout).
		SetAuthToken(config.CardSecretKey)

	return
}

func (self *CardClient) CreateSession(ctx context.Context, submissionId, orderId string, quote *checkout.Quote) (out *Session, err error) {
	form := map[string]string{
		"mode":                "payment",
		"client_reference_id": submissionId,
		"success_url":         fmt.Sprintf("%s/payment-success?submissionId=%s", self.config.PublicUrl, submissionId),
		"cancel_url":          fmt.Sprintf("%s/payment-cancelled?submissionId=%s", self.config.PublicUrl, submissionId),
	}
	for i, item := range quote.Items {
		prefix := fmt.Sprintf("line_items[%d]", i)
		form[prefix+"[quantity]"] = "1"
		form[prefix+"[price_data][currency]"] = "usd"
		form[prefix+"[price_data][product_data][name]"] = item.Name
		form[prefix+"[price_data][unit_amount]"] = fmt.Sprintf("%d", item.Price*100)
	}

	var session *cardSession
	err = task.NewRetry().
		WithContext(ctx).
		WithMaxInterval(self.config.BackoffMaxInterval).
		WithMaxElapsedTime(self.config.BackoffMaxElapsedTime).
		WithOnError(func(err error) {
			self.log.WithError(err).Warn("Failed to create card checkout session, retrying")
		}).
		Run(func() (err error) {
			resp, err := self.client.R().
				SetContext(ctx).
				SetFormData(form).
				SetResult(cardSession{}).
				Post("/v1/checkout/sessions")
			if err != nil {
				return
			}
			if !resp.IsSuccess() {
				err = fmt.Errorf("card checkout session request failed with status %d", resp.StatusCode())
				return
			}

			var ok bool
			session, ok = resp.Result().(*cardSession)
			if !ok || session.Url == "" {
				err = fmt.Errorf("failed to parse card checkout session response")
				return
			}
			return
		})
	if err != nil {
		return
	}

	out = &Session{
		SubmissionId: submissionId,
		Method:       MethodCard,
		OrderId:      orderId,
		ProviderId:   session.Id,
		CheckoutUrl:  session.Url,
	}
	return
}
