package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/knightsbridge-digital/intake/src/checkout"
	"github.com/knightsbridge-digital/intake/src/utils/config"

	"github.com/stretchr/testify/suite"
)

func TestProviderSuite(t *testing.T) {
	suite.Run(t, new(ProviderSuite))
}

type ProviderSuite struct {
	suite.Suite
}

func decodeJson(r *http.Request, out interface{}) error {
	return json.NewDecoder(r.Body).Decode(out)
}

func (self *ProviderSuite) paymentConfig(url string) *config.Payment {
	return &config.Payment{
		CardUrl:               url,
		CardSecretKey:         "sk_test_123",
		CryptoUrl:             url,
		CryptoApiKey:          "api_key_123",
		PublicUrl:             "https://intake.example.com",
		RequestTimeout:        5 * time.Second,
		BackoffMaxInterval:    10 * time.Millisecond,
		BackoffMaxElapsedTime: 100 * time.Millisecond,
	}
}

func (self *ProviderSuite) TestCardSession() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		self.Equal("/v1/checkout/sessions", r.URL.Path)
		self.Equal("Bearer sk_test_123", r.Header.Get("Authorization"))
		self.NoError(r.ParseForm())
		self.Equal("payment", r.PostFormValue("mode"))
		self.Equal("sub-1", r.PostFormValue("client_reference_id"))
		self.Equal("https://intake.example.com/payment-success?submissionId=sub-1", r.PostFormValue("success_url"))
		self.Equal("https://intake.example.com/payment-cancelled?submissionId=sub-1", r.PostFormValue("cancel_url"))
		self.Equal("Mint Token", r.PostFormValue("line_items[0][price_data][product_data][name]"))
		self.Equal("7500", r.PostFormValue("line_items[0][price_data][unit_amount]"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"cs_test_1","url":"https://pay.example.com/cs_test_1"}`))
	}))
	defer server.Close()

	client := NewCardClient(self.paymentConfig(server.URL))
	quote := checkout.Quote{
		Items: []checkout.LineItem{{Name: "Mint Token", Price: 75}},
		Total: 75,
	}
	session, err := client.CreateSession(context.Background(), "sub-1", "order_1", &quote)
	self.NoError(err)
	self.Equal(MethodCard, session.Method)
	self.Equal("cs_test_1", session.ProviderId)
	self.Equal("https://pay.example.com/cs_test_1", session.CheckoutUrl)
	self.Equal("order_1", session.OrderId)
}

func (self *ProviderSuite) TestCardSessionRetriesThenFails() {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewCardClient(self.paymentConfig(server.URL))
	quote := checkout.Quote{Items: []checkout.LineItem{{Name: "Mint Token", Price: 75}}, Total: 75}
	_, err := client.CreateSession(context.Background(), "sub-2", "order_2", &quote)
	self.Error(err)
	self.Greater(calls, 1)
}

func (self *ProviderSuite) TestCryptoInvoice() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		self.Equal("/v1/invoice", r.URL.Path)
		self.Equal("api_key_123", r.Header.Get("x-api-key"))

		var request cryptoInvoiceRequest
		self.NoError(decodeJson(r, &request))
		self.Equal(int64(175), request.PriceAmount)
		self.Equal("usd", request.PriceCurrency)
		self.Equal("USDTTRC20", request.PayCurrency)
		self.Equal("order_3", request.OrderId)
		self.Equal("https://intake.example.com/payment-success?submissionId=sub-3", request.SuccessUrl)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"inv_1","invoice_url":"https://pay.example.com/inv_1"}`))
	}))
	defer server.Close()

	client := NewCryptoClient(self.paymentConfig(server.URL))
	session, err := client.CreateInvoice(context.Background(), "sub-3", "order_3", 175, CryptoCurrencyUsdt)
	self.NoError(err)
	self.Equal(MethodCrypto, session.Method)
	self.Equal("inv_1", session.ProviderId)
	self.Equal("https://pay.example.com/inv_1", session.CheckoutUrl)
}
