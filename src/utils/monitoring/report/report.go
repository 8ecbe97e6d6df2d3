package report

type Report struct {
	Run      *RunReport      `json:"run,omitempty"`
	Checkout *CheckoutReport `json:"checkout,omitempty"`
	Payment  *PaymentReport  `json:"payment,omitempty"`
}
