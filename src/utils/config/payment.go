package config

import (
	"time"

	"github.com/spf13/viper"
)

type Payment struct {
	// Hosted card-checkout API
	CardUrl       string
	CardSecretKey string

	// Crypto invoice API, shared by all pay currencies
	CryptoUrl    string
	CryptoApiKey string

	// Base URL of this deployment, used to build success/cancel callback URLs
	PublicUrl string

	RequestTimeout time.Duration

	// Max time between provider call retries
	BackoffMaxInterval time.Duration

	// Max total time spent retrying one provider call. 0 means no limit.
	BackoffMaxElapsedTime time.Duration
}

func setPaymentDefaults() {
	viper.SetDefault("Payment.CardUrl", "https://api.stripe.com")
	viper.SetDefault("Payment.CardSecretKey", "")
	viper.SetDefault("Payment.CryptoUrl", "https://api.nowpayments.io")
	viper.SetDefault("Payment.CryptoApiKey", "")
	viper.SetDefault("Payment.PublicUrl", "http://localhost:3000")
	viper.SetDefault("Payment.RequestTimeout", "30s")
	viper.SetDefault("Payment.BackoffMaxInterval", "8s")
	viper.SetDefault("Payment.BackoffMaxElapsedTime", "45s")
}
