package config

import (
	"time"

	"github.com/spf13/viper"
)

type Checkout struct {
	// How long an unpaid submission may stay in pending/processing
	// before the sweep expires it
	ExpiryWindow time.Duration

	// How often the periodic sweep runs
	SweepInterval time.Duration

	// Min time between opportunistic sweeps triggered by admin listings
	SweepThrottle time.Duration

	// How long does the sweep wait for the query response
	SweepTimeout time.Duration

	// Cron expression used by the standalone sweep command
	SweepSchedule string

	// Number of workers saving uploaded-document metadata
	StoreNumWorkers int
}

func setCheckoutDefaults() {
	viper.SetDefault("Checkout.ExpiryWindow", "168h")
	viper.SetDefault("Checkout.SweepInterval", "1h")
	viper.SetDefault("Checkout.SweepThrottle", "1m")
	viper.SetDefault("Checkout.SweepTimeout", "90s")
	viper.SetDefault("Checkout.SweepSchedule", "@hourly")
	viper.SetDefault("Checkout.StoreNumWorkers", 2)
}
