package config

import (
	"time"

	"github.com/spf13/viper"
)

type Rest struct {
	// REST API address, serves the intake endpoints and monitoring
	ListenAddress string

	// Maximum time a request handler may run
	RequestTimeout time.Duration

	// Max accepted size of one uploaded document
	MaxUploadSize int64
}

func setRestDefaults() {
	viper.SetDefault("Rest.ListenAddress", "0.0.0.0:4100")
	viper.SetDefault("Rest.RequestTimeout", "30s")
	viper.SetDefault("Rest.MaxUploadSize", 25<<20)
}
