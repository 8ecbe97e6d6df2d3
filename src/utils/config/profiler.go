package config

import (
	"github.com/spf13/viper"
)

type Profiler struct {
	// Are profiling endpoints registered
	Enabled bool

	BlockProfileRate int
}

func setProfilerDefaults() {
	viper.SetDefault("Profiler.Enabled", "false")
	viper.SetDefault("Profiler.BlockProfileRate", "50")
}
