package config

import (
	"github.com/spf13/viper"
)

type Storage struct {
	// Directory the document blobs are written to
	Dir string

	// Public base URL the stored documents are served under
	PublicUrl string
}

func setStorageDefaults() {
	viper.SetDefault("Storage.Dir", "./form-documents")
	viper.SetDefault("Storage.PublicUrl", "http://localhost:4100/files")
}
