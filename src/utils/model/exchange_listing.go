package model

const (
	TableExchangeListings            = "exchange_listings"
	TableExchangeListingsPreferences = "exchange_listings_preferences"
)

// One row per selected exchange
type ExchangeListing struct {
	Id           int    `gorm:"primaryKey" json:"id"`
	SubmissionId string `json:"submission_id"`
	ExchangeName string `json:"exchange_name"`
}

func (ExchangeListing) TableName() string {
	return TableExchangeListings
}

type ExchangeListingsPreferences struct {
	Id           int    `gorm:"primaryKey" json:"id"`
	SubmissionId string `json:"submission_id"`
	Preferences  string `json:"preferences"`
}

func (ExchangeListingsPreferences) TableName() string {
	return TableExchangeListingsPreferences
}
