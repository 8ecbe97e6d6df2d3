package model

const TableWebsitePlans = "website_plans"

type WebsitePlan struct {
	Id           int    `gorm:"primaryKey" json:"id"`
	SubmissionId string `json:"submission_id"`
	Enabled      bool   `json:"enabled"`
	Guidelines   string `json:"guidelines"`
}

func (WebsitePlan) TableName() string {
	return TableWebsitePlans
}
