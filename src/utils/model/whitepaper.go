package model

const TableWhitepapers = "whitepapers"

type Whitepaper struct {
	Id           int    `gorm:"primaryKey" json:"id"`
	SubmissionId string `json:"submission_id"`
	Pages        string `json:"pages"`
	Guidelines   string `json:"guidelines"`
}

func (Whitepaper) TableName() string {
	return TableWhitepapers
}
