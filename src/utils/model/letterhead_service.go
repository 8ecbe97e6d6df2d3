package model

const TableLetterheadServices = "letterhead_services"

type LetterheadService struct {
	Id           int    `gorm:"primaryKey" json:"id"`
	SubmissionId string `json:"submission_id"`
	Enabled      bool   `json:"enabled"`
	Guidelines   string `json:"guidelines"`
}

func (LetterheadService) TableName() string {
	return TableLetterheadServices
}
