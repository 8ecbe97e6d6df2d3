package model

const (
	TableRaiseDocuments       = "raise_documents"
	TableRaiseDocumentRegions = "raise_document_regions"
)

// Contact details of the raise document section, one row per submission
type RaiseDocument struct {
	Id            int    `gorm:"primaryKey" json:"id"`
	SubmissionId  string `json:"submission_id"`
	Company       string `json:"company"`
	ContactName   string `json:"contact_name"`
	ContactPerson string `json:"contact_person"`
	Position      string `json:"position"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Website       string `json:"website"`
}

func (RaiseDocument) TableName() string {
	return TableRaiseDocuments
}

// One row per selected region
type RaiseDocumentRegion struct {
	Id           int    `gorm:"primaryKey" json:"id"`
	SubmissionId string `json:"submission_id"`
	Region       string `json:"region"`
}

func (RaiseDocumentRegion) TableName() string {
	return TableRaiseDocumentRegions
}
