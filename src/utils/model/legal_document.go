package model

const (
	TableLegalDocuments           = "legal_documents"
	TableLegalDocumentPreferences = "legal_document_preferences"
)

// One row per selected document type
type LegalDocument struct {
	Id           int    `gorm:"primaryKey" json:"id"`
	SubmissionId string `json:"submission_id"`
	DocumentType string `json:"document_type"`
}

func (LegalDocument) TableName() string {
	return TableLegalDocuments
}

type LegalDocumentPreferences struct {
	Id           int    `gorm:"primaryKey" json:"id"`
	SubmissionId string `json:"submission_id"`
	Preferences  string `json:"preferences"`
}

func (LegalDocumentPreferences) TableName() string {
	return TableLegalDocumentPreferences
}
