package model

import "time"

const TableUploadedDocuments = "uploaded_documents"

// Metadata of one uploaded file, tagged with the form field it came from
// (e.g. kycProofOfIdentity, businessPlanGuide)
type UploadedDocument struct {
	Id               int       `gorm:"primaryKey" json:"id"`
	SubmissionId     string    `json:"submission_id"`
	FieldName        string    `json:"field_name"`
	OriginalFilename string    `json:"original_filename"`
	FilePath         string    `json:"file_path"`
	FileSize         int64     `json:"file_size"`
	MimeType         string    `json:"mime_type"`
	CreatedAt        time.Time `json:"created_at"`
}

func (UploadedDocument) TableName() string {
	return TableUploadedDocuments
}
