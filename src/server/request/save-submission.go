package request

import (
	"github.com/knightsbridge-digital/intake/src/checkout"
)

// Document is client-side metadata of a file already uploaded through the
// uploads endpoint
type Document struct {
	FieldName        string `json:"fieldName"`
	OriginalFilename string `json:"originalFilename"`
	FilePath         string `json:"filePath"`
	FileSize         int64  `json:"fileSize"`
	MimeType         string `json:"mimeType"`
}

type SaveSubmission struct {
	Type      string             `json:"type"`
	Form      checkout.FormState `json:"form"`
	Documents []Document         `json:"documents"`
}

type GetQuote struct {
	Type string             `json:"type"`
	Form checkout.FormState `json:"form"`
}
