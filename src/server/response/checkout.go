package response

import (
	"github.com/knightsbridge-digital/intake/src/checkout"
)

type SaveSubmission struct {
	SubmissionId string         `json:"submissionId"`
	Quote        checkout.Quote `json:"quote"`
}

type CreatePayment struct {
	SubmissionId string `json:"submissionId"`
	OrderId      string `json:"orderId"`
	CheckoutUrl  string `json:"checkoutUrl"`
}

type Upload struct {
	FieldName        string `json:"fieldName"`
	OriginalFilename string `json:"originalFilename"`
	FilePath         string `json:"filePath"`
	FileSize         int64  `json:"fileSize"`
	MimeType         string `json:"mimeType"`
	Url              string `json:"url"`
}

type ValidationFailure struct {
	Errors checkout.ValidationErrors `json:"errors"`
}
