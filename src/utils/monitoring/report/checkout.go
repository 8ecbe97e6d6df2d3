package report

import (
	"go.uber.org/atomic"
)

type CheckoutErrors struct {
	DbSubmissionInsert       atomic.Int64 `json:"db_submission_insert"`
	DbUploadedDocumentInsert atomic.Int64 `json:"db_uploaded_document_insert"`
	DbContactMessageInsert   atomic.Int64 `json:"db_contact_message_insert"`
	FileStoreErrors          atomic.Int64 `json:"file_store"`
}

type CheckoutState struct {
	SubmissionsSaved     atomic.Uint64 `json:"submissions_saved"`
	ValidationRejected   atomic.Uint64 `json:"validation_rejected"`
	QuotesComputed       atomic.Uint64 `json:"quotes_computed"`
	DocumentsUploaded    atomic.Uint64 `json:"documents_uploaded"`
	ContactMessagesSaved atomic.Uint64 `json:"contact_messages_saved"`

	AverageSubmissionsSavedPerMinute atomic.Float64 `json:"average_submissions_saved_per_minute"`
}

type CheckoutReport struct {
	State  CheckoutState  `json:"state"`
	Errors CheckoutErrors `json:"errors"`
}
