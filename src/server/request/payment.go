package request

type CreatePayment struct {
	SubmissionId string `json:"submissionId"`
	Method       string `json:"method"`
	PayCurrency  string `json:"payCurrency"`
}

type UpdatePaymentStatus struct {
	SubmissionId string `json:"submissionId"`
	Status       string `json:"status"`
}
