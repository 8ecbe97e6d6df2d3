package request

type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type UpdateAdminCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
