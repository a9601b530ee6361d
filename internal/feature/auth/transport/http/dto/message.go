package dto

// MessageRes is the body of every error response.
type MessageRes struct {
	Message string `json:"message"`
}

// MeRes identifies the bearer of a verified token.
type MeRes struct {
	ID  uint   `json:"id"`
	CPF string `json:"cpf"`
}
