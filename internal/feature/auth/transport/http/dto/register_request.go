// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// RegisterReq represents the request body for the /api/register endpoint.
// Presence and shape are validated by the usecase so that every rule yields the same message format.
type RegisterReq struct {
	CPF         string `json:"cpf"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DateOfBirth string `json:"dateOfBirth"`
}

// RegisterRes represents the response for a successful registration.
type RegisterRes struct {
	Message string `json:"message"`
	UserID  uint   `json:"userId"`
}
