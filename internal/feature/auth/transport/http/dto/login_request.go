package dto

// LoginReq represents the request body for the /api/login endpoint.
type LoginReq struct {
	CPF      string `json:"cpf"`
	Password string `json:"password"`
}

// LoginRes represents the response for a successful login.
type LoginRes struct {
	Message string  `json:"message"`
	Token   string  `json:"token"`
	User    UserRes `json:"user"`
}

// UserRes holds the non-sensitive account fields returned to the client.
type UserRes struct {
	ID    uint   `json:"id"`
	CPF   string `json:"cpf"`
	Email string `json:"email"`
}
