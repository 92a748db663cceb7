package dto

type AuthenticateInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type AuthenticationResponse struct {
	Token string `json:"token"`
}
