package auth

import "time"

// credentials поля не обязательны для huma: пустые значения проверяет сервис и отвечает 400
type credentials struct {
	Email    string `json:"email" required:"false" example:"pastor@church.org"`
	Password string `json:"password" required:"false" example:"secret123"`
}

type loginInput struct {
	Body credentials
}

type loginOutput struct {
	Body LoginResponse
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Admin     AdminInfo `json:"admin"`
}

type AdminInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type registerInput struct {
	Body credentials
}

type registerOutput struct {
	Body RegisterResponse
}

type RegisterResponse struct {
	Message string    `json:"message"`
	Admin   AdminInfo `json:"admin"`
}
