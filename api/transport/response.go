package transport

import (
	"time"

	"github.com/Pawankumarhr/prime-trade/domain"
)

// AuthResponse is returned by signup and login.
type AuthResponse struct {
	Token string            `json:"token"`
	User  domain.PublicUser `json:"user"`
}

// ErrorResponse is the single error shape; Message never leaks internal
// or upstream detail.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorBody{Code: code, Message: message}}
}

// HealthResponse is the liveness body.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
