package in

import (
	"context"
)

// RegisterInput — входные данные для регистрации
type RegisterInput struct {
	Username string
	Email    string
	Password string // plain text, будет захеширован
	FullName string
	Phone    string
}

// RegisterOutput — результат регистрации
type RegisterOutput struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Token     string `json:"token"`
	CreatedAt string `json:"created_at"` // ISO8601
}

// RegisterUseCase — интерфейс use case регистрации
type RegisterUseCase interface {
	Execute(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
}
