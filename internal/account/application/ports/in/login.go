package in

import (
	"context"
)

// LoginInput — входные данные для входа
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput — результат входа
type LoginOutput struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

// LoginUseCase — интерфейс use case входа
type LoginUseCase interface {
	Execute(ctx context.Context, input LoginInput) (*LoginOutput, error)
}
