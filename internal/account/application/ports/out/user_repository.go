package out

import (
	"context"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/account/domain"
)

// UserRepository — интерфейс репозитория для работы с пользователями
type UserRepository interface {
	// Create создает нового пользователя
	Create(ctx context.Context, user *domain.User) error

	// FindByID находит пользователя по ID
	FindByID(ctx context.Context, userID string) (*domain.User, error)

	// FindByEmail находит пользователя по email
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindByUsername находит пользователя по username
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
