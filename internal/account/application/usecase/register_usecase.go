package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/account/application/ports/in"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/account/application/ports/out"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/account/domain"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/auth"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/logger"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/utils"

	"golang.org/x/crypto/bcrypt"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_\-]{3,32}$`)
)

// RegisterService реализует RegisterUseCase
type RegisterService struct {
	userRepo out.UserRepository
	jwt      *auth.JWTService
	log      *logger.Logger
}

// NewRegisterService создает новый сервис регистрации
func NewRegisterService(userRepo out.UserRepository, jwt *auth.JWTService, log *logger.Logger) *RegisterService {
	return &RegisterService{
		userRepo: userRepo,
		jwt:      jwt,
		log:      log,
	}
}

// Execute регистрирует нового пользователя и сразу выдает JWT токен
func (s *RegisterService) Execute(ctx context.Context, input in.RegisterInput) (*in.RegisterOutput, error) {
	// Валидация email и username
	if !emailRegex.MatchString(input.Email) {
		return nil, domain.ErrInvalidEmail
	}
	if !usernameRegex.MatchString(input.Username) {
		return nil, domain.ErrInvalidUsername
	}
	if len(input.Password) < 8 {
		return nil, domain.ErrPasswordTooShort
	}

	// Проверка уникальности email
	if existing, err := s.userRepo.FindByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	// Проверка уникальности username
	if existing, err := s.userRepo.FindByUsername(ctx, input.Username); err == nil && existing != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	// Хешируем пароль
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		s.log.Error(logger.Entry{
			Action:  "hash_password_failed",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
		})
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// Создаем доменную модель (роль публичной регистрации — всегда CUSTOMER)
	now := time.Now().UTC()
	user := &domain.User{
		ID:           utils.NewUUID(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(passwordHash),
		FullName:     input.FullName,
		Phone:        input.Phone,
		Role:         domain.RoleCustomer,
		Status:       domain.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return nil, err
		}
		s.log.Error(logger.Entry{
			Action:  "create_user_failed",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
			Additional: map[string]interface{}{
				"email":    input.Email,
				"username": input.Username,
			},
		})
		return nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	s.log.Info(logger.Entry{
		Action:  "user_registered",
		Message: fmt.Sprintf("user %s registered", user.Username),
		Additional: map[string]interface{}{
			"user_id": user.ID,
			"email":   user.Email,
		},
	})

	return &in.RegisterOutput{
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		Token:     token,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}, nil
}
