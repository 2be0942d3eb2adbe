package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/account/application/ports/in"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/account/application/ports/out"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/account/domain"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/auth"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/logger"

	"golang.org/x/crypto/bcrypt"
)

// LoginService реализует LoginUseCase
type LoginService struct {
	userRepo out.UserRepository
	jwt      *auth.JWTService
	log      *logger.Logger
}

// NewLoginService создает новый сервис входа
func NewLoginService(userRepo out.UserRepository, jwt *auth.JWTService, log *logger.Logger) *LoginService {
	return &LoginService{
		userRepo: userRepo,
		jwt:      jwt,
		log:      log,
	}
}

// Execute проверяет учетные данные и выдает JWT токен
func (s *LoginService) Execute(ctx context.Context, input in.LoginInput) (*in.LoginOutput, error) {
	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Не раскрываем, существует ли email
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if user.Status == domain.StatusBanned {
		return nil, domain.ErrUserBanned
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		s.log.Warn(logger.Entry{
			Action:  "login_wrong_password",
			Message: "password mismatch",
			Additional: map[string]interface{}{
				"user_id": user.ID,
			},
		})
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	s.log.Info(logger.Entry{
		Action:  "user_logged_in",
		Message: fmt.Sprintf("user %s logged in", user.Username),
		Additional: map[string]interface{}{
			"user_id": user.ID,
		},
	})

	return &in.LoginOutput{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		Token:    token,
	}, nil
}
