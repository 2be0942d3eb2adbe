package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/account/application/ports/in"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/account/domain"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/auth"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/config"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/logger"
)

// fakeUserRepo — репозиторий пользователей в памяти
type fakeUserRepo struct {
	byID       map[string]*domain.User
	byEmail    map[string]*domain.User
	byUsername map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:       map[string]*domain.User{},
		byEmail:    map[string]*domain.User{},
		byUsername: map[string]*domain.User{},
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	if _, ok := f.byEmail[user.Email]; ok {
		return domain.ErrUserAlreadyExists
	}
	f.byID[user.ID] = user
	f.byEmail[user.Email] = user
	f.byUsername[user.Username] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, userID string) (*domain.User, error) {
	if u, ok := f.byID[userID]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	if u, ok := f.byUsername[username]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func testJWT() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{Secret: "test_secret", ExpiryMinutes: 60})
}

func testLogger() *logger.Logger {
	return logger.NewLogger("test")
}

func validRegisterInput() in.RegisterInput {
	return in.RegisterInput{
		Username: "john_doe",
		Email:    "john@example.com",
		Password: "supersecret1",
		FullName: "John Doe",
		Phone:    "+15550100",
	}
}

func TestRegisterService_Success(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewRegisterService(repo, testJWT(), testLogger())

	output, err := svc.Execute(context.Background(), validRegisterInput())

	require.NoError(t, err)
	assert.NotEmpty(t, output.UserID)
	assert.NotEmpty(t, output.Token)
	assert.Equal(t, domain.RoleCustomer, output.Role)

	stored := repo.byEmail["john@example.com"]
	require.NotNil(t, stored)
	// Пароль хранится только как bcrypt-хеш
	assert.NotEqual(t, "supersecret1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("supersecret1")))
	assert.Equal(t, domain.StatusActive, stored.Status)
}

func TestRegisterService_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*in.RegisterInput)
		wantErr error
	}{
		{"bad email", func(i *in.RegisterInput) { i.Email = "not-an-email" }, domain.ErrInvalidEmail},
		{"short username", func(i *in.RegisterInput) { i.Username = "ab" }, domain.ErrInvalidUsername},
		{"username with spaces", func(i *in.RegisterInput) { i.Username = "john doe" }, domain.ErrInvalidUsername},
		{"short password", func(i *in.RegisterInput) { i.Password = "seven77" }, domain.ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewRegisterService(newFakeUserRepo(), testJWT(), testLogger())
			input := validRegisterInput()
			tt.mutate(&input)

			_, err := svc.Execute(context.Background(), input)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegisterService_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewRegisterService(repo, testJWT(), testLogger())

	_, err := svc.Execute(context.Background(), validRegisterInput())
	require.NoError(t, err)

	dup := validRegisterInput()
	dup.Username = "other_name"
	_, err = svc.Execute(context.Background(), dup)

	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestRegisterService_RoleIsAlwaysCustomer(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewRegisterService(repo, testJWT(), testLogger())

	output, err := svc.Execute(context.Background(), validRegisterInput())

	require.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, output.Role)
	assert.Equal(t, domain.RoleCustomer, repo.byID[output.UserID].Role)
}
