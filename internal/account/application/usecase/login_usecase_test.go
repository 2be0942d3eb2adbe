package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/account/application/ports/in"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/account/domain"
)

func seedUser(t *testing.T, repo *fakeUserRepo, email, password, status string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &domain.User{
		ID:           "u1",
		Username:     "john_doe",
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
		Status:       status,
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestLoginService_Success(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "john@example.com", "supersecret1", domain.StatusActive)
	svc := NewLoginService(repo, testJWT(), testLogger())

	output, err := svc.Execute(context.Background(), in.LoginInput{
		Email:    "john@example.com",
		Password: "supersecret1",
	})

	require.NoError(t, err)
	assert.Equal(t, "u1", output.UserID)
	assert.NotEmpty(t, output.Token)
}

func TestLoginService_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "john@example.com", "supersecret1", domain.StatusActive)
	svc := NewLoginService(repo, testJWT(), testLogger())

	_, err := svc.Execute(context.Background(), in.LoginInput{
		Email:    "john@example.com",
		Password: "wrongpassword",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginService_UnknownEmailNotDisclosed(t *testing.T) {
	svc := NewLoginService(newFakeUserRepo(), testJWT(), testLogger())

	_, err := svc.Execute(context.Background(), in.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever123",
	})

	// Несуществующий email неотличим от неверного пароля
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginService_BannedUser(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "john@example.com", "supersecret1", domain.StatusBanned)
	svc := NewLoginService(repo, testJWT(), testLogger())

	_, err := svc.Execute(context.Background(), in.LoginInput{
		Email:    "john@example.com",
		Password: "supersecret1",
	})

	assert.ErrorIs(t, err, domain.ErrUserBanned)
}
