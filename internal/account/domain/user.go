package domain

import (
	"time"
)

// User представляет пользователя маркетплейса
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	FullName     string
	Phone        string
	Role         string    // CUSTOMER | ADMIN
	Status       string    // ACTIVE | INACTIVE | BANNED
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Допустимые роли
const (
	RoleCustomer = "CUSTOMER"
	RoleAdmin    = "ADMIN"
)

// Допустимые статусы
const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
	StatusBanned   = "BANNED"
)

// IsValidRole проверяет корректность роли
func IsValidRole(role string) bool {
	switch role {
	case RoleCustomer, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsValidStatus проверяет корректность статуса
func IsValidStatus(status string) bool {
	switch status {
	case StatusActive, StatusInactive, StatusBanned:
		return true
	default:
		return false
	}
}
