package domain

import "errors"

var (
	// ErrUserAlreadyExists пользователь с таким email или username уже существует
	ErrUserAlreadyExists = errors.New("user with this email or username already exists")

	// ErrUserNotFound пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidEmail некорректный формат email
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidUsername некорректный username
	ErrInvalidUsername = errors.New("invalid username")

	// ErrPasswordTooShort пароль слишком короткий
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")

	// ErrInvalidCredentials неверный email или пароль
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserBanned пользователь заблокирован
	ErrUserBanned = errors.New("user is banned")
)
