package usecase

import (
	"errors"
	"eventic-backend/internal/entity"
)

type User interface {
	// Register регистрирует нового пользователя и возвращает его идентификатор
	Register(request *entity.RegisterRequest) (int, error)
	// Login проверяет учетные данные и возвращает идентификатор пользователя
	Login(email, password string) (int, error)
	// GetUser возвращает профиль пользователя по его идентификатору
	GetUser(userID int) (*entity.UserProfile, error)
	// GetUsers возвращает страницу профилей пользователей для администратора
	GetUsers(request *entity.GetUsersRequest) ([]*entity.UserProfile, error)
	// DeleteUser удаляет пользователя
	DeleteUser(userID int) error
	// EnsureAdmin проверяет, что пользователь обладает правами администратора
	EnsureAdmin(userID int) error
}

var (
	// Ошибки валидации
	ErrNameLenIncorrect   = errors.New("name must be between 2 and 250 characters")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrPasswordTooShort   = errors.New("password too short, minimum length is 8 characters")
	ErrPasswordTooLong    = errors.New("password too long, maximum length is 64 characters")
	ErrEmailAlreadyExists = errors.New("email already exists")

	// Ошибки аутентификации и авторизации
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserForbidden      = errors.New("forbidden")
)
