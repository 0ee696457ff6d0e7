package repo

import (
	"errors"
	"eventic-backend/internal/entity"
)

type User interface {
	// AddUser добавляет нового пользователя
	AddUser(user *entity.User) (int, error)
	// GetUser возвращает пользователя по его ID
	GetUser(userID int) (*entity.User, error)
	// GetUserByEmail возвращает пользователя по его email
	GetUserByEmail(email string) (*entity.User, error)
	// GetUsers возвращает страницу пользователей, опционально отфильтрованную по ID
	GetUsers(ids []int, offset, limit int) ([]*entity.User, error)
	// UserExists проверяет, существует ли пользователь
	UserExists(userID int) (bool, error)
	// DeleteUser удаляет пользователя
	DeleteUser(userID int) error
}

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailExists  = errors.New("email already exists")
)
