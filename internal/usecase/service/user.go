package service

import (
	"errors"
	"eventic-backend/internal/entity"
	"eventic-backend/internal/repo"
	"eventic-backend/internal/usecase"
	"net/mail"
	"time"
	"unicode/utf8"

	"github.com/labstack/gommon/log"
	"golang.org/x/crypto/bcrypt"
)

const defaultUsersLimit = 10

type User struct {
	userRepo repo.User
}

func NewUser(userRepo repo.User) usecase.User {
	return &User{userRepo: userRepo}
}

func (u *User) Register(request *entity.RegisterRequest) (int, error) {
	nameLen := utf8.RuneCountInString(request.Name)
	if nameLen < 2 || nameLen > 250 {
		return 0, usecase.ErrNameLenIncorrect
	}
	if _, err := mail.ParseAddress(request.Email); err != nil {
		return 0, usecase.ErrInvalidEmail
	}
	passwordLen := utf8.RuneCountInString(request.Password)
	if passwordLen < 8 {
		return 0, usecase.ErrPasswordTooShort
	}
	if passwordLen > 64 {
		return 0, usecase.ErrPasswordTooLong
	}

	// Хешируем пароль пользователя
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	user := &entity.User{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: string(hashedPassword),
		Role:         entity.UserRoleUser,
		CreatedAt:    time.Now(),
	}

	userID, err := u.userRepo.AddUser(user)
	if errors.Is(err, repo.ErrEmailExists) {
		return 0, usecase.ErrEmailAlreadyExists
	}
	if err != nil {
		return 0, err
	}
	log.Infof("Зарегистрирован новый пользователь %d", userID)
	return userID, nil
}

func (u *User) Login(email, password string) (int, error) {
	user, err := u.userRepo.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			return 0, usecase.ErrInvalidCredentials
		}
		return 0, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return 0, usecase.ErrInvalidCredentials
	}

	return user.ID, nil
}

func (u *User) GetUser(userID int) (*entity.UserProfile, error) {
	user, err := u.userRepo.GetUser(userID)
	if errors.Is(err, repo.ErrUserNotFound) {
		return nil, usecase.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &entity.UserProfile{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

func (u *User) GetUsers(request *entity.GetUsersRequest) ([]*entity.UserProfile, error) {
	offset := request.From
	if offset < 0 {
		offset = 0
	}
	limit := request.Size
	if limit <= 0 {
		limit = defaultUsersLimit
	}

	users, err := u.userRepo.GetUsers(request.IDs, offset, limit)
	if err != nil {
		return nil, err
	}

	profiles := make([]*entity.UserProfile, 0, len(users))
	for _, user := range users {
		profiles = append(profiles, &entity.UserProfile{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		})
	}
	return profiles, nil
}

func (u *User) DeleteUser(userID int) error {
	err := u.userRepo.DeleteUser(userID)
	if errors.Is(err, repo.ErrUserNotFound) {
		return usecase.ErrUserNotFound
	}
	if err != nil {
		return err
	}
	log.Infof("Пользователь %d удален", userID)
	return nil
}

func (u *User) EnsureAdmin(userID int) error {
	user, err := u.userRepo.GetUser(userID)
	if errors.Is(err, repo.ErrUserNotFound) {
		return usecase.ErrUserNotFound
	}
	if err != nil {
		return err
	}
	if user.Role != entity.UserRoleAdmin {
		return usecase.ErrUserForbidden
	}
	return nil
}
