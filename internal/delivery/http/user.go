package http

import (
	"errors"
	"eventic-backend/internal/delivery/http/utils"
	"eventic-backend/internal/entity"
	"eventic-backend/internal/usecase"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

type User struct {
	userUseCase   usecase.User
	authManager   utils.Auth
	cookieManager utils.Cookie
}

func NewUser(userUseCase usecase.User, authManager utils.Auth, cookieManager utils.Cookie) *User {
	return &User{
		userUseCase:   userUseCase,
		authManager:   authManager,
		cookieManager: cookieManager,
	}
}

func (u *User) Configure(server *echo.Group) {
	server.POST("/register", u.Register)
	server.POST("/login", u.Login)
	server.GET("/me", u.Me)
}

func (u *User) ConfigureAdmin(server *echo.Group) {
	server.GET("/list", u.AdminList)
	server.DELETE("/delete", u.AdminDelete)
}

func (u *User) Register(c echo.Context) error {
	var request entity.RegisterRequest
	err := utils.ReadJSON(c, &request)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Неверный формат запроса",
		})
	}

	userID, err := u.userUseCase.Register(&request)
	switch {
	case errors.Is(err, usecase.ErrNameLenIncorrect):
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Имя должно быть от 2 до 250 символов",
		})
	case errors.Is(err, usecase.ErrInvalidEmail):
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Неверный формат email",
		})
	case errors.Is(err, usecase.ErrPasswordTooShort):
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Пароль должен содержать не менее 8 символов",
		})
	case errors.Is(err, usecase.ErrPasswordTooLong):
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Пароль должен содержать не более 64 символов",
		})
	case errors.Is(err, usecase.ErrEmailAlreadyExists):
		return c.JSON(http.StatusConflict, echo.Map{
			"error": "Пользователь с таким email уже существует",
		})
	case err != nil:
		c.Logger().Errorf("Ошибка при регистрации пользователя: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Произошла непредвиденная ошибка",
		})
	}

	token, err := u.authManager.CreateToken(userID)
	if err != nil {
		c.Logger().Errorf("Ошибка при создании токена: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Произошла непредвиденная ошибка",
		})
	}
	expires := time.Now().AddDate(1, 0, 0)
	c.SetCookie(u.cookieManager.SetSessionCookie(token, expires))
	return c.JSON(http.StatusCreated, echo.Map{
		"user_id": userID,
	})
}

func (u *User) Login(c echo.Context) error {
	var request entity.LoginRequest
	err := utils.ReadJSON(c, &request)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Неверный формат запроса",
		})
	}

	userID, err := u.userUseCase.Login(request.Email, request.Password)
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Неверный email или пароль",
		})
	case err != nil:
		c.Logger().Errorf("Ошибка при авторизации пользователя: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Произошла непредвиденная ошибка",
		})
	}

	token, err := u.authManager.CreateToken(userID)
	if err != nil {
		c.Logger().Errorf("Ошибка при создании токена: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Произошла непредвиденная ошибка",
		})
	}
	expires := time.Now().AddDate(1, 0, 0)
	c.SetCookie(u.cookieManager.SetSessionCookie(token, expires))
	return c.JSON(http.StatusOK, echo.Map{
		"user_id": userID,
	})
}

func (u *User) Me(c echo.Context) error {
	userID, err := u.authManager.CheckAuthFromContext(c)
	switch {
	case errors.Is(err, utils.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Пользователь не авторизован",
		})
	case err != nil:
		c.Logger().Errorf("Ошибка при проверке авторизации пользователя: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Произошла непредвиденная ошибка",
		})
	}

	profile, err := u.userUseCase.GetUser(userID)
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Пользователь не авторизован",
		})
	case err != nil:
		c.Logger().Errorf("Ошибка при получении профиля пользователя: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Произошла непредвиденная ошибка",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"user": profile,
	})
}

func (u *User) AdminList(c echo.Context) error {
	userID, err := u.authManager.CheckAuthFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Unauthorized",
		})
	}

	err = u.userUseCase.EnsureAdmin(userID)
	switch {
	case errors.Is(err, usecase.ErrUserForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{
			"error": "Для этой операции требуются права администратора",
		})
	case errors.Is(err, usecase.ErrUserNotFound):
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Пользователь не авторизован",
		})
	case err != nil:
		c.Logger().Errorf("Ошибка при проверке прав администратора: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Произошла непредвиденная ошибка",
		})
	}

	var request entity.GetUsersRequest
	err = utils.ReadQuery(c, &request)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Неверный формат запроса",
		})
	}

	users, err := u.userUseCase.GetUsers(&request)
	if err != nil {
		c.Logger().Errorf("Ошибка при получении списка пользователей: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Произошла непредвиденная ошибка",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"users": users,
	})
}

func (u *User) AdminDelete(c echo.Context) error {
	userID, err := u.authManager.CheckAuthFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Unauthorized",
		})
	}

	err = u.userUseCase.EnsureAdmin(userID)
	switch {
	case errors.Is(err, usecase.ErrUserForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{
			"error": "Для этой операции требуются права администратора",
		})
	case errors.Is(err, usecase.ErrUserNotFound):
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Пользователь не авторизован",
		})
	case err != nil:
		c.Logger().Errorf("Ошибка при проверке прав администратора: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Произошла непредвиденная ошибка",
		})
	}

	targetID, err := strconv.Atoi(c.QueryParam("user_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Неверный формат user_id",
		})
	}

	err = u.userUseCase.DeleteUser(targetID)
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Пользователь не найден",
		})
	case err != nil:
		c.Logger().Errorf("Ошибка при удалении пользователя: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Произошла непредвиденная ошибка",
		})
	}

	return c.NoContent(http.StatusOK)
}
