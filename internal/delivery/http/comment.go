package http

import (
	"errors"
	"eventic-backend/internal/delivery/http/utils"
	"eventic-backend/internal/entity"
	"eventic-backend/internal/usecase"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type Comment struct {
	commentUseCase usecase.Comment
	userUseCase    usecase.User
	authManager    utils.Auth
}

func NewComment(commentUseCase usecase.Comment, userUseCase usecase.User, authManager utils.Auth) *Comment {
	return &Comment{
		commentUseCase: commentUseCase,
		userUseCase:    userUseCase,
		authManager:    authManager,
	}
}

func (h *Comment) Configure(server *echo.Group) {
	server.POST("/create", h.Create)
	server.PUT("/update", h.Update)
	server.DELETE("/delete", h.Delete)
	server.GET("/get", h.Get)
	server.GET("/my", h.My)
	server.GET("/event", h.EventComments)
}

func (h *Comment) ConfigureAdmin(server *echo.Group) {
	server.GET("/get", h.AdminGet)
	server.DELETE("/delete", h.AdminDelete)
}

func (h *Comment) Create(c echo.Context) error {
	userID, err := h.authManager.CheckAuthFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Unauthorized",
		})
	}

	var request entity.CreateCommentRequest
	err = utils.ReadJSON(c, &request)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Неверный формат запроса",
		})
	}
	request.UserID = userID

	comment, err := h.commentUseCase.CreateComment(&request)
	switch {
	case errors.Is(err, usecase.ErrCommentMessageInvalid):
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Комментарий должен быть от 1 до 2000 символов",
		})
	case errors.Is(err, usecase.ErrEventNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Событие не найдено",
		})
	case errors.Is(err, usecase.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Пользователь не найден",
		})
	case errors.Is(err, usecase.ErrEventNotPublished):
		return c.JSON(http.StatusConflict, echo.Map{
			"error": "Комментировать можно только опубликованные события",
		})
	case err != nil:
		c.Logger().Errorf("Ошибка при создании комментария: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Произошла непредвиденная ошибка",
		})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"comment": comment,
	})
}

func (h *Comment) Update(c echo.Context) error {
	userID, err := h.authManager.CheckAuthFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Unauthorized",
		})
	}

	var request entity.UpdateCommentRequest
	err = utils.ReadJSON(c, &request)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Неверный формат запроса",
		})
	}
	request.UserID = userID

	comment, err := h.commentUseCase.UpdateComment(&request)
	switch {
	case errors.Is(err, usecase.ErrCommentMessageInvalid):
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Комментарий должен быть от 1 до 2000 символов",
		})
	case errors.Is(err, usecase.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Пользователь не найден",
		})
	case errors.Is(err, usecase.ErrCommentNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Комментарий не найден",
		})
	case errors.Is(err, usecase.ErrUserForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{
			"error": "Можно изменять только свои комментарии",
		})
	case err != nil:
		c.Logger().Errorf("Ошибка при обновлении комментария: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Произошла непредвиденная ошибка",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"comment": comment,
	})
}

func (h *Comment) Delete(c echo.Context) error {
	userID, err := h.authManager.CheckAuthFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Unauthorized",
		})
	}

	commentID, err := strconv.Atoi(c.QueryParam("comment_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Неверный формат comment_id",
		})
	}

	err = h.commentUseCase.DeleteComment(userID, commentID)
	switch {
	case errors.Is(err, usecase.ErrCommentNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Комментарий не найден",
		})
	case errors.Is(err, usecase.ErrUserForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{
			"error": "Можно удалять только свои комментарии",
		})
	case err != nil:
		c.Logger().Errorf("Ошибка при удалении комментария: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Произошла непредвиденная ошибка",
		})
	}

	return c.NoContent(http.StatusOK)
}

func (h *Comment) Get(c echo.Context) error {
	userID, err := h.authManager.CheckAuthFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Unauthorized",
		})
	}

	commentID, err := strconv.Atoi(c.QueryParam("comment_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Неверный формат comment_id",
		})
	}

	comment, err := h.commentUseCase.GetComment(userID, commentID)
	switch {
	case errors.Is(err, usecase.ErrCommentNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Комментарий не найден",
		})
	case errors.Is(err, usecase.ErrUserForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{
			"error": "Можно просматривать только свои комментарии",
		})
	case err != nil:
		c.Logger().Errorf("Ошибка при получении комментария: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Произошла непредвиденная ошибка",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"comment": comment,
	})
}

func (h *Comment) My(c echo.Context) error {
	userID, err := h.authManager.CheckAuthFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Unauthorized",
		})
	}

	comments, err := h.commentUseCase.GetUserComments(userID)
	if err != nil {
		c.Logger().Errorf("Ошибка при получении комментариев пользователя: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Произошла непредвиденная ошибка",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"comments": comments,
	})
}

func (h *Comment) EventComments(c echo.Context) error {
	var request entity.GetEventCommentsRequest
	err := utils.ReadQuery(c, &request)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Неверный формат запроса",
		})
	}

	comments, err := h.commentUseCase.GetEventComments(&request)
	if err != nil {
		c.Logger().Errorf("Ошибка при получении комментариев события: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Произошла непредвиденная ошибка",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"comments": comments,
	})
}

func (h *Comment) AdminGet(c echo.Context) error {
	userID, err := h.authManager.CheckAuthFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Unauthorized",
		})
	}

	err = h.userUseCase.EnsureAdmin(userID)
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

	commentID, err := strconv.Atoi(c.QueryParam("comment_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Неверный формат comment_id",
		})
	}

	comment, err := h.commentUseCase.GetCommentByAdmin(commentID)
	switch {
	case errors.Is(err, usecase.ErrCommentNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Комментарий не найден",
		})
	case err != nil:
		c.Logger().Errorf("Ошибка при получении комментария: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Произошла непредвиденная ошибка",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"comment": comment,
	})
}

func (h *Comment) AdminDelete(c echo.Context) error {
	userID, err := h.authManager.CheckAuthFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Unauthorized",
		})
	}

	err = h.userUseCase.EnsureAdmin(userID)
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

	commentID, err := strconv.Atoi(c.QueryParam("comment_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Неверный формат comment_id",
		})
	}

	err = h.commentUseCase.DeleteCommentByAdmin(commentID)
	switch {
	case errors.Is(err, usecase.ErrCommentNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Комментарий не найден",
		})
	case err != nil:
		c.Logger().Errorf("Ошибка при удалении комментария: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Произошла непредвиденная ошибка",
		})
	}

	return c.NoContent(http.StatusOK)
}
