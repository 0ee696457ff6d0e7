package http

import (
	"errors"
	"eventic-backend/internal/delivery/http/utils"
	"eventic-backend/internal/entity"
	"eventic-backend/internal/usecase"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type Event struct {
	eventUseCase usecase.Event
	userUseCase  usecase.User
	hitUseCase   usecase.Hit
	authManager  utils.Auth
}

func NewEvent(eventUseCase usecase.Event, userUseCase usecase.User, hitUseCase usecase.Hit, authManager utils.Auth) *Event {
	return &Event{
		eventUseCase: eventUseCase,
		userUseCase:  userUseCase,
		hitUseCase:   hitUseCase,
		authManager:  authManager,
	}
}

func (e *Event) Configure(server *echo.Group) {
	server.POST("/create", e.Create)
	server.GET("/my", e.My)
	server.GET("/get", e.Get)
	server.GET("/search", e.Search)
}

func (e *Event) ConfigureAdmin(server *echo.Group) {
	server.GET("/list", e.AdminList)
	server.POST("/publish", e.AdminPublish)
	server.POST("/reject", e.AdminReject)
}

func (e *Event) Create(c echo.Context) error {
	userID, err := e.authManager.CheckAuthFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Unauthorized",
		})
	}

	var request entity.CreateEventRequest
	err = utils.ReadJSON(c, &request)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Неверный формат запроса",
		})
	}
	request.UserID = userID

	event, err := e.eventUseCase.CreateEvent(&request)
	switch {
	case errors.Is(err, usecase.ErrTitleLenIncorrect):
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Заголовок должен быть от 3 до 120 символов",
		})
	case errors.Is(err, usecase.ErrDescriptionLenIncorrect):
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Описание должно быть от 20 до 7000 символов",
		})
	case errors.Is(err, usecase.ErrEventDateTooSoon):
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Дата события должна быть не раньше, чем через 2 часа",
		})
	case errors.Is(err, usecase.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Пользователь не найден",
		})
	case err != nil:
		c.Logger().Errorf("Ошибка при создании события: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Произошла непредвиденная ошибка",
		})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"event": event,
	})
}

func (e *Event) My(c echo.Context) error {
	userID, err := e.authManager.CheckAuthFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Unauthorized",
		})
	}

	var request entity.GetUserEventsRequest
	err = utils.ReadQuery(c, &request)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Неверный формат запроса",
		})
	}
	request.UserID = userID

	events, err := e.eventUseCase.GetUserEvents(&request)
	if err != nil {
		c.Logger().Errorf("Ошибка при получении событий пользователя: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Произошла непредвиденная ошибка",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"events": events,
	})
}

func (e *Event) Get(c echo.Context) error {
	eventID, err := strconv.Atoi(c.QueryParam("event_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Неверный формат event_id",
		})
	}

	event, err := e.eventUseCase.GetPublishedEvent(c.Request().Context(), eventID)
	switch {
	case errors.Is(err, usecase.ErrEventNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Событие не найдено",
		})
	case err != nil:
		c.Logger().Errorf("Ошибка при получении события: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Произошла непредвиденная ошибка",
		})
	}

	err = e.hitUseCase.RegisterHit(c.Request().Context(), fmt.Sprintf("/event/%d", eventID), c.RealIP())
	if err != nil {
		// статистика не должна ломать выдачу события
		c.Logger().Warnf("Ошибка при регистрации просмотра: %v", err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"event": event,
	})
}

func (e *Event) Search(c echo.Context) error {
	var request entity.SearchEventsRequest
	err := utils.ReadQuery(c, &request)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Неверный формат запроса",
		})
	}

	events, err := e.eventUseCase.SearchPublishedEvents(c.Request().Context(), &request)
	if err != nil {
		c.Logger().Errorf("Ошибка при поиске событий: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Произошла непредвиденная ошибка",
		})
	}

	err = e.hitUseCase.RegisterHit(c.Request().Context(), "/events", c.RealIP())
	if err != nil {
		c.Logger().Warnf("Ошибка при регистрации просмотра: %v", err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"events": events,
	})
}

func (e *Event) AdminList(c echo.Context) error {
	userID, err := e.authManager.CheckAuthFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Unauthorized",
		})
	}

	err = e.userUseCase.EnsureAdmin(userID)
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

	var request entity.GetAdminEventsRequest
	err = utils.ReadQuery(c, &request)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Неверный формат запроса",
		})
	}

	events, err := e.eventUseCase.GetEventsByAdmin(&request)
	if err != nil {
		c.Logger().Errorf("Ошибка при получении списка событий: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Произошла непредвиденная ошибка",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"events": events,
	})
}

func (e *Event) AdminPublish(c echo.Context) error {
	userID, err := e.authManager.CheckAuthFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Unauthorized",
		})
	}

	err = e.userUseCase.EnsureAdmin(userID)
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

	var request entity.ModerateEventRequest
	err = utils.ReadJSON(c, &request)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Неверный формат запроса",
		})
	}

	event, err := e.eventUseCase.PublishEvent(request.EventID)
	switch {
	case errors.Is(err, usecase.ErrEventNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Событие не найдено",
		})
	case errors.Is(err, usecase.ErrEventNotPending):
		return c.JSON(http.StatusConflict, echo.Map{
			"error": "Опубликовать можно только событие в статусе ожидания",
		})
	case err != nil:
		c.Logger().Errorf("Ошибка при публикации события: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Произошла непредвиденная ошибка",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"event": event,
	})
}

func (e *Event) AdminReject(c echo.Context) error {
	userID, err := e.authManager.CheckAuthFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Unauthorized",
		})
	}

	err = e.userUseCase.EnsureAdmin(userID)
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

	var request entity.ModerateEventRequest
	err = utils.ReadJSON(c, &request)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Неверный формат запроса",
		})
	}

	event, err := e.eventUseCase.RejectEvent(request.EventID)
	switch {
	case errors.Is(err, usecase.ErrEventNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Событие не найдено",
		})
	case errors.Is(err, usecase.ErrEventNotPending):
		return c.JSON(http.StatusConflict, echo.Map{
			"error": "Отклонить можно только событие в статусе ожидания",
		})
	case err != nil:
		c.Logger().Errorf("Ошибка при отклонении события: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Произошла непредвиденная ошибка",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"event": event,
	})
}
