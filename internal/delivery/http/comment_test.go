package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eventic-backend/internal/delivery/http/utils"
	"eventic-backend/internal/entity"
	"eventic-backend/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCommentHandler() (*MockCommentUseCase, *MockUserUseCase, *MockAuth, *Comment) {
	commentUseCase := new(MockCommentUseCase)
	userUseCase := new(MockUserUseCase)
	authManager := new(MockAuth)
	return commentUseCase, userUseCase, authManager, NewComment(commentUseCase, userUseCase, authManager)
}

func jsonRequest(method, target, body string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req, httptest.NewRecorder()
}

func TestCommentHandler_Create_Success(t *testing.T) {
	e := echo.New()
	commentUseCase, _, authManager, handler := newCommentHandler()

	authManager.On("CheckAuthFromContext", mock.Anything).Return(7, nil)
	commentUseCase.On("CreateComment", mock.AnythingOfType("*entity.CreateCommentRequest")).
		Return(&entity.Comment{ID: 42, Message: "Отличное событие!", AuthorID: 7, EventID: 10}, nil)

	req, rec := jsonRequest(http.MethodPost, "/api/comment/create", `{"event_id": 10, "message": "Отличное событие!"}`)
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]entity.Comment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, 42, response["comment"].ID)
	// автор берется из сессии, а не из тела запроса
	request := commentUseCase.Calls[0].Arguments.Get(0).(*entity.CreateCommentRequest)
	assert.Equal(t, 7, request.UserID)
}

func TestCommentHandler_Create_Unauthorized(t *testing.T) {
	e := echo.New()
	commentUseCase, _, authManager, handler := newCommentHandler()

	authManager.On("CheckAuthFromContext", mock.Anything).Return(-1, utils.ErrUnauthorized)

	req, rec := jsonRequest(http.MethodPost, "/api/comment/create", `{"event_id": 10, "message": "Текст"}`)
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	commentUseCase.AssertNotCalled(t, "CreateComment")
}

func TestCommentHandler_Create_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		useCaseErr error
		wantStatus int
	}{
		{"invalid message", usecase.ErrCommentMessageInvalid, http.StatusBadRequest},
		{"event not found", usecase.ErrEventNotFound, http.StatusNotFound},
		{"user not found", usecase.ErrUserNotFound, http.StatusNotFound},
		{"event not published", usecase.ErrEventNotPublished, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			commentUseCase, _, authManager, handler := newCommentHandler()

			authManager.On("CheckAuthFromContext", mock.Anything).Return(7, nil)
			commentUseCase.On("CreateComment", mock.AnythingOfType("*entity.CreateCommentRequest")).
				Return(nil, tt.useCaseErr)

			req, rec := jsonRequest(http.MethodPost, "/api/comment/create", `{"event_id": 10, "message": "Текст"}`)
			c := e.NewContext(req, rec)

			require.NoError(t, handler.Create(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCommentHandler_Update_Forbidden(t *testing.T) {
	e := echo.New()
	commentUseCase, _, authManager, handler := newCommentHandler()

	authManager.On("CheckAuthFromContext", mock.Anything).Return(7, nil)
	commentUseCase.On("UpdateComment", mock.AnythingOfType("*entity.UpdateCommentRequest")).
		Return(nil, usecase.ErrUserForbidden)

	req, rec := jsonRequest(http.MethodPut, "/api/comment/update", `{"comment_id": 42, "message": "Новый текст"}`)
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Update(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCommentHandler_Delete_Success(t *testing.T) {
	e := echo.New()
	commentUseCase, _, authManager, handler := newCommentHandler()

	authManager.On("CheckAuthFromContext", mock.Anything).Return(7, nil)
	commentUseCase.On("DeleteComment", 7, 42).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/comment/delete?comment_id=42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	commentUseCase.AssertExpectations(t)
}

func TestCommentHandler_Delete_BadCommentID(t *testing.T) {
	e := echo.New()
	commentUseCase, _, authManager, handler := newCommentHandler()

	authManager.On("CheckAuthFromContext", mock.Anything).Return(7, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/comment/delete?comment_id=abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Delete(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	commentUseCase.AssertNotCalled(t, "DeleteComment")
}

func TestCommentHandler_Get_NotFound(t *testing.T) {
	e := echo.New()
	commentUseCase, _, authManager, handler := newCommentHandler()

	authManager.On("CheckAuthFromContext", mock.Anything).Return(7, nil)
	commentUseCase.On("GetComment", 7, 42).Return(nil, usecase.ErrCommentNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/comment/get?comment_id=42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCommentHandler_EventComments_NoAuth(t *testing.T) {
	e := echo.New()
	commentUseCase, _, authManager, handler := newCommentHandler()

	commentUseCase.On("GetEventComments", mock.AnythingOfType("*entity.GetEventCommentsRequest")).
		Return([]*entity.Comment{{ID: 1, EventID: 10}}, nil)

	// комментарии события доступны без авторизации
	req := httptest.NewRequest(http.MethodGet, "/api/comment/event?event_id=10&keyword=парк", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.EventComments(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	authManager.AssertNotCalled(t, "CheckAuthFromContext")

	request := commentUseCase.Calls[0].Arguments.Get(0).(*entity.GetEventCommentsRequest)
	assert.Equal(t, 10, request.EventID)
	assert.Equal(t, "парк", request.Keyword)
}

func TestCommentHandler_AdminDelete_NotAdmin(t *testing.T) {
	e := echo.New()
	commentUseCase, userUseCase, authManager, handler := newCommentHandler()

	authManager.On("CheckAuthFromContext", mock.Anything).Return(7, nil)
	userUseCase.On("EnsureAdmin", 7).Return(usecase.ErrUserForbidden)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/comment/delete?comment_id=42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.AdminDelete(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	commentUseCase.AssertNotCalled(t, "DeleteCommentByAdmin")
}

func TestCommentHandler_AdminDelete_Success(t *testing.T) {
	e := echo.New()
	commentUseCase, userUseCase, authManager, handler := newCommentHandler()

	authManager.On("CheckAuthFromContext", mock.Anything).Return(1, nil)
	userUseCase.On("EnsureAdmin", 1).Return(nil)
	commentUseCase.On("DeleteCommentByAdmin", 42).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/comment/delete?comment_id=42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.AdminDelete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	commentUseCase.AssertExpectations(t)
}

func TestCommentHandler_AdminGet_Success(t *testing.T) {
	e := echo.New()
	commentUseCase, userUseCase, authManager, handler := newCommentHandler()

	authManager.On("CheckAuthFromContext", mock.Anything).Return(1, nil)
	userUseCase.On("EnsureAdmin", 1).Return(nil)
	commentUseCase.On("GetCommentByAdmin", 42).
		Return(&entity.Comment{ID: 42, AuthorID: 99, EventID: 10}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/comment/get?comment_id=42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.AdminGet(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
