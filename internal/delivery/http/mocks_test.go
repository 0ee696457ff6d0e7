package http

import (
	"context"
	"eventic-backend/internal/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
)

type MockCommentUseCase struct {
	mock.Mock
}

func (m *MockCommentUseCase) CreateComment(request *entity.CreateCommentRequest) (*entity.Comment, error) {
	args := m.Called(request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) UpdateComment(request *entity.UpdateCommentRequest) (*entity.Comment, error) {
	args := m.Called(request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) DeleteComment(userID, commentID int) error {
	args := m.Called(userID, commentID)
	return args.Error(0)
}

func (m *MockCommentUseCase) DeleteCommentByAdmin(commentID int) error {
	args := m.Called(commentID)
	return args.Error(0)
}

func (m *MockCommentUseCase) GetComment(userID, commentID int) (*entity.Comment, error) {
	args := m.Called(userID, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) GetCommentByAdmin(commentID int) (*entity.Comment, error) {
	args := m.Called(commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) GetEventComments(request *entity.GetEventCommentsRequest) ([]*entity.Comment, error) {
	args := m.Called(request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) GetUserComments(userID int) ([]*entity.Comment, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) Register(request *entity.RegisterRequest) (int, error) {
	args := m.Called(request)
	return args.Int(0), args.Error(1)
}

func (m *MockUserUseCase) Login(email, password string) (int, error) {
	args := m.Called(email, password)
	return args.Int(0), args.Error(1)
}

func (m *MockUserUseCase) GetUser(userID int) (*entity.UserProfile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserProfile), args.Error(1)
}

func (m *MockUserUseCase) GetUsers(request *entity.GetUsersRequest) ([]*entity.UserProfile, error) {
	args := m.Called(request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.UserProfile), args.Error(1)
}

func (m *MockUserUseCase) DeleteUser(userID int) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserUseCase) EnsureAdmin(userID int) error {
	args := m.Called(userID)
	return args.Error(0)
}

type MockEventUseCase struct {
	mock.Mock
}

func (m *MockEventUseCase) CreateEvent(request *entity.CreateEventRequest) (*entity.Event, error) {
	args := m.Called(request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Event), args.Error(1)
}

func (m *MockEventUseCase) GetUserEvents(request *entity.GetUserEventsRequest) ([]*entity.Event, error) {
	args := m.Called(request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Event), args.Error(1)
}

func (m *MockEventUseCase) GetPublishedEvent(ctx context.Context, eventID int) (*entity.Event, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Event), args.Error(1)
}

func (m *MockEventUseCase) SearchPublishedEvents(ctx context.Context, request *entity.SearchEventsRequest) ([]*entity.Event, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Event), args.Error(1)
}

func (m *MockEventUseCase) GetEventsByAdmin(request *entity.GetAdminEventsRequest) ([]*entity.Event, error) {
	args := m.Called(request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Event), args.Error(1)
}

func (m *MockEventUseCase) PublishEvent(eventID int) (*entity.Event, error) {
	args := m.Called(eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Event), args.Error(1)
}

func (m *MockEventUseCase) RejectEvent(eventID int) (*entity.Event, error) {
	args := m.Called(eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Event), args.Error(1)
}

type MockStatsUseCase struct {
	mock.Mock
}

func (m *MockStatsUseCase) GetStats(ctx context.Context, request *entity.GetStatsRequest) ([]*entity.ViewStats, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ViewStats), args.Error(1)
}

type MockHitUseCase struct {
	mock.Mock
}

func (m *MockHitUseCase) RegisterHit(ctx context.Context, uri, ip string) error {
	args := m.Called(ctx, uri, ip)
	return args.Error(0)
}

type MockAuth struct {
	mock.Mock
}

func (m *MockAuth) CheckAuth(tokenString string) (int, error) {
	args := m.Called(tokenString)
	return args.Int(0), args.Error(1)
}

func (m *MockAuth) CheckAuthFromContext(c echo.Context) (int, error) {
	args := m.Called(c)
	return args.Int(0), args.Error(1)
}

func (m *MockAuth) CreateToken(userID int) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}
