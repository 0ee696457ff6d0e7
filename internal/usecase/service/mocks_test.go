package service

import (
	"context"
	"eventic-backend/internal/entity"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) AddComment(comment *entity.Comment) (int, error) {
	args := m.Called(comment)
	return args.Int(0), args.Error(1)
}

func (m *MockCommentRepository) GetComment(commentID int) (*entity.Comment, error) {
	args := m.Called(commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) UpdateCommentMessage(commentID int, message string) error {
	args := m.Called(commentID, message)
	return args.Error(0)
}

func (m *MockCommentRepository) DeleteComment(commentID int) error {
	args := m.Called(commentID)
	return args.Error(0)
}

func (m *MockCommentRepository) GetEventComments(eventID int, keyword string, offset, limit int) ([]*entity.Comment, error) {
	args := m.Called(eventID, keyword, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) GetUserComments(userID int) ([]*entity.Comment, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) AddEvent(event *entity.Event) (int, error) {
	args := m.Called(event)
	return args.Int(0), args.Error(1)
}

func (m *MockEventRepository) GetEvent(eventID int) (*entity.Event, error) {
	args := m.Called(eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Event), args.Error(1)
}

func (m *MockEventRepository) GetUserEvents(userID, offset, limit int) ([]*entity.Event, error) {
	args := m.Called(userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Event), args.Error(1)
}

func (m *MockEventRepository) GetPublishedEvents(text string, offset, limit int) ([]*entity.Event, error) {
	args := m.Called(text, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Event), args.Error(1)
}

func (m *MockEventRepository) GetEventsByState(state string, offset, limit int) ([]*entity.Event, error) {
	args := m.Called(state, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Event), args.Error(1)
}

func (m *MockEventRepository) PublishEvent(eventID int, publishedAt time.Time) error {
	args := m.Called(eventID, publishedAt)
	return args.Error(0)
}

func (m *MockEventRepository) RejectEvent(eventID int) error {
	args := m.Called(eventID)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) AddUser(user *entity.User) (int, error) {
	args := m.Called(user)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) GetUser(userID int) (*entity.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetUsers(ids []int, offset, limit int) ([]*entity.User, error) {
	args := m.Called(ids, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserRepository) UserExists(userID int) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) DeleteUser(userID int) error {
	args := m.Called(userID)
	return args.Error(0)
}

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) AddHit(hit *entity.EndpointHit) error {
	args := m.Called(hit)
	return args.Error(0)
}

func (m *MockStatsRepository) GetStats(start, end time.Time, uris []string, unique bool) ([]*entity.ViewStats, error) {
	args := m.Called(start, end, uris, unique)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ViewStats), args.Error(1)
}

type MockStatsCache struct {
	mock.Mock
}

func (m *MockStatsCache) GetStats(ctx context.Context, key string) ([]*entity.ViewStats, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ViewStats), args.Error(1)
}

func (m *MockStatsCache) SetStats(ctx context.Context, key string, stats []*entity.ViewStats) error {
	args := m.Called(ctx, key, stats)
	return args.Error(0)
}

type MockHitEventRepository struct {
	mock.Mock
}

func (m *MockHitEventRepository) PublishHit(ctx context.Context, hit *entity.EndpointHit) error {
	args := m.Called(ctx, hit)
	return args.Error(0)
}

func (m *MockHitEventRepository) SubscribeHits(ctx context.Context) (<-chan *entity.EndpointHit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan *entity.EndpointHit), args.Error(1)
}

type MockEventViews struct {
	mock.Mock
}

func (m *MockEventViews) GetEventViews(ctx context.Context, eventID int) (int, error) {
	args := m.Called(ctx, eventID)
	return args.Int(0), args.Error(1)
}

func (m *MockEventViews) GetEventsViews(ctx context.Context, eventIDs []int) (map[int]int, error) {
	args := m.Called(ctx, eventIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]int), args.Error(1)
}
