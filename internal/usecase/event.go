package usecase

import (
	"context"
	"errors"
	"eventic-backend/internal/entity"
)

type Event interface {
	// CreateEvent добавляет новое событие в состоянии ожидания модерации
	CreateEvent(request *entity.CreateEventRequest) (*entity.Event, error)
	// GetUserEvents возвращает страницу событий, созданных пользователем
	GetUserEvents(request *entity.GetUserEventsRequest) ([]*entity.Event, error)
	// GetPublishedEvent возвращает опубликованное событие вместе с количеством просмотров
	GetPublishedEvent(ctx context.Context, eventID int) (*entity.Event, error)
	// SearchPublishedEvents возвращает страницу опубликованных событий
	// с поиском по названию и описанию
	SearchPublishedEvents(ctx context.Context, request *entity.SearchEventsRequest) ([]*entity.Event, error)
	// GetEventsByAdmin возвращает страницу событий в указанном состоянии
	GetEventsByAdmin(request *entity.GetAdminEventsRequest) ([]*entity.Event, error)
	// PublishEvent публикует событие, ожидающее модерации
	PublishEvent(eventID int) (*entity.Event, error)
	// RejectEvent отклоняет событие, ожидающее модерации
	RejectEvent(eventID int) (*entity.Event, error)
}

// EventViews возвращает счетчики просмотров событий из сервиса статистики
type EventViews interface {
	// GetEventViews возвращает количество просмотров события
	GetEventViews(ctx context.Context, eventID int) (int, error)
	// GetEventsViews возвращает количество просмотров для набора событий
	GetEventsViews(ctx context.Context, eventIDs []int) (map[int]int, error)
}

var (
	ErrEventNotFound           = errors.New("event not found")
	ErrEventNotPending         = errors.New("event is not pending")
	ErrTitleLenIncorrect       = errors.New("title must be between 3 and 120 characters")
	ErrDescriptionLenIncorrect = errors.New("description must be between 20 and 7000 characters")
	ErrEventDateTooSoon        = errors.New("event date must be at least 2 hours in the future")
)
