package repo

import (
	"errors"
	"eventic-backend/internal/entity"
	"time"
)

type Event interface {
	// AddEvent добавляет новое событие и возвращает его ID
	AddEvent(event *entity.Event) (int, error)
	// GetEvent возвращает событие по его ID
	GetEvent(eventID int) (*entity.Event, error)
	// GetUserEvents возвращает страницу событий, созданных пользователем
	GetUserEvents(userID, offset, limit int) ([]*entity.Event, error)
	// GetPublishedEvents возвращает страницу опубликованных событий с поиском по тексту
	GetPublishedEvents(text string, offset, limit int) ([]*entity.Event, error)
	// GetEventsByState возвращает страницу событий в указанном состоянии.
	// Пустое состояние означает все события.
	GetEventsByState(state string, offset, limit int) ([]*entity.Event, error)
	// PublishEvent переводит событие из ожидания в опубликованные
	PublishEvent(eventID int, publishedAt time.Time) error
	// RejectEvent переводит событие из ожидания в отмененные
	RejectEvent(eventID int) error
}

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrEventNotPending = errors.New("event is not pending")
)
