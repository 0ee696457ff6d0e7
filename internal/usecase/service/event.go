package service

import (
	"context"
	"errors"
	"eventic-backend/internal/entity"
	"eventic-backend/internal/repo"
	"eventic-backend/internal/usecase"
	"time"
	"unicode/utf8"

	"github.com/labstack/gommon/log"
)

const (
	defaultEventsLimit = 10
	// событие должно начинаться не раньше, чем через два часа после создания
	minEventDateGap = 2 * time.Hour
)

type Event struct {
	eventRepo repo.Event
	userRepo  repo.User
	views     usecase.EventViews
}

func NewEvent(eventRepo repo.Event, userRepo repo.User, views usecase.EventViews) usecase.Event {
	return &Event{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		views:     views,
	}
}

func (e *Event) CreateEvent(request *entity.CreateEventRequest) (*entity.Event, error) {
	titleLen := utf8.RuneCountInString(request.Title)
	if titleLen < 3 || titleLen > 120 {
		return nil, usecase.ErrTitleLenIncorrect
	}
	descriptionLen := utf8.RuneCountInString(request.Description)
	if descriptionLen < 20 || descriptionLen > 7000 {
		return nil, usecase.ErrDescriptionLenIncorrect
	}
	if request.EventDate.Before(time.Now().Add(minEventDateGap)) {
		return nil, usecase.ErrEventDateTooSoon
	}

	exists, err := e.userRepo.UserExists(request.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, usecase.ErrUserNotFound
	}

	event := &entity.Event{
		Title:       request.Title,
		Description: request.Description,
		EventDate:   request.EventDate,
		InitiatorID: request.UserID,
		State:       entity.EventStatePending,
		CreatedAt:   time.Now(),
	}
	eventID, err := e.eventRepo.AddEvent(event)
	if err != nil {
		return nil, err
	}
	event.ID = eventID
	log.Infof("Пользователь %d создал событие %d", request.UserID, eventID)
	return event, nil
}

func (e *Event) GetUserEvents(request *entity.GetUserEventsRequest) ([]*entity.Event, error) {
	offset := request.From
	if offset < 0 {
		offset = 0
	}
	limit := request.Size
	if limit <= 0 {
		limit = defaultEventsLimit
	}
	return e.eventRepo.GetUserEvents(request.UserID, offset, limit)
}

func (e *Event) GetPublishedEvent(ctx context.Context, eventID int) (*entity.Event, error) {
	event, err := e.eventRepo.GetEvent(eventID)
	if errors.Is(err, repo.ErrEventNotFound) {
		return nil, usecase.ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	// неопубликованные события недоступны публично
	if event.State != entity.EventStatePublished {
		return nil, usecase.ErrEventNotFound
	}

	views, err := e.views.GetEventViews(ctx, eventID)
	if err != nil {
		// недоступность статистики не мешает отдать событие
		log.Warnf("Не удалось получить просмотры события %d: %v", eventID, err)
		views = 0
	}
	event.Views = views
	return event, nil
}

func (e *Event) SearchPublishedEvents(ctx context.Context, request *entity.SearchEventsRequest) ([]*entity.Event, error) {
	offset := request.From
	if offset < 0 {
		offset = 0
	}
	limit := request.Size
	if limit <= 0 {
		limit = defaultEventsLimit
	}

	events, err := e.eventRepo.GetPublishedEvents(request.Text, offset, limit)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return events, nil
	}

	eventIDs := make([]int, 0, len(events))
	for _, event := range events {
		eventIDs = append(eventIDs, event.ID)
	}
	views, err := e.views.GetEventsViews(ctx, eventIDs)
	if err != nil {
		log.Warnf("Не удалось получить просмотры событий: %v", err)
		return events, nil
	}
	for _, event := range events {
		event.Views = views[event.ID]
	}
	return events, nil
}

func (e *Event) GetEventsByAdmin(request *entity.GetAdminEventsRequest) ([]*entity.Event, error) {
	offset := request.From
	if offset < 0 {
		offset = 0
	}
	limit := request.Size
	if limit <= 0 {
		limit = defaultEventsLimit
	}
	return e.eventRepo.GetEventsByState(request.State, offset, limit)
}

func (e *Event) PublishEvent(eventID int) (*entity.Event, error) {
	event, err := e.eventRepo.GetEvent(eventID)
	if errors.Is(err, repo.ErrEventNotFound) {
		return nil, usecase.ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	if event.State != entity.EventStatePending {
		return nil, usecase.ErrEventNotPending
	}

	publishedAt := time.Now()
	err = e.eventRepo.PublishEvent(eventID, publishedAt)
	if errors.Is(err, repo.ErrEventNotPending) {
		return nil, usecase.ErrEventNotPending
	}
	if err != nil {
		return nil, err
	}
	event.State = entity.EventStatePublished
	event.PublishedAt = &publishedAt
	log.Infof("Событие %d опубликовано", eventID)
	return event, nil
}

func (e *Event) RejectEvent(eventID int) (*entity.Event, error) {
	event, err := e.eventRepo.GetEvent(eventID)
	if errors.Is(err, repo.ErrEventNotFound) {
		return nil, usecase.ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	if event.State != entity.EventStatePending {
		return nil, usecase.ErrEventNotPending
	}

	err = e.eventRepo.RejectEvent(eventID)
	if errors.Is(err, repo.ErrEventNotPending) {
		return nil, usecase.ErrEventNotPending
	}
	if err != nil {
		return nil, err
	}
	event.State = entity.EventStateCanceled
	log.Infof("Событие %d отклонено", eventID)
	return event, nil
}
