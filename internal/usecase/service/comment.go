package service

import (
	"errors"
	"eventic-backend/internal/entity"
	"eventic-backend/internal/repo"
	"eventic-backend/internal/usecase"
	"time"
	"unicode/utf8"

	"github.com/labstack/gommon/log"
)

const (
	maxCommentMessageLen = 2000
	defaultCommentsLimit = 10
)

type Comment struct {
	commentRepo repo.Comment
	eventRepo   repo.Event
	userRepo    repo.User
}

func NewComment(commentRepo repo.Comment, eventRepo repo.Event, userRepo repo.User) usecase.Comment {
	return &Comment{
		commentRepo: commentRepo,
		eventRepo:   eventRepo,
		userRepo:    userRepo,
	}
}

func (c *Comment) CreateComment(request *entity.CreateCommentRequest) (*entity.Comment, error) {
	if err := validateCommentMessage(request.Message); err != nil {
		return nil, err
	}
	// сначала проверяем событие, затем пользователя
	event, err := c.ensureEvent(request.EventID)
	if err != nil {
		return nil, err
	}
	if err := c.ensureUser(request.UserID); err != nil {
		return nil, err
	}
	// комментировать можно только опубликованные события
	if event.State != entity.EventStatePublished {
		return nil, usecase.ErrEventNotPublished
	}

	comment := &entity.Comment{
		Message:   request.Message,
		AuthorID:  request.UserID,
		EventID:   request.EventID,
		CreatedAt: time.Now(),
	}
	commentID, err := c.commentRepo.AddComment(comment)
	if err != nil {
		return nil, err
	}
	comment.ID = commentID
	log.Infof("Пользователь %d добавил комментарий %d к событию %d", request.UserID, commentID, request.EventID)
	return comment, nil
}

func (c *Comment) UpdateComment(request *entity.UpdateCommentRequest) (*entity.Comment, error) {
	if err := validateCommentMessage(request.Message); err != nil {
		return nil, err
	}
	if err := c.ensureUser(request.UserID); err != nil {
		return nil, err
	}
	comment, err := c.ensureOwnedComment(request.UserID, request.CommentID)
	if err != nil {
		return nil, err
	}

	// обновляется только текст, автор и событие остаются прежними
	err = c.commentRepo.UpdateCommentMessage(request.CommentID, request.Message)
	if errors.Is(err, repo.ErrCommentNotFound) {
		return nil, usecase.ErrCommentNotFound
	}
	if err != nil {
		return nil, err
	}
	comment.Message = request.Message
	return comment, nil
}

func (c *Comment) DeleteComment(userID, commentID int) error {
	if _, err := c.ensureOwnedComment(userID, commentID); err != nil {
		return err
	}

	err := c.commentRepo.DeleteComment(commentID)
	if errors.Is(err, repo.ErrCommentNotFound) {
		return usecase.ErrCommentNotFound
	}
	if err != nil {
		return err
	}
	log.Infof("Пользователь %d удалил комментарий %d", userID, commentID)
	return nil
}

func (c *Comment) DeleteCommentByAdmin(commentID int) error {
	err := c.commentRepo.DeleteComment(commentID)
	if errors.Is(err, repo.ErrCommentNotFound) {
		return usecase.ErrCommentNotFound
	}
	if err != nil {
		return err
	}
	log.Infof("Администратор удалил комментарий %d", commentID)
	return nil
}

func (c *Comment) GetComment(userID, commentID int) (*entity.Comment, error) {
	return c.ensureOwnedComment(userID, commentID)
}

func (c *Comment) GetCommentByAdmin(commentID int) (*entity.Comment, error) {
	comment, err := c.commentRepo.GetComment(commentID)
	if errors.Is(err, repo.ErrCommentNotFound) {
		return nil, usecase.ErrCommentNotFound
	}
	if err != nil {
		return nil, err
	}
	return comment, nil
}

func (c *Comment) GetEventComments(request *entity.GetEventCommentsRequest) ([]*entity.Comment, error) {
	// существование события не проверяется: для неизвестного ID
	// возвращается пустая страница
	offset := request.From
	if offset < 0 {
		offset = 0
	}
	limit := request.Size
	if limit <= 0 {
		limit = defaultCommentsLimit
	}
	return c.commentRepo.GetEventComments(request.EventID, request.Keyword, offset, limit)
}

func (c *Comment) GetUserComments(userID int) ([]*entity.Comment, error) {
	// существование пользователя не проверяется: для неизвестного ID
	// возвращается пустой список
	return c.commentRepo.GetUserComments(userID)
}

// ensureUser проверяет существование пользователя
func (c *Comment) ensureUser(userID int) error {
	exists, err := c.userRepo.UserExists(userID)
	if err != nil {
		return err
	}
	if !exists {
		return usecase.ErrUserNotFound
	}
	return nil
}

// ensureEvent возвращает событие, если оно существует
func (c *Comment) ensureEvent(eventID int) (*entity.Event, error) {
	event, err := c.eventRepo.GetEvent(eventID)
	if errors.Is(err, repo.ErrEventNotFound) {
		return nil, usecase.ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	return event, nil
}

// ensureOwnedComment возвращает комментарий, если он существует и принадлежит пользователю
func (c *Comment) ensureOwnedComment(userID, commentID int) (*entity.Comment, error) {
	comment, err := c.commentRepo.GetComment(commentID)
	if errors.Is(err, repo.ErrCommentNotFound) {
		return nil, usecase.ErrCommentNotFound
	}
	if err != nil {
		return nil, err
	}
	if comment.AuthorID != userID {
		return nil, usecase.ErrUserForbidden
	}
	return comment, nil
}

func validateCommentMessage(message string) error {
	length := utf8.RuneCountInString(message)
	if length == 0 || length > maxCommentMessageLen {
		return usecase.ErrCommentMessageInvalid
	}
	return nil
}
