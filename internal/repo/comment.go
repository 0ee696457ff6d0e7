package repo

import (
	"errors"
	"eventic-backend/internal/entity"
)

type Comment interface {
	// AddComment добавляет комментарий к событию и возвращает его ID
	AddComment(comment *entity.Comment) (int, error)
	// GetComment возвращает комментарий по его ID
	GetComment(commentID int) (*entity.Comment, error)
	// UpdateCommentMessage обновляет текст комментария
	UpdateCommentMessage(commentID int, message string) error
	// DeleteComment удаляет комментарий
	DeleteComment(commentID int) error
	// GetEventComments возвращает страницу комментариев к событию,
	// опционально отфильтрованную по подстроке в тексте
	GetEventComments(eventID int, keyword string, offset, limit int) ([]*entity.Comment, error)
	// GetUserComments возвращает все комментарии пользователя
	GetUserComments(userID int) ([]*entity.Comment, error)
}

var (
	ErrCommentNotFound = errors.New("comment not found")
)
