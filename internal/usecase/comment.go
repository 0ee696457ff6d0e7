package usecase

import (
	"errors"
	"eventic-backend/internal/entity"
)

type Comment interface {
	// CreateComment добавляет комментарий к опубликованному событию
	CreateComment(request *entity.CreateCommentRequest) (*entity.Comment, error)
	// UpdateComment обновляет текст собственного комментария пользователя.
	// Автор и событие комментария при этом не меняются.
	UpdateComment(request *entity.UpdateCommentRequest) (*entity.Comment, error)
	// DeleteComment удаляет собственный комментарий пользователя
	DeleteComment(userID, commentID int) error
	// DeleteCommentByAdmin удаляет любой комментарий без проверки автора
	DeleteCommentByAdmin(commentID int) error
	// GetComment возвращает собственный комментарий пользователя
	GetComment(userID, commentID int) (*entity.Comment, error)
	// GetCommentByAdmin возвращает любой комментарий без проверки автора
	GetCommentByAdmin(commentID int) (*entity.Comment, error)
	// GetEventComments возвращает страницу комментариев к событию,
	// новые комментарии идут первыми
	GetEventComments(request *entity.GetEventCommentsRequest) ([]*entity.Comment, error)
	// GetUserComments возвращает все комментарии пользователя
	GetUserComments(userID int) ([]*entity.Comment, error)
}

var (
	ErrCommentNotFound       = errors.New("comment not found")
	ErrEventNotPublished     = errors.New("event is not published")
	ErrCommentMessageInvalid = errors.New("comment message must be between 1 and 2000 characters")
)
