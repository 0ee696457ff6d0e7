package entity

import "time"

type Comment struct {
	ID        int       `json:"id" db:"id"`
	Message   string    `json:"message" db:"message"`
	AuthorID  int       `json:"author_id" db:"author_id"`
	EventID   int       `json:"event_id" db:"event_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CreateCommentRequest struct {
	UserID  int    `json:"-"`
	EventID int    `json:"event_id"`
	Message string `json:"message"`
}

type UpdateCommentRequest struct {
	UserID    int    `json:"-"`
	CommentID int    `json:"comment_id"`
	Message   string `json:"message"`
}

type GetEventCommentsRequest struct {
	EventID int    `query:"event_id"`
	Keyword string `query:"keyword"`
	From    int    `query:"from"`
	Size    int    `query:"size"`
}
