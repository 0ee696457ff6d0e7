package cockroach

import (
	"database/sql"
	"errors"
	"eventic-backend/internal/entity"
	"eventic-backend/internal/repo"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type Comment struct {
	db *sqlx.DB
}

func NewComment(db *sqlx.DB) repo.Comment {
	return &Comment{
		db: db,
	}
}

func (c *Comment) AddComment(comment *entity.Comment) (int, error) {
	var commentID int
	query := `INSERT INTO comment (message, author_id, event_id, created_at)
			  VALUES ($1, $2, $3, $4) RETURNING id`
	err := c.db.QueryRow(query, comment.Message, comment.AuthorID, comment.EventID, comment.CreatedAt).Scan(&commentID)
	if err != nil {
		return 0, err
	}
	return commentID, nil
}

func (c *Comment) GetComment(commentID int) (*entity.Comment, error) {
	var comment entity.Comment
	query := `SELECT id, message, author_id, event_id, created_at FROM comment WHERE id = $1`
	err := c.db.Get(&comment, query, commentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

func (c *Comment) UpdateCommentMessage(commentID int, message string) error {
	query := `UPDATE comment SET message = $1 WHERE id = $2`
	result, err := c.db.Exec(query, message, commentID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repo.ErrCommentNotFound
	}

	return nil
}

func (c *Comment) DeleteComment(commentID int) error {
	query := `DELETE FROM comment WHERE id = $1`
	result, err := c.db.Exec(query, commentID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repo.ErrCommentNotFound
	}

	return nil
}

func (c *Comment) GetEventComments(eventID int, keyword string, offset, limit int) ([]*entity.Comment, error) {
	builder := sq.Select("id", "message", "author_id", "event_id", "created_at").
		From("comment").
		Where(sq.Eq{"event_id": eventID}).
		OrderBy("created_at DESC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)
	if keyword != "" {
		builder = builder.Where(sq.ILike{"message": "%" + keyword + "%"})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	comments := make([]*entity.Comment, 0)
	if err := c.db.Select(&comments, query, args...); err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *Comment) GetUserComments(userID int) ([]*entity.Comment, error) {
	query := `SELECT id, message, author_id, event_id, created_at FROM comment WHERE author_id = $1`
	comments := make([]*entity.Comment, 0)
	err := c.db.Select(&comments, query, userID)
	if err != nil {
		return nil, err
	}
	return comments, nil
}
