package cockroach

import (
	"database/sql"
	"errors"
	"eventic-backend/internal/entity"
	"eventic-backend/internal/repo"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type Event struct {
	db *sqlx.DB
}

func NewEvent(db *sqlx.DB) repo.Event {
	return &Event{
		db: db,
	}
}

func eventColumns() []string {
	return []string{"id", "title", "description", "event_date", "initiator_id", "state", "created_at", "published_at"}
}

func (e *Event) AddEvent(event *entity.Event) (int, error) {
	var eventID int
	query := `INSERT INTO event (title, description, event_date, initiator_id, state, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := e.db.QueryRow(query,
		event.Title,
		event.Description,
		event.EventDate,
		event.InitiatorID,
		event.State,
		event.CreatedAt).Scan(&eventID)
	if err != nil {
		return 0, err
	}
	return eventID, nil
}

func (e *Event) GetEvent(eventID int) (*entity.Event, error) {
	var event entity.Event
	query := `SELECT id, title, description, event_date, initiator_id, state, created_at, published_at
			  FROM event WHERE id = $1`
	err := e.db.Get(&event, query, eventID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (e *Event) GetUserEvents(userID, offset, limit int) ([]*entity.Event, error) {
	query := `SELECT id, title, description, event_date, initiator_id, state, created_at, published_at
			  FROM event WHERE initiator_id = $1
			  ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	events := make([]*entity.Event, 0)
	err := e.db.Select(&events, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (e *Event) GetPublishedEvents(text string, offset, limit int) ([]*entity.Event, error) {
	builder := sq.Select(eventColumns()...).
		From("event").
		Where(sq.Eq{"state": entity.EventStatePublished}).
		OrderBy("published_at DESC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)
	if text != "" {
		pattern := "%" + text + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"description": pattern},
		})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	events := make([]*entity.Event, 0)
	if err := e.db.Select(&events, query, args...); err != nil {
		return nil, err
	}
	return events, nil
}

func (e *Event) GetEventsByState(state string, offset, limit int) ([]*entity.Event, error) {
	builder := sq.Select(eventColumns()...).
		From("event").
		OrderBy("created_at DESC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)
	if state != "" {
		builder = builder.Where(sq.Eq{"state": state})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	events := make([]*entity.Event, 0)
	if err := e.db.Select(&events, query, args...); err != nil {
		return nil, err
	}
	return events, nil
}

func (e *Event) PublishEvent(eventID int, publishedAt time.Time) error {
	query := `UPDATE event SET state = $1, published_at = $2 WHERE id = $3 AND state = $4`
	result, err := e.db.Exec(query, entity.EventStatePublished, publishedAt, eventID, entity.EventStatePending)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repo.ErrEventNotPending
	}

	return nil
}

func (e *Event) RejectEvent(eventID int) error {
	query := `UPDATE event SET state = $1 WHERE id = $2 AND state = $3`
	result, err := e.db.Exec(query, entity.EventStateCanceled, eventID, entity.EventStatePending)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repo.ErrEventNotPending
	}

	return nil
}
