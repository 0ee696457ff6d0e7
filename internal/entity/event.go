package entity

import "time"

const (
	EventStatePending   = "PENDING"
	EventStatePublished = "PUBLISHED"
	EventStateCanceled  = "CANCELED"
)

type Event struct {
	ID          int        `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	EventDate   time.Time  `json:"event_date" db:"event_date"`
	InitiatorID int        `json:"initiator_id" db:"initiator_id"`
	State       string     `json:"state" db:"state"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	PublishedAt *time.Time `json:"published_at,omitempty" db:"published_at"`
	// Views не хранится в базе данных, подтягивается из сервиса статистики
	Views int `json:"views" db:"-"`
}

type CreateEventRequest struct {
	UserID      int       `json:"-"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EventDate   time.Time `json:"event_date"`
}

type GetUserEventsRequest struct {
	UserID int `query:"-"`
	From   int `query:"from"`
	Size   int `query:"size"`
}

type SearchEventsRequest struct {
	Text string `query:"text"`
	From int    `query:"from"`
	Size int    `query:"size"`
}

type GetAdminEventsRequest struct {
	State string `query:"state"`
	From  int    `query:"from"`
	Size  int    `query:"size"`
}

type ModerateEventRequest struct {
	EventID int `json:"event_id"`
}
