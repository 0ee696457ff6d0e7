package entity

import (
	"time"

	"github.com/google/uuid"
)

// EndpointHit - событие просмотра публичного эндпоинта. HitID служит ключом
// идемпотентности: шина доставляет события как минимум один раз.
type EndpointHit struct {
	ID        int       `json:"-" db:"id" msgpack:"-"`
	HitID     uuid.UUID `json:"hit_id" db:"hit_id" msgpack:"hit_id"`
	App       string    `json:"app" db:"app" msgpack:"app"`
	URI       string    `json:"uri" db:"uri" msgpack:"uri"`
	IP        string    `json:"ip" db:"ip" msgpack:"ip"`
	CreatedAt time.Time `json:"created_at" db:"created_at" msgpack:"created_at"`
}

type ViewStats struct {
	App  string `json:"app" db:"app" msgpack:"app"`
	URI  string `json:"uri" db:"uri" msgpack:"uri"`
	Hits int    `json:"hits" db:"hits" msgpack:"hits"`
}

type GetStatsRequest struct {
	Start  time.Time `query:"start"`
	End    time.Time `query:"end"`
	URIs   []string  `query:"uris"`
	Unique bool      `query:"unique"`
}
