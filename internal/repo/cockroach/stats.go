package cockroach

import (
	"eventic-backend/internal/entity"
	"eventic-backend/internal/repo"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type Stats struct {
	db *sqlx.DB
}

func NewStats(db *sqlx.DB) repo.Stats {
	return &Stats{
		db: db,
	}
}

func (s *Stats) AddHit(hit *entity.EndpointHit) error {
	// Шина доставляет события как минимум один раз, поэтому повторные
	// записи с тем же hit_id молча отбрасываются
	query := `INSERT INTO endpoint_hit (hit_id, app, uri, ip, created_at)
			  VALUES ($1, $2, $3, $4, $5)
			  ON CONFLICT (hit_id) DO NOTHING`
	_, err := s.db.Exec(query, hit.HitID, hit.App, hit.URI, hit.IP, hit.CreatedAt)
	return err
}

func (s *Stats) GetStats(start, end time.Time, uris []string, unique bool) ([]*entity.ViewStats, error) {
	hitsColumn := "COUNT(*) AS hits"
	if unique {
		hitsColumn = "COUNT(DISTINCT ip) AS hits"
	}

	builder := sq.Select("app", "uri", hitsColumn).
		From("endpoint_hit").
		Where(sq.GtOrEq{"created_at": start}).
		Where(sq.LtOrEq{"created_at": end}).
		GroupBy("app", "uri").
		OrderBy("hits DESC").
		PlaceholderFormat(sq.Dollar)
	if len(uris) > 0 {
		builder = builder.Where(sq.Eq{"uri": uris})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	stats := make([]*entity.ViewStats, 0)
	if err := s.db.Select(&stats, query, args...); err != nil {
		return nil, err
	}
	return stats, nil
}
