package historyrepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/weather-planner/internal/domain/profile"
)

const schema = `
CREATE TABLE IF NOT EXISTS activity_history (
	id                UUID PRIMARY KEY,
	client_id         UUID NOT NULL,
	activity_id       TEXT NOT NULL,
	activity_date     TIMESTAMPTZ NOT NULL,
	weather_condition TEXT NOT NULL,
	temperature       DOUBLE PRECISION NOT NULL,
	rating            SMALLINT,
	notes             TEXT NOT NULL DEFAULT '',
	created_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS activity_history_client_date_idx
	ON activity_history (client_id, activity_date DESC);
`

// PostgresRepository persists activity history in Postgres.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// EnsureSchema creates the history table when it does not exist yet.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, schema)
	return err
}

// Insert adds a history row.
func (r *PostgresRepository) Insert(ctx context.Context, entry profile.HistoryEntry) error {
	var rating any
	if entry.Rating != nil {
		rating = int16(*entry.Rating)
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO activity_history
			(id, client_id, activity_id, activity_date, weather_condition, temperature, rating, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, entry.ID, entry.ClientID, entry.ActivityID, entry.Date, entry.WeatherCondition,
		entry.Temperature, rating, entry.Notes, entry.CreatedAt)
	return err
}

// List fetches a client's history, newest first.
func (r *PostgresRepository) List(ctx context.Context, clientID string, query profile.HistoryQuery) ([]profile.HistoryEntry, error) {
	var activityFilter any
	if query.ActivityID != "" {
		activityFilter = query.ActivityID
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, client_id::text, activity_id, activity_date, weather_condition,
		       temperature, rating, notes, created_at
		FROM activity_history
		WHERE client_id = $1 AND ($2::text IS NULL OR activity_id = $2)
		ORDER BY activity_date DESC, created_at DESC
		LIMIT $3
	`, clientID, activityFilter, query.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.HistoryEntry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (profile.HistoryEntry, error) {
	var (
		entry   profile.HistoryEntry
		rating  sql.NullInt16
		date    time.Time
		created time.Time
	)
	if err := row.Scan(&entry.ID, &entry.ClientID, &entry.ActivityID, &date, &entry.WeatherCondition,
		&entry.Temperature, &rating, &entry.Notes, &created); err != nil {
		return profile.HistoryEntry{}, err
	}
	if rating.Valid {
		value := int(rating.Int16)
		entry.Rating = &value
	}
	entry.Date = date.UTC()
	entry.CreatedAt = created.UTC()
	return entry, nil
}

var _ profile.HistoryRepository = (*PostgresRepository)(nil)
