package results

import (
	"context"
	"database/sql"

	"fantasyolympics-backend/lib/medals"
)

// Store persists medal events into the shared results database,
// keyed by event id. Writes are insert-or-overwrite, so overlapping
// runs converge without coordination.
type Store struct {
	db *sql.DB
}

func NewStore(database *sql.DB) Store {
	return Store{db: database}
}

func (s Store) Name() string { return "store" }

func (s Store) Upsert(ctx context.Context, record medals.MedalEvent) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO results (event_id, discipline, event, country, medal, ts)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (event_id) DO UPDATE SET
			discipline = excluded.discipline,
			event = excluded.event,
			country = excluded.country,
			medal = excluded.medal,
			ts = excluded.ts`,
		record.EventID,
		record.Discipline,
		record.Event,
		record.Country,
		string(record.Medal),
		record.Timestamp.Unix(),
	)
	return err
}

type Standing struct {
	Country string
	Gold    int
	Silver  int
	Bronze  int
}

func (s Standing) Total() int {
	return s.Gold + s.Silver + s.Bronze
}

// Standings reports per-country medal counts, ordered the way medal
// tables are: gold first, then silver, then bronze.
func (s Store) Standings(ctx context.Context) ([]Standing, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT
			country,
			COUNT(CASE WHEN medal = 'G' THEN 1 END),
			COUNT(CASE WHEN medal = 'S' THEN 1 END),
			COUNT(CASE WHEN medal = 'B' THEN 1 END)
		FROM results
		GROUP BY country
		ORDER BY 2 DESC, 3 DESC, 4 DESC, country ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var standings []Standing
	for rows.Next() {
		var standing Standing
		err := rows.Scan(&standing.Country, &standing.Gold, &standing.Silver, &standing.Bronze)
		if err != nil {
			return nil, err
		}
		standings = append(standings, standing)
	}
	return standings, rows.Err()
}
