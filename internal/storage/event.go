package storage

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
)

func eventSelect() sq.SelectBuilder {
	return psql.Select(
		"e.id", "e.title", "e.artist", "e.event_date", "e.start_time", "e.venue",
		"e.location", "e.genre", "e.flyer_url", "e.doors", "e.ticket_url",
		"e.description", "e.created_at", "e.updated_at",
	).From("events e")
}

func scanEventRow(row sq.RowScanner) (EventRow, error) {
	var e EventRow
	err := row.Scan(
		&e.ID, &e.Title, &e.Artist, &e.EventDate, &e.StartTime, &e.Venue,
		&e.Location, &e.Genre, &e.FlyerURL, &e.Doors, &e.TicketURL,
		&e.Description, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

type ListEventsParams struct {
	Genre string
	// Window borders over event_date. After includes the border day,
	// Before excludes it, so upcoming/past never overlap.
	After  sql.NullTime
	Before sql.NullTime
}

func (q *Queries) ListEvents(ctx context.Context, params ListEventsParams) ([]EventRow, error) {
	builder := eventSelect().OrderBy("e.event_date ASC", "e.start_time ASC NULLS LAST")
	if params.Genre != "" {
		builder = builder.Where(sq.Eq{"e.genre": params.Genre})
	}
	if params.After.Valid {
		builder = builder.Where(sq.GtOrEq{"e.event_date": params.After.Time})
	}
	if params.Before.Valid {
		builder = builder.Where(sq.Lt{"e.event_date": params.Before.Time})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []EventRow
	for rows.Next() {
		event, err := scanEventRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, event)
	}
	return result, rows.Err()
}

func (q *Queries) GetEventByID(ctx context.Context, id int64) (EventRow, error) {
	query, args, err := eventSelect().Where(sq.Eq{"e.id": id}).ToSql()
	if err != nil {
		return EventRow{}, err
	}
	return scanEventRow(q.db.QueryRowContext(ctx, query, args...))
}

const newEvent = `INSERT INTO events (title, artist, event_date, start_time, venue, location, genre, flyer_url, doors, ticket_url, description)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id`

type NewEventParams struct {
	Title       string
	Artist      string
	EventDate   time.Time
	StartTime   sql.NullString
	Venue       string
	Location    string
	Genre       string
	FlyerURL    sql.NullString
	Doors       sql.NullString
	TicketURL   sql.NullString
	Description sql.NullString
}

func (q *Queries) NewEvent(ctx context.Context, params NewEventParams) (int64, error) {
	var id int64
	err := q.db.QueryRowContext(ctx, newEvent,
		params.Title, params.Artist, params.EventDate, params.StartTime, params.Venue,
		params.Location, params.Genre, params.FlyerURL, params.Doors, params.TicketURL,
		params.Description,
	).Scan(&id)
	return id, err
}
