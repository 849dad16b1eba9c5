package storage

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
)

func artistSelect() sq.SelectBuilder {
	return psql.Select(
		"ar.id", "ar.name", "ar.email", "ar.phone", "ar.spotify_id", "ar.location",
		"ar.genre", "ar.bio", "ar.instagram", "ar.twitter", "ar.youtube",
		"ar.tiktok", "ar.website",
		"count(aa.article_id) AS article_count",
		"ar.created_at", "ar.updated_at",
	).
		From("artists ar").
		LeftJoin("article_artists aa ON aa.artist_id = ar.id").
		GroupBy("ar.id")
}

func scanArtistRow(row sq.RowScanner) (ArtistRow, error) {
	var a ArtistRow
	err := row.Scan(
		&a.ID, &a.Name, &a.Email, &a.Phone, &a.SpotifyID, &a.Location,
		&a.Genre, &a.Bio, &a.Instagram, &a.Twitter, &a.Youtube,
		&a.Tiktok, &a.Website, &a.ArticleCount, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

type ListArtistsParams struct {
	Genre    string
	Location string
	Lexems   []string
}

func (q *Queries) ListArtists(ctx context.Context, params ListArtistsParams) ([]ArtistRow, error) {
	builder := artistSelect().OrderBy("ar.name ASC")
	if params.Genre != "" {
		builder = builder.Where(sq.Eq{"ar.genre": params.Genre})
	}
	if params.Location != "" {
		builder = builder.Where(sq.Eq{"ar.location": params.Location})
	}
	for _, lexem := range params.Lexems {
		if lexem == "" {
			continue
		}
		pattern := "%" + lexem + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"ar.name": pattern},
			sq.ILike{"ar.bio": pattern},
		})
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

	var result []ArtistRow
	for rows.Next() {
		artist, err := scanArtistRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, artist)
	}
	return result, rows.Err()
}

func (q *Queries) GetArtistByID(ctx context.Context, id int64) (ArtistRow, error) {
	query, args, err := artistSelect().Where(sq.Eq{"ar.id": id}).ToSql()
	if err != nil {
		return ArtistRow{}, err
	}
	return scanArtistRow(q.db.QueryRowContext(ctx, query, args...))
}

const newArtist = `INSERT INTO artists (name, email, phone, spotify_id, location, genre, bio, instagram, twitter, youtube, tiktok, website)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id`

type NewArtistParams struct {
	Name      string
	Email     sql.NullString
	Phone     sql.NullString
	SpotifyID sql.NullString
	Location  sql.NullString
	Genre     string
	Bio       sql.NullString
	Instagram sql.NullString
	Twitter   sql.NullString
	Youtube   sql.NullString
	Tiktok    sql.NullString
	Website   sql.NullString
}

func (q *Queries) NewArtist(ctx context.Context, params NewArtistParams) (int64, error) {
	var id int64
	err := q.db.QueryRowContext(ctx, newArtist,
		params.Name, params.Email, params.Phone, params.SpotifyID, params.Location,
		params.Genre, params.Bio, params.Instagram, params.Twitter, params.Youtube,
		params.Tiktok, params.Website,
	).Scan(&id)
	return id, err
}
