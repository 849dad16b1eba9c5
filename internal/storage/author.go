package storage

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
)

func authorSelect() sq.SelectBuilder {
	return psql.Select(
		"au.id", "au.name", "au.category", "au.bio", "au.cash_tag",
		"au.instagram", "au.created_at", "au.updated_at",
	).From("authors au")
}

func scanAuthorRow(row sq.RowScanner) (AuthorRow, error) {
	var a AuthorRow
	err := row.Scan(
		&a.ID, &a.Name, &a.Category, &a.Bio, &a.CashTag,
		&a.Instagram, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

type ListAuthorsParams struct {
	Category string
	Lexems   []string
}

func (q *Queries) ListAuthors(ctx context.Context, params ListAuthorsParams) ([]AuthorRow, error) {
	builder := authorSelect().OrderBy("au.name ASC")
	if params.Category != "" {
		builder = builder.Where(sq.Eq{"au.category": params.Category})
	}
	for _, lexem := range params.Lexems {
		if lexem == "" {
			continue
		}
		pattern := "%" + lexem + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"au.name": pattern},
			sq.ILike{"au.bio": pattern},
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

	var result []AuthorRow
	for rows.Next() {
		author, err := scanAuthorRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, author)
	}
	return result, rows.Err()
}

func (q *Queries) GetAuthorByID(ctx context.Context, id int64) (AuthorRow, error) {
	query, args, err := authorSelect().Where(sq.Eq{"au.id": id}).ToSql()
	if err != nil {
		return AuthorRow{}, err
	}
	return scanAuthorRow(q.db.QueryRowContext(ctx, query, args...))
}

const newAuthor = `INSERT INTO authors (name, category, bio, cash_tag, instagram)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

type NewAuthorParams struct {
	Name      string
	Category  string
	Bio       sql.NullString
	CashTag   sql.NullString
	Instagram sql.NullString
}

func (q *Queries) NewAuthor(ctx context.Context, params NewAuthorParams) (int64, error) {
	var id int64
	err := q.db.QueryRowContext(ctx, newAuthor,
		params.Name, params.Category, params.Bio, params.CashTag, params.Instagram,
	).Scan(&id)
	return id, err
}
