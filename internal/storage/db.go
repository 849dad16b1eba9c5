package storage

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
)

type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
