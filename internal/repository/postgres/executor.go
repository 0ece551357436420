package postgres

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
)

// DBExecutor - общий интерфейс для *sql.DB и *sql.Tx
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
