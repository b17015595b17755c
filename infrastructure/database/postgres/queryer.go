package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// Queryer é satisfeito tanto por *sqlx.DB quanto por *sqlx.Tx
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}
