package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/lead-dashboard-api/infrastructure/database/postgres"
)

// getOne executa a query e preenche dest. Retorna sql.ErrNoRows sem tradução.
func getOne(ctx context.Context, q postgres.Queryer, dest interface{}, builder squirrel.Sqlizer) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build query")
	}

	return q.GetContext(ctx, dest, query, args...)
}

func selectAll(ctx context.Context, q postgres.Queryer, dest interface{}, builder squirrel.Sqlizer) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build query")
	}

	if err := q.SelectContext(ctx, dest, query, args...); err != nil {
		return translateError(err)
	}

	return nil
}

// execAffecting executa o comando e retorna ErrNotFound quando nenhuma linha é afetada
func execAffecting(ctx context.Context, q postgres.Queryer, builder squirrel.Sqlizer) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build query")
	}

	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return translateError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "error getting rows affected")
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// isNoRows indica que a consulta não retornou linhas
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
