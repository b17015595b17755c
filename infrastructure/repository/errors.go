package repository

import (
	"database/sql"

	"github.com/lib/pq"
	"github.com/pkg/errors"
)

// Códigos de erro do PostgreSQL tratados pelos repositórios
const (
	pqUniqueViolation     = pq.ErrorCode("23505")
	pqForeignKeyViolation = pq.ErrorCode("23503")
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrConflict         = errors.New("unique constraint violation")
	ErrInvalidReference = errors.New("foreign key violation")
)

// translateError converte erros do driver nos erros do pacote
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return errors.Wrap(ErrConflict, pqErr.Constraint)
		case pqForeignKeyViolation:
			return errors.Wrap(ErrInvalidReference, pqErr.Constraint)
		}
		return errors.Wrapf(err, "database error (code: %s)", pqErr.Code)
	}

	return err
}
