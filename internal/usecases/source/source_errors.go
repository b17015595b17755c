package source

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de fontes
var (
	ErrSourceNotFound     = errors.New("source not found")
	ErrSourceConflict     = errors.New("source name already in use")
	ErrInvalidPricingType = errors.New("invalid pricing type")

	// Erros de banco de dados
	ErrFetchSources = errors.New("error fetching sources from database")
	ErrSaveSource   = errors.New("error saving source")
	ErrDeleteSource = errors.New("error deleting source")
)

// SourceError é um erro com contexto adicional para fontes
type SourceError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	SourceID int    // ID da fonte envolvida (quando aplicável)
	Details  string // Detalhes adicionais
}

func (e *SourceError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

func (e *SourceError) ErrorCode() string {
	return e.Code
}

func (e *SourceError) ErrorDetails() string {
	return e.Details
}

func NewSourceError(err error, code string, details string) *SourceError {
	return &SourceError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewSourceErrorWithID(err error, code string, sourceID int, details string) *SourceError {
	return &SourceError{
		Err:      err,
		Code:     code,
		SourceID: sourceID,
		Details:  details,
	}
}
