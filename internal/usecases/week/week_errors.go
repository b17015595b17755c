package week

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de semanas
var (
	ErrWeekNotFound = errors.New("week not found")

	// Erros de banco de dados
	ErrFetchWeeks = errors.New("error fetching weeks from database")
	ErrSaveWeek   = errors.New("error saving week")
	ErrDeleteWeek = errors.New("error deleting week")
)

// WeekError é um erro com contexto adicional para semanas
type WeekError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	WeekID  int    // ID da semana envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

func (e *WeekError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *WeekError) Unwrap() error {
	return e.Err
}

func (e *WeekError) ErrorCode() string {
	return e.Code
}

func (e *WeekError) ErrorDetails() string {
	return e.Details
}

func NewWeekError(err error, code string, details string) *WeekError {
	return &WeekError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewWeekErrorWithID(err error, code string, weekID int, details string) *WeekError {
	return &WeekError{
		Err:     err,
		Code:    code,
		WeekID:  weekID,
		Details: details,
	}
}
