package reporting

import (
	"errors"
	"fmt"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrSourceNotFound   = errors.New("source not found")

	ErrBuildReport = errors.New("error building dashboard report")
)

// ReportingError é um erro com contexto adicional para os relatórios do dashboard
type ReportingError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	ResourceID int    // Categoria ou fonte consultada (quando aplicável)
	Details    string // Detalhes adicionais
}

func (e *ReportingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportingError) Unwrap() error {
	return e.Err
}

func (e *ReportingError) ErrorCode() string {
	return e.Code
}

func (e *ReportingError) ErrorDetails() string {
	return e.Details
}

func NewReportingError(err error, code string, details string) *ReportingError {
	return &ReportingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewReportingErrorWithID(err error, code string, resourceID int, details string) *ReportingError {
	return &ReportingError{
		Err:        err,
		Code:       code,
		ResourceID: resourceID,
		Details:    details,
	}
}
