package leadmetric

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de métricas de leads
var (
	ErrLeadMetricNotFound = errors.New("lead metric not found")
	ErrLeadMetricConflict = errors.New("lead metric already exists for category, source and week")
	ErrInvalidReference   = errors.New("category, source or week does not exist")

	// Erros de banco de dados
	ErrFetchLeadMetrics = errors.New("error fetching lead metrics from database")
	ErrSaveLeadMetric   = errors.New("error saving lead metric")
	ErrDeleteLeadMetric = errors.New("error deleting lead metric")
)

// LeadMetricError é um erro com contexto adicional para métricas de leads
type LeadMetricError struct {
	Err          error  // Erro base
	Code         string // Código de erro para API
	LeadMetricID int    // ID da métrica envolvida (quando aplicável)
	Details      string // Detalhes adicionais
}

func (e *LeadMetricError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *LeadMetricError) Unwrap() error {
	return e.Err
}

func (e *LeadMetricError) ErrorCode() string {
	return e.Code
}

func (e *LeadMetricError) ErrorDetails() string {
	return e.Details
}

func NewLeadMetricError(err error, code string, details string) *LeadMetricError {
	return &LeadMetricError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewLeadMetricErrorWithID(err error, code string, leadMetricID int, details string) *LeadMetricError {
	return &LeadMetricError{
		Err:          err,
		Code:         code,
		LeadMetricID: leadMetricID,
		Details:      details,
	}
}
