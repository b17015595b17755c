package category

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de categorias
var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryConflict = errors.New("category name already in use")

	// Erros de banco de dados
	ErrFetchCategories = errors.New("error fetching categories from database")
	ErrSaveCategory    = errors.New("error saving category")
	ErrDeleteCategory  = errors.New("error deleting category")
)

// CategoryError é um erro com contexto adicional para categorias
type CategoryError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	CategoryID int    // ID da categoria envolvida (quando aplicável)
	Details    string // Detalhes adicionais
}

func (e *CategoryError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CategoryError) Unwrap() error {
	return e.Err
}

func (e *CategoryError) ErrorCode() string {
	return e.Code
}

func (e *CategoryError) ErrorDetails() string {
	return e.Details
}

func NewCategoryError(err error, code string, details string) *CategoryError {
	return &CategoryError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewCategoryErrorWithID(err error, code string, categoryID int, details string) *CategoryError {
	return &CategoryError{
		Err:        err,
		Code:       code,
		CategoryID: categoryID,
		Details:    details,
	}
}
