package usecase

import (
	"errors"
	"strings"
)

const (
	CodeValidation     = "VALIDATION_ERROR"
	CodeNotFound       = "NOT_FOUND"
	CodeEmptySelection = "EMPTY_SELECTION"
	CodeNoPendingSale  = "NO_PENDING_SALE"
	CodeInvalidSort    = "INVALID_SORT"
	CodeStorage        = "STORAGE_ERROR"
	CodeEventPublish   = "EVENT_PUBLISH_ERROR"
	CodeExport         = "EXPORT_ERROR"
)

// DomainError é erro de regra de negócio, exibido ao usuário.
type DomainError struct {
	Code    string
	Message string
	Fields  []ValidationError
	Err     error
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// TechnicalError é falha de infraestrutura (storage, fila, export).
type TechnicalError struct {
	Code    string
	Message string
	Err     error
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func (e *TechnicalError) Unwrap() error {
	return e.Err
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

func newValidationError(errs []ValidationError) *DomainError {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.Field+" ("+e.Message+")")
	}
	return &DomainError{
		Code:    CodeValidation,
		Message: "validation failed: " + strings.Join(parts, ", "),
		Fields:  errs,
	}
}

func notFound(err error) *DomainError {
	return &DomainError{Code: CodeNotFound, Message: err.Error(), Err: err}
}

func storageError(err error) *TechnicalError {
	return &TechnicalError{Code: CodeStorage, Message: "falha ao acessar dados: " + err.Error(), Err: err}
}
