package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation           = errors.New("validation failed")
	ErrNotFound             = errors.New("not found")
	ErrCascadeIncomplete    = errors.New("cascade delete incomplete")
	ErrNotification         = errors.New("notification failed")
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrDatabaseOperation    = errors.New("database operation error")
	ErrGenerateID           = errors.New("error generating id")
)

// LedgerError carrega o código da API e a entidade envolvida
type LedgerError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	EntityID   string // ID da entidade envolvida (quando aplicável)
	EntityName string // Nome legível da entidade
	Details    string // Detalhes adicionais
	Cause      error  // Erro de origem (banco, integração)
}

func (e *LedgerError) Error() string {
	parts := []string{e.Err.Error()}
	if e.EntityName != "" || e.EntityID != "" {
		parts = append(parts, fmt.Sprintf("%s (%s)", e.EntityName, e.EntityID))
	}
	if e.Details != "" {
		parts = append(parts, e.Details)
	}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}
	return strings.Join(parts, ": ")
}

// Unwrap expõe o erro base e a causa para errors.Is/As
func (e *LedgerError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func NewLedgerError(err error, code string, details string) *LedgerError {
	return &LedgerError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewEntityError cria um LedgerError identificando a entidade
func NewEntityError(err error, code string, entityID string, entityName string, details string) *LedgerError {
	return &LedgerError{
		Err:        err,
		Code:       code,
		EntityID:   entityID,
		EntityName: entityName,
		Details:    details,
	}
}

// WithCause anexa o erro de origem
func (e *LedgerError) WithCause(cause error) *LedgerError {
	e.Cause = cause
	return e
}
