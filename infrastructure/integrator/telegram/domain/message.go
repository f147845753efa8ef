package domain

import (
	"fmt"
	"net/http"
	"time"
)

const ParseModeHTML = "HTML"

type SendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

// APIResponse é o envelope padrão da Bot API
type APIResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code,omitempty"`
	Description string `json:"description,omitempty"`
	Parameters  *struct {
		RetryAfter int `json:"retry_after,omitempty"`
	} `json:"parameters,omitempty"`
}

// APIError representa uma resposta de erro da Bot API
type APIError struct {
	StatusCode  int
	Description string
	RetryAfter  int
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("telegram respondeu com status %d", e.StatusCode)
	}
	return fmt.Sprintf("telegram respondeu com status %d: %s", e.StatusCode, e.Description)
}

// Permanent indica erros que não se resolvem com nova tentativa (chat inexistente, bot bloqueado, token inválido)
func (e *APIError) Permanent() bool {
	switch e.StatusCode {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		return true
	}
	return false
}

// RetryAfterDuration devolve a espera pedida pela Bot API em respostas 429
func (e *APIError) RetryAfterDuration() time.Duration {
	if e.RetryAfter <= 0 {
		return 0
	}
	return time.Duration(e.RetryAfter) * time.Second
}

// RenderError indica um tipo de notificação ou payload sem mensagem correspondente
type RenderError struct {
	Kind string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("não foi possível montar a mensagem %s: %v", e.Kind, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

func (e *RenderError) Permanent() bool {
	return true
}
