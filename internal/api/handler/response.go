package handler

import (
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/milkroute/dairy-ledger-api/internal/domain"
	"github.com/milkroute/dairy-ledger-api/pkg/apiErrors"
	"github.com/milkroute/dairy-ledger-api/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}

// writeLedgerError traduz o erro do caso de uso para a resposta padronizada
func writeLedgerError(w http.ResponseWriter, err error, fallback string) {
	var ledgerErr *domain.LedgerError
	if errors.As(err, &ledgerErr) {
		details := map[string]any{
			"error_type": ledgerErr.Err.Error(),
		}
		if ledgerErr.EntityID != "" {
			details["entity_id"] = ledgerErr.EntityID
		}
		if ledgerErr.EntityName != "" {
			details["entity_name"] = ledgerErr.EntityName
		}
		if ledgerErr.Details != "" {
			details["details"] = ledgerErr.Details
		}

		apiErrors.WriteError(w, ledgerErr.Code, ledgerErr.Error(), details)
		return
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		apiErrors.WriteError(w, apiErrors.ErrValidation, err.Error(), nil)
	case errors.Is(err, domain.ErrConfirmationRequired):
		apiErrors.WriteError(w, apiErrors.ErrConfirmationRequired, err.Error(), nil)
	case errors.Is(err, domain.ErrDatabaseOperation):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, fallback, nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
		return false
	}
	return true
}

// dateParam aceita YYYY-MM-DD e usa o dia atual quando vazio
func dateParam(w http.ResponseWriter, value string) (time.Time, bool) {
	if value == "" {
		return utils.TruncateToDate(time.Now()), true
	}

	date, err := utils.ParseDate(value)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", map[string]any{
			"date": value,
		})
		return time.Time{}, false
	}
	return date, true
}

// monthParam aceita YYYY-MM e usa o mês atual quando vazio
func monthParam(w http.ResponseWriter, value string) (domain.Month, bool) {
	if value == "" {
		return domain.MonthOf(time.Now()), true
	}

	month, err := domain.ParseMonth(value)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), map[string]any{
			"month": value,
		})
		return domain.Month{}, false
	}
	return month, true
}

func confirmed(r *http.Request) bool {
	value, err := strconv.ParseBool(r.URL.Query().Get("confirm"))
	return err == nil && value
}
