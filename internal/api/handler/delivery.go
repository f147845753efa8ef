package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/milkroute/dairy-ledger-api/internal/domain"
	"github.com/milkroute/dairy-ledger-api/internal/usecases/delivering"
	"github.com/milkroute/dairy-ledger-api/pkg/apiErrors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type recordDeliveryRequest struct {
	Status   domain.DeliveryStatus `json:"status"`
	Quantity *decimal.Decimal      `json:"quantity,omitempty"`
}

type markAllRequest struct {
	Date string `json:"date"`
	domain.MarkAllPendingRequest
}

// RecordDelivery marca o dia do cliente como entregue ou não entregue
func RecordDelivery(service delivering.DeliveryService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RecordDelivery")

		params := httprouter.ParamsFromContext(r.Context())
		customerID := params.ByName("id")

		date, ok := dateParam(w, params.ByName("date"))
		if !ok {
			return
		}

		var request recordDeliveryRequest
		if !decodeBody(w, r, &request) {
			return
		}

		var (
			result *domain.DeliveryResult
			err    error
		)
		switch request.Status {
		case domain.DeliveryStatusDelivered:
			result, err = service.RecordDelivered(r.Context(), customerID, date, request.Quantity)
		case domain.DeliveryStatusSkipped:
			result, err = service.RecordSkipped(r.Context(), customerID, date)
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Status inválido. Valores aceitos: delivered, skipped", map[string]any{
				"status": request.Status,
			})
			return
		}

		if err != nil {
			logrus.WithError(err).WithField("customer_id", customerID).Error("Erro ao registrar entrega")
			writeLedgerError(w, err, "Erro ao registrar entrega")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

// ResetDelivery apaga o registro do dia, voltando o cliente para pendente
func ResetDelivery(service delivering.DeliveryService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ResetDelivery")

		params := httprouter.ParamsFromContext(r.Context())

		date, ok := dateParam(w, params.ByName("date"))
		if !ok {
			return
		}

		request := domain.ResetDeliveryRequest{
			CustomerID: params.ByName("id"),
			Date:       date,
			Confirmed:  confirmed(r),
		}

		if err := service.Reset(r.Context(), request); err != nil {
			writeLedgerError(w, err, "Erro ao reiniciar entrega")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func DailySheet(service delivering.DeliveryService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		date, ok := dateParam(w, query.Get("date"))
		if !ok {
			return
		}

		sheet, err := service.ForDate(r.Context(), date, query.Get("search"))
		if err != nil {
			logrus.WithError(err).Error("Erro ao montar a planilha do dia")
			writeLedgerError(w, err, "Erro ao consultar entregas do dia")
			return
		}

		writeJSON(w, http.StatusOK, sheet)
	})
}

func MarkAllDelivered(service delivering.DeliveryService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - MarkAllDelivered")

		var request markAllRequest
		if !decodeBody(w, r, &request) {
			return
		}

		date, ok := dateParam(w, request.Date)
		if !ok {
			return
		}
		request.MarkAllPendingRequest.Date = date

		result, err := service.MarkAllPending(r.Context(), request.MarkAllPendingRequest)
		if err != nil {
			logrus.WithError(err).Error("Erro ao marcar entregas pendentes")
			writeLedgerError(w, err, "Erro ao marcar entregas pendentes")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}
