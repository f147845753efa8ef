package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/milkroute/dairy-ledger-api/internal/domain"
	"github.com/milkroute/dairy-ledger-api/internal/usecases/billing"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type recordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type sendRemindersRequest struct {
	Month string `json:"month"`
}

func MonthlyStatement(service billing.BillingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		month, ok := monthParam(w, query.Get("month"))
		if !ok {
			return
		}

		filter := domain.PaymentFilter{
			Search: query.Get("search"),
			Status: domain.PaymentStatus(query.Get("status")),
		}

		statement, err := service.Statement(r.Context(), month, filter)
		if err != nil {
			logrus.WithError(err).WithField("payment_month", month.String()).Error("Erro ao montar o extrato mensal")
			writeLedgerError(w, err, "Erro ao consultar pagamentos do mês")
			return
		}

		writeJSON(w, http.StatusOK, statement)
	})
}

// RecordPayment soma um valor ao total pago pelo cliente no mês
func RecordPayment(service billing.BillingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RecordPayment")

		params := httprouter.ParamsFromContext(r.Context())
		customerID := params.ByName("id")

		month, ok := monthParam(w, params.ByName("month"))
		if !ok {
			return
		}

		var request recordPaymentRequest
		if !decodeBody(w, r, &request) {
			return
		}

		result, err := service.RecordPayment(r.Context(), customerID, month, request.Amount)
		if err != nil {
			logrus.WithError(err).WithField("customer_id", customerID).Error("Erro ao registrar pagamento")
			writeLedgerError(w, err, "Erro ao registrar pagamento")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

// SendReminders envia os lembretes do mês informado e aguarda o resultado
func SendReminders(service billing.BillingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SendReminders")

		var request sendRemindersRequest
		if !decodeBody(w, r, &request) {
			return
		}

		month, ok := monthParam(w, request.Month)
		if !ok {
			return
		}

		report, err := service.SendReminders(r.Context(), month, billing.TriggerManual)
		if err != nil {
			logrus.WithError(err).WithField("payment_month", month.String()).Error("Erro ao enviar lembretes")
			writeLedgerError(w, err, "Erro ao enviar lembretes de pagamento")
			return
		}

		writeJSON(w, http.StatusOK, report)
	})
}
