package handler

import (
	"net/http"

	"github.com/milkroute/dairy-ledger-api/internal/usecases/aggregating"
	"github.com/sirupsen/logrus"
)

func MonthlyAggregates(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		month, ok := monthParam(w, r.URL.Query().Get("month"))
		if !ok {
			return
		}

		report, err := service.ForMonth(r.Context(), month)
		if err != nil {
			logrus.WithError(err).WithField("payment_month", month.String()).Error("Erro ao agregar o mês")
			writeLedgerError(w, err, "Erro ao consolidar o mês")
			return
		}

		writeJSON(w, http.StatusOK, report)
	})
}
