package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/milkroute/dairy-ledger-api/internal/domain"
	"github.com/milkroute/dairy-ledger-api/internal/usecases/customer"
	"github.com/sirupsen/logrus"
)

func ListCustomers(service customer.CustomerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		filter := domain.CustomerFilter{
			Search: query.Get("search"),
			Status: domain.CustomerStatus(query.Get("status")),
		}

		customers, err := service.List(r.Context(), filter)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar clientes")
			writeLedgerError(w, err, "Erro ao listar clientes")
			return
		}

		writeJSON(w, http.StatusOK, customers)
	})
}

func CreateCustomer(service customer.CustomerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateCustomer")

		var request domain.CreateCustomerRequest
		if !decodeBody(w, r, &request) {
			return
		}

		result, err := service.Create(r.Context(), &request)
		if err != nil {
			logrus.WithError(err).Error("Erro ao cadastrar cliente")
			writeLedgerError(w, err, "Erro ao cadastrar cliente")
			return
		}

		writeJSON(w, http.StatusCreated, result)
	})
}

func GetCustomer(service customer.CustomerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		found, err := service.Get(r.Context(), id)
		if err != nil {
			writeLedgerError(w, err, "Erro ao buscar cliente")
			return
		}

		writeJSON(w, http.StatusOK, found)
	})
}

func UpdateCustomer(service customer.CustomerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateCustomer")

		var request domain.UpdateCustomerRequest
		if !decodeBody(w, r, &request) {
			return
		}

		// O ID da URL prevalece sobre o corpo
		request.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		result, err := service.Update(r.Context(), &request)
		if err != nil {
			logrus.WithError(err).WithField("customer_id", request.ID).Error("Erro ao atualizar cliente")
			writeLedgerError(w, err, "Erro ao atualizar cliente")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func DeleteCustomer(service customer.CustomerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteCustomer")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		result, err := service.Delete(r.Context(), id, confirmed(r))
		if err != nil {
			logrus.WithError(err).WithField("customer_id", id).Error("Erro ao excluir cliente")
			writeLedgerError(w, err, "Erro ao excluir cliente")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}
