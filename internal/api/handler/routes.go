package handler

import (
	"net/http"

	"github.com/milkroute/dairy-ledger-api/internal/api/handler/router"
	"github.com/milkroute/dairy-ledger-api/internal/usecases/aggregating"
	"github.com/milkroute/dairy-ledger-api/internal/usecases/billing"
	"github.com/milkroute/dairy-ledger-api/internal/usecases/customer"
	"github.com/milkroute/dairy-ledger-api/internal/usecases/delivering"
	"github.com/prometheus/client_golang/prometheus"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics(gatherer prometheus.Gatherer) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: MetricsHandler(gatherer),
		},
	}
}

func Customers(service customer.CustomerService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/customers",
			Method:  http.MethodGet,
			Handler: ListCustomers(service),
		},
		{
			Path:    "/v1/customers",
			Method:  http.MethodPost,
			Handler: CreateCustomer(service),
		},
		{
			Path:    "/v1/customers/:id",
			Method:  http.MethodGet,
			Handler: GetCustomer(service),
		},
		{
			Path:    "/v1/customers/:id",
			Method:  http.MethodPut,
			Handler: UpdateCustomer(service),
		},
		{
			Path:    "/v1/customers/:id",
			Method:  http.MethodDelete,
			Handler: DeleteCustomer(service),
		},
	}
}

func Deliveries(service delivering.DeliveryService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/customers/:id/deliveries/:date",
			Method:  http.MethodPut,
			Handler: RecordDelivery(service),
		},
		{
			Path:    "/v1/customers/:id/deliveries/:date",
			Method:  http.MethodDelete,
			Handler: ResetDelivery(service),
		},
		{
			Path:    "/v1/deliveries",
			Method:  http.MethodGet,
			Handler: DailySheet(service),
		},
		{
			Path:    "/v1/deliveries/mark-all",
			Method:  http.MethodPost,
			Handler: MarkAllDelivered(service),
		},
	}
}

func Payments(service billing.BillingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/payments",
			Method:  http.MethodGet,
			Handler: MonthlyStatement(service),
		},
		{
			Path:    "/v1/customers/:id/payments/:month",
			Method:  http.MethodPost,
			Handler: RecordPayment(service),
		},
		{
			Path:    "/v1/payments/reminders",
			Method:  http.MethodPost,
			Handler: SendReminders(service),
		},
	}
}

func Aggregates(service aggregating.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/aggregates",
			Method:  http.MethodGet,
			Handler: MonthlyAggregates(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
