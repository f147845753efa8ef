package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/milkroute/dairy-ledger-api/internal/api/handler"
	"github.com/milkroute/dairy-ledger-api/internal/api/handler/router"
	"github.com/milkroute/dairy-ledger-api/internal/config"
	"github.com/milkroute/dairy-ledger-api/internal/usecases/aggregating"
	"github.com/milkroute/dairy-ledger-api/internal/usecases/billing"
	"github.com/milkroute/dairy-ledger-api/internal/usecases/customer"
	"github.com/milkroute/dairy-ledger-api/internal/usecases/delivering"
	"github.com/milkroute/dairy-ledger-api/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 15 * time.Second

// Services reúne os casos de uso expostos pela API
type Services struct {
	Customers  customer.CustomerService
	Deliveries delivering.DeliveryService
	Billing    billing.BillingService
	Aggregator aggregating.Aggregator
	CronJobs   handler.CronJobServices
	Metrics    prometheus.Gatherer
}

type Server struct {
	httpServer *http.Server
}

func New(config *config.Config, services Services) (*Server, error) {
	if services.Metrics == nil {
		services.Metrics = prometheus.DefaultGatherer
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta a tabela de comandos com a cadeia de middlewares
func NewHandler(config *config.Config, services Services) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Metrics(services.Metrics)...),
		router.WithRoutes(handler.Customers(services.Customers)...),
		router.WithRoutes(handler.Deliveries(services.Deliveries)...),
		router.WithRoutes(handler.Payments(services.Billing)...),
		router.WithRoutes(handler.Aggregates(services.Aggregator)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)
	logrus.WithField("routes", len(rt.Routes())).Debug("Tabela de comandos registrada")

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.CorsOrigins),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

// Shutdown aguarda as requisições em andamento, inclusive envios de lembretes disparados pela API
func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
