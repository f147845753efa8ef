package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/milkroute/dairy-ledger-api/infrastructure/database/postgres"
	"github.com/milkroute/dairy-ledger-api/infrastructure/integrator/telegram"
	"github.com/milkroute/dairy-ledger-api/infrastructure/integrator/telegram/telegramclient"
	"github.com/milkroute/dairy-ledger-api/infrastructure/repository"
	"github.com/milkroute/dairy-ledger-api/internal/api"
	"github.com/milkroute/dairy-ledger-api/internal/api/handler"
	"github.com/milkroute/dairy-ledger-api/internal/config"
	"github.com/milkroute/dairy-ledger-api/internal/scheduler"
	"github.com/milkroute/dairy-ledger-api/internal/usecases/aggregating"
	"github.com/milkroute/dairy-ledger-api/internal/usecases/billing"
	"github.com/milkroute/dairy-ledger-api/internal/usecases/customer"
	"github.com/milkroute/dairy-ledger-api/internal/usecases/delivering"
	"github.com/milkroute/dairy-ledger-api/internal/usecases/notifying"
	"github.com/milkroute/dairy-ledger-api/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	appMetrics := metrics.New(registry)

	customerRepo := repository.NewCustomerRepository(pgConn)
	deliveryRepo := repository.NewDeliveryRepository(pgConn)
	paymentRepo := repository.NewPaymentRepository(pgConn)

	telegramClient := telegramclient.NewClient(cfg)
	telegramIntegrator := telegram.New(cfg, telegramClient)
	dispatcher := notifying.NewService(telegramIntegrator, cfg, appMetrics)

	aggregator := aggregating.NewService(customerRepo, deliveryRepo)
	customerService := customer.NewService(customerRepo, deliveryRepo, paymentRepo, dispatcher)
	deliveryService := delivering.NewService(customerRepo, deliveryRepo, dispatcher, appMetrics)
	billingService := billing.NewService(aggregator, paymentRepo, dispatcher, appMetrics, cfg)

	paymentRemindersService := scheduler.NewPaymentRemindersService(billingService, cfg)

	// Inicia o agendador em background
	if err := paymentRemindersService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de lembretes de pagamento")
	} else {
		logrus.Info("Agendador de lembretes de pagamento iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Customers:  customerService,
		Deliveries: deliveryService,
		Billing:    billingService,
		Aggregator: aggregator,
		CronJobs: handler.CronJobServices{
			PaymentRemindersService: paymentRemindersService,
		},
		Metrics: registry,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
