package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/milkroute/dairy-ledger-api/infrastructure/database/postgres"
	"github.com/milkroute/dairy-ledger-api/infrastructure/migration/script"
	"github.com/milkroute/dairy-ledger-api/internal/config"
	"github.com/sirupsen/logrus"
)

func main() {
	file := flag.String("file", "customers.csv", "arquivo CSV com os clientes")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	input, err := os.Open(*file)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir arquivo de clientes")
	}
	defer input.Close()

	customers, err := script.ParseCustomers(input, time.Now().UTC())
	if err != nil {
		logrus.WithError(err).Fatal("Arquivo de clientes inválido")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := script.ImportCustomers(ctx, conn, customers); err != nil {
		logrus.WithError(err).Fatal("Erro ao importar clientes")
	}
}
