package main

import (
	"context"
	"flag"
	"time"

	"github.com/milkroute/dairy-ledger-api/infrastructure/database/migrations"
	"github.com/milkroute/dairy-ledger-api/infrastructure/database/postgres"
	"github.com/milkroute/dairy-ledger-api/internal/config"
	"github.com/sirupsen/logrus"
)

func main() {
	down := flag.Int("down", 0, "quantidade de migrações a reverter")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if *down > 0 {
		err = migrations.Down(conn.DB, *down)
	} else {
		err = migrations.Up(conn.DB)
	}
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao executar migrações")
	}
}
