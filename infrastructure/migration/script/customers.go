package script

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/milkroute/dairy-ledger-api/infrastructure/database/postgres"
	"github.com/milkroute/dairy-ledger-api/infrastructure/repository"
	"github.com/milkroute/dairy-ledger-api/internal/domain"
	"github.com/milkroute/dairy-ledger-api/internal/usecases/customer"
	"github.com/milkroute/dairy-ledger-api/pkg/utils"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var requiredColumns = []string{"name", "phone", "daily_quantity", "rate"}

// Transactor executa uma função dentro de uma transação
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(postgres.Queryer) error) error
}

// RowError identifica a linha do arquivo que não pôde ser importada
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("linha %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// ParseCustomers lê o CSV de clientes; a primeira linha deve ser o cabeçalho
func ParseCustomers(r io.Reader, now time.Time) ([]*domain.Customer, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler cabeçalho")
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("coluna obrigatória ausente: %s", name)
		}
	}

	customers := make([]*domain.Customer, 0)
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, &RowError{Line: line, Err: err}
		}

		parsed, err := parseCustomer(record, columns, now)
		if err != nil {
			return nil, &RowError{Line: line, Err: err}
		}
		customers = append(customers, parsed)
	}

	return customers, nil
}

func parseCustomer(record []string, columns map[string]int, now time.Time) (*domain.Customer, error) {
	field := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	quantity, err := decimal.NewFromString(field("daily_quantity"))
	if err != nil {
		return nil, errors.Wrapf(domain.ErrValidation, "quantidade diária inválida %q", field("daily_quantity"))
	}

	rate, err := strconv.ParseInt(field("rate"), 10, 64)
	if err != nil {
		return nil, errors.Wrapf(domain.ErrValidation, "tarifa inválida %q", field("rate"))
	}

	address, chatID := field("address"), field("telegram_chat_id")
	request := &domain.CreateCustomerRequest{
		Name:           field("name"),
		Phone:          field("phone"),
		DailyQuantity:  quantity,
		Rate:           rate,
		Status:         domain.CustomerStatus(field("status")),
		Address:        &address,
		TelegramChatID: &chatID,
	}

	if err := customer.PrepareCreateRequest(request); err != nil {
		return nil, err
	}

	return request.NewCustomer("", now), nil
}

// ImportCustomers grava todos os clientes numa única transação; qualquer falha desfaz a carga
func ImportCustomers(ctx context.Context, conn Transactor, customers []*domain.Customer) error {
	startTime := time.Now()

	err := conn.RunInTransaction(ctx, func(tx postgres.Queryer) error {
		customerRepo := repository.NewCustomerRepository(tx)

		for i, c := range customers {
			if c.ID == "" {
				id, err := utils.GenerateID()
				if err != nil {
					return errors.Wrap(domain.ErrGenerateID, err.Error())
				}
				c.ID = id
			}

			if err := customerRepo.Create(ctx, c); err != nil {
				return errors.Wrapf(err, "erro ao inserir cliente %s", c.Name)
			}

			if i > 0 && i%50 == 0 {
				logrus.Infof("Progresso: %d/%d clientes inseridos", i, len(customers))
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"customers": len(customers),
		"duration":  time.Since(startTime).String(),
	}).Info("Carga de clientes concluída")

	return nil
}
