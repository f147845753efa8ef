package script

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/milkroute/dairy-ledger-api/infrastructure/database/postgres"
	"github.com/milkroute/dairy-ledger-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 1, 6, 0, 0, 0, time.UTC)

func TestParseCustomers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		validate func(t *testing.T, customers []*domain.Customer, err error)
	}{
		{
			name: "arquivo válido com colunas opcionais",
			input: "\ufeffName,Phone,Daily_Quantity,Rate,Status,Address,Telegram_Chat_ID\n" +
				"Ramesh,9413577474,1.5,50,,Ward 4,5861\n" +
				"Sita,9829012345,2,55,inactive,,\n",
			validate: func(t *testing.T, customers []*domain.Customer, err error) {
				require.NoError(t, err)
				require.Len(t, customers, 2)

				assert.Equal(t, "Ramesh", customers[0].Name)
				assert.True(t, decimal.RequireFromString("1.5").Equal(customers[0].DailyQuantity))
				assert.Equal(t, domain.CustomerStatusActive, customers[0].Status)
				assert.Equal(t, "Ward 4", *customers[0].Address)
				assert.Equal(t, "5861", customers[0].Handle())
				assert.Equal(t, testNow, customers[0].CreatedAt)

				assert.Equal(t, domain.CustomerStatusInactive, customers[1].Status)
				assert.Nil(t, customers[1].Address)
				assert.Empty(t, customers[1].Handle())
			},
		},
		{
			name:  "coluna obrigatória ausente",
			input: "name,phone,rate\nRamesh,9413577474,50\n",
			validate: func(t *testing.T, customers []*domain.Customer, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "daily_quantity")
			},
		},
		{
			name:  "quantidade zero aponta a linha",
			input: "name,phone,daily_quantity,rate\nRamesh,9413577474,1,50\nSita,9829012345,0,55\n",
			validate: func(t *testing.T, customers []*domain.Customer, err error) {
				var rowErr *RowError
				require.ErrorAs(t, err, &rowErr)
				assert.Equal(t, 3, rowErr.Line)
				assert.ErrorIs(t, err, domain.ErrValidation)
			},
		},
		{
			name:  "status desconhecido",
			input: "name,phone,daily_quantity,rate,status\nRamesh,9413577474,1,50,paused\n",
			validate: func(t *testing.T, customers []*domain.Customer, err error) {
				assert.ErrorIs(t, err, domain.ErrValidation)
				assert.Contains(t, err.Error(), "status deve ser um de: active inactive")
			},
		},
		{
			name:  "mesmas mensagens do cadastro pela API",
			input: "name,phone,daily_quantity,rate\n,9413577474,1,0\n",
			validate: func(t *testing.T, customers []*domain.Customer, err error) {
				var rowErr *RowError
				require.ErrorAs(t, err, &rowErr)
				assert.Equal(t, 2, rowErr.Line)
				assert.Contains(t, err.Error(), "name é obrigatório")
				assert.Contains(t, err.Error(), "rate deve ser maior que 0")
			},
		},
		{
			name:  "quantidade com mais de 3 casas decimais",
			input: "name,phone,daily_quantity,rate\nRamesh,9413577474,0.0004,50\n",
			validate: func(t *testing.T, customers []*domain.Customer, err error) {
				assert.ErrorIs(t, err, domain.ErrValidation)
				assert.Contains(t, err.Error(), "daily_quantity aceita no máximo 3 casas decimais")
			},
		},
		{
			name:  "quantidade não numérica",
			input: "name,phone,daily_quantity,rate\nRamesh,9413577474,um,50\n",
			validate: func(t *testing.T, customers []*domain.Customer, err error) {
				assert.ErrorIs(t, err, domain.ErrValidation)
				assert.Contains(t, err.Error(), "quantidade diária inválida")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customers, err := ParseCustomers(strings.NewReader(tt.input), testNow)
			tt.validate(t, customers, err)
		})
	}
}

func TestImportCustomers(t *testing.T) {
	customers := []*domain.Customer{
		{ID: "c1", Name: "Ramesh", Phone: "9413577474", DailyQuantity: decimal.NewFromInt(1), Rate: 50, Status: domain.CustomerStatusActive},
		{ID: "c2", Name: "Sita", Phone: "9829012345", DailyQuantity: decimal.NewFromInt(2), Rate: 55, Status: domain.CustomerStatusActive},
	}

	t.Run("confirma a transação", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO customers").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO customers").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err = ImportCustomers(context.Background(), &postgres.Connection{DB: db}, customers)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("desfaz tudo quando uma inserção falha", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO customers").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO customers").WillReturnError(errors.New("duplicate key"))
		mock.ExpectRollback()

		err = ImportCustomers(context.Background(), &postgres.Connection{DB: db}, customers)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Sita")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
