package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/milkroute/dairy-ledger-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var deliveryDate = time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

func TestDeliveryRepository_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	record := &domain.DeliveryRecord{
		ID:         "d-new",
		CustomerID: "c1",
		Date:       deliveryDate,
		Quantity:   decimal.RequireFromString("2.5"),
		Rate:       50,
		Amount:     decimal.RequireFromString("125"),
		Status:     domain.DeliveryStatusDelivered,
		CreatedAt:  testNow,
		UpdatedAt:  testNow,
	}

	created := testNow.Add(-time.Hour)

	// Um registro existente mantém o id e o created_at originais
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO deliveries (id,customer_id,date,quantity,rate,amount,status,created_at,updated_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9) ON CONFLICT (customer_id, date) DO UPDATE SET")).
		WithArgs("d-new", "c1", "2024-03-10", "2.5", int64(50), "125", "delivered", testNow, testNow).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("d-old", created, testNow))

	saved, err := NewDeliveryRepository(db).Upsert(context.Background(), record)
	require.NoError(t, err)
	assert.Equal(t, "d-old", saved.ID)
	assert.Equal(t, created, saved.CreatedAt)
	assert.Equal(t, "d-new", record.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeliveryRepository_GetByCustomerAndDate(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(mock sqlmock.Sqlmock)
		validate func(t *testing.T, record *domain.DeliveryRecord, err error)
	}{
		{
			name: "registro existente",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("FROM deliveries WHERE customer_id = $1 AND date = $2")).
					WithArgs("c1", "2024-03-10").
					WillReturnRows(sqlmock.NewRows(deliveryColumns).
						AddRow("d1", "c1", deliveryDate, "0", int64(50), "0", "skipped", testNow, testNow))
			},
			validate: func(t *testing.T, record *domain.DeliveryRecord, err error) {
				require.NoError(t, err)
				require.NotNil(t, record)
				assert.Equal(t, domain.DeliveryStatusSkipped, record.Status)
				assert.True(t, record.Amount.IsZero())
				assert.Equal(t, deliveryDate, record.Date)
			},
		},
		{
			name: "sem registro no dia",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM deliveries").
					WithArgs("c1", "2024-03-10").
					WillReturnRows(sqlmock.NewRows(deliveryColumns))
			},
			validate: func(t *testing.T, record *domain.DeliveryRecord, err error) {
				assert.NoError(t, err)
				assert.Nil(t, record)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.setup(mock)

			record, err := NewDeliveryRepository(db).GetByCustomerAndDate(context.Background(), "c1", deliveryDate)
			tt.validate(t, record, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDeliveryRepository_Deletes(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDeliveryRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM deliveries WHERE customer_id = $1 AND date = $2")).
		WithArgs("c1", "2024-03-10").
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.DeleteByCustomerAndDate(context.Background(), "c1", deliveryDate)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM deliveries WHERE customer_id = $1")).
		WithArgs("c1").
		WillReturnResult(sqlmock.NewResult(0, 10))

	affected, err = repo.DeleteByCustomer(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, int64(10), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeliveryRepository_ListByDateRange(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	month := domain.Month{Year: 2024, Month: time.March}

	mock.ExpectQuery(regexp.QuoteMeta("WHERE date >= $1 AND date <= $2 AND customer_id IN ($3) ORDER BY date ASC, customer_id ASC")).
		WithArgs("2024-03-01", "2024-03-31", "c1").
		WillReturnRows(sqlmock.NewRows(deliveryColumns).
			AddRow("d1", "c1", month.FirstDay(), "2", int64(50), "100", "delivered", testNow, testNow).
			AddRow("d2", "c1", month.LastDay(), "3", int64(50), "150", "delivered", testNow, testNow))

	records, err := NewDeliveryRepository(db).ListByDateRange(context.Background(), month.FirstDay(), month.LastDay(), []string{"c1"})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.True(t, decimal.NewFromInt(150).Equal(records[1].Amount))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeliveryRepository_ListByDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM deliveries WHERE date = $1 ORDER BY customer_id ASC")).
		WithArgs("2024-03-10").
		WillReturnRows(sqlmock.NewRows(deliveryColumns))

	records, err := NewDeliveryRepository(db).ListByDate(context.Background(), deliveryDate)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}
