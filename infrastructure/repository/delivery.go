package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/milkroute/dairy-ledger-api/infrastructure/database/postgres"
	"github.com/milkroute/dairy-ledger-api/internal/domain"
	"github.com/milkroute/dairy-ledger-api/pkg/utils"
)

const deliveriesTable = "deliveries"

var deliveryColumns = []string{
	"id", "customer_id", "date", "quantity", "rate", "amount", "status", "created_at", "updated_at",
}

type DeliveryRepository interface {
	Upsert(ctx context.Context, record *domain.DeliveryRecord) (*domain.DeliveryRecord, error)
	GetByCustomerAndDate(ctx context.Context, customerID string, date time.Time) (*domain.DeliveryRecord, error)
	DeleteByCustomerAndDate(ctx context.Context, customerID string, date time.Time) (int64, error)
	DeleteByCustomer(ctx context.Context, customerID string) (int64, error)
	ListByDate(ctx context.Context, date time.Time) ([]*domain.DeliveryRecord, error)
	ListByDateRange(ctx context.Context, start, end time.Time, customerIDs []string) ([]*domain.DeliveryRecord, error)
}

type deliveryRepository struct {
	conn postgres.Queryer
}

func NewDeliveryRepository(conn postgres.Queryer) DeliveryRepository {
	return &deliveryRepository{
		conn: conn,
	}
}

// Upsert grava a decisão do dia; um novo registro para a mesma chave substitui o anterior
func (r *deliveryRepository) Upsert(ctx context.Context, record *domain.DeliveryRecord) (*domain.DeliveryRecord, error) {
	query, args, err := squirrel.
		Insert(deliveriesTable).
		Columns(deliveryColumns...).
		Values(
			record.ID,
			record.CustomerID,
			dateParam(record.Date),
			record.Quantity,
			record.Rate,
			record.Amount,
			record.Status,
			record.CreatedAt,
			record.UpdatedAt,
		).
		Suffix(`ON CONFLICT (customer_id, date) DO UPDATE SET
			quantity = EXCLUDED.quantity,
			rate = EXCLUDED.rate,
			amount = EXCLUDED.amount,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at
			RETURNING id, created_at, updated_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	saved := *record
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&saved.ID, &saved.CreatedAt, &saved.UpdatedAt); err != nil {
		return nil, err
	}

	saved.CreatedAt = saved.CreatedAt.UTC()
	saved.UpdatedAt = saved.UpdatedAt.UTC()

	return &saved, nil
}

func (r *deliveryRepository) GetByCustomerAndDate(ctx context.Context, customerID string, date time.Time) (*domain.DeliveryRecord, error) {
	query, args, err := squirrel.
		Select(deliveryColumns...).
		From(deliveriesTable).
		Where(squirrel.Eq{"customer_id": customerID, "date": dateParam(date)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	record, err := deserializeDelivery(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return record, nil
}

func (r *deliveryRepository) DeleteByCustomerAndDate(ctx context.Context, customerID string, date time.Time) (int64, error) {
	return r.delete(ctx, squirrel.Eq{"customer_id": customerID, "date": dateParam(date)})
}

func (r *deliveryRepository) DeleteByCustomer(ctx context.Context, customerID string) (int64, error) {
	return r.delete(ctx, squirrel.Eq{"customer_id": customerID})
}

func (r *deliveryRepository) ListByDate(ctx context.Context, date time.Time) ([]*domain.DeliveryRecord, error) {
	query, args, err := squirrel.
		Select(deliveryColumns...).
		From(deliveriesTable).
		Where(squirrel.Eq{"date": dateParam(date)}).
		OrderBy("customer_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryDeliveries(ctx, query, args...)
}

// ListByDateRange retorna os registros entre start e end (inclusive), opcionalmente de alguns clientes
func (r *deliveryRepository) ListByDateRange(ctx context.Context, start, end time.Time, customerIDs []string) ([]*domain.DeliveryRecord, error) {
	queryBuilder := squirrel.
		Select(deliveryColumns...).
		From(deliveriesTable).
		Where(squirrel.GtOrEq{"date": dateParam(start)}).
		Where(squirrel.LtOrEq{"date": dateParam(end)}).
		OrderBy("date ASC", "customer_id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(customerIDs) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"customer_id": customerIDs})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryDeliveries(ctx, query, args...)
}

func (r *deliveryRepository) delete(ctx context.Context, where squirrel.Eq) (int64, error) {
	query, args, err := squirrel.
		Delete(deliveriesTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

func (r *deliveryRepository) queryDeliveries(ctx context.Context, query string, args ...any) ([]*domain.DeliveryRecord, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*domain.DeliveryRecord, 0)
	for rows.Next() {
		record, err := deserializeDelivery(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func deserializeDelivery(row rowScanner) (*domain.DeliveryRecord, error) {
	record := &domain.DeliveryRecord{}

	if err := row.Scan(
		&record.ID,
		&record.CustomerID,
		&record.Date,
		&record.Quantity,
		&record.Rate,
		&record.Amount,
		&record.Status,
		&record.CreatedAt,
		&record.UpdatedAt,
	); err != nil {
		return nil, err
	}

	record.Date = utils.TruncateToDate(record.Date)
	record.CreatedAt = record.CreatedAt.UTC()
	record.UpdatedAt = record.UpdatedAt.UTC()

	return record, nil
}
