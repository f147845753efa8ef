package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/milkroute/dairy-ledger-api/infrastructure/database/postgres"
	"github.com/milkroute/dairy-ledger-api/internal/domain"
)

const paymentsTable = "payments"

var paymentColumns = []string{
	"id", "customer_id", "month", "paid_amount", "total_amount",
	"last_payment_amount", "payment_date", "created_at", "updated_at",
}

type PaymentRepository interface {
	GetByCustomerAndMonth(ctx context.Context, customerID string, month domain.Month) (*domain.PaymentRecord, error)
	ListByMonth(ctx context.Context, month domain.Month) ([]*domain.PaymentRecord, error)
	AddPayment(ctx context.Context, payment *domain.PaymentRecord) (*domain.PaymentRecord, error)
	DeleteByCustomer(ctx context.Context, customerID string) (int64, error)
}

type paymentRepository struct {
	conn postgres.Queryer
}

func NewPaymentRepository(conn postgres.Queryer) PaymentRepository {
	return &paymentRepository{
		conn: conn,
	}
}

func (r *paymentRepository) GetByCustomerAndMonth(ctx context.Context, customerID string, month domain.Month) (*domain.PaymentRecord, error) {
	query, args, err := squirrel.
		Select(paymentColumns...).
		From(paymentsTable).
		Where(squirrel.Eq{"customer_id": customerID, "month": month.String()}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	payment, err := deserializePayment(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return payment, nil
}

func (r *paymentRepository) ListByMonth(ctx context.Context, month domain.Month) ([]*domain.PaymentRecord, error) {
	query, args, err := squirrel.
		Select(paymentColumns...).
		From(paymentsTable).
		Where(squirrel.Eq{"month": month.String()}).
		OrderBy("customer_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]*domain.PaymentRecord, 0)
	for rows.Next() {
		payment, err := deserializePayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}

// AddPayment soma payment.PaidAmount ao valor pago do mês no próprio banco
// e retorna o registro com o acumulado resultante
func (r *paymentRepository) AddPayment(ctx context.Context, payment *domain.PaymentRecord) (*domain.PaymentRecord, error) {
	query, args, err := squirrel.
		Insert(paymentsTable).
		Columns(paymentColumns...).
		Values(
			payment.ID,
			payment.CustomerID,
			payment.Month,
			payment.PaidAmount,
			payment.TotalAmount,
			payment.LastPaymentAmount,
			payment.PaymentDate,
			payment.CreatedAt,
			payment.UpdatedAt,
		).
		Suffix(`ON CONFLICT (customer_id, month) DO UPDATE SET
			paid_amount = payments.paid_amount + EXCLUDED.paid_amount,
			total_amount = EXCLUDED.total_amount,
			last_payment_amount = EXCLUDED.last_payment_amount,
			payment_date = EXCLUDED.payment_date,
			updated_at = EXCLUDED.updated_at
			RETURNING id, paid_amount, created_at, updated_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	saved := *payment
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(
		&saved.ID,
		&saved.PaidAmount,
		&saved.CreatedAt,
		&saved.UpdatedAt,
	); err != nil {
		return nil, err
	}

	saved.CreatedAt = saved.CreatedAt.UTC()
	saved.UpdatedAt = saved.UpdatedAt.UTC()

	return &saved, nil
}

func (r *paymentRepository) DeleteByCustomer(ctx context.Context, customerID string) (int64, error) {
	query, args, err := squirrel.
		Delete(paymentsTable).
		Where(squirrel.Eq{"customer_id": customerID}).
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

func deserializePayment(row rowScanner) (*domain.PaymentRecord, error) {
	payment := &domain.PaymentRecord{}

	if err := row.Scan(
		&payment.ID,
		&payment.CustomerID,
		&payment.Month,
		&payment.PaidAmount,
		&payment.TotalAmount,
		&payment.LastPaymentAmount,
		&payment.PaymentDate,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	); err != nil {
		return nil, err
	}

	payment.PaymentDate = payment.PaymentDate.UTC()
	payment.CreatedAt = payment.CreatedAt.UTC()
	payment.UpdatedAt = payment.UpdatedAt.UTC()

	return payment, nil
}
