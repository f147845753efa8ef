package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/milkroute/dairy-ledger-api/infrastructure/database/postgres"
	"github.com/milkroute/dairy-ledger-api/internal/domain"
)

const customersTable = "customers"

// ErrCustomerReferenced indica entregas ou pagamentos ainda ligados ao cliente
var ErrCustomerReferenced = errors.New("customer is still referenced by deliveries or payments")

var customerColumns = []string{
	"id", "name", "phone", "daily_quantity", "rate", "status",
	"address", "telegram_chat_id", "created_at", "updated_at",
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	Update(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	List(ctx context.Context, filter domain.CustomerFilter) ([]*domain.Customer, error)
	ListByIDs(ctx context.Context, ids []string) ([]*domain.Customer, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type customerRepository struct {
	conn postgres.Queryer
}

func NewCustomerRepository(conn postgres.Queryer) CustomerRepository {
	return &customerRepository{
		conn: conn,
	}
}

// rowScanner é implementado por *sql.Row e *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func (r *customerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	query, args, err := squirrel.
		Insert(customersTable).
		Columns(customerColumns...).
		Values(
			customer.ID,
			customer.Name,
			customer.Phone,
			customer.DailyQuantity,
			customer.Rate,
			customer.Status,
			customer.Address,
			customer.TelegramChatID,
			customer.CreatedAt,
			customer.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	return err
}

func (r *customerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	query, args, err := squirrel.
		Update(customersTable).
		SetMap(map[string]any{
			"name":             customer.Name,
			"phone":            customer.Phone,
			"daily_quantity":   customer.DailyQuantity,
			"rate":             customer.Rate,
			"status":           customer.Status,
			"address":          customer.Address,
			"telegram_chat_id": customer.TelegramChatID,
			"updated_at":       customer.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": customer.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	query, args, err := squirrel.
		Select(customerColumns...).
		From(customersTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	customer, err := deserializeCustomer(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return customer, nil
}

// List filtra por nome ou telefone (sem diferenciar maiúsculas) e status, ordenando por nome
func (r *customerRepository) List(ctx context.Context, filter domain.CustomerFilter) ([]*domain.Customer, error) {
	queryBuilder := squirrel.
		Select(customerColumns...).
		From(customersTable).
		OrderBy("name ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + search + "%"
		queryBuilder = queryBuilder.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"phone": pattern},
		})
	}

	if filter.Status != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": filter.Status})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryCustomers(ctx, query, args...)
}

func (r *customerRepository) ListByIDs(ctx context.Context, ids []string) ([]*domain.Customer, error) {
	if len(ids) == 0 {
		return []*domain.Customer{}, nil
	}

	query, args, err := squirrel.
		Select(customerColumns...).
		From(customersTable).
		Where(squirrel.Eq{"id": ids}).
		OrderBy("name ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryCustomers(ctx, query, args...)
}

func (r *customerRepository) Delete(ctx context.Context, id string) (int64, error) {
	query, args, err := squirrel.
		Delete(customersTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		if postgres.IsForeignKeyViolation(err) {
			return 0, errors.Join(ErrCustomerReferenced, err)
		}
		return 0, err
	}

	return result.RowsAffected()
}

func (r *customerRepository) queryCustomers(ctx context.Context, query string, args ...any) ([]*domain.Customer, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		customer, err := deserializeCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}

func deserializeCustomer(row rowScanner) (*domain.Customer, error) {
	customer := &domain.Customer{}

	if err := row.Scan(
		&customer.ID,
		&customer.Name,
		&customer.Phone,
		&customer.DailyQuantity,
		&customer.Rate,
		&customer.Status,
		&customer.Address,
		&customer.TelegramChatID,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	); err != nil {
		return nil, err
	}

	customer.CreatedAt = customer.CreatedAt.UTC()
	customer.UpdatedAt = customer.UpdatedAt.UTC()

	return customer, nil
}

func dateParam(t time.Time) string {
	return t.Format(time.DateOnly)
}
