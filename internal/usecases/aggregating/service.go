package aggregating

import (
	"context"

	"github.com/milkroute/dairy-ledger-api/infrastructure/repository"
	"github.com/milkroute/dairy-ledger-api/internal/domain"
	"github.com/milkroute/dairy-ledger-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

type Aggregator interface {
	ForMonth(ctx context.Context, month domain.Month) (*domain.MonthlyAggregateReport, error)
	ForCustomer(ctx context.Context, customerID string, month domain.Month) (*domain.MonthlyAggregate, error)
}

type Service struct {
	customerRepository repository.CustomerRepository
	deliveryRepository repository.DeliveryRepository
}

func NewService(
	customerRepository repository.CustomerRepository,
	deliveryRepository repository.DeliveryRepository,
) *Service {
	return &Service{
		customerRepository: customerRepository,
		deliveryRepository: deliveryRepository,
	}
}

// ForMonth agrega todos os clientes ativos no mês
func (s *Service) ForMonth(ctx context.Context, month domain.Month) (*domain.MonthlyAggregateReport, error) {
	customers, err := s.customerRepository.List(ctx, domain.CustomerFilter{Status: domain.CustomerStatusActive})
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar clientes ativos")
		return nil, domain.NewLedgerError(domain.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar clientes").WithCause(err)
	}

	records, err := s.deliveryRepository.ListByDateRange(ctx, month.FirstDay(), month.LastDay(), nil)
	if err != nil {
		logrus.WithError(err).WithField("month", month.String()).Error("Erro ao listar entregas do mês")
		return nil, domain.NewLedgerError(domain.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar entregas do mês").WithCause(err)
	}

	return Report(month, Aggregate(customers, records, month)), nil
}

// ForCustomer agrega um único cliente, independente do status
func (s *Service) ForCustomer(ctx context.Context, customerID string, month domain.Month) (*domain.MonthlyAggregate, error) {
	customer, err := s.customerRepository.GetByID(ctx, customerID)
	if err != nil {
		logrus.WithError(err).WithField("customer_id", customerID).Error("Erro ao buscar cliente")
		return nil, domain.NewEntityError(domain.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, customerID, "", "Falha ao buscar cliente").WithCause(err)
	}
	if customer == nil {
		return nil, domain.NewEntityError(domain.ErrNotFound, apiErrors.ErrCustomerNotFound, customerID, "", "Cliente não encontrado")
	}

	records, err := s.deliveryRepository.ListByDateRange(ctx, month.FirstDay(), month.LastDay(), []string{customerID})
	if err != nil {
		logrus.WithError(err).WithField("customer_id", customerID).Error("Erro ao listar entregas do cliente")
		return nil, domain.NewEntityError(domain.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, customer.ID, customer.Name, "Falha ao listar entregas do mês").WithCause(err)
	}

	return Aggregate([]*domain.Customer{customer}, records, month)[0], nil
}
