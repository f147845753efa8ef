package customer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/milkroute/dairy-ledger-api/infrastructure/repository"
	"github.com/milkroute/dairy-ledger-api/internal/domain"
	"github.com/milkroute/dairy-ledger-api/internal/usecases/notifying"
	"github.com/milkroute/dairy-ledger-api/pkg/apiErrors"
	"github.com/milkroute/dairy-ledger-api/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type CustomerService interface {
	Create(ctx context.Context, request *domain.CreateCustomerRequest) (*domain.CustomerResult, error)
	Update(ctx context.Context, request *domain.UpdateCustomerRequest) (*domain.CustomerResult, error)
	Get(ctx context.Context, id string) (*domain.Customer, error)
	List(ctx context.Context, filter domain.CustomerFilter) ([]*domain.Customer, error)
	Delete(ctx context.Context, id string, confirmed bool) (*domain.DeleteCustomerResult, error)
}

type Service struct {
	customerRepository repository.CustomerRepository
	deliveryRepository repository.DeliveryRepository
	paymentRepository  repository.PaymentRepository
	dispatcher         notifying.Dispatcher
	now                func() time.Time
}

func NewService(
	customerRepository repository.CustomerRepository,
	deliveryRepository repository.DeliveryRepository,
	paymentRepository repository.PaymentRepository,
	dispatcher notifying.Dispatcher,
) *Service {
	return &Service{
		customerRepository: customerRepository,
		deliveryRepository: deliveryRepository,
		paymentRepository:  paymentRepository,
		dispatcher:         dispatcher,
		now:                time.Now,
	}
}

func (s *Service) Create(ctx context.Context, request *domain.CreateCustomerRequest) (*domain.CustomerResult, error) {
	if err := PrepareCreateRequest(request); err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, domain.NewLedgerError(domain.ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador do cliente").WithCause(err)
	}

	customer := request.NewCustomer(id, s.now().UTC())

	if err := s.customerRepository.Create(ctx, customer); err != nil {
		logrus.WithError(err).WithField("customer_name", customer.Name).Error("Erro ao criar cliente")
		return nil, domain.NewEntityError(domain.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, customer.ID, customer.Name, "Falha ao salvar cliente").WithCause(err)
	}

	logrus.WithFields(logrus.Fields{
		"customer_id":   customer.ID,
		"customer_name": customer.Name,
	}).Info("Cliente cadastrado")

	return &domain.CustomerResult{
		Customer:     customer,
		Notification: s.notify(ctx, customer, domain.NotificationRegistration),
	}, nil
}

func (s *Service) Update(ctx context.Context, request *domain.UpdateCustomerRequest) (*domain.CustomerResult, error) {
	current, err := s.Get(ctx, request.ID)
	if err != nil {
		return nil, err
	}

	request.Name = trimmed(request.Name)
	request.Phone = trimmed(request.Phone)
	request.Address = trimmed(request.Address)
	request.TelegramChatID = trimmed(request.TelegramChatID)

	if err := validateUpdate(request, current); err != nil {
		return nil, err
	}

	updated := *current
	request.Apply(&updated)

	// Texto vazio remove o campo opcional
	if updated.Address != nil && *updated.Address == "" {
		updated.Address = nil
	}
	if updated.TelegramChatID != nil && *updated.TelegramChatID == "" {
		updated.TelegramChatID = nil
	}
	updated.UpdatedAt = s.now().UTC()

	if err := s.customerRepository.Update(ctx, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound(current.ID)
		}
		logrus.WithError(err).WithField("customer_id", current.ID).Error("Erro ao atualizar cliente")
		return nil, domain.NewEntityError(domain.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, current.ID, current.Name, "Falha ao atualizar cliente").WithCause(err)
	}

	logrus.WithField("customer_id", updated.ID).Info("Cliente atualizado")

	return &domain.CustomerResult{
		Customer:     &updated,
		Notification: s.notify(ctx, &updated, domain.NotificationProfileUpdated),
	}, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.NewLedgerError(domain.ErrValidation, apiErrors.ErrMissingRequiredData, "ID do cliente é obrigatório")
	}

	customer, err := s.customerRepository.GetByID(ctx, id)
	if err != nil {
		logrus.WithError(err).WithField("customer_id", id).Error("Erro ao buscar cliente")
		return nil, domain.NewEntityError(domain.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "", "Falha ao buscar cliente").WithCause(err)
	}
	if customer == nil {
		return nil, notFound(id)
	}

	return customer, nil
}

func (s *Service) List(ctx context.Context, filter domain.CustomerFilter) ([]*domain.Customer, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, domain.NewLedgerError(domain.ErrValidation, apiErrors.ErrInvalidFormat, fmt.Sprintf("Status inválido: %s", filter.Status))
	}

	customers, err := s.customerRepository.List(ctx, filter)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar clientes")
		return nil, domain.NewLedgerError(domain.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar clientes").WithCause(err)
	}

	return customers, nil
}

// Delete remove o cliente depois de apagar entregas e pagamentos.
// As duas exclusões rodam em paralelo e precisam terminar com sucesso antes da remoção do cliente.
func (s *Service) Delete(ctx context.Context, id string, confirmed bool) (*domain.DeleteCustomerResult, error) {
	customer, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !confirmed {
		return nil, domain.NewEntityError(domain.ErrConfirmationRequired, apiErrors.ErrConfirmationRequired, customer.ID, customer.Name,
			"A exclusão remove todas as entregas e pagamentos do cliente e precisa ser confirmada")
	}

	result := &domain.DeleteCustomerResult{
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
	}

	var (
		g             errgroup.Group
		deliveriesErr error
		paymentsErr   error
	)

	g.Go(func() error {
		result.DeliveriesDeleted, deliveriesErr = s.deliveryRepository.DeleteByCustomer(ctx, customer.ID)
		return deliveriesErr
	})
	g.Go(func() error {
		result.PaymentsDeleted, paymentsErr = s.paymentRepository.DeleteByCustomer(ctx, customer.ID)
		return paymentsErr
	})

	logger := logrus.WithFields(logrus.Fields{
		"customer_id":   customer.ID,
		"customer_name": customer.Name,
	})

	// Wait devolve só o primeiro erro; a causa registrada junta os dois lados
	if err := g.Wait(); err != nil {
		var failed []string
		if deliveriesErr != nil {
			failed = append(failed, "entregas")
		}
		if paymentsErr != nil {
			failed = append(failed, "pagamentos")
		}

		cause := errors.Join(deliveriesErr, paymentsErr)
		logger.WithError(cause).WithFields(logrus.Fields{
			"deliveries_deleted": result.DeliveriesDeleted,
			"payments_deleted":   result.PaymentsDeleted,
		}).Error("Exclusão em cascata incompleta, cliente mantido")

		return result, domain.NewEntityError(domain.ErrCascadeIncomplete, apiErrors.ErrCascadeIncomplete, customer.ID, customer.Name,
			fmt.Sprintf("Falha ao excluir %s; o cliente não foi removido", strings.Join(failed, " e "))).WithCause(cause)
	}

	logger = logger.WithFields(logrus.Fields{
		"deliveries_deleted": result.DeliveriesDeleted,
		"payments_deleted":   result.PaymentsDeleted,
	})

	if _, err := s.customerRepository.Delete(ctx, customer.ID); err != nil {
		// Entrega ou pagamento gravado entre a cascata e a remoção do cliente
		if errors.Is(err, repository.ErrCustomerReferenced) {
			logger.WithError(err).Error("Registros novos durante a exclusão, cliente mantido")
			return result, domain.NewEntityError(domain.ErrCascadeIncomplete, apiErrors.ErrCascadeIncomplete, customer.ID, customer.Name,
				"Entregas ou pagamentos foram gravados durante a exclusão; o cliente não foi removido").WithCause(err)
		}
		logger.WithError(err).Error("Erro ao excluir cliente após a cascata")
		return result, domain.NewEntityError(domain.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, customer.ID, customer.Name, "Falha ao excluir cliente").WithCause(err)
	}

	logger.Info("Cliente excluído")

	return result, nil
}

func (s *Service) notify(ctx context.Context, customer *domain.Customer, kind domain.NotificationKind) *domain.NotificationOutcome {
	return s.dispatcher.Dispatch(ctx, domain.Notification{
		Handle:  customer.Handle(),
		Kind:    kind,
		Payload: profilePayload(customer),
	})
}

func notFound(id string) error {
	return domain.NewEntityError(domain.ErrNotFound, apiErrors.ErrCustomerNotFound, id, "", "Cliente não encontrado")
}
