package delivering

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/milkroute/dairy-ledger-api/infrastructure/repository"
	"github.com/milkroute/dairy-ledger-api/internal/domain"
	"github.com/milkroute/dairy-ledger-api/internal/usecases/notifying"
	"github.com/milkroute/dairy-ledger-api/pkg/apiErrors"
	"github.com/milkroute/dairy-ledger-api/pkg/keylock"
	"github.com/milkroute/dairy-ledger-api/pkg/metrics"
	"github.com/milkroute/dairy-ledger-api/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type DeliveryService interface {
	RecordDelivered(ctx context.Context, customerID string, date time.Time, quantity *decimal.Decimal) (*domain.DeliveryResult, error)
	RecordSkipped(ctx context.Context, customerID string, date time.Time) (*domain.DeliveryResult, error)
	Reset(ctx context.Context, request domain.ResetDeliveryRequest) error
	MarkAllPending(ctx context.Context, request domain.MarkAllPendingRequest) (*domain.BulkDeliveryResult, error)
	ForDate(ctx context.Context, date time.Time, search string) (*domain.DailySheet, error)
}

type Service struct {
	customerRepository repository.CustomerRepository
	deliveryRepository repository.DeliveryRepository
	dispatcher         notifying.Dispatcher
	metrics            *metrics.Metrics
	locks              *keylock.KeyLock
	now                func() time.Time
}

func NewService(
	customerRepository repository.CustomerRepository,
	deliveryRepository repository.DeliveryRepository,
	dispatcher notifying.Dispatcher,
	m *metrics.Metrics,
) *Service {
	return &Service{
		customerRepository: customerRepository,
		deliveryRepository: deliveryRepository,
		dispatcher:         dispatcher,
		metrics:            m,
		locks:              keylock.New(),
		now:                time.Now,
	}
}

// RecordDelivered grava a entrega do dia. Sem quantidade informada, usa a quantidade padrão do cliente.
// A tarifa é copiada do cliente no momento da gravação.
func (s *Service) RecordDelivered(ctx context.Context, customerID string, date time.Time, quantity *decimal.Decimal) (*domain.DeliveryResult, error) {
	return s.record(ctx, customerID, date, domain.DeliveryStatusDelivered, quantity)
}

func (s *Service) RecordSkipped(ctx context.Context, customerID string, date time.Time) (*domain.DeliveryResult, error) {
	return s.record(ctx, customerID, date, domain.DeliveryStatusSkipped, nil)
}

func (s *Service) record(ctx context.Context, customerID string, date time.Time, status domain.DeliveryStatus, quantity *decimal.Decimal) (*domain.DeliveryResult, error) {
	saved, customer, err := s.write(ctx, customerID, date, status, quantity)
	if err != nil {
		return nil, err
	}

	s.metrics.IncDelivery(string(status))

	logrus.WithFields(logrus.Fields{
		"customer_id":       customer.ID,
		"delivery_date":     saved.Date.Format(time.DateOnly),
		"delivery_status":   saved.Status,
		"delivery_quantity": saved.Quantity.String(),
	}).Info("Entrega registrada")

	result := &domain.DeliveryResult{
		Record:       saved,
		CustomerName: customer.Name,
	}

	payload := domain.DeliveryPayload{
		CustomerName: customer.Name,
		Phone:        customer.Phone,
		Date:         saved.Date,
		Status:       saved.Status,
		Quantity:     saved.Quantity,
		Rate:         saved.Rate,
		Amount:       saved.Amount,
	}

	kind := domain.NotificationDeliveryConfirmed
	if status == domain.DeliveryStatusSkipped {
		kind = domain.NotificationDeliverySkipped
	}

	// O resumo administrativo sai depois da tentativa ao cliente, qualquer que seja o resultado
	result.CustomerNotification = s.dispatcher.Dispatch(ctx, domain.Notification{
		Handle:  customer.Handle(),
		Kind:    kind,
		Payload: payload,
	})
	result.AdminNotification = s.dispatcher.DispatchAdmin(ctx, domain.NotificationAdminDeliverySummary, domain.AdminDeliverySummaryPayload{
		DeliveryPayload:  payload,
		CustomerNotified: result.CustomerNotification != nil && result.CustomerNotification.Sent,
	})

	return result, nil
}

// write faz a gravação sob o lock da chave (cliente, data); avisos ficam fora do lock
func (s *Service) write(ctx context.Context, customerID string, date time.Time, status domain.DeliveryStatus, quantity *decimal.Decimal) (*domain.DeliveryRecord, *domain.Customer, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, nil, domain.NewLedgerError(domain.ErrValidation, apiErrors.ErrMissingRequiredData, "ID do cliente é obrigatório")
	}
	if date.IsZero() {
		return nil, nil, domain.NewEntityError(domain.ErrValidation, apiErrors.ErrMissingRequiredData, customerID, "", "Data da entrega é obrigatória")
	}
	date = utils.TruncateToDate(date)

	unlock := s.locks.Lock(lockKey(customerID, date))
	defer unlock()

	customer, err := s.getCustomer(ctx, customerID)
	if err != nil {
		return nil, nil, err
	}

	qty := decimal.Zero
	if status == domain.DeliveryStatusDelivered {
		qty = customer.DailyQuantity
		if quantity != nil {
			qty = *quantity
		}
		if !qty.IsPositive() {
			return nil, nil, domain.NewEntityError(domain.ErrValidation, apiErrors.ErrValidation, customer.ID, customer.Name,
				fmt.Sprintf("Quantidade entregue deve ser maior que zero (recebido %s)", qty.String()))
		}
		if !domain.FitsPlaces(qty, domain.QuantityPlaces) {
			return nil, nil, domain.NewEntityError(domain.ErrValidation, apiErrors.ErrValidation, customer.ID, customer.Name,
				fmt.Sprintf("Quantidade entregue aceita no máximo %d casas decimais (recebido %s)", domain.QuantityPlaces, qty.String()))
		}
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, nil, domain.NewLedgerError(domain.ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador da entrega").WithCause(err)
	}

	now := s.now().UTC()
	saved, err := s.deliveryRepository.Upsert(ctx, &domain.DeliveryRecord{
		ID:         id,
		CustomerID: customer.ID,
		Date:       date,
		Quantity:   qty,
		Rate:       customer.Rate,
		Amount:     domain.ComputeAmount(qty, customer.Rate),
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"customer_id":   customer.ID,
			"delivery_date": date.Format(time.DateOnly),
		}).Error("Erro ao gravar entrega")
		return nil, nil, domain.NewEntityError(domain.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, customer.ID, customer.Name, "Falha ao gravar entrega").WithCause(err)
	}

	return saved, customer, nil
}

// Reset apaga o registro do dia, que volta a ser pendente com os valores padrão
func (s *Service) Reset(ctx context.Context, request domain.ResetDeliveryRequest) error {
	if request.Date.IsZero() {
		return domain.NewEntityError(domain.ErrValidation, apiErrors.ErrMissingRequiredData, request.CustomerID, "", "Data da entrega é obrigatória")
	}
	date := utils.TruncateToDate(request.Date)

	customer, err := s.getCustomer(ctx, request.CustomerID)
	if err != nil {
		return err
	}

	if !request.Confirmed {
		return domain.NewEntityError(domain.ErrConfirmationRequired, apiErrors.ErrConfirmationRequired, customer.ID, customer.Name,
			fmt.Sprintf("Desfazer o registro de %s precisa ser confirmado", date.Format(time.DateOnly)))
	}

	unlock := s.locks.Lock(lockKey(customer.ID, date))
	defer unlock()

	deleted, err := s.deliveryRepository.DeleteByCustomerAndDate(ctx, customer.ID, date)
	if err != nil {
		logrus.WithError(err).WithField("customer_id", customer.ID).Error("Erro ao desfazer entrega")
		return domain.NewEntityError(domain.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, customer.ID, customer.Name, "Falha ao desfazer entrega").WithCause(err)
	}
	if deleted == 0 {
		return domain.NewEntityError(domain.ErrNotFound, apiErrors.ErrDeliveryNotFound, customer.ID, customer.Name,
			fmt.Sprintf("Nenhum registro em %s", date.Format(time.DateOnly)))
	}

	logrus.WithFields(logrus.Fields{
		"customer_id":   customer.ID,
		"delivery_date": date.Format(time.DateOnly),
	}).Info("Registro de entrega desfeito")

	return nil
}

func (s *Service) getCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	customer, err := s.customerRepository.GetByID(ctx, customerID)
	if err != nil {
		logrus.WithError(err).WithField("customer_id", customerID).Error("Erro ao buscar cliente")
		return nil, domain.NewEntityError(domain.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, customerID, "", "Falha ao buscar cliente").WithCause(err)
	}
	if customer == nil {
		return nil, domain.NewEntityError(domain.ErrNotFound, apiErrors.ErrCustomerNotFound, customerID, "", "Cliente não encontrado")
	}
	return customer, nil
}

func lockKey(customerID string, date time.Time) string {
	return customerID + "|" + date.Format(time.DateOnly)
}
