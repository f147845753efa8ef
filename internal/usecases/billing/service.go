package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/milkroute/dairy-ledger-api/infrastructure/repository"
	"github.com/milkroute/dairy-ledger-api/internal/config"
	"github.com/milkroute/dairy-ledger-api/internal/domain"
	"github.com/milkroute/dairy-ledger-api/internal/usecases/aggregating"
	"github.com/milkroute/dairy-ledger-api/internal/usecases/notifying"
	"github.com/milkroute/dairy-ledger-api/pkg/apiErrors"
	"github.com/milkroute/dairy-ledger-api/pkg/keylock"
	"github.com/milkroute/dairy-ledger-api/pkg/metrics"
	"github.com/milkroute/dairy-ledger-api/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	defaultPacingDelay = time.Second
	defaultDueDay      = 5

	TriggerScheduled = "scheduled"
	TriggerManual    = "manual"
)

type BillingService interface {
	RecordPayment(ctx context.Context, customerID string, month domain.Month, amount decimal.Decimal) (*domain.PaymentResult, error)
	Statement(ctx context.Context, month domain.Month, filter domain.PaymentFilter) (*domain.MonthlyStatement, error)
	SendReminders(ctx context.Context, month domain.Month, trigger string) (*domain.ReminderReport, error)
}

type Service struct {
	aggregator        aggregating.Aggregator
	paymentRepository repository.PaymentRepository
	dispatcher        notifying.Dispatcher
	metrics           *metrics.Metrics
	locks             *keylock.KeyLock
	pacingDelay       time.Duration
	dueDay            int
	now               func() time.Time
}

func NewService(
	aggregator aggregating.Aggregator,
	paymentRepository repository.PaymentRepository,
	dispatcher notifying.Dispatcher,
	m *metrics.Metrics,
	cfg *config.Config,
) *Service {
	s := &Service{
		aggregator:        aggregator,
		paymentRepository: paymentRepository,
		dispatcher:        dispatcher,
		metrics:           m,
		locks:             keylock.New(),
		pacingDelay:       cfg.PaymentReminders.PacingDelay,
		dueDay:            cfg.PaymentReminders.DueDay,
		now:               time.Now,
	}

	if s.pacingDelay < 0 {
		s.pacingDelay = defaultPacingDelay
	}
	if s.dueDay < 1 || s.dueDay > 28 {
		s.dueDay = defaultDueDay
	}

	return s
}

// RecordPayment soma o valor ao pago do mês. O aviso de quitação sai apenas
// quando este pagamento leva o status para pago.
func (s *Service) RecordPayment(ctx context.Context, customerID string, month domain.Month, amount decimal.Decimal) (*domain.PaymentResult, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, domain.NewLedgerError(domain.ErrValidation, apiErrors.ErrMissingRequiredData, "ID do cliente é obrigatório")
	}
	if month.IsZero() {
		return nil, domain.NewEntityError(domain.ErrValidation, apiErrors.ErrMissingRequiredData, customerID, "", "Mês do pagamento é obrigatório")
	}
	if !amount.IsPositive() {
		return nil, domain.NewEntityError(domain.ErrValidation, apiErrors.ErrValidation, customerID, "",
			fmt.Sprintf("Valor do pagamento deve ser maior que zero (recebido %s)", amount.String()))
	}
	if !domain.FitsPlaces(amount, domain.MoneyPlaces) {
		return nil, domain.NewEntityError(domain.ErrValidation, apiErrors.ErrValidation, customerID, "",
			fmt.Sprintf("Valor do pagamento aceita no máximo %d casas decimais (recebido %s)", domain.MoneyPlaces, amount.String()))
	}

	unlock := s.locks.Lock(customerID + "|" + month.String())
	defer unlock()

	aggregate, err := s.aggregator.ForCustomer(ctx, customerID, month)
	if err != nil {
		return nil, err
	}
	customer := aggregate.Customer

	id, err := utils.GenerateID()
	if err != nil {
		return nil, domain.NewLedgerError(domain.ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador do pagamento").WithCause(err)
	}

	now := s.now().UTC()
	saved, err := s.paymentRepository.AddPayment(ctx, &domain.PaymentRecord{
		ID:                id,
		CustomerID:        customer.ID,
		Month:             month.String(),
		PaidAmount:        amount,
		TotalAmount:       aggregate.TotalAmount,
		LastPaymentAmount: amount,
		PaymentDate:       now,
		CreatedAt:         now,
		UpdatedAt:         now,
	})
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"customer_id":   customer.ID,
			"payment_month": month.String(),
		}).Error("Erro ao registrar pagamento")
		return nil, domain.NewEntityError(domain.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, customer.ID, customer.Name, "Falha ao registrar pagamento").WithCause(err)
	}

	total := aggregate.TotalAmount
	previousStatus := DerivePaymentStatus(total, saved.PaidAmount.Sub(amount))
	status := DerivePaymentStatus(total, saved.PaidAmount)

	result := &domain.PaymentResult{
		Record:         saved,
		CustomerName:   customer.Name,
		PreviousStatus: previousStatus,
		Status:         status,
		Balance:        total.Sub(saved.PaidAmount),
		Completed:      status == domain.PaymentStatusPaid && previousStatus != domain.PaymentStatusPaid,
	}

	s.metrics.IncPayment(string(status))

	logrus.WithFields(logrus.Fields{
		"customer_id":     customer.ID,
		"payment_month":   month.String(),
		"payment_amount":  amount.String(),
		"payment_paid":    saved.PaidAmount.String(),
		"payment_status":  status,
		"payment_balance": result.Balance.String(),
	}).Info("Pagamento registrado")

	result.RecordedNotification = s.dispatcher.Dispatch(ctx, domain.Notification{
		Handle: customer.Handle(),
		Kind:   domain.NotificationPaymentRecorded,
		Payload: domain.PaymentRecordedPayload{
			CustomerName: customer.Name,
			Month:        month,
			Increment:    amount,
			TotalPaid:    saved.PaidAmount,
			TotalAmount:  total,
			Balance:      result.Balance,
		},
	})

	if result.Completed {
		result.CompletedNotification = s.dispatcher.Dispatch(ctx, domain.Notification{
			Handle: customer.Handle(),
			Kind:   domain.NotificationPaymentCompleted,
			Payload: domain.PaymentCompletedPayload{
				CustomerName: customer.Name,
				Month:        month,
				TotalAmount:  total,
			},
		})
	}

	return result, nil
}

// Statement monta o extrato do mês por cliente ativo. Os totais consideram todos os clientes,
// os filtros só restringem as linhas.
func (s *Service) Statement(ctx context.Context, month domain.Month, filter domain.PaymentFilter) (*domain.MonthlyStatement, error) {
	if month.IsZero() {
		return nil, domain.NewLedgerError(domain.ErrValidation, apiErrors.ErrMissingRequiredData, "Mês é obrigatório")
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, domain.NewLedgerError(domain.ErrValidation, apiErrors.ErrInvalidFormat, fmt.Sprintf("Status inválido: %s", filter.Status))
	}

	report, err := s.aggregator.ForMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	payments, err := s.paymentRepository.ListByMonth(ctx, month)
	if err != nil {
		logrus.WithError(err).WithField("payment_month", month.String()).Error("Erro ao listar pagamentos do mês")
		return nil, domain.NewLedgerError(domain.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar pagamentos do mês").WithCause(err)
	}

	return BuildStatement(month, report.Aggregates, payments, filter), nil
}

// BuildStatement cruza agregados e pagamentos do mês
func BuildStatement(month domain.Month, aggregates []*domain.MonthlyAggregate, payments []*domain.PaymentRecord, filter domain.PaymentFilter) *domain.MonthlyStatement {
	byCustomer := make(map[string]*domain.PaymentRecord, len(payments))
	for _, payment := range payments {
		byCustomer[payment.CustomerID] = payment
	}

	statement := &domain.MonthlyStatement{
		Month:   month.String(),
		Entries: make([]*domain.StatementEntry, 0, len(aggregates)),
		Totals: domain.StatementTotals{
			Revenue:   decimal.Zero,
			Paid:      decimal.Zero,
			TotalMilk: decimal.Zero,
		},
	}

	search := domain.CustomerFilter{Search: filter.Search}

	for _, aggregate := range aggregates {
		entry := &domain.StatementEntry{
			Customer:      aggregate.Customer,
			TotalMilk:     aggregate.TotalMilk,
			TotalAmount:   aggregate.TotalAmount,
			PaidAmount:    decimal.Zero,
			DaysDelivered: aggregate.DaysDelivered,
			DaysSkipped:   aggregate.DaysSkipped,
		}

		if payment, ok := byCustomer[aggregate.Customer.ID]; ok {
			paymentDate := payment.PaymentDate
			entry.PaidAmount = payment.PaidAmount
			entry.PaymentDate = &paymentDate
			entry.PaymentID = payment.ID
		}

		entry.Balance = entry.TotalAmount.Sub(entry.PaidAmount)
		entry.Status = DerivePaymentStatus(entry.TotalAmount, entry.PaidAmount)

		statement.Totals.Revenue = statement.Totals.Revenue.Add(entry.TotalAmount)
		statement.Totals.Paid = statement.Totals.Paid.Add(entry.PaidAmount)
		statement.Totals.TotalMilk = statement.Totals.TotalMilk.Add(entry.TotalMilk)
		switch entry.Status {
		case domain.PaymentStatusPaid:
			statement.Totals.PaidCustomers++
		case domain.PaymentStatusPending:
			statement.Totals.PendingPayments++
		}

		if !search.Matches(entry.Customer) {
			continue
		}
		if filter.Status != "" && entry.Status != filter.Status {
			continue
		}
		statement.Entries = append(statement.Entries, entry)
	}

	return statement
}
