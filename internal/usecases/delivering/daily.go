package delivering

import (
	"context"
	"time"

	"github.com/milkroute/dairy-ledger-api/internal/domain"
	"github.com/milkroute/dairy-ledger-api/pkg/apiErrors"
	"github.com/milkroute/dairy-ledger-api/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ForDate retorna o estado efetivo de cada cliente ativo na data.
// Clientes sem registro aparecem pendentes com quantidade e valor padrão.
func (s *Service) ForDate(ctx context.Context, date time.Time, search string) (*domain.DailySheet, error) {
	if date.IsZero() {
		return nil, domain.NewLedgerError(domain.ErrValidation, apiErrors.ErrMissingRequiredData, "Data é obrigatória")
	}
	date = utils.TruncateToDate(date)

	customers, err := s.customerRepository.List(ctx, domain.CustomerFilter{
		Search: search,
		Status: domain.CustomerStatusActive,
	})
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar clientes ativos")
		return nil, domain.NewLedgerError(domain.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar clientes").WithCause(err)
	}

	records, err := s.recordsByCustomer(ctx, date)
	if err != nil {
		return nil, err
	}

	return BuildDailySheet(date, customers, records), nil
}

// BuildDailySheet monta a folha do dia; pendentes são os clientes sem registro na data
func BuildDailySheet(date time.Time, customers []*domain.Customer, records map[string]*domain.DeliveryRecord) *domain.DailySheet {
	sheet := &domain.DailySheet{
		Date:    date.Format(time.DateOnly),
		Entries: make([]*domain.DailyEntry, 0, len(customers)),
		Stats: domain.DailyStats{
			TotalMilk: decimal.Zero,
			Revenue:   decimal.Zero,
		},
	}

	recorded := 0
	for _, customer := range customers {
		record, ok := records[customer.ID]
		if !ok {
			sheet.Entries = append(sheet.Entries, &domain.DailyEntry{
				Customer: customer,
				Status:   domain.DeliveryStatusPending,
				Quantity: customer.DailyQuantity,
				Rate:     customer.Rate,
				Amount:   customer.StandingAmount(),
			})
			continue
		}

		recorded++
		sheet.Entries = append(sheet.Entries, &domain.DailyEntry{
			Customer: customer,
			RecordID: record.ID,
			Status:   record.Status,
			Quantity: record.Quantity,
			Rate:     record.Rate,
			Amount:   record.Amount,
		})

		switch record.Status {
		case domain.DeliveryStatusDelivered:
			sheet.Stats.Delivered++
			sheet.Stats.TotalMilk = sheet.Stats.TotalMilk.Add(record.Quantity)
			sheet.Stats.Revenue = sheet.Stats.Revenue.Add(record.Amount)
		case domain.DeliveryStatusSkipped:
			sheet.Stats.Skipped++
		}
	}

	sheet.Stats.Pending = len(customers) - recorded

	return sheet
}

// MarkAllPending marca como entregue cada cliente ainda sem registro na data.
// Cada cliente é processado isoladamente e a tarifa é lida no momento de cada gravação.
func (s *Service) MarkAllPending(ctx context.Context, request domain.MarkAllPendingRequest) (*domain.BulkDeliveryResult, error) {
	if request.Date.IsZero() {
		return nil, domain.NewLedgerError(domain.ErrValidation, apiErrors.ErrMissingRequiredData, "Data é obrigatória")
	}
	date := utils.TruncateToDate(request.Date)

	ordered, customers, err := s.bulkCustomers(ctx, request.CustomerIDs)
	if err != nil {
		return nil, err
	}

	records, err := s.recordsByCustomer(ctx, date)
	if err != nil {
		return nil, err
	}

	result := &domain.BulkDeliveryResult{
		Date:  date.Format(time.DateOnly),
		Items: make([]*domain.BulkItemResult, 0, len(customers)),
	}

	for _, id := range bulkOrder(request.CustomerIDs, ordered) {
		item := &domain.BulkItemResult{CustomerID: id}
		result.Items = append(result.Items, item)
		result.Processed++

		customer, ok := customers[id]
		if !ok {
			item.Error = "Cliente não encontrado"
			result.Failed++
			continue
		}
		item.CustomerName = customer.Name

		if _, exists := records[id]; exists {
			item.AlreadyRecorded = true
			item.Success = true
			result.AlreadyRecorded++
			continue
		}

		if err := ctx.Err(); err != nil {
			item.Error = err.Error()
			result.Failed++
			continue
		}

		var quantity *decimal.Decimal
		if override, ok := request.Quantities[id]; ok {
			quantity = &override
		}

		delivery, err := s.RecordDelivered(ctx, id, date, quantity)
		if err != nil {
			logrus.WithError(err).WithField("customer_id", id).Warn("Falha ao marcar entrega em lote")
			item.Error = err.Error()
			result.Failed++
			continue
		}

		item.Success = true
		item.Result = delivery
		result.Succeeded++

		if delivery.NotificationFailed() {
			item.NotificationFailed = true
			result.NotificationFailures++
		}
	}

	logrus.WithFields(logrus.Fields{
		"delivery_date":                  result.Date,
		"delivery_processed":             result.Processed,
		"delivery_succeeded":             result.Succeeded,
		"delivery_failed":                result.Failed,
		"delivery_already_recorded":      result.AlreadyRecorded,
		"delivery_notification_failures": result.NotificationFailures,
	}).Info("Marcação em lote concluída")

	return result, nil
}

func (s *Service) bulkCustomers(ctx context.Context, ids []string) ([]*domain.Customer, map[string]*domain.Customer, error) {
	var (
		customers []*domain.Customer
		err       error
	)

	if len(ids) == 0 {
		customers, err = s.customerRepository.List(ctx, domain.CustomerFilter{Status: domain.CustomerStatusActive})
	} else {
		customers, err = s.customerRepository.ListByIDs(ctx, ids)
	}
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar clientes para marcação em lote")
		return nil, nil, domain.NewLedgerError(domain.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar clientes").WithCause(err)
	}

	byID := make(map[string]*domain.Customer, len(customers))
	for _, customer := range customers {
		byID[customer.ID] = customer
	}
	return customers, byID, nil
}

// bulkOrder mantém a ordem pedida, sem repetições; sem lista explícita, segue a ordem vinda do banco
func bulkOrder(requested []string, customers []*domain.Customer) []string {
	if len(requested) == 0 {
		ids := make([]string, 0, len(customers))
		for _, customer := range customers {
			ids = append(ids, customer.ID)
		}
		return ids
	}

	seen := make(map[string]struct{}, len(requested))
	ids := make([]string, 0, len(requested))
	for _, id := range requested {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

func (s *Service) recordsByCustomer(ctx context.Context, date time.Time) (map[string]*domain.DeliveryRecord, error) {
	records, err := s.deliveryRepository.ListByDate(ctx, date)
	if err != nil {
		logrus.WithError(err).WithField("delivery_date", date.Format(time.DateOnly)).Error("Erro ao listar entregas do dia")
		return nil, domain.NewLedgerError(domain.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar entregas do dia").WithCause(err)
	}

	byCustomer := make(map[string]*domain.DeliveryRecord, len(records))
	for _, record := range records {
		byCustomer[record.CustomerID] = record
	}
	return byCustomer, nil
}
