package aggregating

import (
	"github.com/milkroute/dairy-ledger-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Aggregate consolida os registros do mês por cliente.
// Registros fora do mês ou de clientes desconhecidos são ignorados; clientes sem registros
// aparecem zerados. Dias pendentes são os dias do mês sem nenhum registro.
func Aggregate(customers []*domain.Customer, records []*domain.DeliveryRecord, month domain.Month) []*domain.MonthlyAggregate {
	aggregates := make([]*domain.MonthlyAggregate, 0, len(customers))
	byCustomer := make(map[string]*domain.MonthlyAggregate, len(customers))

	for _, customer := range customers {
		if customer == nil {
			continue
		}
		if _, exists := byCustomer[customer.ID]; exists {
			continue
		}

		aggregate := &domain.MonthlyAggregate{
			Customer:    customer,
			Month:       month.String(),
			TotalMilk:   decimal.Zero,
			TotalAmount: decimal.Zero,
		}
		byCustomer[customer.ID] = aggregate
		aggregates = append(aggregates, aggregate)
	}

	for _, record := range records {
		if record == nil || !month.Contains(record.Date) {
			continue
		}

		aggregate, ok := byCustomer[record.CustomerID]
		if !ok {
			continue
		}

		switch record.Status {
		case domain.DeliveryStatusDelivered:
			aggregate.DaysDelivered++
			aggregate.TotalMilk = aggregate.TotalMilk.Add(record.Quantity)
			aggregate.TotalAmount = aggregate.TotalAmount.Add(record.Amount)
		case domain.DeliveryStatusSkipped:
			aggregate.DaysSkipped++
		}
	}

	days := month.Days()
	for _, aggregate := range aggregates {
		aggregate.DaysPending = max(days-aggregate.DaysDelivered-aggregate.DaysSkipped, 0)
	}

	return aggregates
}

// Report soma os agregados do mês
func Report(month domain.Month, aggregates []*domain.MonthlyAggregate) *domain.MonthlyAggregateReport {
	report := &domain.MonthlyAggregateReport{
		Month:      month.String(),
		Aggregates: aggregates,
		TotalMilk:  decimal.Zero,
		Revenue:    decimal.Zero,
	}

	for _, aggregate := range aggregates {
		report.TotalMilk = report.TotalMilk.Add(aggregate.TotalMilk)
		report.Revenue = report.Revenue.Add(aggregate.TotalAmount)
	}

	return report
}
