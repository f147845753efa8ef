package domain

import "github.com/shopspring/decimal"

// MonthlyAggregate é derivado dos registros de entrega e nunca é persistido
type MonthlyAggregate struct {
	Customer      *Customer       `json:"customer"`
	Month         string          `json:"month"`
	TotalMilk     decimal.Decimal `json:"total_milk"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	DaysDelivered int             `json:"days_delivered"`
	DaysSkipped   int             `json:"days_skipped"`
	DaysPending   int             `json:"days_pending"`
}

type MonthlyAggregateReport struct {
	Month      string              `json:"month"`
	Aggregates []*MonthlyAggregate `json:"aggregates"`
	TotalMilk  decimal.Decimal     `json:"total_milk"`
	Revenue    decimal.Decimal     `json:"revenue"`
}
