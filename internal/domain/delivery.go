package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type DeliveryStatus string

const (
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	DeliveryStatusSkipped   DeliveryStatus = "skipped"
	// DeliveryStatusPending nunca é gravado: representa a ausência de registro no dia
	DeliveryStatusPending DeliveryStatus = "pending"
)

// DeliveryRecord é a decisão explícita de um dia para um cliente
type DeliveryRecord struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Date       time.Time       `json:"date"`
	Quantity   decimal.Decimal `json:"quantity"`
	Rate       int64           `json:"rate"`
	Amount     decimal.Decimal `json:"amount"`
	Status     DeliveryStatus  `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// Casas decimais aceitas pelas colunas de quantidade e de pagamento
const (
	QuantityPlaces int32 = 3
	MoneyPlaces    int32 = 2
)

// FitsPlaces indica se o valor cabe em places casas decimais sem arredondar
func FitsPlaces(value decimal.Decimal, places int32) bool {
	return value.Equal(value.Truncate(places))
}

// ComputeAmount calcula quantidade × tarifa
func ComputeAmount(quantity decimal.Decimal, rate int64) decimal.Decimal {
	return quantity.Mul(decimal.NewFromInt(rate))
}

// DailyEntry é o estado efetivo de um cliente numa data
type DailyEntry struct {
	Customer *Customer       `json:"customer"`
	RecordID string          `json:"record_id,omitempty"`
	Status   DeliveryStatus  `json:"status"`
	Quantity decimal.Decimal `json:"quantity"`
	Rate     int64           `json:"rate"`
	Amount   decimal.Decimal `json:"amount"`
}

type DailyStats struct {
	Delivered int             `json:"delivered"`
	Skipped   int             `json:"skipped"`
	Pending   int             `json:"pending"`
	TotalMilk decimal.Decimal `json:"total_milk"`
	Revenue   decimal.Decimal `json:"revenue"`
}

type DailySheet struct {
	Date    string        `json:"date"`
	Entries []*DailyEntry `json:"entries"`
	Stats   DailyStats    `json:"stats"`
}

type DeliveryResult struct {
	Record               *DeliveryRecord      `json:"record"`
	CustomerName         string               `json:"customer_name"`
	CustomerNotification *NotificationOutcome `json:"customer_notification,omitempty"`
	AdminNotification    *NotificationOutcome `json:"admin_notification,omitempty"`
}

// NotificationFailed indica se algum dos avisos da entrega falhou
func (r *DeliveryResult) NotificationFailed() bool {
	if r == nil {
		return false
	}
	return r.CustomerNotification.Failed() || r.AdminNotification.Failed()
}

type ResetDeliveryRequest struct {
	CustomerID string
	Date       time.Time
	Confirmed  bool
}

// MarkAllPendingRequest marca como entregue todos os clientes ainda pendentes na data.
// Sem CustomerIDs, considera todos os clientes ativos.
type MarkAllPendingRequest struct {
	CustomerIDs []string                   `json:"customer_ids,omitempty"`
	Date        time.Time                  `json:"-"`
	Quantities  map[string]decimal.Decimal `json:"quantities,omitempty"`
}

type BulkItemResult struct {
	CustomerID         string          `json:"customer_id"`
	CustomerName       string          `json:"customer_name,omitempty"`
	Success            bool            `json:"success"`
	AlreadyRecorded    bool            `json:"already_recorded,omitempty"`
	NotificationFailed bool            `json:"notification_failed,omitempty"`
	Error              string          `json:"error,omitempty"`
	Result             *DeliveryResult `json:"result,omitempty"`
}

type BulkDeliveryResult struct {
	Date                 string            `json:"date"`
	Processed            int               `json:"processed"`
	Succeeded            int               `json:"succeeded"`
	Failed               int               `json:"failed"`
	AlreadyRecorded      int               `json:"already_recorded"`
	NotificationFailures int               `json:"notification_failures"`
	Items                []*BulkItemResult `json:"items"`
}
