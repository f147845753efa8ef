package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPartial, PaymentStatusPaid:
		return true
	}
	return false
}

// NeedsReminder indica se o status ainda tem saldo a cobrar
func (s PaymentStatus) NeedsReminder() bool {
	return s == PaymentStatusPending || s == PaymentStatusPartial
}

// PaymentRecord acumula os pagamentos de um cliente no mês.
// PaidAmount só é incrementado; TotalAmount é a cópia do agregado na última escrita.
type PaymentRecord struct {
	ID                string          `json:"id"`
	CustomerID        string          `json:"customer_id"`
	Month             string          `json:"month"`
	PaidAmount        decimal.Decimal `json:"paid_amount"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	LastPaymentAmount decimal.Decimal `json:"last_payment_amount"`
	PaymentDate       time.Time       `json:"payment_date"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

type PaymentFilter struct {
	Search string
	Status PaymentStatus
}

type PaymentResult struct {
	Record                *PaymentRecord       `json:"record"`
	CustomerName          string               `json:"customer_name"`
	PreviousStatus        PaymentStatus        `json:"previous_status"`
	Status                PaymentStatus        `json:"status"`
	Balance               decimal.Decimal      `json:"balance"`
	Completed             bool                 `json:"completed"`
	RecordedNotification  *NotificationOutcome `json:"recorded_notification,omitempty"`
	CompletedNotification *NotificationOutcome `json:"completed_notification,omitempty"`
}

type StatementEntry struct {
	Customer      *Customer       `json:"customer"`
	TotalMilk     decimal.Decimal `json:"total_milk"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	Balance       decimal.Decimal `json:"balance"`
	DaysDelivered int             `json:"days_delivered"`
	DaysSkipped   int             `json:"days_skipped"`
	Status        PaymentStatus   `json:"status"`
	PaymentDate   *time.Time      `json:"payment_date,omitempty"`
	PaymentID     string          `json:"payment_id,omitempty"`
}

type StatementTotals struct {
	Revenue         decimal.Decimal `json:"revenue"`
	Paid            decimal.Decimal `json:"paid"`
	TotalMilk       decimal.Decimal `json:"total_milk"`
	PaidCustomers   int             `json:"paid_customers"`
	PendingPayments int             `json:"pending_payments"`
}

type MonthlyStatement struct {
	Month   string            `json:"month"`
	Entries []*StatementEntry `json:"entries"`
	Totals  StatementTotals   `json:"totals"`
}

type ReminderFailure struct {
	CustomerID   string `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	Error        string `json:"error"`
}

type ReminderReport struct {
	Month       string            `json:"month"`
	Eligible    int               `json:"eligible"`
	Sent        int               `json:"sent"`
	Failed      int               `json:"failed"`
	Failures    []ReminderFailure `json:"failures,omitempty"`
	StartedAt   time.Time         `json:"started_at"`
	CompletedAt time.Time         `json:"completed_at"`
}
