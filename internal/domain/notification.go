package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type NotificationKind string

const (
	NotificationRegistration         NotificationKind = "registration"
	NotificationProfileUpdated       NotificationKind = "profile-updated"
	NotificationDeliveryConfirmed    NotificationKind = "delivery-confirmed"
	NotificationDeliverySkipped      NotificationKind = "delivery-skipped"
	NotificationPaymentRecorded      NotificationKind = "payment-recorded"
	NotificationPaymentCompleted     NotificationKind = "payment-completed"
	NotificationPaymentReminder      NotificationKind = "payment-reminder"
	NotificationAdminDeliverySummary NotificationKind = "admin-delivery-summary"
)

// Notification é um fato já derivado pronto para entrega
type Notification struct {
	Handle  string
	Kind    NotificationKind
	Payload any
}

// NotificationOutcome é o resultado reportado ao operador, nunca um erro da escrita
type NotificationOutcome struct {
	Kind     NotificationKind `json:"kind"`
	Handle   string           `json:"handle,omitempty"`
	Sent     bool             `json:"sent"`
	Skipped  bool             `json:"skipped,omitempty"`
	Attempts int              `json:"attempts,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// Failed indica tentativa de envio sem sucesso; envios ignorados não contam como falha
func (o *NotificationOutcome) Failed() bool {
	return o != nil && !o.Sent && !o.Skipped
}

type CustomerProfilePayload struct {
	CustomerName  string          `json:"customer_name"`
	Phone         string          `json:"phone"`
	DailyQuantity decimal.Decimal `json:"daily_quantity"`
	Rate          int64           `json:"rate"`
	Status        CustomerStatus  `json:"status"`
	Address       string          `json:"address,omitempty"`
}

type DeliveryPayload struct {
	CustomerName string          `json:"customer_name"`
	Phone        string          `json:"phone"`
	Date         time.Time       `json:"date"`
	Status       DeliveryStatus  `json:"status"`
	Quantity     decimal.Decimal `json:"quantity"`
	Rate         int64           `json:"rate"`
	Amount       decimal.Decimal `json:"amount"`
}

type AdminDeliverySummaryPayload struct {
	DeliveryPayload
	CustomerNotified bool `json:"customer_notified"`
}

type PaymentRecordedPayload struct {
	CustomerName string          `json:"customer_name"`
	Month        Month           `json:"month"`
	Increment    decimal.Decimal `json:"increment"`
	TotalPaid    decimal.Decimal `json:"total_paid"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Balance      decimal.Decimal `json:"balance"`
}

type PaymentCompletedPayload struct {
	CustomerName string          `json:"customer_name"`
	Month        Month           `json:"month"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}

type PaymentReminderPayload struct {
	CustomerName  string          `json:"customer_name"`
	Month         Month           `json:"month"`
	Status        PaymentStatus   `json:"status"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	Balance       decimal.Decimal `json:"balance"`
	DaysDelivered int             `json:"days_delivered"`
	TotalMilk     decimal.Decimal `json:"total_milk"`
	Rate          int64           `json:"rate"`
	DueDate       time.Time       `json:"due_date"`
}
