package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
)

func (s CustomerStatus) IsValid() bool {
	return s == CustomerStatusActive || s == CustomerStatusInactive
}

// Customer guarda o pedido fixo diário de um cliente
type Customer struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone"`
	DailyQuantity  decimal.Decimal `json:"daily_quantity"`
	Rate           int64           `json:"rate"`
	Status         CustomerStatus  `json:"status"`
	Address        *string         `json:"address,omitempty"`
	TelegramChatID *string         `json:"telegram_chat_id,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Handle retorna o identificador de mensagens do cliente, vazio quando não configurado
func (c *Customer) Handle() string {
	if c == nil || c.TelegramChatID == nil {
		return ""
	}
	return strings.TrimSpace(*c.TelegramChatID)
}

func (c *Customer) IsActive() bool {
	return c != nil && c.Status == CustomerStatusActive
}

// StandingAmount é o valor de um dia de entrega com a quantidade padrão
func (c *Customer) StandingAmount() decimal.Decimal {
	return ComputeAmount(c.DailyQuantity, c.Rate)
}

// CustomerFilter filtra clientes por texto (nome ou telefone) e status
type CustomerFilter struct {
	Search string
	Status CustomerStatus
}

// Matches aplica o filtro em memória, com a mesma regra usada nas consultas
func (f CustomerFilter) Matches(c *Customer) bool {
	if f.Status != "" && c.Status != f.Status {
		return false
	}

	search := strings.ToLower(strings.TrimSpace(f.Search))
	if search == "" {
		return true
	}

	return strings.Contains(strings.ToLower(c.Name), search) ||
		strings.Contains(strings.ToLower(c.Phone), search)
}

type CreateCustomerRequest struct {
	Name           string          `json:"name" validate:"required"`
	Phone          string          `json:"phone" validate:"required"`
	DailyQuantity  decimal.Decimal `json:"daily_quantity"`
	Rate           int64           `json:"rate" validate:"gt=0"`
	Status         CustomerStatus  `json:"status" validate:"omitempty,oneof=active inactive"`
	Address        *string         `json:"address,omitempty"`
	TelegramChatID *string         `json:"telegram_chat_id,omitempty"`
}

// NewCustomer monta o cliente a partir de um pedido já validado
func (r *CreateCustomerRequest) NewCustomer(id string, now time.Time) *Customer {
	return &Customer{
		ID:             id,
		Name:           r.Name,
		Phone:          r.Phone,
		DailyQuantity:  r.DailyQuantity,
		Rate:           r.Rate,
		Status:         r.Status,
		Address:        r.Address,
		TelegramChatID: r.TelegramChatID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// UpdateCustomerRequest só altera os campos informados
type UpdateCustomerRequest struct {
	ID             string           `json:"-"`
	Name           *string          `json:"name,omitempty" validate:"omitnil,min=1"`
	Phone          *string          `json:"phone,omitempty" validate:"omitnil,min=1"`
	DailyQuantity  *decimal.Decimal `json:"daily_quantity,omitempty"`
	Rate           *int64           `json:"rate,omitempty" validate:"omitnil,gt=0"`
	Status         *CustomerStatus  `json:"status,omitempty" validate:"omitnil,oneof=active inactive"`
	Address        *string          `json:"address,omitempty"`
	TelegramChatID *string          `json:"telegram_chat_id,omitempty"`
}

// Apply copia os campos informados para o cliente
func (r *UpdateCustomerRequest) Apply(c *Customer) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Phone != nil {
		c.Phone = *r.Phone
	}
	if r.DailyQuantity != nil {
		c.DailyQuantity = *r.DailyQuantity
	}
	if r.Rate != nil {
		c.Rate = *r.Rate
	}
	if r.Status != nil {
		c.Status = *r.Status
	}
	if r.Address != nil {
		c.Address = r.Address
	}
	if r.TelegramChatID != nil {
		c.TelegramChatID = r.TelegramChatID
	}
}

type CustomerResult struct {
	Customer     *Customer            `json:"customer"`
	Notification *NotificationOutcome `json:"notification,omitempty"`
}

type DeleteCustomerResult struct {
	CustomerID        string `json:"customer_id"`
	CustomerName      string `json:"customer_name"`
	DeliveriesDeleted int64  `json:"deliveries_deleted"`
	PaymentsDeleted   int64  `json:"payments_deleted"`
}
