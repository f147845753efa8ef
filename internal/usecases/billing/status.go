package billing

import (
	"github.com/milkroute/dairy-ledger-api/internal/domain"
	"github.com/shopspring/decimal"
)

// DerivePaymentStatus calcula o status a partir do valor do mês e do total pago.
// Mês sem valor a cobrar nunca aparece como pago.
func DerivePaymentStatus(total, paid decimal.Decimal) domain.PaymentStatus {
	switch {
	case !paid.IsPositive():
		return domain.PaymentStatusPending
	case !total.IsPositive():
		return domain.PaymentStatusPending
	case paid.LessThan(total):
		return domain.PaymentStatusPartial
	default:
		return domain.PaymentStatusPaid
	}
}
