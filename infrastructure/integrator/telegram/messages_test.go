package telegram

import (
	"errors"
	"testing"
	"time"

	"github.com/milkroute/dairy-ledger-api/infrastructure/integrator/telegram/domain"
	ledgerdomain "github.com/milkroute/dairy-ledger-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	renderer := NewRenderer("SUDHA SAGAR DAIRY", "9413577474")
	march := ledgerdomain.Month{Year: 2024, Month: time.March}

	tests := []struct {
		name     string
		kind     ledgerdomain.NotificationKind
		payload  any
		contains []string
	}{
		{
			name: "cadastro",
			kind: ledgerdomain.NotificationRegistration,
			payload: ledgerdomain.CustomerProfilePayload{
				CustomerName:  "Ramesh <Kumar>",
				Phone:         "9000",
				DailyQuantity: decimal.RequireFromString("1.5"),
				Rate:          50,
			},
			contains: []string{"Ramesh &lt;Kumar&gt;", "1.5 L", "₹50.00/L", "Dúvidas: 9413577474", "SUDHA SAGAR DAIRY"},
		},
		{
			name: "entrega realizada",
			kind: ledgerdomain.NotificationDeliveryConfirmed,
			payload: ledgerdomain.DeliveryPayload{
				CustomerName: "Ramesh",
				Date:         time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
				Status:       ledgerdomain.DeliveryStatusDelivered,
				Quantity:     decimal.NewFromInt(2),
				Rate:         50,
				Amount:       decimal.NewFromInt(100),
			},
			contains: []string{"10/03/2024", "2 L", "₹100.00"},
		},
		{
			name: "entrega pulada",
			kind: ledgerdomain.NotificationDeliverySkipped,
			payload: ledgerdomain.DeliveryPayload{
				CustomerName: "Ramesh",
				Date:         time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
				Status:       ledgerdomain.DeliveryStatusSkipped,
			},
			contains: []string{"11/03/2024", "não foi realizada"},
		},
		{
			name: "resumo administrativo",
			kind: ledgerdomain.NotificationAdminDeliverySummary,
			payload: ledgerdomain.AdminDeliverySummaryPayload{
				DeliveryPayload: ledgerdomain.DeliveryPayload{CustomerName: "Ramesh", Phone: "9000", Status: ledgerdomain.DeliveryStatusDelivered, Amount: decimal.NewFromInt(100)},
			},
			contains: []string{"AVISO ADMINISTRATIVO", "Entrega concluída", "Cliente não foi avisado"},
		},
		{
			name: "pagamento registrado com saldo",
			kind: ledgerdomain.NotificationPaymentRecorded,
			payload: ledgerdomain.PaymentRecordedPayload{
				CustomerName: "Ramesh",
				Month:        march,
				Increment:    decimal.NewFromInt(100),
				TotalPaid:    decimal.NewFromInt(100),
				TotalAmount:  decimal.NewFromInt(300),
				Balance:      decimal.NewFromInt(200),
			},
			contains: []string{"março de 2024", "Recebido: ₹100.00", "Saldo: ₹200.00"},
		},
		{
			name:     "pagamento completo",
			kind:     ledgerdomain.NotificationPaymentCompleted,
			payload:  ledgerdomain.PaymentCompletedPayload{CustomerName: "Ramesh", Month: march, TotalAmount: decimal.NewFromInt(300)},
			contains: []string{"está completo", "₹300.00"},
		},
		{
			name: "lembrete",
			kind: ledgerdomain.NotificationPaymentReminder,
			payload: ledgerdomain.PaymentReminderPayload{
				CustomerName:  "Ramesh",
				Month:         march,
				Status:        ledgerdomain.PaymentStatusPartial,
				TotalAmount:   decimal.NewFromInt(300),
				PaidAmount:    decimal.NewFromInt(100),
				Balance:       decimal.NewFromInt(200),
				DaysDelivered: 3,
				TotalMilk:     decimal.NewFromInt(6),
				Rate:          50,
				DueDate:       time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC),
			},
			contains: []string{"Pagamento parcial", "Saldo devedor: ₹200.00", "6.0 L", "05 de abril de 2024"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := renderer.Render(tt.kind, tt.payload)
			require.NoError(t, err)
			for _, fragment := range tt.contains {
				assert.Contains(t, text, fragment)
			}
		})
	}
}

func TestRenderer_RenderErrors(t *testing.T) {
	renderer := NewRenderer("Dairy", "")

	_, err := renderer.Render(ledgerdomain.NotificationPaymentReminder, "texto solto")
	var renderErr *domain.RenderError
	require.True(t, errors.As(err, &renderErr))
	assert.True(t, renderErr.Permanent())
	assert.ErrorIs(t, err, errUnexpectedPayload)

	_, err = renderer.Render("desconhecido", nil)
	assert.Error(t, err)
}
