package telegram

import (
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/milkroute/dairy-ledger-api/infrastructure/integrator/telegram/domain"
	ledgerdomain "github.com/milkroute/dairy-ledger-api/internal/domain"
	"github.com/shopspring/decimal"
)

var errUnexpectedPayload = errors.New("payload incompatível com o tipo de notificação")

var monthNames = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// Renderer monta o texto de cada notificação; nome do negócio e contato vêm da configuração
type Renderer struct {
	businessName string
	contactPhone string
}

func NewRenderer(businessName, contactPhone string) *Renderer {
	return &Renderer{
		businessName: html.EscapeString(strings.TrimSpace(businessName)),
		contactPhone: html.EscapeString(strings.TrimSpace(contactPhone)),
	}
}

func (r *Renderer) Render(kind ledgerdomain.NotificationKind, payload any) (string, error) {
	var (
		text string
		ok   bool
	)

	switch kind {
	case ledgerdomain.NotificationRegistration:
		var p ledgerdomain.CustomerProfilePayload
		if p, ok = payload.(ledgerdomain.CustomerProfilePayload); ok {
			text = r.registration(p)
		}
	case ledgerdomain.NotificationProfileUpdated:
		var p ledgerdomain.CustomerProfilePayload
		if p, ok = payload.(ledgerdomain.CustomerProfilePayload); ok {
			text = r.profileUpdated(p)
		}
	case ledgerdomain.NotificationDeliveryConfirmed, ledgerdomain.NotificationDeliverySkipped:
		var p ledgerdomain.DeliveryPayload
		if p, ok = payload.(ledgerdomain.DeliveryPayload); ok {
			text = r.delivery(p)
		}
	case ledgerdomain.NotificationAdminDeliverySummary:
		var p ledgerdomain.AdminDeliverySummaryPayload
		if p, ok = payload.(ledgerdomain.AdminDeliverySummaryPayload); ok {
			text = r.adminSummary(p)
		}
	case ledgerdomain.NotificationPaymentRecorded:
		var p ledgerdomain.PaymentRecordedPayload
		if p, ok = payload.(ledgerdomain.PaymentRecordedPayload); ok {
			text = r.paymentRecorded(p)
		}
	case ledgerdomain.NotificationPaymentCompleted:
		var p ledgerdomain.PaymentCompletedPayload
		if p, ok = payload.(ledgerdomain.PaymentCompletedPayload); ok {
			text = r.paymentCompleted(p)
		}
	case ledgerdomain.NotificationPaymentReminder:
		var p ledgerdomain.PaymentReminderPayload
		if p, ok = payload.(ledgerdomain.PaymentReminderPayload); ok {
			text = r.paymentReminder(p)
		}
	default:
		return "", &domain.RenderError{Kind: string(kind), Err: errors.New("tipo de notificação desconhecido")}
	}

	if !ok {
		return "", &domain.RenderError{Kind: string(kind), Err: fmt.Errorf("%w: %T", errUnexpectedPayload, payload)}
	}

	return text, nil
}

func (r *Renderer) header() string {
	return "🥛 <b>" + r.businessName + "</b>\n\n"
}

func (r *Renderer) footer() string {
	var b strings.Builder
	if r.contactPhone != "" {
		b.WriteString("\n\nDúvidas: " + r.contactPhone)
	}
	b.WriteString("\n\nObrigado! 🙏\n- " + r.businessName)
	return b.String()
}

func (r *Renderer) registration(p ledgerdomain.CustomerProfilePayload) string {
	var b strings.Builder
	b.WriteString(r.header())
	b.WriteString("🎉 Bem-vindo(a), " + escape(p.CustomerName) + "!\n\n")
	b.WriteString("Seu cadastro foi concluído:\n")
	b.WriteString("• Telefone: " + escape(p.Phone) + "\n")
	b.WriteString("• Quantidade diária: " + liters(p.DailyQuantity) + "\n")
	b.WriteString("• Preço: " + money(decimal.NewFromInt(p.Rate)) + "/L")
	if p.Address != "" {
		b.WriteString("\n• Endereço: " + escape(p.Address))
	}
	b.WriteString(r.footer())
	return b.String()
}

func (r *Renderer) profileUpdated(p ledgerdomain.CustomerProfilePayload) string {
	var b strings.Builder
	b.WriteString(r.header())
	b.WriteString("🔄 " + escape(p.CustomerName) + ", seus dados foram atualizados:\n")
	b.WriteString("• Telefone: " + escape(p.Phone) + "\n")
	b.WriteString("• Quantidade diária: " + liters(p.DailyQuantity) + "\n")
	b.WriteString("• Preço: " + money(decimal.NewFromInt(p.Rate)) + "/L\n")
	b.WriteString("• Situação: " + customerStatus(p.Status))
	if p.Address != "" {
		b.WriteString("\n• Endereço: " + escape(p.Address))
	}
	b.WriteString(r.footer())
	return b.String()
}

func (r *Renderer) delivery(p ledgerdomain.DeliveryPayload) string {
	var b strings.Builder
	b.WriteString(r.header())
	if p.Status == ledgerdomain.DeliveryStatusSkipped {
		b.WriteString("ℹ️ " + escape(p.CustomerName) + ", a entrega de " + day(p.Date) + " não foi realizada.")
	} else {
		b.WriteString("👋 " + escape(p.CustomerName) + ", entrega de " + day(p.Date) + ":\n")
		b.WriteString("• Quantidade: " + liters(p.Quantity) + "\n")
		b.WriteString("• Preço: " + money(decimal.NewFromInt(p.Rate)) + "/L\n")
		b.WriteString("• Valor: " + money(p.Amount))
	}
	b.WriteString(r.footer())
	return b.String()
}

func (r *Renderer) adminSummary(p ledgerdomain.AdminDeliverySummaryPayload) string {
	var b strings.Builder
	b.WriteString("📊 <b>AVISO ADMINISTRATIVO</b>\n\n")
	if p.Status == ledgerdomain.DeliveryStatusSkipped {
		b.WriteString("⏭️ Entrega não realizada\n")
	} else {
		b.WriteString("✅ Entrega concluída\n")
	}
	b.WriteString("👤 Cliente: " + escape(p.CustomerName) + "\n")
	b.WriteString("📱 Telefone: " + escape(p.Phone) + "\n")
	b.WriteString("📅 Data: " + day(p.Date))
	if p.Status != ledgerdomain.DeliveryStatusSkipped {
		b.WriteString("\n🥛 Quantidade: " + liters(p.Quantity))
		b.WriteString("\n💰 Preço: " + money(decimal.NewFromInt(p.Rate)) + "/L")
		b.WriteString("\n💸 Valor: " + money(p.Amount))
	}
	if p.CustomerNotified {
		b.WriteString("\n\n✅ Cliente avisado pelo Telegram")
	} else {
		b.WriteString("\n\n⚠️ Cliente não foi avisado")
	}
	b.WriteString("\n\n- " + r.businessName + " Admin")
	return b.String()
}

func (r *Renderer) paymentRecorded(p ledgerdomain.PaymentRecordedPayload) string {
	status := "Quitado"
	if p.Balance.IsPositive() {
		status = "Saldo: " + money(p.Balance)
	}

	var b strings.Builder
	b.WriteString(r.header())
	b.WriteString("💰 " + escape(p.CustomerName) + "\n\n")
	b.WriteString("Pagamento de " + monthName(p.Month) + " recebido!\n\n")
	b.WriteString("✅ Recebido: " + money(p.Increment) + "\n")
	b.WriteString("📊 Total pago: " + money(p.TotalPaid) + "\n")
	b.WriteString("💸 Valor do mês: " + money(p.TotalAmount) + "\n")
	b.WriteString("📋 " + status)
	b.WriteString(r.footer())
	return b.String()
}

func (r *Renderer) paymentCompleted(p ledgerdomain.PaymentCompletedPayload) string {
	var b strings.Builder
	b.WriteString(r.header())
	b.WriteString("🎉 " + escape(p.CustomerName) + "\n\n")
	b.WriteString("O pagamento de " + monthName(p.Month) + " está completo!\n\n")
	b.WriteString("💰 Valor total: " + money(p.TotalAmount) + "\n")
	b.WriteString("✅ Situação: Pago")
	b.WriteString(r.footer())
	return b.String()
}

func (r *Renderer) paymentReminder(p ledgerdomain.PaymentReminderPayload) string {
	status := "Pagamento pendente"
	if p.Status == ledgerdomain.PaymentStatusPartial {
		status = "Pagamento parcial"
	}

	var b strings.Builder
	b.WriteString(r.header())
	b.WriteString("⚠️ Lembrete de pagamento - " + escape(p.CustomerName) + "\n\n")
	b.WriteString("📅 Mês: " + monthName(p.Month) + "\n")
	b.WriteString("💸 Situação: " + status + "\n\n")
	b.WriteString("📊 Pagamento:\n")
	b.WriteString("• Valor total: " + money(p.TotalAmount) + "\n")
	b.WriteString("• Valor pago: " + money(p.PaidAmount) + "\n")
	b.WriteString("• Saldo devedor: " + money(p.Balance) + "\n\n")
	b.WriteString("📋 Serviço:\n")
	b.WriteString("• Dias entregues: " + fmt.Sprint(p.DaysDelivered) + "\n")
	b.WriteString("• Total de leite: " + p.TotalMilk.StringFixed(1) + " L\n")
	b.WriteString("• Preço: " + money(decimal.NewFromInt(p.Rate)) + "/L\n\n")
	b.WriteString("⏰ Vencimento: " + longDay(p.DueDate))
	b.WriteString(r.footer())
	return b.String()
}

func escape(s string) string {
	return html.EscapeString(s)
}

func money(d decimal.Decimal) string {
	return "₹" + d.StringFixed(2)
}

func liters(d decimal.Decimal) string {
	return d.String() + " L"
}

func day(t time.Time) string {
	return t.Format("02/01/2006")
}

func longDay(t time.Time) string {
	return fmt.Sprintf("%02d de %s de %d", t.Day(), monthNames[t.Month()-1], t.Year())
}

func monthName(m ledgerdomain.Month) string {
	if m.Month < time.January || m.Month > time.December {
		return m.String()
	}
	return fmt.Sprintf("%s de %d", monthNames[m.Month-1], m.Year)
}

func customerStatus(s ledgerdomain.CustomerStatus) string {
	if s == ledgerdomain.CustomerStatusInactive {
		return "Inativo"
	}
	return "Ativo"
}
