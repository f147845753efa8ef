package billing

import (
	"context"
	"time"

	"github.com/milkroute/dairy-ledger-api/internal/domain"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// SendReminders cobra os clientes com pagamento pendente ou parcial que têm chat configurado.
// Os envios são sequenciais, espaçados pelo intervalo configurado, e uma falha não interrompe os demais.
func (s *Service) SendReminders(ctx context.Context, month domain.Month, trigger string) (*domain.ReminderReport, error) {
	statement, err := s.Statement(ctx, month, domain.PaymentFilter{})
	if err != nil {
		return nil, err
	}

	s.metrics.IncReminderRun(trigger)

	report := &domain.ReminderReport{
		Month:     month.String(),
		StartedAt: s.now().UTC(),
	}

	eligible := make([]*domain.StatementEntry, 0, len(statement.Entries))
	for _, entry := range statement.Entries {
		if entry.Status.NeedsReminder() && entry.Customer.Handle() != "" {
			eligible = append(eligible, entry)
		}
	}
	report.Eligible = len(eligible)

	logger := logrus.WithFields(logrus.Fields{
		"payment_month":     report.Month,
		"payment_trigger":   trigger,
		"payment_reminders": report.Eligible,
	})
	logger.Info("Iniciando envio de lembretes de pagamento")

	dueDate := s.dueDate()
	limiter := s.newLimiter()

	for i, entry := range eligible {
		if err := limiter.Wait(ctx); err != nil {
			// Contexto encerrado: os restantes contam como falha
			for _, pending := range eligible[i:] {
				recordFailure(report, pending, err.Error())
			}
			break
		}

		outcome := s.dispatcher.Dispatch(ctx, domain.Notification{
			Handle: entry.Customer.Handle(),
			Kind:   domain.NotificationPaymentReminder,
			Payload: domain.PaymentReminderPayload{
				CustomerName:  entry.Customer.Name,
				Month:         month,
				Status:        entry.Status,
				TotalAmount:   entry.TotalAmount,
				PaidAmount:    entry.PaidAmount,
				Balance:       entry.Balance,
				DaysDelivered: entry.DaysDelivered,
				TotalMilk:     entry.TotalMilk,
				Rate:          entry.Customer.Rate,
				DueDate:       dueDate,
			},
		})

		if outcome != nil && outcome.Sent {
			report.Sent++
			continue
		}

		reason := "notificação não enviada"
		if outcome != nil && outcome.Error != "" {
			reason = outcome.Error
		}
		recordFailure(report, entry, reason)
	}

	report.CompletedAt = s.now().UTC()
	s.metrics.AddReminders(report.Sent, report.Failed)

	logger.WithFields(logrus.Fields{
		"payment_reminders_sent":   report.Sent,
		"payment_reminders_failed": report.Failed,
	}).Info("Envio de lembretes concluído")

	return report, nil
}

// dueDate é o dia de vencimento no mês seguinte à data atual
func (s *Service) dueDate() time.Time {
	now := s.now().UTC()
	return time.Date(now.Year(), now.Month()+1, s.dueDay, 0, 0, 0, 0, time.UTC)
}

func (s *Service) newLimiter() *rate.Limiter {
	if s.pacingDelay == 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(s.pacingDelay), 1)
}

func recordFailure(report *domain.ReminderReport, entry *domain.StatementEntry, reason string) {
	report.Failed++
	report.Failures = append(report.Failures, domain.ReminderFailure{
		CustomerID:   entry.Customer.ID,
		CustomerName: entry.Customer.Name,
		Error:        reason,
	})

	logrus.WithFields(logrus.Fields{
		"customer_id":   entry.Customer.ID,
		"customer_name": entry.Customer.Name,
		"error":         reason,
	}).Warn("Lembrete de pagamento não enviado")
}
