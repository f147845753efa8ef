package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/milkroute/dairy-ledger-api/internal/config"
	"github.com/milkroute/dairy-ledger-api/internal/domain"
	"github.com/milkroute/dairy-ledger-api/internal/usecases/billing"
	"github.com/sirupsen/logrus"
)

// PaymentRemindersConfig representa a configuração do agendador de lembretes de pagamento
type PaymentRemindersConfig struct {
	CronSchedule  string
	Enabled       bool
	MonthLookBack int
}

// PaymentRemindersService agenda o envio mensal de lembretes para os meses anteriores
type PaymentRemindersService struct {
	scheduler      *gocron.Scheduler
	config         PaymentRemindersConfig
	billingService billing.BillingService
	now            func() time.Time

	runMutex         sync.Mutex
	running          bool
	lastStartedAt    time.Time
	lastCompletedAt  time.Time
	lastTrigger      string
	lastReports      []*domain.ReminderReport
	lastErrorMessage string
}

func NewPaymentRemindersService(billingService billing.BillingService, appConfig *config.Config) *PaymentRemindersService {
	reminderConfig := PaymentRemindersConfig{
		CronSchedule:  appConfig.PaymentReminders.CronSchedule,
		Enabled:       appConfig.PaymentReminders.Enabled,
		MonthLookBack: appConfig.PaymentReminders.MonthLookBack,
	}
	if reminderConfig.MonthLookBack < 1 {
		reminderConfig.MonthLookBack = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   reminderConfig.CronSchedule,
		"enabled":         reminderConfig.Enabled,
		"month_lookback":  reminderConfig.MonthLookBack,
		"pacing_delay":    appConfig.PaymentReminders.PacingDelay.String(),
		"payment_due_day": appConfig.PaymentReminders.DueDay,
	}).Info("Configuração do agendador de lembretes de pagamento carregada")

	return &PaymentRemindersService{
		scheduler:      gocron.NewScheduler(time.Local),
		config:         reminderConfig,
		billingService: billingService,
		now:            time.Now,
	}
}

// Start inicia o agendador
func (s *PaymentRemindersService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Lembretes de pagamento desabilitados por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de lembretes de pagamento")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.run(ctx, billing.TriggerScheduled)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar lembretes de pagamento: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de lembretes de pagamento")
		s.scheduler.Stop()
	}()

	return nil
}

// Months retorna os meses cobrados numa execução, do mais antigo para o mais recente
func (s *PaymentRemindersService) Months() []domain.Month {
	current := domain.MonthOf(s.now())
	months := make([]domain.Month, 0, s.config.MonthLookBack)
	for i := s.config.MonthLookBack; i >= 1; i-- {
		months = append(months, current.AddMonths(-i))
	}
	return months
}

// run executa um ciclo completo; execuções sobrepostas são ignoradas
func (s *PaymentRemindersService) run(ctx context.Context, trigger string) {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.Info("Envio de lembretes já em andamento, ignorando")
		return
	}
	s.running = true
	s.lastStartedAt = s.now()
	s.lastTrigger = trigger
	s.runMutex.Unlock()

	reports := make([]*domain.ReminderReport, 0, s.config.MonthLookBack)
	var lastErr string

	for _, month := range s.Months() {
		report, err := s.billingService.SendReminders(ctx, month, trigger)
		if err != nil {
			logrus.WithError(err).WithField("payment_month", month.String()).Error("Erro ao enviar lembretes do mês")
			lastErr = err.Error()
			continue
		}
		reports = append(reports, report)
	}

	s.runMutex.Lock()
	s.running = false
	s.lastCompletedAt = s.now()
	s.lastReports = reports
	s.lastErrorMessage = lastErr
	s.runMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"payment_trigger": trigger,
		"duration":        s.lastCompletedAt.Sub(s.lastStartedAt).String(),
	}).Info("Ciclo de lembretes de pagamento concluído")
}

// TriggerManualSync inicia manualmente um ciclo de lembretes
func (s *PaymentRemindersService) TriggerManualSync() {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.Info("Envio de lembretes já em andamento, ignorando solicitação manual")
		return
	}
	s.runMutex.Unlock()

	logrus.Info("Iniciando envio manual de lembretes de pagamento")
	go s.run(context.Background(), billing.TriggerManual)
}

// GetStatus retorna o status atual do agendador
func (s *PaymentRemindersService) GetStatus() map[string]any {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	return map[string]any{
		"running":           s.running,
		"cron":              s.config.CronSchedule,
		"enabled":           s.config.Enabled,
		"month_lookback":    s.config.MonthLookBack,
		"last_trigger":      s.lastTrigger,
		"last_started_at":   s.lastStartedAt,
		"last_completed_at": s.lastCompletedAt,
		"last_reports":      s.lastReports,
		"last_error":        s.lastErrorMessage,
	}
}
