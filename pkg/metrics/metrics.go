package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "dairy_ledger"

// Resultados possíveis de uma notificação
const (
	ResultSent    = "sent"
	ResultFailed  = "failed"
	ResultSkipped = "skipped"
)

// Metrics agrupa os contadores de negócio expostos em /metrics
type Metrics struct {
	notifications *prometheus.CounterVec
	notifyLatency *prometheus.HistogramVec
	deliveries    *prometheus.CounterVec
	payments      *prometheus.CounterVec
	reminderRuns  *prometheus.CounterVec
	reminderSends *prometheus.CounterVec
}

// New registra os coletores no registerer informado
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Notificações processadas por tipo e resultado.",
		}, []string{"kind", "result"}),
		notifyLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "notification_duration_seconds",
			Help:      "Duração do envio de notificações, incluindo novas tentativas.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
		deliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deliveries_recorded_total",
			Help:      "Entregas registradas por status.",
		}, []string{"status"}),
		payments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payments_recorded_total",
			Help:      "Pagamentos registrados pelo status resultante.",
		}, []string{"status"}),
		reminderRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminder_runs_total",
			Help:      "Execuções do envio de lembretes de pagamento.",
		}, []string{"trigger"}),
		reminderSends: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminders_total",
			Help:      "Lembretes de pagamento por resultado.",
		}, []string{"result"}),
	}

	if reg != nil {
		reg.MustRegister(
			m.notifications,
			m.notifyLatency,
			m.deliveries,
			m.payments,
			m.reminderRuns,
			m.reminderSends,
		)
	}

	return m
}

func (m *Metrics) ObserveNotification(kind, result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.notifications.WithLabelValues(kind, result).Inc()
	if result != ResultSkipped {
		m.notifyLatency.WithLabelValues(kind).Observe(elapsed.Seconds())
	}
}

func (m *Metrics) IncDelivery(status string) {
	if m == nil {
		return
	}
	m.deliveries.WithLabelValues(status).Inc()
}

func (m *Metrics) IncPayment(status string) {
	if m == nil {
		return
	}
	m.payments.WithLabelValues(status).Inc()
}

func (m *Metrics) IncReminderRun(trigger string) {
	if m == nil {
		return
	}
	m.reminderRuns.WithLabelValues(trigger).Inc()
}

func (m *Metrics) AddReminders(sent, failed int) {
	if m == nil {
		return
	}
	m.reminderSends.WithLabelValues(ResultSent).Add(float64(sent))
	m.reminderSends.WithLabelValues(ResultFailed).Add(float64(failed))
}
