package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveNotification("payment-reminder", ResultSent, 20*time.Millisecond)
	m.ObserveNotification("payment-reminder", ResultFailed, time.Second)
	m.ObserveNotification("registration", ResultSkipped, 0)
	m.IncDelivery("delivered")
	m.IncDelivery("delivered")
	m.IncPayment("partial")
	m.IncReminderRun("cron")
	m.AddReminders(3, 1)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.notifications.WithLabelValues("payment-reminder", ResultSent)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.notifications.WithLabelValues("registration", ResultSkipped)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.deliveries.WithLabelValues("delivered")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.payments.WithLabelValues("partial")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reminderRuns.WithLabelValues("cron")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.reminderSends.WithLabelValues(ResultSent)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reminderSends.WithLabelValues(ResultFailed)))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveNotification("registration", ResultSent, time.Millisecond)
		m.IncDelivery("skipped")
		m.IncPayment("paid")
		m.IncReminderRun("manual")
		m.AddReminders(1, 0)
	})
}
