package notifying

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/milkroute/dairy-ledger-api/internal/config"
	"github.com/milkroute/dairy-ledger-api/internal/domain"
	"github.com/milkroute/dairy-ledger-api/internal/usecases/notifying/mocks"
	"github.com/milkroute/dairy-ledger-api/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type permanentErr struct{ msg string }

func (e permanentErr) Error() string   { return e.msg }
func (e permanentErr) Permanent() bool { return true }

type rateLimitedErr struct{ wait time.Duration }

func (e rateLimitedErr) Error() string                     { return "429 too many requests" }
func (e rateLimitedErr) RetryAfterDuration() time.Duration { return e.wait }

func testConfig(enabled bool, admin string) *config.Config {
	return &config.Config{
		Telegram: config.Telegram{AdminChatID: admin},
		Notification: config.Notification{
			Enabled:        enabled,
			AttemptTimeout: 50 * time.Millisecond,
			MaxAttempts:    3,
			RetryInterval:  time.Millisecond,
			MaxRetryAfter:  40 * time.Millisecond,
		},
	}
}

func TestService_Dispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNotifier := mocks.NewMockNotifier(ctrl)

	payload := domain.DeliveryPayload{CustomerName: "Ramesh"}

	tests := []struct {
		name         string
		enabled      bool
		notification domain.Notification
		setup        func()
		validate     func(t *testing.T, outcome *domain.NotificationOutcome)
	}{
		{
			name:         "envio na primeira tentativa",
			enabled:      true,
			notification: domain.Notification{Handle: " 5861 ", Kind: domain.NotificationDeliveryConfirmed, Payload: payload},
			setup: func() {
				mockNotifier.EXPECT().
					Notify(gomock.Any(), "5861", domain.NotificationDeliveryConfirmed, payload).
					Return(nil)
			},
			validate: func(t *testing.T, outcome *domain.NotificationOutcome) {
				assert.True(t, outcome.Sent)
				assert.False(t, outcome.Failed())
				assert.Equal(t, 1, outcome.Attempts)
				assert.Equal(t, "5861", outcome.Handle)
			},
		},
		{
			name:         "erro temporário é repetido",
			enabled:      true,
			notification: domain.Notification{Handle: "5861", Kind: domain.NotificationPaymentRecorded},
			setup: func() {
				gomock.InOrder(
					mockNotifier.EXPECT().Notify(gomock.Any(), "5861", domain.NotificationPaymentRecorded, nil).Return(errors.New("502 bad gateway")),
					mockNotifier.EXPECT().Notify(gomock.Any(), "5861", domain.NotificationPaymentRecorded, nil).Return(nil),
				)
			},
			validate: func(t *testing.T, outcome *domain.NotificationOutcome) {
				assert.True(t, outcome.Sent)
				assert.Equal(t, 2, outcome.Attempts)
			},
		},
		{
			name:         "erro permanente não é repetido",
			enabled:      true,
			notification: domain.Notification{Handle: "5861", Kind: domain.NotificationPaymentReminder},
			setup: func() {
				mockNotifier.EXPECT().
					Notify(gomock.Any(), "5861", domain.NotificationPaymentReminder, nil).
					Return(permanentErr{msg: "chat not found"}).
					Times(1)
			},
			validate: func(t *testing.T, outcome *domain.NotificationOutcome) {
				assert.True(t, outcome.Failed())
				assert.Equal(t, 1, outcome.Attempts)
				assert.Equal(t, "chat not found", outcome.Error)
			},
		},
		{
			name:         "tentativas esgotadas",
			enabled:      true,
			notification: domain.Notification{Handle: "5861", Kind: domain.NotificationRegistration},
			setup: func() {
				mockNotifier.EXPECT().
					Notify(gomock.Any(), "5861", domain.NotificationRegistration, nil).
					Return(errors.New("timeout")).
					Times(3)
			},
			validate: func(t *testing.T, outcome *domain.NotificationOutcome) {
				assert.True(t, outcome.Failed())
				assert.Equal(t, 3, outcome.Attempts)
			},
		},
		{
			name:         "tentativa travada respeita o timeout",
			enabled:      true,
			notification: domain.Notification{Handle: "5861", Kind: domain.NotificationPaymentCompleted},
			setup: func() {
				mockNotifier.EXPECT().
					Notify(gomock.Any(), "5861", domain.NotificationPaymentCompleted, nil).
					DoAndReturn(func(ctx context.Context, _ string, _ domain.NotificationKind, _ any) error {
						<-ctx.Done()
						return ctx.Err()
					}).
					Times(3)
			},
			validate: func(t *testing.T, outcome *domain.NotificationOutcome) {
				assert.True(t, outcome.Failed())
				assert.Contains(t, outcome.Error, "deadline exceeded")
			},
		},
		{
			name:         "cliente sem identificador é ignorado",
			enabled:      true,
			notification: domain.Notification{Handle: "  ", Kind: domain.NotificationRegistration},
			setup:        func() {},
			validate: func(t *testing.T, outcome *domain.NotificationOutcome) {
				assert.True(t, outcome.Skipped)
				assert.False(t, outcome.Sent)
				assert.False(t, outcome.Failed())
			},
		},
		{
			name:         "notificações desativadas",
			enabled:      false,
			notification: domain.Notification{Handle: "5861", Kind: domain.NotificationRegistration},
			setup:        func() {},
			validate: func(t *testing.T, outcome *domain.NotificationOutcome) {
				assert.True(t, outcome.Skipped)
				assert.Equal(t, 0, outcome.Attempts)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			service := NewService(mockNotifier, testConfig(tt.enabled, ""), metrics.New(prometheus.NewRegistry()))
			outcome := service.Dispatch(context.Background(), tt.notification)

			assert.Equal(t, tt.notification.Kind, outcome.Kind)
			tt.validate(t, outcome)
		})
	}
}

func TestService_Dispatch_RetryAfter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNotifier := mocks.NewMockNotifier(ctrl)

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, outcome *domain.NotificationOutcome, elapsed time.Duration)
	}{
		{
			name: "espera pedida pelo canal antes da nova tentativa",
			setup: func() {
				gomock.InOrder(
					mockNotifier.EXPECT().Notify(gomock.Any(), "5861", domain.NotificationPaymentRecorded, nil).Return(rateLimitedErr{wait: 25 * time.Millisecond}),
					mockNotifier.EXPECT().Notify(gomock.Any(), "5861", domain.NotificationPaymentRecorded, nil).Return(nil),
				)
			},
			validate: func(t *testing.T, outcome *domain.NotificationOutcome, elapsed time.Duration) {
				assert.True(t, outcome.Sent)
				assert.Equal(t, 2, outcome.Attempts)
				assert.GreaterOrEqual(t, elapsed, 25*time.Millisecond)
			},
		},
		{
			name: "espera longa é limitada pela configuração",
			setup: func() {
				gomock.InOrder(
					mockNotifier.EXPECT().Notify(gomock.Any(), "5861", domain.NotificationPaymentRecorded, nil).Return(rateLimitedErr{wait: time.Hour}),
					mockNotifier.EXPECT().Notify(gomock.Any(), "5861", domain.NotificationPaymentRecorded, nil).Return(nil),
				)
			},
			validate: func(t *testing.T, outcome *domain.NotificationOutcome, elapsed time.Duration) {
				assert.True(t, outcome.Sent)
				assert.GreaterOrEqual(t, elapsed, 40*time.Millisecond)
				assert.Less(t, elapsed, 5*time.Second)
			},
		},
		{
			name: "tentativas esgotadas mantêm o erro do canal",
			setup: func() {
				mockNotifier.EXPECT().
					Notify(gomock.Any(), "5861", domain.NotificationPaymentRecorded, nil).
					Return(rateLimitedErr{wait: time.Millisecond}).
					Times(3)
			},
			validate: func(t *testing.T, outcome *domain.NotificationOutcome, _ time.Duration) {
				assert.True(t, outcome.Failed())
				assert.Equal(t, 3, outcome.Attempts)
				assert.Equal(t, "429 too many requests", outcome.Error)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			service := NewService(mockNotifier, testConfig(true, ""), nil)

			start := time.Now()
			outcome := service.Dispatch(context.Background(), domain.Notification{Handle: "5861", Kind: domain.NotificationPaymentRecorded})

			tt.validate(t, outcome, time.Since(start))
		})
	}
}

func TestService_DispatchAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNotifier := mocks.NewMockNotifier(ctrl)
	payload := domain.AdminDeliverySummaryPayload{CustomerNotified: true}

	mockNotifier.EXPECT().
		Notify(gomock.Any(), "admin-1", domain.NotificationAdminDeliverySummary, payload).
		Return(nil)

	service := NewService(mockNotifier, testConfig(true, "admin-1"), nil)
	outcome := service.DispatchAdmin(context.Background(), domain.NotificationAdminDeliverySummary, payload)
	assert.True(t, outcome.Sent)

	withoutAdmin := NewService(mockNotifier, testConfig(true, ""), nil)
	outcome = withoutAdmin.DispatchAdmin(context.Background(), domain.NotificationAdminDeliverySummary, payload)
	assert.True(t, outcome.Skipped)
}

func TestNewService_Defaults(t *testing.T) {
	service := NewService(nil, &config.Config{}, nil)

	assert.Equal(t, defaultAttemptTimeout, service.attemptTimeout)
	assert.Equal(t, uint(defaultMaxAttempts), service.maxAttempts)
	assert.Equal(t, defaultRetryInterval, service.retryInterval)
	assert.Equal(t, defaultMaxRetryAfter, service.maxRetryAfter)
	assert.False(t, service.enabled)
}
