package notifying

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/milkroute/dairy-ledger-api/internal/config"
	"github.com/milkroute/dairy-ledger-api/internal/domain"
	"github.com/milkroute/dairy-ledger-api/pkg/metrics"
	"github.com/sirupsen/logrus"
)

const (
	defaultAttemptTimeout = 10 * time.Second
	defaultMaxAttempts    = 3
	defaultRetryInterval  = 500 * time.Millisecond
	defaultMaxRetryAfter  = 30 * time.Second
)

// Notifier entrega uma mensagem já decidida ao canal externo
type Notifier interface {
	Notify(ctx context.Context, handle string, kind domain.NotificationKind, payload any) error
}

// Dispatcher decide se e como tentar a entrega; nunca devolve erro para quem escreveu o dado
type Dispatcher interface {
	Dispatch(ctx context.Context, notification domain.Notification) *domain.NotificationOutcome
	DispatchAdmin(ctx context.Context, kind domain.NotificationKind, payload any) *domain.NotificationOutcome
}

type Service struct {
	notifier       Notifier
	metrics        *metrics.Metrics
	enabled        bool
	adminHandle    string
	attemptTimeout time.Duration
	maxAttempts    uint
	retryInterval  time.Duration
	maxRetryAfter  time.Duration
}

func NewService(notifier Notifier, cfg *config.Config, m *metrics.Metrics) *Service {
	s := &Service{
		notifier:       notifier,
		metrics:        m,
		enabled:        cfg.Notification.Enabled,
		adminHandle:    strings.TrimSpace(cfg.Telegram.AdminChatID),
		attemptTimeout: cfg.Notification.AttemptTimeout,
		maxAttempts:    cfg.Notification.MaxAttempts,
		retryInterval:  cfg.Notification.RetryInterval,
		maxRetryAfter:  cfg.Notification.MaxRetryAfter,
	}

	if s.attemptTimeout <= 0 {
		s.attemptTimeout = defaultAttemptTimeout
	}
	if s.maxAttempts == 0 {
		s.maxAttempts = defaultMaxAttempts
	}
	if s.retryInterval <= 0 {
		s.retryInterval = defaultRetryInterval
	}
	if s.maxRetryAfter <= 0 {
		s.maxRetryAfter = defaultMaxRetryAfter
	}

	return s
}

func (s *Service) Dispatch(ctx context.Context, notification domain.Notification) *domain.NotificationOutcome {
	handle := strings.TrimSpace(notification.Handle)
	outcome := &domain.NotificationOutcome{
		Kind:   notification.Kind,
		Handle: handle,
	}

	logger := logrus.WithFields(logrus.Fields{
		"notification_kind":   notification.Kind,
		"notification_handle": handle,
	})

	if !s.enabled {
		outcome.Skipped = true
		outcome.Error = "notificações desativadas"
		s.metrics.ObserveNotification(string(notification.Kind), metrics.ResultSkipped, 0)
		logger.Debug("Notificações desativadas, envio ignorado")
		return outcome
	}

	if handle == "" {
		outcome.Skipped = true
		outcome.Error = "destinatário sem identificador de mensagens"
		s.metrics.ObserveNotification(string(notification.Kind), metrics.ResultSkipped, 0)
		logger.Debug("Destinatário sem identificador de mensagens, envio ignorado")
		return outcome
	}

	startTime := time.Now()

	var lastErr error
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		outcome.Attempts++

		attemptCtx, cancel := context.WithTimeout(ctx, s.attemptTimeout)
		defer cancel()

		if err := s.notifier.Notify(attemptCtx, handle, notification.Kind, notification.Payload); err != nil {
			lastErr = err
			if isPermanent(err) {
				return struct{}{}, backoff.Permanent(err)
			}
			if wait := s.retryAfter(err); wait > 0 {
				logger.WithError(err).WithFields(logrus.Fields{
					"notification_attempt":     outcome.Attempts,
					"notification_retry_after": wait.String(),
				}).Warn("Canal limitou o envio, aguardando antes da nova tentativa")
				return struct{}{}, &backoff.RetryAfterError{Duration: wait}
			}
			logger.WithError(err).WithField("notification_attempt", outcome.Attempts).Warn("Falha ao enviar notificação, nova tentativa")
			return struct{}{}, err
		}

		return struct{}{}, nil
	},
		backoff.WithBackOff(s.newBackOff()),
		backoff.WithMaxTries(s.maxAttempts),
	)

	elapsed := time.Since(startTime)

	var rateLimited *backoff.RetryAfterError
	if errors.As(err, &rateLimited) && lastErr != nil {
		err = lastErr
	}

	if err != nil {
		outcome.Error = err.Error()
		s.metrics.ObserveNotification(string(notification.Kind), metrics.ResultFailed, elapsed)
		logger.WithError(err).WithField("notification_attempts", outcome.Attempts).Error("Notificação não entregue")
		return outcome
	}

	outcome.Sent = true
	s.metrics.ObserveNotification(string(notification.Kind), metrics.ResultSent, elapsed)
	logger.WithField("notification_attempts", outcome.Attempts).Info("Notificação enviada")

	return outcome
}

// DispatchAdmin envia para o identificador de administração configurado
func (s *Service) DispatchAdmin(ctx context.Context, kind domain.NotificationKind, payload any) *domain.NotificationOutcome {
	return s.Dispatch(ctx, domain.Notification{
		Handle:  s.adminHandle,
		Kind:    kind,
		Payload: payload,
	})
}

func (s *Service) newBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.retryInterval
	b.MaxInterval = 10 * s.retryInterval
	return b
}

// retryAfter devolve a espera pedida pelo canal, limitada a maxRetryAfter
func (s *Service) retryAfter(err error) time.Duration {
	var hint interface{ RetryAfterDuration() time.Duration }
	if !errors.As(err, &hint) {
		return 0
	}
	wait := hint.RetryAfterDuration()
	if wait > s.maxRetryAfter {
		return s.maxRetryAfter
	}
	return wait
}

// isPermanent identifica erros que não mudam com novas tentativas
func isPermanent(err error) bool {
	var permanent interface{ Permanent() bool }
	return errors.As(err, &permanent) && permanent.Permanent()
}
