package telegram

import (
	"context"

	"github.com/milkroute/dairy-ledger-api/infrastructure/integrator/telegram/domain"
	"github.com/milkroute/dairy-ledger-api/infrastructure/integrator/telegram/telegramclient"
	"github.com/milkroute/dairy-ledger-api/internal/config"
	ledgerdomain "github.com/milkroute/dairy-ledger-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// TelegramService implementa o envio das notificações do sistema pelo bot configurado
type TelegramService struct {
	client   telegramclient.Client
	renderer *Renderer
}

func New(cfg *config.Config, client telegramclient.Client) *TelegramService {
	return &TelegramService{
		client:   client,
		renderer: NewRenderer(cfg.Telegram.BusinessName, cfg.Telegram.ContactPhone),
	}
}

func (s *TelegramService) Notify(ctx context.Context, handle string, kind ledgerdomain.NotificationKind, payload any) error {
	text, err := s.renderer.Render(kind, payload)
	if err != nil {
		return err
	}

	err = s.client.SendMessage(ctx, domain.SendMessageRequest{
		ChatID:    handle,
		Text:      text,
		ParseMode: domain.ParseModeHTML,
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"notification_kind":   kind,
		"notification_handle": handle,
	}).Debug("Mensagem entregue ao Telegram")

	return nil
}
