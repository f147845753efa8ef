package telegramclient

import (
	"context"
	"net/http"
	"strings"
	"time"

	telegramdomain "github.com/milkroute/dairy-ledger-api/infrastructure/integrator/telegram/domain"
	"github.com/milkroute/dairy-ledger-api/internal/config"
)

const defaultTimeout = 10 * time.Second

type Client interface {
	SendMessage(ctx context.Context, request telegramdomain.SendMessageRequest) error
}

type TelegramClient struct {
	httpClient *http.Client
	baseURL    string
	botToken   string
}

func NewClient(cfg *config.Config) Client {
	timeout := cfg.Telegram.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &TelegramClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:  strings.TrimRight(cfg.Telegram.BaseURL, "/"),
		botToken: cfg.Telegram.BotToken,
	}
}
