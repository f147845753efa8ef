package telegramclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	telegramdomain "github.com/milkroute/dairy-ledger-api/infrastructure/integrator/telegram/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// limite de leitura do corpo da resposta
const maxResponseBody = 4 << 10

func (c *TelegramClient) SendMessage(ctx context.Context, request telegramdomain.SendMessageRequest) error {
	body, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("erro ao serializar a mensagem: %w", err)
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.botToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// A URL contém o token do bot e não deve aparecer em logs
		return fmt.Errorf("erro ao executar a requisição: %w", redactURL(err))
	}
	defer resp.Body.Close()

	var apiResponse telegramdomain.APIResponse
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return fmt.Errorf("erro ao ler a resposta: %w", err)
	}
	_ = json.Unmarshal(raw, &apiResponse)

	if resp.StatusCode != http.StatusOK || !apiResponse.OK {
		apiErr := &telegramdomain.APIError{
			StatusCode:  resp.StatusCode,
			Description: apiResponse.Description,
		}
		if apiResponse.ErrorCode != 0 {
			apiErr.StatusCode = apiResponse.ErrorCode
		}
		if apiResponse.Parameters != nil {
			apiErr.RetryAfter = apiResponse.Parameters.RetryAfter
		}
		if apiErr.Description == "" {
			apiErr.Description = http.StatusText(apiErr.StatusCode)
		}
		return apiErr
	}

	return nil
}
