package telegram

import (
	"context"
	"errors"
	"testing"

	"github.com/milkroute/dairy-ledger-api/infrastructure/integrator/telegram/domain"
	"github.com/milkroute/dairy-ledger-api/infrastructure/integrator/telegram/mocks"
	"github.com/milkroute/dairy-ledger-api/internal/config"
	ledgerdomain "github.com/milkroute/dairy-ledger-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestTelegramService_Notify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(&config.Config{Telegram: config.Telegram{BusinessName: "Dairy"}}, mockClient)

	payload := ledgerdomain.PaymentCompletedPayload{CustomerName: "Ramesh"}

	mockClient.EXPECT().
		SendMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.SendMessageRequest) error {
			assert.Equal(t, "5861", req.ChatID)
			assert.Equal(t, domain.ParseModeHTML, req.ParseMode)
			assert.Contains(t, req.Text, "Ramesh")
			return nil
		})

	assert.NoError(t, service.Notify(context.Background(), "5861", ledgerdomain.NotificationPaymentCompleted, payload))

	sendErr := &domain.APIError{StatusCode: 403, Description: "Forbidden: bot was blocked by the user"}
	mockClient.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Return(sendErr)

	err := service.Notify(context.Background(), "5861", ledgerdomain.NotificationPaymentCompleted, payload)
	assert.True(t, errors.Is(err, sendErr))

	// Payload inválido falha antes de chamar a API
	err = service.Notify(context.Background(), "5861", ledgerdomain.NotificationPaymentCompleted, 42)
	assert.Error(t, err)
}
