package customer

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/milkroute/dairy-ledger-api/infrastructure/repository"
	"github.com/milkroute/dairy-ledger-api/infrastructure/repository/mocks"
	"github.com/milkroute/dairy-ledger-api/internal/domain"
	"github.com/milkroute/dairy-ledger-api/pkg/apiErrors"
	notifyingmocks "github.com/milkroute/dairy-ledger-api/internal/usecases/notifying/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)

type testDeps struct {
	customers  *mocks.MockCustomerRepository
	deliveries *mocks.MockDeliveryRepository
	payments   *mocks.MockPaymentRepository
	dispatcher *notifyingmocks.MockDispatcher
	service    *Service
}

func newTestDeps(t *testing.T) *testDeps {
	ctrl := gomock.NewController(t)

	d := &testDeps{
		customers:  mocks.NewMockCustomerRepository(ctrl),
		deliveries: mocks.NewMockDeliveryRepository(ctrl),
		payments:   mocks.NewMockPaymentRepository(ctrl),
		dispatcher: notifyingmocks.NewMockDispatcher(ctrl),
	}
	d.service = NewService(d.customers, d.deliveries, d.payments, d.dispatcher)
	d.service.now = func() time.Time { return fixedNow }

	return d
}

func strPtr(s string) *string { return &s }

func existingCustomer() *domain.Customer {
	return &domain.Customer{
		ID:             "cus_1",
		Name:           "Ramesh",
		Phone:          "9000000001",
		DailyQuantity:  decimal.NewFromInt(2),
		Rate:           50,
		Status:         domain.CustomerStatusActive,
		TelegramChatID: strPtr("5861"),
	}
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name     string
		request  *domain.CreateCustomerRequest
		setup    func(d *testDeps)
		validate func(t *testing.T, result *domain.CustomerResult, err error)
	}{
		{
			name: "cria cliente ativo e envia boas-vindas",
			request: &domain.CreateCustomerRequest{
				Name:           "  Ramesh ",
				Phone:          "9000000001",
				DailyQuantity:  decimal.RequireFromString("1.5"),
				Rate:           50,
				TelegramChatID: strPtr(" 5861 "),
			},
			setup: func(d *testDeps) {
				d.customers.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *domain.Customer) error {
						assert.NotEmpty(t, c.ID)
						assert.Equal(t, "Ramesh", c.Name)
						assert.Equal(t, domain.CustomerStatusActive, c.Status)
						assert.Equal(t, fixedNow, c.CreatedAt)
						return nil
					})
				d.dispatcher.EXPECT().
					Dispatch(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, n domain.Notification) *domain.NotificationOutcome {
						assert.Equal(t, domain.NotificationRegistration, n.Kind)
						assert.Equal(t, "5861", n.Handle)
						return &domain.NotificationOutcome{Kind: n.Kind, Sent: true}
					})
			},
			validate: func(t *testing.T, result *domain.CustomerResult, err error) {
				require.NoError(t, err)
				assert.True(t, result.Notification.Sent)
			},
		},
		{
			name: "falha no aviso não desfaz o cadastro",
			request: &domain.CreateCustomerRequest{
				Name:          "Sita",
				Phone:         "9000000002",
				DailyQuantity: decimal.NewFromInt(1),
				Rate:          60,
			},
			setup: func(d *testDeps) {
				d.customers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				d.dispatcher.EXPECT().
					Dispatch(gomock.Any(), gomock.Any()).
					Return(&domain.NotificationOutcome{Kind: domain.NotificationRegistration, Error: "timeout"})
			},
			validate: func(t *testing.T, result *domain.CustomerResult, err error) {
				require.NoError(t, err)
				assert.True(t, result.Notification.Failed())
				assert.Equal(t, "Sita", result.Customer.Name)
			},
		},
		{
			name: "quantidade zero é rejeitada antes de gravar",
			request: &domain.CreateCustomerRequest{
				Name:          "Ramesh",
				Phone:         "9000000001",
				DailyQuantity: decimal.Zero,
				Rate:          50,
			},
			setup: func(d *testDeps) {},
			validate: func(t *testing.T, result *domain.CustomerResult, err error) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, domain.ErrValidation)
				assert.Contains(t, err.Error(), "daily_quantity")
			},
		},
		{
			name: "quantidade com mais de 3 casas decimais é rejeitada antes de gravar",
			request: &domain.CreateCustomerRequest{
				Name:          "Ramesh",
				Phone:         "9000000001",
				DailyQuantity: decimal.RequireFromString("0.0004"),
				Rate:          50,
			},
			setup: func(d *testDeps) {},
			validate: func(t *testing.T, result *domain.CustomerResult, err error) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, domain.ErrValidation)
				assert.Contains(t, err.Error(), "daily_quantity aceita no máximo 3 casas decimais")
			},
		},
		{
			name: "campos obrigatórios e tarifa",
			request: &domain.CreateCustomerRequest{
				Name:          "   ",
				DailyQuantity: decimal.NewFromInt(1),
				Rate:          0,
				Status:        "paused",
			},
			setup: func(d *testDeps) {},
			validate: func(t *testing.T, result *domain.CustomerResult, err error) {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrValidation)
				for _, field := range []string{"name", "phone", "rate", "status"} {
					assert.Contains(t, err.Error(), field)
				}
			},
		},
		{
			name: "erro do banco",
			request: &domain.CreateCustomerRequest{
				Name:          "Ramesh",
				Phone:         "9000000001",
				DailyQuantity: decimal.NewFromInt(1),
				Rate:          50,
			},
			setup: func(d *testDeps) {
				d.customers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("duplicate key"))
			},
			validate: func(t *testing.T, result *domain.CustomerResult, err error) {
				assert.ErrorIs(t, err, domain.ErrDatabaseOperation)
				var ledgerErr *domain.LedgerError
				require.True(t, errors.As(err, &ledgerErr))
				assert.Equal(t, "Ramesh", ledgerErr.EntityName)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeps(t)
			tt.setup(d)
			result, err := d.service.Create(context.Background(), tt.request)
			tt.validate(t, result, err)
		})
	}
}

func TestService_Update(t *testing.T) {
	newRate := int64(55)
	zeroQty := decimal.Zero
	fineQty := decimal.RequireFromString("1.2505")

	tests := []struct {
		name     string
		request  *domain.UpdateCustomerRequest
		setup    func(d *testDeps)
		validate func(t *testing.T, result *domain.CustomerResult, err error)
	}{
		{
			name:    "altera só os campos informados",
			request: &domain.UpdateCustomerRequest{ID: "cus_1", Rate: &newRate, Address: strPtr("Rua 1")},
			setup: func(d *testDeps) {
				d.customers.EXPECT().GetByID(gomock.Any(), "cus_1").Return(existingCustomer(), nil)
				d.customers.EXPECT().
					Update(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *domain.Customer) error {
						assert.Equal(t, int64(55), c.Rate)
						assert.Equal(t, "Ramesh", c.Name)
						assert.Equal(t, "Rua 1", *c.Address)
						return nil
					})
				d.dispatcher.EXPECT().
					Dispatch(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, n domain.Notification) *domain.NotificationOutcome {
						assert.Equal(t, domain.NotificationProfileUpdated, n.Kind)
						payload := n.Payload.(domain.CustomerProfilePayload)
						assert.Equal(t, int64(55), payload.Rate)
						return &domain.NotificationOutcome{Kind: n.Kind, Sent: true}
					})
			},
			validate: func(t *testing.T, result *domain.CustomerResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(55), result.Customer.Rate)
			},
		},
		{
			name:    "identificador vazio remove o chat",
			request: &domain.UpdateCustomerRequest{ID: "cus_1", TelegramChatID: strPtr(" ")},
			setup: func(d *testDeps) {
				d.customers.EXPECT().GetByID(gomock.Any(), "cus_1").Return(existingCustomer(), nil)
				d.customers.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
				d.dispatcher.EXPECT().
					Dispatch(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, n domain.Notification) *domain.NotificationOutcome {
						assert.Empty(t, n.Handle)
						return &domain.NotificationOutcome{Kind: n.Kind, Skipped: true}
					})
			},
			validate: func(t *testing.T, result *domain.CustomerResult, err error) {
				require.NoError(t, err)
				assert.Nil(t, result.Customer.TelegramChatID)
				assert.False(t, result.Notification.Failed())
			},
		},
		{
			name:    "quantidade zero é rejeitada",
			request: &domain.UpdateCustomerRequest{ID: "cus_1", DailyQuantity: &zeroQty},
			setup: func(d *testDeps) {
				d.customers.EXPECT().GetByID(gomock.Any(), "cus_1").Return(existingCustomer(), nil)
			},
			validate: func(t *testing.T, result *domain.CustomerResult, err error) {
				assert.ErrorIs(t, err, domain.ErrValidation)
			},
		},
		{
			name:    "quantidade com mais de 3 casas decimais é rejeitada",
			request: &domain.UpdateCustomerRequest{ID: "cus_1", DailyQuantity: &fineQty},
			setup: func(d *testDeps) {
				d.customers.EXPECT().GetByID(gomock.Any(), "cus_1").Return(existingCustomer(), nil)
			},
			validate: func(t *testing.T, result *domain.CustomerResult, err error) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, domain.ErrValidation)
				assert.Contains(t, err.Error(), "3 casas decimais")
			},
		},
		{
			name:    "cliente inexistente",
			request: &domain.UpdateCustomerRequest{ID: "cus_x", Rate: &newRate},
			setup: func(d *testDeps) {
				d.customers.EXPECT().GetByID(gomock.Any(), "cus_x").Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.CustomerResult, err error) {
				assert.ErrorIs(t, err, domain.ErrNotFound)
			},
		},
		{
			name:    "cliente removido durante a atualização",
			request: &domain.UpdateCustomerRequest{ID: "cus_1", Rate: &newRate},
			setup: func(d *testDeps) {
				d.customers.EXPECT().GetByID(gomock.Any(), "cus_1").Return(existingCustomer(), nil)
				d.customers.EXPECT().Update(gomock.Any(), gomock.Any()).Return(sql.ErrNoRows)
			},
			validate: func(t *testing.T, result *domain.CustomerResult, err error) {
				assert.ErrorIs(t, err, domain.ErrNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeps(t)
			tt.setup(d)
			result, err := d.service.Update(context.Background(), tt.request)
			tt.validate(t, result, err)
		})
	}
}

func TestService_List(t *testing.T) {
	d := newTestDeps(t)

	filter := domain.CustomerFilter{Search: "ram", Status: domain.CustomerStatusActive}
	d.customers.EXPECT().List(gomock.Any(), filter).Return([]*domain.Customer{existingCustomer()}, nil)

	customers, err := d.service.List(context.Background(), domain.CustomerFilter{Search: " ram ", Status: domain.CustomerStatusActive})
	require.NoError(t, err)
	assert.Len(t, customers, 1)

	_, err = d.service.List(context.Background(), domain.CustomerFilter{Status: "archived"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		confirmed bool
		setup     func(d *testDeps)
		validate  func(t *testing.T, result *domain.DeleteCustomerResult, err error)
	}{
		{
			name:      "sem confirmação nada é apagado",
			confirmed: false,
			setup: func(d *testDeps) {
				d.customers.EXPECT().GetByID(gomock.Any(), "cus_1").Return(existingCustomer(), nil)
			},
			validate: func(t *testing.T, result *domain.DeleteCustomerResult, err error) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, domain.ErrConfirmationRequired)
			},
		},
		{
			name:      "apaga entregas e pagamentos antes do cliente",
			confirmed: true,
			setup: func(d *testDeps) {
				d.customers.EXPECT().GetByID(gomock.Any(), "cus_1").Return(existingCustomer(), nil)
				deliveries := d.deliveries.EXPECT().DeleteByCustomer(gomock.Any(), "cus_1").Return(int64(10), nil)
				payments := d.payments.EXPECT().DeleteByCustomer(gomock.Any(), "cus_1").Return(int64(2), nil)
				d.customers.EXPECT().Delete(gomock.Any(), "cus_1").Return(int64(1), nil).After(deliveries).After(payments)
			},
			validate: func(t *testing.T, result *domain.DeleteCustomerResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(10), result.DeliveriesDeleted)
				assert.Equal(t, int64(2), result.PaymentsDeleted)
				assert.Equal(t, "Ramesh", result.CustomerName)
			},
		},
		{
			name:      "falha nos pagamentos mantém o cliente",
			confirmed: true,
			setup: func(d *testDeps) {
				d.customers.EXPECT().GetByID(gomock.Any(), "cus_1").Return(existingCustomer(), nil)
				d.deliveries.EXPECT().DeleteByCustomer(gomock.Any(), "cus_1").Return(int64(10), nil)
				d.payments.EXPECT().DeleteByCustomer(gomock.Any(), "cus_1").Return(int64(0), errors.New("lock timeout"))
				d.customers.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)
			},
			validate: func(t *testing.T, result *domain.DeleteCustomerResult, err error) {
				assert.ErrorIs(t, err, domain.ErrCascadeIncomplete)

				var ledgerErr *domain.LedgerError
				require.True(t, errors.As(err, &ledgerErr))
				assert.Equal(t, "cus_1", ledgerErr.EntityID)
				assert.Equal(t, "Ramesh", ledgerErr.EntityName)
				assert.Contains(t, ledgerErr.Details, "pagamentos")
				assert.NotContains(t, ledgerErr.Details, "entregas")

				assert.Equal(t, int64(10), result.DeliveriesDeleted)
			},
		},
		{
			name:      "falha nas duas cascatas",
			confirmed: true,
			setup: func(d *testDeps) {
				d.customers.EXPECT().GetByID(gomock.Any(), "cus_1").Return(existingCustomer(), nil)
				d.deliveries.EXPECT().DeleteByCustomer(gomock.Any(), "cus_1").Return(int64(0), errors.New("falha a"))
				d.payments.EXPECT().DeleteByCustomer(gomock.Any(), "cus_1").Return(int64(0), errors.New("falha b"))
			},
			validate: func(t *testing.T, result *domain.DeleteCustomerResult, err error) {
				assert.ErrorIs(t, err, domain.ErrCascadeIncomplete)
				assert.Contains(t, err.Error(), "entregas e pagamentos")
				assert.Contains(t, err.Error(), "falha a")
				assert.Contains(t, err.Error(), "falha b")
			},
		},
		{
			name:      "entrega gravada durante a exclusão mantém o cliente",
			confirmed: true,
			setup: func(d *testDeps) {
				d.customers.EXPECT().GetByID(gomock.Any(), "cus_1").Return(existingCustomer(), nil)
				d.deliveries.EXPECT().DeleteByCustomer(gomock.Any(), "cus_1").Return(int64(10), nil)
				d.payments.EXPECT().DeleteByCustomer(gomock.Any(), "cus_1").Return(int64(2), nil)
				d.customers.EXPECT().
					Delete(gomock.Any(), "cus_1").
					Return(int64(0), errors.Join(repository.ErrCustomerReferenced, errors.New("deliveries_customer_id_fkey")))
			},
			validate: func(t *testing.T, result *domain.DeleteCustomerResult, err error) {
				assert.ErrorIs(t, err, domain.ErrCascadeIncomplete)
				assert.ErrorIs(t, err, repository.ErrCustomerReferenced)

				var ledgerErr *domain.LedgerError
				require.True(t, errors.As(err, &ledgerErr))
				assert.Equal(t, apiErrors.ErrCascadeIncomplete, ledgerErr.Code)
				assert.Contains(t, ledgerErr.Details, "não foi removido")

				assert.Equal(t, int64(10), result.DeliveriesDeleted)
			},
		},
		{
			name:      "cliente inexistente",
			confirmed: true,
			setup: func(d *testDeps) {
				d.customers.EXPECT().GetByID(gomock.Any(), "cus_1").Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.DeleteCustomerResult, err error) {
				assert.ErrorIs(t, err, domain.ErrNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeps(t)
			tt.setup(d)
			result, err := d.service.Delete(context.Background(), "cus_1", tt.confirmed)
			tt.validate(t, result, err)
		})
	}
}
