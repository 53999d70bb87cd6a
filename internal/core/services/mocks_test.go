package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/payroll_app/internal/core/domain"
	"github.com/SscSPs/payroll_app/internal/core/ports/clients"
	"github.com/stretchr/testify/mock"
)

// MockEmployeeRepository is a mock type for the EmployeeRepositoryFacade interface
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID string) error {
	args := m.Called(ctx, employeeID)
	return args.Error(0)
}

func (m *MockEmployeeRepository) ReplaceRoster(ctx context.Context, employees []domain.Employee) error {
	args := m.Called(ctx, employees)
	return args.Error(0)
}

func (m *MockEmployeeRepository) SaveLineItem(ctx context.Context, item domain.LineItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockEmployeeRepository) UpdateLineItem(ctx context.Context, item domain.LineItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockEmployeeRepository) DeleteLineItem(ctx context.Context, employeeID, lineItemID string) error {
	args := m.Called(ctx, employeeID, lineItemID)
	return args.Error(0)
}

// MockExchangeRateRepository is a mock type for the ExchangeRateRepositoryFacade interface
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) FindLatestRateSnapshot(ctx context.Context, base domain.Currency) (*domain.RateTable, error) {
	args := m.Called(ctx, base)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateTable), args.Error(1)
}

func (m *MockExchangeRateRepository) SaveRateSnapshot(ctx context.Context, table *domain.RateTable) error {
	args := m.Called(ctx, table)
	return args.Error(0)
}

// MockSettingsRepository is a mock type for the SettingsRepositoryFacade interface
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) FindSettings(ctx context.Context) (*domain.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settings), args.Error(1)
}

func (m *MockSettingsRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// MockRateSource is a mock type for the clients.RateSource interface
type MockRateSource struct {
	mock.Mock
}

func (m *MockRateSource) FetchRates(ctx context.Context, base domain.Currency) (*domain.RateTable, error) {
	args := m.Called(ctx, base)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateTable), args.Error(1)
}

// MockChatClient is a mock type for the clients.ChatClient interface
type MockChatClient struct {
	mock.Mock
}

func (m *MockChatClient) Complete(ctx context.Context, messages []clients.ChatMessage) (*clients.ChatCompletion, error) {
	args := m.Called(ctx, messages)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.ChatCompletion), args.Error(1)
}

// MockExchangeRateService is a mock type for the ExchangeRateSvcFacade interface
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) CurrentRates(ctx context.Context) (domain.Currency, *domain.RateTable) {
	args := m.Called(ctx)
	if args.Get(1) == nil {
		return args.Get(0).(domain.Currency), nil
	}
	return args.Get(0).(domain.Currency), args.Get(1).(*domain.RateTable)
}

func (m *MockExchangeRateService) Convert(ctx context.Context, amount float64, from, to domain.Currency) (float64, *domain.RateTable, error) {
	args := m.Called(ctx, amount, from, to)
	if args.Get(1) == nil {
		return args.Get(0).(float64), nil, args.Error(2)
	}
	return args.Get(0).(float64), args.Get(1).(*domain.RateTable), args.Error(2)
}

func (m *MockExchangeRateService) Refresh(ctx context.Context) (*domain.RateTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateTable), args.Error(1)
}

func (m *MockExchangeRateService) RefreshIfStale(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockExchangeRateService) LoadLatest(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockExchangeRateService) SetBaseCurrency(ctx context.Context, base domain.Currency) error {
	args := m.Called(ctx, base)
	return args.Error(0)
}

func (m *MockExchangeRateService) Run(ctx context.Context, interval time.Duration) {
	m.Called(ctx, interval)
}

// uahTable is a complete table where 1 UAH buys 1/40 USD and 1/43 EUR.
func uahTable(capturedAt time.Time) *domain.RateTable {
	return domain.NewRateTable("snap_test", domain.UAH, "test", capturedAt,
		map[domain.Currency]float64{domain.USD: 1.0 / 40, domain.EUR: 1.0 / 43})
}
