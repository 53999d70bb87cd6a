package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/payroll_app/internal/core/domain"
	portssvc "github.com/SscSPs/payroll_app/internal/core/ports/services"
	"github.com/SscSPs/payroll_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock EmployeeService ---
type MockEmployeeService struct {
	mock.Mock
}

func (m *MockEmployeeService) GetEmployee(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeService) UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeService) DeleteEmployee(ctx context.Context, employeeID string) error {
	return m.Called(ctx, employeeID).Error(0)
}

func (m *MockEmployeeService) AddLineItem(ctx context.Context, employeeID string, req dto.AddLineItemRequest) (*domain.LineItem, error) {
	args := m.Called(ctx, employeeID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LineItem), args.Error(1)
}

func (m *MockEmployeeService) UpdateLineItem(ctx context.Context, employeeID, lineItemID string, req dto.UpdateLineItemRequest) (*domain.LineItem, error) {
	args := m.Called(ctx, employeeID, lineItemID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LineItem), args.Error(1)
}

func (m *MockEmployeeService) RemoveLineItem(ctx context.Context, employeeID, lineItemID string) error {
	return m.Called(ctx, employeeID, lineItemID).Error(0)
}

var _ portssvc.EmployeeSvcFacade = (*MockEmployeeService)(nil)

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) CurrentRates(ctx context.Context) (domain.Currency, *domain.RateTable) {
	args := m.Called(ctx)
	table, _ := args.Get(1).(*domain.RateTable)
	return args.Get(0).(domain.Currency), table
}

func (m *MockExchangeRateService) Convert(ctx context.Context, amount float64, from, to domain.Currency) (float64, *domain.RateTable, error) {
	args := m.Called(ctx, amount, from, to)
	table, _ := args.Get(1).(*domain.RateTable)
	return args.Get(0).(float64), table, args.Error(2)
}

func (m *MockExchangeRateService) Refresh(ctx context.Context) (*domain.RateTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateTable), args.Error(1)
}

func (m *MockExchangeRateService) RefreshIfStale(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockExchangeRateService) LoadLatest(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockExchangeRateService) SetBaseCurrency(ctx context.Context, base domain.Currency) error {
	return m.Called(ctx, base).Error(0)
}

func (m *MockExchangeRateService) Run(ctx context.Context, interval time.Duration) {
	m.Called(ctx, interval)
}

var _ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) EmployeeTotals(ctx context.Context, employeeID string) (*domain.EmployeeReport, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployeeReport), args.Error(1)
}

func (m *MockReportingService) CompanyTotals(ctx context.Context) (*domain.CompanyReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyReport), args.Error(1)
}

var _ portssvc.ReportingSvc = (*MockReportingService)(nil)

// --- Mock SettingsService ---
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) GetSettings(ctx context.Context) (*domain.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settings), args.Error(1)
}

func (m *MockSettingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*domain.Settings, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settings), args.Error(1)
}

var _ portssvc.SettingsSvc = (*MockSettingsService)(nil)

// --- Mock RosterService ---
type MockRosterService struct {
	mock.Mock
}

func (m *MockRosterService) Export(ctx context.Context) (*dto.RosterDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RosterDocument), args.Error(1)
}

func (m *MockRosterService) Import(ctx context.Context, doc dto.RosterDocument) (*dto.ImportRosterResponse, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ImportRosterResponse), args.Error(1)
}

var _ portssvc.RosterSvc = (*MockRosterService)(nil)

// --- Mock ChatService ---
type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) Ask(ctx context.Context, req dto.ChatRequest) (*dto.ChatResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ChatResponse), args.Error(1)
}

var _ portssvc.ChatSvc = (*MockChatService)(nil)
