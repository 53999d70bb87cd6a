package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/payroll_app/internal/apperrors"
	"github.com/SscSPs/payroll_app/internal/core/domain"
	portssvc "github.com/SscSPs/payroll_app/internal/core/ports/services"
	"github.com/SscSPs/payroll_app/internal/core/services"
	"github.com/SscSPs/payroll_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SettingsServiceTestSuite struct {
	suite.Suite
	mockRepo  *MockSettingsRepository
	mockRates *MockExchangeRateService
	service   portssvc.SettingsSvc
}

func (suite *SettingsServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSettingsRepository)
	suite.mockRates = new(MockExchangeRateService)
	suite.service = services.NewSettingsService(suite.mockRepo, suite.mockRates, domain.UAH)
}

func (suite *SettingsServiceTestSuite) TestGetSettings_DefaultsWhenMissing() {
	ctx := context.Background()
	suite.mockRepo.On("FindSettings", ctx).Return(nil, apperrors.ErrNotFound).Once()

	settings, err := suite.service.GetSettings(ctx)

	suite.Require().NoError(err)
	suite.Equal(domain.UAH, settings.BaseCurrency)
}

func (suite *SettingsServiceTestSuite) TestGetSettings_InvalidStoredFallsBack() {
	ctx := context.Background()
	suite.mockRepo.On("FindSettings", ctx).Return(&domain.Settings{BaseCurrency: "GBP"}, nil).Once()

	settings, err := suite.service.GetSettings(ctx)

	suite.Require().NoError(err)
	suite.Equal(domain.UAH, settings.BaseCurrency)
}

func (suite *SettingsServiceTestSuite) TestGetSettings_RepositoryError() {
	ctx := context.Background()
	suite.mockRepo.On("FindSettings", ctx).Return(nil, assert.AnError).Once()

	_, err := suite.service.GetSettings(ctx)

	suite.ErrorIs(err, assert.AnError)
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings_ChangesBase() {
	ctx := context.Background()
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.mockRepo.On("FindSettings", ctx).Return(&domain.Settings{
		BaseCurrency: domain.UAH,
		AuditFields:  domain.AuditFields{CreatedAt: created, LastUpdatedAt: created},
	}, nil).Once()
	suite.mockRepo.On("SaveSettings", ctx, mock.MatchedBy(func(s domain.Settings) bool {
		return s.BaseCurrency == domain.EUR && s.CreatedAt.Equal(created)
	})).Return(nil).Once()
	suite.mockRates.On("SetBaseCurrency", ctx, domain.EUR).Return(nil).Once()

	settings, err := suite.service.UpdateSettings(ctx, dto.UpdateSettingsRequest{BaseCurrency: "eur"})

	suite.Require().NoError(err)
	suite.Equal(domain.EUR, settings.BaseCurrency)
	suite.True(settings.LastUpdatedAt.After(created))
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRates.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings_UnknownCurrency() {
	_, err := suite.service.UpdateSettings(context.Background(), dto.UpdateSettingsRequest{BaseCurrency: "GBP"})

	suite.ErrorIs(err, apperrors.ErrUnknownCurrency)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveSettings", mock.Anything, mock.Anything)
	suite.mockRates.AssertNotCalled(suite.T(), "SetBaseCurrency", mock.Anything, mock.Anything)
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings_SaveError() {
	ctx := context.Background()
	suite.mockRepo.On("FindSettings", ctx).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveSettings", ctx, mock.Anything).Return(assert.AnError).Once()

	_, err := suite.service.UpdateSettings(ctx, dto.UpdateSettingsRequest{BaseCurrency: "USD"})

	suite.ErrorIs(err, assert.AnError)
	suite.mockRates.AssertNotCalled(suite.T(), "SetBaseCurrency", mock.Anything, mock.Anything)
}

func TestSettingsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsServiceTestSuite))
}
