package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/payroll_app/internal/core/domain"
	portssvc "github.com/SscSPs/payroll_app/internal/core/ports/services"
	"github.com/SscSPs/payroll_app/internal/dto"
	"github.com/SscSPs/payroll_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(exchangeRateService)

	exchangeRates := rg.Group("/exchange-rates")
	{
		exchangeRates.GET("", h.getCurrentRates)
		exchangeRates.POST("/refresh", h.refreshRates)
		exchangeRates.GET("/convert", h.convert)
	}
}

// getCurrentRates godoc
// @Summary Get the current rate table
// @Description Returns the rate table used for conversions. available is false until a table has been captured.
// @Tags exchange rates
// @Produce  json
// @Success 200 {object} dto.ExchangeRatesResponse
// @Router /exchange-rates [get]
func (h *exchangeRateHandler) getCurrentRates(c *gin.Context) {
	base, table := h.exchangeRateService.CurrentRates(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToExchangeRatesResponse(base, table))
}

// refreshRates godoc
// @Summary Refresh exchange rates
// @Description Fetches a new rate table from the configured sources and makes it current
// @Tags exchange rates
// @Produce  json
// @Success 200 {object} dto.ExchangeRatesResponse
// @Failure 422 {object} map[string]string "Source returned an unusable table"
// @Failure 502 {object} map[string]string "No rate source answered"
// @Failure 500 {object} map[string]string "Failed to refresh exchange rates"
// @Router /exchange-rates/refresh [post]
func (h *exchangeRateHandler) refreshRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to refresh exchange rates")

	table, err := h.exchangeRateService.Refresh(c.Request.Context())
	if err != nil {
		writeServiceError(c, logger, err, "Failed to refresh exchange rates")
		return
	}

	logger.Info("Exchange rates refreshed", slog.String("snapshot_id", table.SnapshotID), slog.String("source", table.Source))
	c.JSON(http.StatusOK, dto.ToExchangeRatesResponse(table.Base, table))
}

// convert godoc
// @Summary Convert an amount
// @Description Converts an amount between two supported currencies with the current rate table.
// @Description Without a table the amount is returned unchanged.
// @Tags exchange rates
// @Produce  json
// @Param   amount query number true "Amount to convert"
// @Param   from   query string true "Source currency" Enums(UAH, USD, EUR)
// @Param   to     query string true "Target currency" Enums(UAH, USD, EUR)
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 422 {object} map[string]string "Current rate table is unusable"
// @Failure 500 {object} map[string]string "Failed to convert amount"
// @Router /exchange-rates/convert [get]
func (h *exchangeRateHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ConvertParams
	if err := c.ShouldBindQuery(&params); err != nil {
		writeBindError(c, logger, err, "query params for Convert")
		return
	}

	from, err := domain.ParseCurrency(params.From)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to convert amount")
		return
	}
	to, err := domain.ParseCurrency(params.To)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to convert amount")
		return
	}

	result, table, err := h.exchangeRateService.Convert(c.Request.Context(), params.Amount, from, to)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to convert amount")
		return
	}

	c.JSON(http.StatusOK, dto.ToConvertResponse(params, from, to, result, table))
}
