package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/payroll_app/internal/core/ports/services"
	"github.com/SscSPs/payroll_app/internal/dto"
	"github.com/SscSPs/payroll_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvc
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvc) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvc) {
	h := newCurrencyHandler(currencyService)

	rg.GET("/currencies", h.listCurrencies)
}

// listCurrencies godoc
// @Summary List supported currencies
// @Description Retrieves the fixed list of currencies salaries and items may use
// @Tags currencies
// @Produce  json
// @Success 200 {array} dto.CurrencyResponse
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies := h.currencyService.ListCurrencies(c.Request.Context())

	logger.Debug("Currencies listed", slog.Int("count", len(currencies)))
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}
