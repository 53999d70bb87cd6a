package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/payroll_app/internal/core/ports/services"
	"github.com/SscSPs/payroll_app/internal/dto"
	"github.com/SscSPs/payroll_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// settingsHandler handles HTTP requests related to deployment settings.
type settingsHandler struct {
	settingsService portssvc.SettingsSvc
}

func newSettingsHandler(ss portssvc.SettingsSvc) *settingsHandler {
	return &settingsHandler{settingsService: ss}
}

func registerSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsSvc) {
	h := newSettingsHandler(settingsService)

	settings := rg.Group("/settings")
	{
		settings.GET("", h.getSettings)
		settings.PUT("", h.updateSettings)
	}
}

// getSettings godoc
// @Summary Get settings
// @Description Returns the base currency and the supported currencies
// @Tags settings
// @Produce json
// @Success 200 {object} dto.SettingsResponse
// @Failure 500 {object} map[string]string "Failed to load settings"
// @Router /settings [get]
func (h *settingsHandler) getSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		writeServiceError(c, logger, err, "Failed to load settings")
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

// updateSettings godoc
// @Summary Update settings
// @Description Changes the base currency. The current rate table is dropped and a refresh is attempted.
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body dto.UpdateSettingsRequest true "New settings"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to update settings"
// @Router /settings [put]
func (h *settingsHandler) updateSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, logger, err, "JSON for UpdateSettings")
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to update settings")
		return
	}

	logger.Info("Settings updated", slog.String("base_currency", settings.BaseCurrency.String()))
	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}
