package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/payroll_app/internal/core/ports/services"
	"github.com/SscSPs/payroll_app/internal/dto"
	"github.com/SscSPs/payroll_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to pay totals
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingSvc) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to pay totals
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvc) {
	h := newReportingHandler(reportingService)

	rg.GET("/employees/:employeeID/totals", h.getEmployeeTotals)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/company-totals", h.getCompanyTotals)
	}
}

// getEmployeeTotals godoc
// @Summary Compute an employee's totals
// @Description Sums accruals and deductions in the salary currency and converts net pay into every supported currency
// @Tags reports
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Success 200 {object} dto.EmployeeTotalsResponse
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 422 {object} map[string]string "Current rate table is unusable"
// @Failure 500 {object} map[string]string "Failed to compute totals"
// @Router /employees/{employeeID}/totals [get]
func (h *reportingHandler) getEmployeeTotals(c *gin.Context) {
	employeeID := c.Param("employeeID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("employee_id", employeeID))

	report, err := h.reportingService.EmployeeTotals(c.Request.Context(), employeeID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to compute totals")
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeTotalsResponse(report))
}

// getCompanyTotals godoc
// @Summary Compute company totals
// @Description Sums net pay of the whole roster per supported currency
// @Tags reports
// @Produce json
// @Success 200 {object} dto.CompanyTotalsResponse
// @Failure 422 {object} map[string]string "Current rate table is unusable"
// @Failure 500 {object} map[string]string "Failed to compute company totals"
// @Router /reports/company-totals [get]
func (h *reportingHandler) getCompanyTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reportingService.CompanyTotals(c.Request.Context())
	if err != nil {
		writeServiceError(c, logger, err, "Failed to compute company totals")
		return
	}

	logger.Info("Company totals computed", slog.Int("employee_count", report.Totals.EmployeeCount))
	c.JSON(http.StatusOK, dto.ToCompanyTotalsResponse(report))
}
