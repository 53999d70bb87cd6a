package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/payroll_app/internal/core/ports/services"
	"github.com/SscSPs/payroll_app/internal/dto"
	"github.com/SscSPs/payroll_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// rosterHandler handles whole-roster export and import.
type rosterHandler struct {
	rosterService portssvc.RosterSvc
}

func newRosterHandler(rs portssvc.RosterSvc) *rosterHandler {
	return &rosterHandler{rosterService: rs}
}

func registerRosterRoutes(rg *gin.RouterGroup, rosterService portssvc.RosterSvc) {
	h := newRosterHandler(rosterService)

	roster := rg.Group("/roster")
	{
		roster.GET("/export", h.exportRoster)
		roster.POST("/import", h.importRoster)
	}
}

// exportRoster godoc
// @Summary Export the roster
// @Description Returns every employee with its line items as a single document
// @Tags roster
// @Produce json
// @Success 200 {object} dto.RosterDocument
// @Failure 500 {object} map[string]string "Failed to export roster"
// @Router /roster/export [get]
func (h *rosterHandler) exportRoster(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	doc, err := h.rosterService.Export(c.Request.Context())
	if err != nil {
		writeServiceError(c, logger, err, "Failed to export roster")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="roster.json"`)
	c.JSON(http.StatusOK, doc)
}

// importRoster godoc
// @Summary Import a roster
// @Description Replaces the whole roster with the document. An invalid document leaves the roster untouched.
// @Tags roster
// @Accept json
// @Produce json
// @Param roster body dto.RosterDocument true "Roster document"
// @Success 200 {object} dto.ImportRosterResponse
// @Failure 400 {object} map[string]string "Invalid document"
// @Failure 500 {object} map[string]string "Failed to import roster"
// @Router /roster/import [post]
func (h *rosterHandler) importRoster(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var doc dto.RosterDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		writeBindError(c, logger, err, "JSON for ImportRoster")
		return
	}

	result, err := h.rosterService.Import(c.Request.Context(), doc)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to import roster")
		return
	}

	logger.Info("Roster imported",
		slog.Int("employees", result.EmployeesImported),
		slog.Int("line_items", result.LineItemsImported),
	)
	c.JSON(http.StatusOK, result)
}
