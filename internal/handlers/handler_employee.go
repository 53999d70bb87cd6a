package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/payroll_app/internal/core/ports/services"
	"github.com/SscSPs/payroll_app/internal/dto"
	"github.com/SscSPs/payroll_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// employeeHandler handles HTTP requests related to employees and their line items.
type employeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
}

// newEmployeeHandler creates a new employeeHandler.
func newEmployeeHandler(es portssvc.EmployeeSvcFacade) *employeeHandler {
	return &employeeHandler{
		employeeService: es,
	}
}

// registerEmployeeRoutes registers roster routes.
func registerEmployeeRoutes(rg *gin.RouterGroup, employeeService portssvc.EmployeeSvcFacade) {
	h := newEmployeeHandler(employeeService)

	employees := rg.Group("/employees")
	{
		employees.POST("", h.createEmployee)
		employees.GET("", h.listEmployees)
		employees.GET("/:employeeID", h.getEmployee)
		employees.PUT("/:employeeID", h.updateEmployee)
		employees.DELETE("/:employeeID", h.deleteEmployee)

		items := employees.Group("/:employeeID/items")
		items.POST("", h.addLineItem)
		items.PUT("/:itemID", h.updateLineItem)
		items.DELETE("/:itemID", h.removeLineItem)
	}
}

// createEmployee godoc
// @Summary Create an employee
// @Description Adds an employee with a base salary and no line items
// @Tags employees
// @Accept  json
// @Produce  json
// @Param   employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create employee"
// @Router /employees [post]
func (h *employeeHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, logger, err, "JSON for CreateEmployee")
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to create employee")
		return
	}

	logger.Info("Employee created", slog.String("employee_id", employee.EmployeeID))
	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

// listEmployees godoc
// @Summary List employees
// @Description Retrieves the whole roster in creation order
// @Tags employees
// @Produce  json
// @Success 200 {object} dto.ListEmployeesResponse
// @Failure 500 {object} map[string]string "Failed to list employees"
// @Router /employees [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	employees, err := h.employeeService.ListEmployees(c.Request.Context())
	if err != nil {
		writeServiceError(c, logger, err, "Failed to list employees")
		return
	}

	c.JSON(http.StatusOK, dto.ToListEmployeesResponse(employees))
}

// getEmployee godoc
// @Summary Get an employee
// @Description Retrieves an employee with its line items
// @Tags employees
// @Produce  json
// @Param   employeeID path string true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 500 {object} map[string]string "Failed to retrieve employee"
// @Router /employees/{employeeID} [get]
func (h *employeeHandler) getEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("employee_id", c.Param("employeeID")))

	employee, err := h.employeeService.GetEmployee(c.Request.Context(), c.Param("employeeID"))
	if err != nil {
		writeServiceError(c, logger, err, "Failed to retrieve employee")
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// updateEmployee godoc
// @Summary Update an employee
// @Description Changes the name and/or base salary of an employee
// @Tags employees
// @Accept  json
// @Produce  json
// @Param   employeeID path string true "Employee ID"
// @Param   employee body dto.UpdateEmployeeRequest true "Fields to update"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 500 {object} map[string]string "Failed to update employee"
// @Router /employees/{employeeID} [put]
func (h *employeeHandler) updateEmployee(c *gin.Context) {
	employeeID := c.Param("employeeID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("employee_id", employeeID))
	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, logger, err, "JSON for UpdateEmployee")
		return
	}

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), employeeID, req)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to update employee")
		return
	}

	logger.Info("Employee updated")
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// deleteEmployee godoc
// @Summary Delete an employee
// @Description Removes an employee together with all of its line items
// @Tags employees
// @Param   employeeID path string true "Employee ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 500 {object} map[string]string "Failed to delete employee"
// @Router /employees/{employeeID} [delete]
func (h *employeeHandler) deleteEmployee(c *gin.Context) {
	employeeID := c.Param("employeeID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("employee_id", employeeID))

	if err := h.employeeService.DeleteEmployee(c.Request.Context(), employeeID); err != nil {
		writeServiceError(c, logger, err, "Failed to delete employee")
		return
	}

	logger.Info("Employee deleted")
	c.Status(http.StatusNoContent)
}

// addLineItem godoc
// @Summary Add a line item
// @Description Appends an accrual or deduction to an employee
// @Tags employees
// @Accept  json
// @Produce  json
// @Param   employeeID path string true "Employee ID"
// @Param   item body dto.AddLineItemRequest true "Line item details"
// @Success 201 {object} dto.LineItemResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 500 {object} map[string]string "Failed to add line item"
// @Router /employees/{employeeID}/items [post]
func (h *employeeHandler) addLineItem(c *gin.Context) {
	employeeID := c.Param("employeeID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("employee_id", employeeID))
	var req dto.AddLineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, logger, err, "JSON for AddLineItem")
		return
	}

	item, err := h.employeeService.AddLineItem(c.Request.Context(), employeeID, req)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to add line item")
		return
	}

	logger.Info("Line item added", slog.String("line_item_id", item.LineItemID), slog.String("kind", string(item.Kind)))
	c.JSON(http.StatusCreated, dto.ToLineItemResponse(*item))
}

// updateLineItem godoc
// @Summary Update a line item
// @Description Changes the kind, label and/or value of a line item
// @Tags employees
// @Accept  json
// @Produce  json
// @Param   employeeID path string true "Employee ID"
// @Param   itemID path string true "Line item ID"
// @Param   item body dto.UpdateLineItemRequest true "Fields to update"
// @Success 200 {object} dto.LineItemResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Employee or line item not found"
// @Failure 500 {object} map[string]string "Failed to update line item"
// @Router /employees/{employeeID}/items/{itemID} [put]
func (h *employeeHandler) updateLineItem(c *gin.Context) {
	employeeID, itemID := c.Param("employeeID"), c.Param("itemID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
		slog.String("employee_id", employeeID),
		slog.String("line_item_id", itemID),
	)
	var req dto.UpdateLineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, logger, err, "JSON for UpdateLineItem")
		return
	}

	item, err := h.employeeService.UpdateLineItem(c.Request.Context(), employeeID, itemID, req)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to update line item")
		return
	}

	logger.Info("Line item updated")
	c.JSON(http.StatusOK, dto.ToLineItemResponse(*item))
}

// removeLineItem godoc
// @Summary Remove a line item
// @Tags employees
// @Param   employeeID path string true "Employee ID"
// @Param   itemID path string true "Line item ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Employee or line item not found"
// @Failure 500 {object} map[string]string "Failed to remove line item"
// @Router /employees/{employeeID}/items/{itemID} [delete]
func (h *employeeHandler) removeLineItem(c *gin.Context) {
	employeeID, itemID := c.Param("employeeID"), c.Param("itemID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
		slog.String("employee_id", employeeID),
		slog.String("line_item_id", itemID),
	)

	if err := h.employeeService.RemoveLineItem(c.Request.Context(), employeeID, itemID); err != nil {
		writeServiceError(c, logger, err, "Failed to remove line item")
		return
	}

	logger.Info("Line item removed")
	c.Status(http.StatusNoContent)
}
