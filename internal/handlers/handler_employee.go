package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/wfms/workforce_mgmt_app/internal/core/ports/services"
	"github.com/wfms/workforce_mgmt_app/internal/dto"
	"github.com/wfms/workforce_mgmt_app/internal/middleware"
)

// employeeHandler handles HTTP requests related to employees.
type employeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
	staffingService portssvc.StaffingSvcFacade
}

// newEmployeeHandler creates a new employeeHandler.
func newEmployeeHandler(es portssvc.EmployeeSvcFacade, ss portssvc.StaffingSvcFacade) *employeeHandler {
	return &employeeHandler{
		employeeService: es,
		staffingService: ss,
	}
}

// registerEmployeeRoutes registers routes related to employees, including the
// department transfer endpoint and the employee-side assignment listing.
func registerEmployeeRoutes(rg *gin.RouterGroup, employeeService portssvc.EmployeeSvcFacade, staffingService portssvc.StaffingSvcFacade) {
	h := newEmployeeHandler(employeeService, staffingService)

	employees := rg.Group("/employees")
	{
		employees.POST("", h.createEmployee)
		employees.GET("", h.listEmployees)
		employees.GET("/:employee_id", h.getEmployee)
		employees.PUT("/:employee_id", h.updateEmployee)
		employees.DELETE("/:employee_id", h.deleteEmployee)
		employees.POST("/:employee_id/transfer", h.transferEmployee)
		employees.GET("/:employee_id/assignments", h.listEmployeeAssignments)
	}
}

func (h *employeeHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEmployee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create employee", slog.Int64("department_id", req.DepartmentID))

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create employee")
		return
	}

	logger.Info("Employee created successfully", slog.Int64("employee_id", employee.EmployeeID))
	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

func (h *employeeHandler) listEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	employees, err := h.employeeService.ListEmployees(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list employees")
		return
	}

	c.JSON(http.StatusOK, dto.ToListEmployeeResponse(employees))
}

func (h *employeeHandler) getEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID, ok := parseIDParam(c, "employee_id")
	if !ok {
		return
	}

	employee, err := h.employeeService.GetEmployeeByID(c.Request.Context(), employeeID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get employee")
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

func (h *employeeHandler) updateEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID, ok := parseIDParam(c, "employee_id")
	if !ok {
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateEmployee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.Int64("employee_id", employeeID))
	logger.Info("Received request to update employee")

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), employeeID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update employee")
		return
	}

	logger.Info("Employee updated successfully")
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

func (h *employeeHandler) deleteEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID, ok := parseIDParam(c, "employee_id")
	if !ok {
		return
	}

	logger = logger.With(slog.Int64("employee_id", employeeID))
	logger.Info("Received request to delete employee")

	if err := h.employeeService.DeleteEmployee(c.Request.Context(), employeeID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete employee")
		return
	}

	logger.Info("Employee deleted successfully")
	c.Status(http.StatusNoContent)
}

// transferEmployee atomically moves an employee to another department. A
// transfer that touches no rows reports not found rather than success.
func (h *employeeHandler) transferEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID, ok := parseIDParam(c, "employee_id")
	if !ok {
		return
	}

	var req dto.TransferEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for TransferEmployee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.Int64("employee_id", employeeID), slog.Int64("new_department_id", req.NewDepartmentID))
	logger.Info("Received request to transfer employee")

	transferred, err := h.employeeService.TransferEmployeeToDepartment(c.Request.Context(), employeeID, req.NewDepartmentID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to transfer employee")
		return
	}
	if !transferred {
		logger.Warn("Transfer touched no rows")
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}

	logger.Info("Employee transferred successfully")
	c.JSON(http.StatusOK, gin.H{"transferred": true})
}

// listEmployeeAssignments returns every project assignment of an employee.
func (h *employeeHandler) listEmployeeAssignments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID, ok := parseIDParam(c, "employee_id")
	if !ok {
		return
	}

	assignments, err := h.staffingService.GetEmployeeAssignments(c.Request.Context(), employeeID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list employee assignments")
		return
	}

	c.JSON(http.StatusOK, dto.ToListAssignmentResponse(assignments))
}
