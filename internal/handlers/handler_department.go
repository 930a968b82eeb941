package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/wfms/workforce_mgmt_app/internal/core/ports/services"
	"github.com/wfms/workforce_mgmt_app/internal/dto"
	"github.com/wfms/workforce_mgmt_app/internal/middleware"
)

// departmentHandler handles HTTP requests related to departments.
type departmentHandler struct {
	departmentService portssvc.DepartmentSvcFacade
	projectService    portssvc.ProjectSvcFacade
}

// newDepartmentHandler creates a new departmentHandler.
func newDepartmentHandler(ds portssvc.DepartmentSvcFacade, ps portssvc.ProjectSvcFacade) *departmentHandler {
	return &departmentHandler{
		departmentService: ds,
		projectService:    ps,
	}
}

// registerDepartmentRoutes registers routes related to departments, including
// the department-scoped project listing.
func registerDepartmentRoutes(rg *gin.RouterGroup, departmentService portssvc.DepartmentSvcFacade, projectService portssvc.ProjectSvcFacade) {
	h := newDepartmentHandler(departmentService, projectService)

	departments := rg.Group("/departments")
	{
		departments.POST("", h.createDepartment)
		departments.GET("", h.listDepartments)
		departments.GET("/:department_id", h.getDepartment)
		departments.PUT("/:department_id", h.updateDepartment)
		departments.DELETE("/:department_id", h.deleteDepartment)
		departments.GET("/:department_id/projects", h.listDepartmentProjects)
	}
}

func (h *departmentHandler) createDepartment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDepartment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create department", slog.String("department_name", req.Name))

	department, err := h.departmentService.CreateDepartment(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create department")
		return
	}

	logger.Info("Department created successfully", slog.Int64("department_id", department.DepartmentID))
	c.JSON(http.StatusCreated, dto.ToDepartmentResponse(department))
}

func (h *departmentHandler) listDepartments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	departments, err := h.departmentService.ListDepartments(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list departments")
		return
	}

	c.JSON(http.StatusOK, dto.ToListDepartmentResponse(departments))
}

func (h *departmentHandler) getDepartment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	departmentID, ok := parseIDParam(c, "department_id")
	if !ok {
		return
	}

	department, err := h.departmentService.GetDepartmentByID(c.Request.Context(), departmentID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get department")
		return
	}

	c.JSON(http.StatusOK, dto.ToDepartmentResponse(department))
}

func (h *departmentHandler) updateDepartment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	departmentID, ok := parseIDParam(c, "department_id")
	if !ok {
		return
	}

	var req dto.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateDepartment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.Int64("department_id", departmentID))
	logger.Info("Received request to update department")

	department, err := h.departmentService.UpdateDepartment(c.Request.Context(), departmentID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update department")
		return
	}

	logger.Info("Department updated successfully")
	c.JSON(http.StatusOK, dto.ToDepartmentResponse(department))
}

func (h *departmentHandler) deleteDepartment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	departmentID, ok := parseIDParam(c, "department_id")
	if !ok {
		return
	}

	logger = logger.With(slog.Int64("department_id", departmentID))
	logger.Info("Received request to delete department")

	if err := h.departmentService.DeleteDepartment(c.Request.Context(), departmentID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete department")
		return
	}

	logger.Info("Department deleted successfully")
	c.Status(http.StatusNoContent)
}

// listDepartmentProjects returns the department's active projects ordered by
// the sortBy query parameter (default name).
func (h *departmentHandler) listDepartmentProjects(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	departmentID, ok := parseIDParam(c, "department_id")
	if !ok {
		return
	}

	sortBy := c.DefaultQuery("sortBy", "name")
	logger = logger.With(slog.Int64("department_id", departmentID), slog.String("sort_by", sortBy))

	projects, err := h.projectService.GetProjectsByDepartment(c.Request.Context(), departmentID, sortBy)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list department projects")
		return
	}

	c.JSON(http.StatusOK, dto.ToListProjectResponse(projects))
}
