package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/wfms/workforce_mgmt_app/internal/core/ports/services"
	"github.com/wfms/workforce_mgmt_app/internal/dto"
	"github.com/wfms/workforce_mgmt_app/internal/middleware"
)

// projectHandler handles HTTP requests related to projects and their
// staffing.
type projectHandler struct {
	projectService  portssvc.ProjectSvcFacade
	staffingService portssvc.StaffingSvcFacade
}

// newProjectHandler creates a new projectHandler.
func newProjectHandler(ps portssvc.ProjectSvcFacade, ss portssvc.StaffingSvcFacade) *projectHandler {
	return &projectHandler{
		projectService:  ps,
		staffingService: ss,
	}
}

// registerProjectRoutes registers routes related to projects. Staffing routes
// are nested under a specific project.
func registerProjectRoutes(rg *gin.RouterGroup, projectService portssvc.ProjectSvcFacade, staffingService portssvc.StaffingSvcFacade) {
	h := newProjectHandler(projectService, staffingService)

	projects := rg.Group("/projects")
	{
		projects.POST("", h.createProject)
		projects.GET("", h.listProjects)
		projects.GET("/ending-soon", h.listProjectsEndingSoon)
		projects.GET("/:project_id", h.getProject)
		projects.PUT("/:project_id", h.updateProject)
		projects.DELETE("/:project_id", h.deleteProject)
		projects.GET("/:project_id/cost", h.getProjectCost)
		projects.POST("/:project_id/clients/:client_id", h.linkClient)
		projects.DELETE("/:project_id/clients/:client_id", h.unlinkClient)
		projects.POST("/:project_id/departments/:department_id", h.linkDepartment)
		projects.DELETE("/:project_id/departments/:department_id", h.unlinkDepartment)

		assignments := projects.Group("/:project_id/assignments")
		{
			assignments.POST("", h.assignEmployee)
			assignments.GET("", h.listAssignments)
			assignments.PUT("/:employee_id", h.updateAllocation)
			assignments.DELETE("/:employee_id", h.removeAssignment)
		}
	}
}

func (h *projectHandler) createProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateProject", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create project", slog.String("project_name", req.Name))

	project, err := h.projectService.CreateProject(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create project")
		return
	}

	logger.Info("Project created successfully", slog.Int64("project_id", project.ProjectID))
	c.JSON(http.StatusCreated, dto.ToProjectResponse(project))
}

func (h *projectHandler) listProjects(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	projects, err := h.projectService.ListProjects(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list projects")
		return
	}

	c.JSON(http.StatusOK, dto.ToListProjectResponse(projects))
}

func (h *projectHandler) getProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID, ok := parseIDParam(c, "project_id")
	if !ok {
		return
	}

	project, err := h.projectService.GetProjectByID(c.Request.Context(), projectID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get project")
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

func (h *projectHandler) updateProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID, ok := parseIDParam(c, "project_id")
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateProject", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.Int64("project_id", projectID))
	logger.Info("Received request to update project")

	project, err := h.projectService.UpdateProject(c.Request.Context(), projectID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update project")
		return
	}

	logger.Info("Project updated successfully")
	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

func (h *projectHandler) deleteProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID, ok := parseIDParam(c, "project_id")
	if !ok {
		return
	}

	logger = logger.With(slog.Int64("project_id", projectID))
	logger.Info("Received request to delete project")

	if err := h.projectService.DeleteProject(c.Request.Context(), projectID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete project")
		return
	}

	logger.Info("Project deleted successfully")
	c.Status(http.StatusNoContent)
}

// getProjectCost returns the aggregated staffing cost of a project.
func (h *projectHandler) getProjectCost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID, ok := parseIDParam(c, "project_id")
	if !ok {
		return
	}

	cost, err := h.staffingService.CalculateProjectHRCost(c.Request.Context(), projectID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to calculate project cost")
		return
	}

	c.JSON(http.StatusOK, dto.ProjectCostResponse{ProjectID: projectID, HRCost: cost})
}

// listProjectsEndingSoon returns the projects ending within the given number
// of days from today (default 30).
func (h *projectHandler) listProjectsEndingSoon(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	daysRaw := c.DefaultQuery("days", "30")
	days, err := strconv.Atoi(daysRaw)
	if err != nil {
		logger.Warn("Invalid days query parameter", slog.String("days", daysRaw))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid days: " + daysRaw})
		return
	}

	projects, err := h.projectService.FindProjectsEndingSoon(c.Request.Context(), days)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list projects by deadline")
		return
	}

	c.JSON(http.StatusOK, dto.ToListProjectResponse(projects))
}

func (h *projectHandler) linkClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID, ok := parseIDParam(c, "project_id")
	if !ok {
		return
	}
	clientID, ok := parseIDParam(c, "client_id")
	if !ok {
		return
	}

	logger = logger.With(slog.Int64("project_id", projectID), slog.Int64("client_id", clientID))
	logger.Info("Received request to link client to project")

	if err := h.projectService.LinkClientToProject(c.Request.Context(), projectID, clientID); err != nil {
		respondServiceError(c, logger, err, "Failed to link client to project")
		return
	}

	logger.Info("Client linked successfully")
	c.Status(http.StatusCreated)
}

func (h *projectHandler) unlinkClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID, ok := parseIDParam(c, "project_id")
	if !ok {
		return
	}
	clientID, ok := parseIDParam(c, "client_id")
	if !ok {
		return
	}

	logger = logger.With(slog.Int64("project_id", projectID), slog.Int64("client_id", clientID))

	removed, err := h.projectService.UnlinkClientFromProject(c.Request.Context(), projectID, clientID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to unlink client from project")
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project-client link not found"})
		return
	}

	logger.Info("Client unlinked successfully")
	c.Status(http.StatusNoContent)
}

func (h *projectHandler) linkDepartment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID, ok := parseIDParam(c, "project_id")
	if !ok {
		return
	}
	departmentID, ok := parseIDParam(c, "department_id")
	if !ok {
		return
	}

	logger = logger.With(slog.Int64("project_id", projectID), slog.Int64("department_id", departmentID))
	logger.Info("Received request to link department to project")

	if err := h.projectService.LinkDepartmentToProject(c.Request.Context(), projectID, departmentID); err != nil {
		respondServiceError(c, logger, err, "Failed to link department to project")
		return
	}

	logger.Info("Department linked successfully")
	c.Status(http.StatusCreated)
}

func (h *projectHandler) unlinkDepartment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID, ok := parseIDParam(c, "project_id")
	if !ok {
		return
	}
	departmentID, ok := parseIDParam(c, "department_id")
	if !ok {
		return
	}

	logger = logger.With(slog.Int64("project_id", projectID), slog.Int64("department_id", departmentID))

	removed, err := h.projectService.UnlinkDepartmentFromProject(c.Request.Context(), projectID, departmentID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to unlink department from project")
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project-department link not found"})
		return
	}

	logger.Info("Department unlinked successfully")
	c.Status(http.StatusNoContent)
}

func (h *projectHandler) assignEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID, ok := parseIDParam(c, "project_id")
	if !ok {
		return
	}

	var req dto.AssignEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AssignEmployee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.Int64("project_id", projectID), slog.Int64("employee_id", req.EmployeeID))
	logger.Info("Received request to assign employee", slog.Int("allocation_percent", req.AllocationPercent))

	err := h.staffingService.AssignEmployeeToProject(c.Request.Context(), req.EmployeeID, projectID, req.AllocationPercent)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to assign employee to project")
		return
	}

	logger.Info("Employee assigned successfully")
	c.Status(http.StatusCreated)
}

func (h *projectHandler) listAssignments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID, ok := parseIDParam(c, "project_id")
	if !ok {
		return
	}

	assignments, err := h.staffingService.GetProjectAssignments(c.Request.Context(), projectID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list project assignments")
		return
	}

	c.JSON(http.StatusOK, dto.ToListAssignmentResponse(assignments))
}

func (h *projectHandler) updateAllocation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID, ok := parseIDParam(c, "project_id")
	if !ok {
		return
	}
	employeeID, ok := parseIDParam(c, "employee_id")
	if !ok {
		return
	}

	var req dto.UpdateAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateAllocation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.Int64("project_id", projectID), slog.Int64("employee_id", employeeID))

	updated, err := h.staffingService.UpdateAllocation(c.Request.Context(), employeeID, projectID, req.AllocationPercent)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update allocation")
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
		return
	}

	logger.Info("Allocation updated successfully", slog.Int("allocation_percent", req.AllocationPercent))
	c.Status(http.StatusNoContent)
}

func (h *projectHandler) removeAssignment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID, ok := parseIDParam(c, "project_id")
	if !ok {
		return
	}
	employeeID, ok := parseIDParam(c, "employee_id")
	if !ok {
		return
	}

	logger = logger.With(slog.Int64("project_id", projectID), slog.Int64("employee_id", employeeID))
	logger.Info("Received request to remove assignment")

	removed, err := h.staffingService.RemoveEmployeeFromProject(c.Request.Context(), employeeID, projectID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to remove assignment")
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
		return
	}

	logger.Info("Assignment removed successfully")
	c.Status(http.StatusNoContent)
}
