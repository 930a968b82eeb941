package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/wfms/workforce_mgmt_app/internal/core/ports/services"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(r *gin.Engine, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1")

	registerDepartmentRoutes(v1, services.Department, services.Project)
	registerEmployeeRoutes(v1, services.Employee, services.Staffing)
	registerProjectRoutes(v1, services.Project, services.Staffing)
	registerClientRoutes(v1, services.Client)
}
