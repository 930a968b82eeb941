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

// clientHandler handles HTTP requests related to clients.
type clientHandler struct {
	clientService portssvc.ClientSvcFacade
}

// newClientHandler creates a new clientHandler.
func newClientHandler(cs portssvc.ClientSvcFacade) *clientHandler {
	return &clientHandler{
		clientService: cs,
	}
}

// registerClientRoutes registers routes related to clients, including the
// upcoming deadline lookup.
func registerClientRoutes(rg *gin.RouterGroup, clientService portssvc.ClientSvcFacade) {
	h := newClientHandler(clientService)

	clients := rg.Group("/clients")
	{
		clients.POST("", h.createClient)
		clients.GET("", h.listClients)
		clients.GET("/upcoming-deadline", h.listClientsByUpcomingDeadline)
		clients.GET("/:client_id", h.getClient)
		clients.PUT("/:client_id", h.updateClient)
		clients.DELETE("/:client_id", h.deleteClient)
	}
}

func (h *clientHandler) createClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateClient", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create client", slog.String("client_name", req.Name))

	client, err := h.clientService.CreateClient(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create client")
		return
	}

	logger.Info("Client created successfully", slog.Int64("client_id", client.ClientID))
	c.JSON(http.StatusCreated, dto.ToClientResponse(client))
}

func (h *clientHandler) listClients(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	clients, err := h.clientService.ListClients(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list clients")
		return
	}

	c.JSON(http.StatusOK, dto.ToListClientResponse(clients))
}

// listClientsByUpcomingDeadline returns the distinct clients with a project
// ending within the given number of days from today (default 30).
func (h *clientHandler) listClientsByUpcomingDeadline(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	daysRaw := c.DefaultQuery("days", "30")
	days, err := strconv.Atoi(daysRaw)
	if err != nil {
		logger.Warn("Invalid days query parameter", slog.String("days", daysRaw))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid days: " + daysRaw})
		return
	}

	logger = logger.With(slog.Int("days", days))

	clients, err := h.clientService.FindClientsByUpcomingProjectDeadline(c.Request.Context(), days)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list clients by upcoming deadline")
		return
	}

	logger.Info("Clients with upcoming deadlines listed", slog.Int("count", len(clients)))
	c.JSON(http.StatusOK, dto.ToListClientResponse(clients))
}

func (h *clientHandler) getClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID, ok := parseIDParam(c, "client_id")
	if !ok {
		return
	}

	client, err := h.clientService.GetClientByID(c.Request.Context(), clientID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get client")
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

func (h *clientHandler) updateClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID, ok := parseIDParam(c, "client_id")
	if !ok {
		return
	}

	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateClient", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.Int64("client_id", clientID))
	logger.Info("Received request to update client")

	client, err := h.clientService.UpdateClient(c.Request.Context(), clientID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update client")
		return
	}

	logger.Info("Client updated successfully")
	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

func (h *clientHandler) deleteClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID, ok := parseIDParam(c, "client_id")
	if !ok {
		return
	}

	logger = logger.With(slog.Int64("client_id", clientID))
	logger.Info("Received request to delete client")

	if err := h.clientService.DeleteClient(c.Request.Context(), clientID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete client")
		return
	}

	logger.Info("Client deleted successfully")
	c.Status(http.StatusNoContent)
}
