package handlers

import (
	"errors"
	"net/http"

	clientRepo "barkbook/database/repository/client"
	"barkbook/models"
	"barkbook/services/clientintake"
	"barkbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClientHandler exposes client intake CRUD.
type ClientHandler struct {
	Service clientintake.ClientService
	Logger  *zap.Logger
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(svc clientintake.ClientService, logger *zap.Logger) *ClientHandler {
	return &ClientHandler{Service: svc, Logger: logger}
}

func (h *ClientHandler) CreateClientHandler(c *gin.Context) {
	var req models.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid client payload", err.Error())
		return
	}

	client, err := h.Service.CreateClient(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) GetClientHandler(c *gin.Context) {
	client, err := h.Service.GetClient(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) ListClientsHandler(c *gin.Context) {
	clients, err := h.Service.ListClients(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

func (h *ClientHandler) UpdateClientHandler(c *gin.Context) {
	var req models.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid client payload", err.Error())
		return
	}

	client, err := h.Service.UpdateClient(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) DeleteClientHandler(c *gin.Context) {
	if err := h.Service.DeleteClient(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (h *ClientHandler) respondError(c *gin.Context, err error) {
	if errors.Is(err, clientRepo.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "client not found", "")
		return
	}
	h.Logger.Error("client operation failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "internal error", "")
}
