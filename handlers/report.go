package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	clientRepo "barkbook/database/repository/client"
	reportRepo "barkbook/database/repository/report"
	"barkbook/models"
	"barkbook/services/report"
	"barkbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReportCardHandler exposes report card CRUD and photo upload.
type ReportCardHandler struct {
	Service report.ReportCardService
	Logger  *zap.Logger
}

// NewReportCardHandler creates a new ReportCardHandler.
func NewReportCardHandler(svc report.ReportCardService, logger *zap.Logger) *ReportCardHandler {
	return &ReportCardHandler{Service: svc, Logger: logger}
}

func (h *ReportCardHandler) CreateReportCardHandler(c *gin.Context) {
	var req models.CreateReportCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid report card payload", err.Error())
		return
	}

	card, err := h.Service.CreateReportCard(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, card)
}

func (h *ReportCardHandler) GetReportCardHandler(c *gin.Context) {
	card, err := h.Service.GetReportCard(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

func (h *ReportCardHandler) ListReportCardsByClientHandler(c *gin.Context) {
	cards, err := h.Service.ListByClient(c.Request.Context(), c.Param("clientId"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reportCards": cards})
}

// UploadReportPhotoHandler accepts a multipart "photo" file, stages it to a
// temp file, and hands it to the storage service.
func (h *ReportCardHandler) UploadReportPhotoHandler(c *gin.Context) {
	file, err := c.FormFile("photo")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "missing photo file", err.Error())
		return
	}

	tmpPath := filepath.Join(os.TempDir(), fmt.Sprintf("report-photo-%d-%s", time.Now().UnixNano(), filepath.Base(file.Filename)))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		h.Logger.Error("failed to stage uploaded photo", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "upload failed", "")
		return
	}
	defer os.Remove(tmpPath)

	url, err := h.Service.AttachPhoto(c.Request.Context(), c.Param("id"), tmpPath)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"photoUrl": url})
}

func (h *ReportCardHandler) DeleteReportCardHandler(c *gin.Context) {
	if err := h.Service.DeleteReportCard(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (h *ReportCardHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, reportRepo.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "report card not found", "")
	case errors.Is(err, clientRepo.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "client not found", "")
	default:
		h.Logger.Error("report card operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal error", "")
	}
}
