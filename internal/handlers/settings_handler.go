package handlers

import (
	"net/http"

	"invoicedesk/internal/logger"
	"invoicedesk/internal/models"
	"invoicedesk/internal/repository"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsRepo *repository.SettingsRepository
	log          *logger.StructuredLogger
}

func NewSettingsHandler(settingsRepo *repository.SettingsRepository, log *logger.StructuredLogger) *SettingsHandler {
	return &SettingsHandler{settingsRepo: settingsRepo, log: log}
}

func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsRepo.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) SaveSettings(c *gin.Context) {
	var settings models.AppSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data", "details": err.Error()})
		return
	}

	if err := h.settingsRepo.Save(&settings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings", "details": err.Error()})
		return
	}

	h.log.LogBusinessEvent("Settings saved", "settings", "save")
	c.JSON(http.StatusOK, settings)
}
