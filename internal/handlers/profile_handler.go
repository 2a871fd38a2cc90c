package handlers

import (
	"errors"
	"net/http"

	"invoicedesk/internal/logger"
	"invoicedesk/internal/models"
	"invoicedesk/internal/repository"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileRepo *repository.ProfileRepository
	log         *logger.StructuredLogger
}

func NewProfileHandler(profileRepo *repository.ProfileRepository, log *logger.StructuredLogger) *ProfileHandler {
	return &ProfileHandler{profileRepo: profileRepo, log: log}
}

func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.profileRepo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list profiles", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profiles": profiles, "count": len(profiles)})
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileRepo.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	var profile models.BusinessProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data", "details": err.Error()})
		return
	}
	if id := c.Param("id"); id != "" {
		profile.ID = id
	}
	if profile.ID == "" {
		profile.ID = models.NewID("prof")
	}
	if profile.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Profile name is required"})
		return
	}

	if err := h.profileRepo.Save(&profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile", "details": err.Error()})
		return
	}

	h.log.LogBusinessEvent("Profile saved", profile.ID, "save")
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	id := c.Param("id")
	if err := h.profileRepo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete profile", "details": err.Error()})
		return
	}
	h.log.LogBusinessEvent("Profile deleted", id, "delete")
	c.JSON(http.StatusOK, gin.H{"success": true})
}
