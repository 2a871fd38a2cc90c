package handlers

import (
	"errors"
	"net/http"

	"invoicedesk/internal/logger"
	"invoicedesk/internal/models"
	"invoicedesk/internal/render"
	"invoicedesk/internal/repository"

	"github.com/gin-gonic/gin"
)

type TemplateHandler struct {
	templateRepo *repository.TemplateRepository
	log          *logger.StructuredLogger
}

func NewTemplateHandler(templateRepo *repository.TemplateRepository, log *logger.StructuredLogger) *TemplateHandler {
	return &TemplateHandler{templateRepo: templateRepo, log: log}
}

// ListTemplates returns built-in and stored templates.
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	templates, err := h.templateRepo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list templates", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": templates, "count": len(templates)})
}

func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	tmpl, err := h.templateRepo.GetByID(c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tmpl)
}

// SaveTemplate creates or replaces a user template. The markup is validated
// before the template is stored so a broken template never reaches render.
func (h *TemplateHandler) SaveTemplate(c *gin.Context) {
	var tmpl models.Template
	if err := c.ShouldBindJSON(&tmpl); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data", "details": err.Error()})
		return
	}
	if id := c.Param("id"); id != "" {
		tmpl.ID = id
	}
	if tmpl.ID == "" {
		tmpl.ID = models.NewID("tpl")
	}
	if tmpl.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Template name is required"})
		return
	}
	if err := render.Validate(tmpl.HTML); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Template markup is invalid", "details": err.Error()})
		return
	}

	if err := h.templateRepo.Save(&tmpl); err != nil {
		h.writeError(c, err)
		return
	}

	h.log.LogBusinessEvent("Template saved", tmpl.ID, "save")
	c.JSON(http.StatusOK, tmpl)
}

func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	id := c.Param("id")
	if err := h.templateRepo.Delete(id); err != nil {
		h.writeError(c, err)
		return
	}
	h.log.LogBusinessEvent("Template deleted", id, "delete")
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *TemplateHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
	case errors.Is(err, repository.ErrBuiltIn):
		c.JSON(http.StatusForbidden, gin.H{"error": "Built-in templates cannot be modified"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Template operation failed", "details": err.Error()})
	}
}
