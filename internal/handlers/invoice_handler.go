package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"invoicedesk/internal/logger"
	"invoicedesk/internal/models"
	"invoicedesk/internal/repository"
	"invoicedesk/internal/services"
	"invoicedesk/internal/state"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	invoiceRepo  *repository.InvoiceRepository
	templateRepo *repository.TemplateRepository
	profileRepo  *repository.ProfileRepository
	settingsRepo *repository.SettingsRepository
	pdfService   *services.PDFService
	log          *logger.StructuredLogger
}

func NewInvoiceHandler(
	invoiceRepo *repository.InvoiceRepository,
	templateRepo *repository.TemplateRepository,
	profileRepo *repository.ProfileRepository,
	settingsRepo *repository.SettingsRepository,
	pdfService *services.PDFService,
	log *logger.StructuredLogger,
) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceRepo:  invoiceRepo,
		templateRepo: templateRepo,
		profileRepo:  profileRepo,
		settingsRepo: settingsRepo,
		pdfService:   pdfService,
		log:          log,
	}
}

// CreateInvoice creates a new invoice seeded from the workspace settings.
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var request struct {
		TemplateID string `json:"templateId"`
	}
	// Body is optional; an empty request creates a default invoice.
	_ = c.ShouldBindJSON(&request)

	settings, err := h.settingsRepo.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings", "details": err.Error()})
		return
	}

	now := time.Now()
	invoice := models.NewInvoice(*settings, request.TemplateID, now)
	if seq, err := h.invoiceRepo.NextSequence(); err == nil {
		invoice.InvoiceNumber = models.InvoiceNumberFromPattern(settings.InvoiceNumberPattern, now, int64(seq))
	}
	state.Recalculate(invoice)

	if err := h.invoiceRepo.Save(invoice); err != nil {
		h.log.Error("Failed to create invoice", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create invoice", "details": err.Error()})
		return
	}

	h.log.LogBusinessEvent("Invoice created", invoice.ID, "create")
	c.JSON(http.StatusCreated, invoice)
}

// ListInvoices returns invoice summaries, newest first.
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	params := &repository.InvoiceListParams{
		SearchTerm: c.Query("search"),
	}
	if limit := c.Query("limit"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil {
			params.Limit = n
		}
	}
	if offset := c.Query("offset"); offset != "" {
		if n, err := strconv.Atoi(offset); err == nil {
			params.Offset = n
		}
	}

	summaries, err := h.invoiceRepo.List(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list invoices", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": summaries, "count": len(summaries)})
}

// GetInvoice returns the full invoice document.
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoice, ok := h.loadInvoice(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// UpdateInvoice replaces the invoice document. Totals are recomputed before
// the document is stored, so a client can never persist stale numbers.
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.invoiceRepo.GetByID(id); err != nil {
		h.notFoundOrError(c, err, "Invoice")
		return
	}

	var invoice models.Invoice
	if err := c.ShouldBindJSON(&invoice); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data", "details": err.Error()})
		return
	}
	invoice.ID = id

	if err := invoice.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": err.Error()})
		return
	}

	state.Apply(&invoice)

	if err := h.invoiceRepo.Save(&invoice); err != nil {
		h.log.Error("Failed to update invoice", err, map[string]interface{}{"invoice_id": id})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update invoice", "details": err.Error()})
		return
	}

	h.log.LogBusinessEvent("Invoice updated", id, "update")
	c.JSON(http.StatusOK, invoice)
}

// DeleteInvoice removes the invoice document.
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	id := c.Param("id")
	if err := h.invoiceRepo.Delete(id); err != nil {
		h.notFoundOrError(c, err, "Invoice")
		return
	}
	h.log.LogBusinessEvent("Invoice deleted", id, "delete")
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DuplicateInvoice stores a copy of the invoice under a fresh id.
func (h *InvoiceHandler) DuplicateInvoice(c *gin.Context) {
	invoice, ok := h.loadInvoice(c)
	if !ok {
		return
	}

	dup := invoice.Duplicate(time.Now())
	state.Recalculate(dup)

	if err := h.invoiceRepo.Save(dup); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to duplicate invoice", "details": err.Error()})
		return
	}

	h.log.LogBusinessEvent("Invoice duplicated", dup.ID, "duplicate", map[string]interface{}{"source_id": invoice.ID})
	c.JSON(http.StatusCreated, dup)
}

// PreviewInvoice renders the invoice through its template as an HTML
// fragment for the live preview pane.
func (h *InvoiceHandler) PreviewInvoice(c *gin.Context) {
	invoice, tmpl, profile, ok := h.loadRenderInputs(c)
	if !ok {
		return
	}
	html := renderPreview(invoice, tmpl, profile, c.Query("qr") == "true")
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// InvoiceDocument renders the complete standalone HTML document.
func (h *InvoiceHandler) InvoiceDocument(c *gin.Context) {
	invoice, tmpl, profile, ok := h.loadRenderInputs(c)
	if !ok {
		return
	}
	html := renderDocument(invoice, tmpl, profile, c.Query("qr") == "true")
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// InvoicePDF exports the invoice as a PDF download.
func (h *InvoiceHandler) InvoicePDF(c *gin.Context) {
	invoice, tmpl, profile, ok := h.loadRenderInputs(c)
	if !ok {
		return
	}

	pdfBytes, err := h.pdfService.GenerateInvoicePDF(invoice, tmpl, profile)
	if err != nil {
		h.log.Error("PDF generation failed", err, map[string]interface{}{"invoice_id": invoice.ID})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF", "details": err.Error()})
		return
	}

	h.log.LogBusinessEvent("Invoice PDF exported", invoice.ID, "export")
	filename := fmt.Sprintf("invoice_%s.pdf", invoice.InvoiceNumber)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func (h *InvoiceHandler) loadInvoice(c *gin.Context) (*models.Invoice, bool) {
	invoice, err := h.invoiceRepo.GetByID(c.Param("id"))
	if err != nil {
		h.notFoundOrError(c, err, "Invoice")
		return nil, false
	}
	return invoice, true
}

// loadRenderInputs assembles a workspace around the invoice and resolves the
// template and profile through it, honoring ?template= and ?profile= query
// overrides. Dangling references fall back to the workspace defaults.
func (h *InvoiceHandler) loadRenderInputs(c *gin.Context) (*models.Invoice, *models.Template, *models.BusinessProfile, bool) {
	invoice, ok := h.loadInvoice(c)
	if !ok {
		return nil, nil, nil, false
	}

	settings, err := h.settingsRepo.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings", "details": err.Error()})
		return nil, nil, nil, false
	}
	templateList, err := h.templateRepo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load templates", "details": err.Error()})
		return nil, nil, nil, false
	}
	profileList, err := h.profileRepo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load business profiles", "details": err.Error()})
		return nil, nil, nil, false
	}

	ws := state.NewWorkspace(*settings, templateList, profileList)
	ws.Open(invoice)

	tmpl := ws.Template()
	if id := c.Query("template"); id != "" {
		if t := ws.TemplateByID(id); t != nil {
			tmpl = t
		}
	}
	if tmpl == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load template"})
		return nil, nil, nil, false
	}

	profile := ws.Profile()
	if id := c.Query("profile"); id != "" {
		if p := ws.ProfileByID(id); p != nil {
			profile = p
		}
	}

	return invoice, tmpl, profile, true
}

func (h *InvoiceHandler) notFoundOrError(c *gin.Context, err error, what string) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": what + " not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load " + what, "details": err.Error()})
}
