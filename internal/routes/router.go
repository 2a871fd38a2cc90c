package routes

import (
	"net/http"

	"invoicedesk/internal/config"
	"invoicedesk/internal/handlers"
	"invoicedesk/internal/logger"
	"invoicedesk/internal/repository"
	"invoicedesk/internal/services"

	"github.com/gin-gonic/gin"
)

// NewRouter wires the HTTP API. All document operations live under /api;
// /health is the liveness probe.
func NewRouter(db *repository.Database, cfg *config.Config, log *logger.StructuredLogger) *gin.Engine {
	invoiceRepo := repository.NewInvoiceRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	pdfService := services.NewPDFService(&cfg.PDF)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceRepo, templateRepo, profileRepo, settingsRepo, pdfService, log)
	templateHandler := handlers.NewTemplateHandler(templateRepo, log)
	profileHandler := handlers.NewProfileHandler(profileRepo, log)
	settingsHandler := handlers.NewSettingsHandler(settingsRepo, log)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(log.LoggingMiddleware())

	router.GET("/health", func(c *gin.Context) {
		status := http.StatusOK
		result := gin.H{"status": "ok"}
		if err := db.Ping(); err != nil {
			status = http.StatusServiceUnavailable
			result = gin.H{"status": "degraded", "error": err.Error()}
		}
		c.JSON(status, result)
	})

	api := router.Group("/api")
	{
		invoices := api.Group("/invoices")
		{
			invoices.POST("", invoiceHandler.CreateInvoice)
			invoices.GET("", invoiceHandler.ListInvoices)
			invoices.GET("/:id", invoiceHandler.GetInvoice)
			invoices.PUT("/:id", invoiceHandler.UpdateInvoice)
			invoices.DELETE("/:id", invoiceHandler.DeleteInvoice)
			invoices.POST("/:id/duplicate", invoiceHandler.DuplicateInvoice)
			invoices.GET("/:id/preview", invoiceHandler.PreviewInvoice)
			invoices.GET("/:id/document", invoiceHandler.InvoiceDocument)
			invoices.GET("/:id/pdf", invoiceHandler.InvoicePDF)
		}

		templates := api.Group("/templates")
		{
			templates.GET("", templateHandler.ListTemplates)
			templates.GET("/:id", templateHandler.GetTemplate)
			templates.POST("", templateHandler.SaveTemplate)
			templates.PUT("/:id", templateHandler.SaveTemplate)
			templates.DELETE("/:id", templateHandler.DeleteTemplate)
		}

		profiles := api.Group("/profiles")
		{
			profiles.GET("", profileHandler.ListProfiles)
			profiles.GET("/:id", profileHandler.GetProfile)
			profiles.POST("", profileHandler.SaveProfile)
			profiles.PUT("/:id", profileHandler.SaveProfile)
			profiles.DELETE("/:id", profileHandler.DeleteProfile)
		}

		settings := api.Group("/settings")
		{
			settings.GET("", settingsHandler.GetSettings)
			settings.PUT("", settingsHandler.SaveSettings)
		}
	}

	return router
}
