package services

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"invoicedesk/internal/calc"
	"invoicedesk/internal/config"
	"invoicedesk/internal/models"
	"invoicedesk/internal/render"

	"github.com/jung-kurt/gofpdf"
)

type PDFService struct {
	tempDir   string
	pdfConfig *config.PDFConfig
}

func NewPDFService(pdfConfig *config.PDFConfig) *PDFService {
	tempDir := filepath.Join(os.TempDir(), "invoicedesk_pdfs")

	if err := os.MkdirAll(tempDir, 0o755); err != nil {
		log.Printf("Warning: Could not create PDF temp directory: %v", err)
		tempDir = os.TempDir()
	}

	if pdfConfig == nil {
		pdfConfig = &config.PDFConfig{Generator: "auto", PaperSize: "A4"}
	}

	return &PDFService{tempDir: tempDir, pdfConfig: pdfConfig}
}

// GenerateInvoicePDF exports the invoice as PDF. HTML-based converters are
// tried first so the result matches the on-screen template; the gofpdf
// fallback produces a plain tabular document when no converter is installed.
func (s *PDFService) GenerateInvoicePDF(inv *models.Invoice, tmpl *models.Template, profile *models.BusinessProfile) ([]byte, error) {
	if inv == nil {
		return nil, fmt.Errorf("invoice cannot be nil")
	}
	if tmpl == nil {
		return nil, fmt.Errorf("template cannot be nil")
	}

	methods := []struct {
		name string
		fn   func(*models.Invoice, *models.Template, *models.BusinessProfile) ([]byte, error)
	}{
		{"Chrome/Chromium", s.generateWithChrome},
		{"wkhtmltopdf", s.generateWithWKHTMLToPDF},
		{"gofpdf", s.generateWithGofpdf},
	}

	var lastErr error
	for _, method := range methods {
		if !s.generatorEnabled(method.name) {
			continue
		}
		pdfBytes, err := method.fn(inv, tmpl, profile)
		if err == nil && len(pdfBytes) >= 4 && string(pdfBytes[:4]) == "%PDF" {
			log.Printf("PDFService: generated PDF for invoice %s using %s (%d bytes)", inv.InvoiceNumber, method.name, len(pdfBytes))
			return pdfBytes, nil
		}
		if err == nil {
			err = fmt.Errorf("%s returned invalid PDF content", method.name)
		}
		lastErr = err
		log.Printf("PDFService: %s failed: %v", method.name, err)
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("no PDF generator enabled (generator=%q)", s.pdfConfig.Generator)
	}
	return nil, fmt.Errorf("all PDF generation methods failed, last error: %w", lastErr)
}

func (s *PDFService) generatorEnabled(name string) bool {
	switch s.pdfConfig.Generator {
	case "", "auto":
		return true
	case "chrome", "chromium":
		return name == "Chrome/Chromium"
	case "wkhtmltopdf":
		return name == "wkhtmltopdf"
	case "gofpdf":
		return name == "gofpdf"
	default:
		return true
	}
}

func (s *PDFService) generateWithChrome(inv *models.Invoice, tmpl *models.Template, profile *models.BusinessProfile) ([]byte, error) {
	chromePaths := []string{"google-chrome", "chromium", "chromium-browser", "chrome"}
	var chromePath string
	for _, path := range chromePaths {
		if _, err := exec.LookPath(path); err == nil {
			chromePath = path
			break
		}
	}
	if chromePath == "" {
		return nil, fmt.Errorf("Chrome/Chromium not found")
	}

	htmlFile, pdfFile, cleanup, err := s.writeHTML(inv, tmpl, profile)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	cmd := exec.Command(chromePath,
		"--headless",
		"--disable-gpu",
		"--no-sandbox",
		"--disable-dev-shm-usage",
		"--print-to-pdf="+pdfFile,
		"--print-to-pdf-no-header",
		"--virtual-time-budget=5000",
		"file://"+htmlFile)
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("Chrome PDF generation failed: %w", err)
	}

	return readPDF(pdfFile)
}

func (s *PDFService) generateWithWKHTMLToPDF(inv *models.Invoice, tmpl *models.Template, profile *models.BusinessProfile) ([]byte, error) {
	if _, err := exec.LookPath("wkhtmltopdf"); err != nil {
		return nil, fmt.Errorf("wkhtmltopdf not found")
	}

	htmlFile, pdfFile, cleanup, err := s.writeHTML(inv, tmpl, profile)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	paperSize := s.pdfConfig.PaperSize
	if paperSize == "" {
		paperSize = "A4"
	}
	cmd := exec.Command("wkhtmltopdf",
		"--page-size", paperSize,
		"--margin-top", "1cm",
		"--margin-bottom", "1cm",
		"--margin-left", "1cm",
		"--margin-right", "1cm",
		"--enable-local-file-access",
		"--disable-smart-shrinking",
		"--print-media-type",
		htmlFile, pdfFile)
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("wkhtmltopdf failed: %w", err)
	}

	return readPDF(pdfFile)
}

// writeHTML renders the invoice document and stages it in the temp dir.
func (s *PDFService) writeHTML(inv *models.Invoice, tmpl *models.Template, profile *models.BusinessProfile) (htmlFile, pdfFile string, cleanup func(), err error) {
	stamp := time.Now().UnixNano()
	htmlFile = filepath.Join(s.tempDir, fmt.Sprintf("invoice_%s_%d.html", inv.ID, stamp))
	pdfFile = filepath.Join(s.tempDir, fmt.Sprintf("invoice_%s_%d.pdf", inv.ID, stamp))
	cleanup = func() {
		os.Remove(htmlFile)
		os.Remove(pdfFile)
	}

	content := render.InvoiceHTML(inv, tmpl, profile)
	if err = os.WriteFile(htmlFile, []byte(content), 0o644); err != nil {
		cleanup()
		return "", "", nil, fmt.Errorf("failed to write HTML file: %w", err)
	}
	return htmlFile, pdfFile, cleanup, nil
}

func readPDF(path string) ([]byte, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("PDF file was not generated")
	}
	pdfBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF file: %w", err)
	}
	if len(pdfBytes) == 0 {
		return nil, fmt.Errorf("generated PDF file is empty")
	}
	return pdfBytes, nil
}

// generateWithGofpdf is the dependency-free fallback: a plain layout that
// carries the same numbers as the HTML templates, without their styling.
func (s *PDFService) generateWithGofpdf(inv *models.Invoice, tmpl *models.Template, profile *models.BusinessProfile) ([]byte, error) {
	money := func(amount float64) string {
		return calc.FormatCurrency(amount, inv.Currency, inv.Locale)
	}

	paperSize := s.pdfConfig.PaperSize
	if paperSize == "" {
		paperSize = "A4"
	}
	pdf := gofpdf.New("P", "mm", paperSize, "")
	pdf.AddPage()
	pdf.SetMargins(20, 20, 20)

	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(31, 41, 55)
	if profile != nil && profile.Name != "" {
		pdf.Cell(0, 10, profile.Name)
		pdf.Ln(8)
	}

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(0, 0, 0)
	if profile != nil {
		for _, line := range splitLines(profile.Address) {
			pdf.Cell(0, 5, line)
			pdf.Ln(5)
		}
		if profile.Email != "" {
			pdf.Cell(0, 5, profile.Email)
			pdf.Ln(5)
		}
		if profile.Phone != "" {
			pdf.Cell(0, 5, profile.Phone)
			pdf.Ln(5)
		}
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, "INVOICE "+inv.InvoiceNumber)
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 5, "Date: "+render.FormatDate(inv.IssueDate, inv.Locale))
	pdf.Ln(5)
	pdf.Cell(0, 5, "Due: "+render.FormatDate(inv.DueDate, inv.Locale))
	pdf.Ln(5)
	pdf.Cell(0, 5, render.PaymentTermsDisplay(inv.PaymentTerms))
	pdf.Ln(8)

	if inv.Client.Name != "" {
		pdf.SetFont("Arial", "B", 10)
		pdf.Cell(0, 5, "Bill To:")
		pdf.Ln(5)
		pdf.SetFont("Arial", "", 10)
		pdf.Cell(0, 5, inv.Client.Name)
		pdf.Ln(5)
		if inv.Client.Company != "" {
			pdf.Cell(0, 5, inv.Client.Company)
			pdf.Ln(5)
		}
		for _, line := range splitLines(inv.Client.BillingAddress) {
			pdf.Cell(0, 5, line)
			pdf.Ln(5)
		}
		pdf.Ln(3)
	}

	// Items table
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(243, 244, 246)
	pdf.CellFormat(75, 7, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 7, "Qty", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 7, "Rate", "1", 0, "R", true, 0, "")
	pdf.CellFormat(20, 7, "Disc.", "1", 0, "R", true, 0, "")
	pdf.CellFormat(25, 7, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	for i := range inv.Items {
		item := &inv.Items[i]
		discountDisplay := ""
		if item.Discount != nil {
			if item.Discount.Type == models.TypePercent {
				discountDisplay = trimFloat(item.Discount.Value.Float()) + "%"
			} else {
				discountDisplay = money(item.Discount.Value.Float())
			}
		}
		pdf.CellFormat(75, 6, item.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 6, trimFloat(item.Quantity.Float()), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, money(item.UnitPrice.Float()), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 6, discountDisplay, "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, money(calc.ItemTotal(item)), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// Totals block, right-aligned
	totalRow := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Arial", style, 10)
		pdf.CellFormat(125, 6, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, value, "", 1, "R", false, 0, "")
	}
	totalRow("Subtotal", money(inv.Totals.Subtotal), false)
	if inv.Totals.ItemDiscounts != 0 {
		totalRow("Item disc.", "-"+money(inv.Totals.ItemDiscounts), false)
	}
	if inv.Totals.InvoiceDiscounts != 0 {
		totalRow("Discounts", "-"+money(inv.Totals.InvoiceDiscounts), false)
	}
	if inv.Totals.Fees != 0 {
		totalRow("Fees", money(inv.Totals.Fees), false)
	}
	totalRow("Tax", money(inv.Totals.Tax), false)
	totalRow("Total", money(inv.Totals.GrandTotal), true)
	if inv.Totals.Paid != 0 {
		totalRow("Paid", "-"+money(inv.Totals.Paid), false)
	}
	totalRow("Balance Due", money(inv.Totals.BalanceDue), true)

	if inv.Notes != "" {
		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 9)
		pdf.Cell(0, 5, "Notes:")
		pdf.Ln(5)
		pdf.SetFont("Arial", "", 9)
		for _, line := range splitLines(inv.Notes) {
			pdf.Cell(0, 5, line)
			pdf.Ln(5)
		}
	}
	if inv.Terms != "" {
		pdf.Ln(3)
		pdf.SetFont("Arial", "I", 8)
		for _, line := range splitLines(inv.Terms) {
			pdf.Cell(0, 4, line)
			pdf.Ln(4)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("gofpdf output failed: %w", err)
	}
	return buf.Bytes(), nil
}
