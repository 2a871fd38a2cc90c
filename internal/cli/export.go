package cli

import (
	"fmt"
	"os"

	"invoicedesk/internal/config"
	"invoicedesk/internal/services"

	"github.com/spf13/cobra"
)

var (
	exportTemplateID string
	exportOutPath    string
)

var exportCmd = &cobra.Command{
	Use:   "export <invoice.json>",
	Short: "Export an invoice document to PDF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, tmpl, profile, err := loadRenderInputs(args[0], exportTemplateID)
		if err != nil {
			return err
		}

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		pdfService := services.NewPDFService(&cfg.PDF)
		pdfBytes, err := pdfService.GenerateInvoicePDF(inv, tmpl, profile)
		if err != nil {
			return fmt.Errorf("failed to generate PDF: %w", err)
		}

		out := exportOutPath
		if out == "" {
			out = fmt.Sprintf("invoice_%s.pdf", inv.InvoiceNumber)
		}
		if err := os.WriteFile(out, pdfBytes, 0o644); err != nil {
			return fmt.Errorf("failed to write PDF: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", out, len(pdfBytes))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportTemplateID, "template", "t", "", "template id (defaults to the invoice's template)")
	exportCmd.Flags().StringVarP(&exportOutPath, "out", "o", "", "output PDF file")
	rootCmd.AddCommand(exportCmd)
}
