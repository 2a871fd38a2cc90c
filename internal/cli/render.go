package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"invoicedesk/internal/models"
	"invoicedesk/internal/render"
	"invoicedesk/internal/state"
	"invoicedesk/internal/templates"

	"github.com/spf13/cobra"
)

var (
	renderTemplateID string
	renderOutPath    string
	renderFragment   bool
)

var renderCmd = &cobra.Command{
	Use:   "render <invoice.json>",
	Short: "Render an invoice document to HTML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, tmpl, profile, err := loadRenderInputs(args[0], renderTemplateID)
		if err != nil {
			return err
		}

		var html string
		if renderFragment {
			html = render.Preview(inv, tmpl, profile)
		} else {
			html = render.InvoiceHTML(inv, tmpl, profile)
		}

		if renderOutPath == "" || renderOutPath == "-" {
			fmt.Fprintln(cmd.OutOrStdout(), html)
			return nil
		}
		return os.WriteFile(renderOutPath, []byte(html), 0o644)
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderTemplateID, "template", "t", "", "template id (defaults to the invoice's template)")
	renderCmd.Flags().StringVarP(&renderOutPath, "out", "o", "", "output file (default stdout)")
	renderCmd.Flags().BoolVar(&renderFragment, "fragment", false, "emit the template fragment without the document shell")
	rootCmd.AddCommand(renderCmd)
}

// loadRenderInputs reads an invoice document from disk, recomputes its totals
// and resolves the template and profile through a workspace over the bundled
// defaults.
func loadRenderInputs(path, templateID string) (*models.Invoice, *models.Template, *models.BusinessProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to read invoice: %w", err)
	}
	var inv models.Invoice
	if err := json.Unmarshal(data, &inv); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to parse invoice: %w", err)
	}

	ws := state.NewWorkspace(
		models.DefaultSettings(),
		templates.Defaults(),
		[]models.BusinessProfile{templates.DefaultBusinessProfile()},
	)
	ws.Open(&inv)

	tmpl := ws.Template()
	if templateID != "" {
		if t := ws.TemplateByID(templateID); t != nil {
			tmpl = t
		}
	}
	if tmpl == nil {
		return nil, nil, nil, fmt.Errorf("no template available")
	}

	return &inv, tmpl, ws.Profile(), nil
}
