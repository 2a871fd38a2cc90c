package state

import (
	"testing"
	"time"

	"invoicedesk/internal/models"
	"invoicedesk/internal/templates"
)

func testWorkspace() *Workspace {
	return NewWorkspace(
		models.DefaultSettings(),
		templates.Defaults(),
		[]models.BusinessProfile{templates.DefaultBusinessProfile()},
	)
}

func TestWorkspaceOpenRecalculates(t *testing.T) {
	w := testWorkspace()
	inv := models.NewInvoice(w.Settings, "", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))
	inv.Items = append(inv.Items, models.InvoiceItem{
		ID:        "item-1",
		Name:      "Consulting",
		Quantity:  models.Amount(2),
		UnitPrice: models.Amount(50),
	})
	inv.Totals = models.InvoiceTotals{} // stale

	w.Open(inv)

	if w.Invoice != inv {
		t.Fatal("Open should adopt the given invoice")
	}
	if got := w.Invoice.Totals.GrandTotal; got != 100 {
		t.Errorf("GrandTotal = %v, want 100", got)
	}
}

func TestWorkspaceApplyWithoutInvoice(t *testing.T) {
	w := testWorkspace()
	// Must not panic.
	w.Apply(SetNotes{Notes: "ignored"})
	if w.Invoice != nil {
		t.Error("Apply without an open invoice should stay empty")
	}
}

func TestWorkspaceApplyMutatesCurrentInvoice(t *testing.T) {
	w := testWorkspace()
	w.Open(models.NewInvoice(w.Settings, "", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)))

	w.Apply(
		AddItem{Item: models.InvoiceItem{Name: "Design", Quantity: models.Amount(1), UnitPrice: models.Amount(200)}},
		SetNotes{Notes: "thanks"},
	)

	if len(w.Invoice.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(w.Invoice.Items))
	}
	if w.Invoice.Notes != "thanks" {
		t.Errorf("Notes = %q", w.Invoice.Notes)
	}
	if got := w.Invoice.Totals.GrandTotal; got != 200 {
		t.Errorf("GrandTotal = %v, want 200", got)
	}
}

func TestWorkspaceTemplateResolution(t *testing.T) {
	w := testWorkspace()

	// No invoice open: settings default.
	if tmpl := w.Template(); tmpl == nil || tmpl.ID != w.Settings.DefaultTemplateID {
		t.Fatalf("default template = %+v", tmpl)
	}

	inv := models.NewInvoice(w.Settings, "compact-ledger", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))
	w.Open(inv)
	if tmpl := w.Template(); tmpl == nil || tmpl.ID != "compact-ledger" {
		t.Fatalf("invoice template = %+v", tmpl)
	}

	// A dangling reference falls back to the settings default.
	inv.TemplateID = "deleted-template"
	if tmpl := w.Template(); tmpl == nil || tmpl.ID != w.Settings.DefaultTemplateID {
		t.Fatalf("fallback template = %+v", tmpl)
	}
}

func TestWorkspaceProfileResolution(t *testing.T) {
	w := testWorkspace()
	w.Profiles = append(w.Profiles, models.BusinessProfile{ID: "prof-2", Name: "Side Studio"})

	if p := w.Profile(); p == nil || p.ID != "default" {
		t.Fatalf("default profile = %+v", p)
	}

	inv := models.NewInvoice(w.Settings, "", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))
	inv.BusinessProfileID = "prof-2"
	w.Open(inv)
	if p := w.Profile(); p == nil || p.ID != "prof-2" {
		t.Fatalf("invoice profile = %+v", p)
	}

	inv.BusinessProfileID = "gone"
	if p := w.Profile(); p == nil || p.ID != "default" {
		t.Fatalf("fallback profile = %+v", p)
	}

	if w.ProfileByID("nope") != nil {
		t.Error("ProfileByID should return nil for unknown ids")
	}
}
