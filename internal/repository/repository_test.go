package repository

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"invoicedesk/internal/calc"
	"invoicedesk/internal/models"
	"invoicedesk/internal/templates"
)

func testDB(t *testing.T) *Database {
	t.Helper()
	db, err := NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func storedInvoice(number, client, updatedAt string) *models.Invoice {
	inv := models.NewInvoice(models.DefaultSettings(), "", time.Now())
	inv.InvoiceNumber = number
	inv.Client.Name = client
	inv.UpdatedAt = updatedAt
	return inv
}

func TestInvoiceSaveLoadRoundTrip(t *testing.T) {
	repo := NewInvoiceRepository(testDB(t))

	inv := storedInvoice("INV-001", "Jane", "2026-03-15T10:00:00Z")
	inv.Items = []models.InvoiceItem{
		{ID: "i1", Name: "Design", Quantity: 2, UnitPrice: 50,
			Discount: &models.ItemDiscount{Type: models.TypePercent, Value: 10}},
	}
	inv.WorkDetails = "<p>Rich text</p>"
	inv.Discounts = []models.Discount{{ID: "d1", Label: "Loyalty", Type: models.TypePercent, Value: 10}}
	inv.Taxes = []models.Tax{{ID: "t1", Label: "VAT", Rate: 10, Category: models.TaxCategoryAll}}
	inv.Payments = []models.Payment{{ID: "p1", Date: "2026-03-16", Amount: 25}}
	inv.Totals = calc.CalculateTotals(inv)

	if err := repo.Save(inv); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByID(inv.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.InvoiceNumber != "INV-001" || got.Client.Name != "Jane" {
		t.Errorf("loaded %q/%q, want INV-001/Jane", got.InvoiceNumber, got.Client.Name)
	}
	if len(got.Items) != 1 || got.Items[0].Discount == nil || got.Items[0].Discount.Value.Float() != 10 {
		t.Errorf("items did not round-trip: %+v", got.Items)
	}
	if got.WorkDetails != "<p>Rich text</p>" {
		t.Errorf("WorkDetails = %q, markup must survive storage", got.WorkDetails)
	}

	// Recomputing over the loaded document must reproduce the pre-save
	// totals exactly: storage never perturbs the numbers.
	if got.Totals != inv.Totals {
		t.Errorf("stored totals = %+v, want %+v", got.Totals, inv.Totals)
	}
	if recomputed := calc.CalculateTotals(got); recomputed != inv.Totals {
		t.Errorf("recomputed totals = %+v, want %+v", recomputed, inv.Totals)
	}
}

func TestInvoiceSaveIsUpsert(t *testing.T) {
	repo := NewInvoiceRepository(testDB(t))

	inv := storedInvoice("INV-001", "Jane", "2026-03-15T10:00:00Z")
	if err := repo.Save(inv); err != nil {
		t.Fatalf("Save: %v", err)
	}
	inv.Client.Name = "Janet"
	if err := repo.Save(inv); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	got, err := repo.GetByID(inv.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Client.Name != "Janet" {
		t.Errorf("Client.Name = %q, want Janet", got.Client.Name)
	}
	if n, _ := repo.Count(); n != 1 {
		t.Errorf("Count = %d, want 1 after upsert", n)
	}
}

func TestInvoiceGetNotFound(t *testing.T) {
	repo := NewInvoiceRepository(testDB(t))
	if _, err := repo.GetByID("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID(missing) error = %v, want ErrNotFound", err)
	}
	if err := repo.Delete("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete(missing) error = %v, want ErrNotFound", err)
	}
}

func TestInvoiceListOrderAndSearch(t *testing.T) {
	repo := NewInvoiceRepository(testDB(t))

	for _, inv := range []*models.Invoice{
		storedInvoice("INV-001", "Alpha LLC", "2026-03-01T00:00:00Z"),
		storedInvoice("INV-002", "Beta GmbH", "2026-03-03T00:00:00Z"),
		storedInvoice("INV-003", "Alpha LLC", "2026-03-02T00:00:00Z"),
	} {
		if err := repo.Save(inv); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	all, err := repo.List(nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}
	if all[0].InvoiceNumber != "INV-002" || all[2].InvoiceNumber != "INV-001" {
		t.Errorf("order = %s,%s,%s, want newest first", all[0].InvoiceNumber, all[1].InvoiceNumber, all[2].InvoiceNumber)
	}

	alpha, err := repo.List(&InvoiceListParams{SearchTerm: "Alpha"})
	if err != nil {
		t.Fatalf("List(search): %v", err)
	}
	if len(alpha) != 2 {
		t.Errorf("search Alpha returned %d, want 2", len(alpha))
	}

	limited, err := repo.List(&InvoiceListParams{Limit: 1, Offset: 1})
	if err != nil {
		t.Fatalf("List(limit): %v", err)
	}
	if len(limited) != 1 || limited[0].InvoiceNumber != "INV-003" {
		t.Errorf("paged list = %+v", limited)
	}
}

func TestTemplateRepositoryBuiltIns(t *testing.T) {
	repo := NewTemplateRepository(testDB(t))

	all, err := repo.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != len(templates.Defaults()) {
		t.Errorf("fresh store lists %d templates, want the %d built-ins", len(all), len(templates.Defaults()))
	}

	builtin := templates.Defaults()[0]
	if err := repo.Save(&builtin); !errors.Is(err, ErrBuiltIn) {
		t.Errorf("Save(builtin) error = %v, want ErrBuiltIn", err)
	}
	if err := repo.Delete(builtin.ID); !errors.Is(err, ErrBuiltIn) {
		t.Errorf("Delete(builtin) error = %v, want ErrBuiltIn", err)
	}

	got, err := repo.GetByID(builtin.ID)
	if err != nil {
		t.Fatalf("GetByID(builtin): %v", err)
	}
	if !got.BuiltIn {
		t.Error("built-in lookup lost the BuiltIn flag")
	}
}

func TestTemplateRepositoryUserTemplates(t *testing.T) {
	repo := NewTemplateRepository(testDB(t))

	tmpl := models.Template{ID: "tpl_1", Name: "Mine", HTML: "<div>{{invoice.invoiceNumber}}</div>"}
	if err := repo.Save(&tmpl); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByID("tpl_1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Mine" || got.BuiltIn {
		t.Errorf("loaded %+v", got)
	}

	all, _ := repo.List()
	if len(all) != len(templates.Defaults())+1 {
		t.Errorf("List returned %d templates", len(all))
	}

	if err := repo.Delete("tpl_1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID("tpl_1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID after delete = %v, want ErrNotFound", err)
	}
}

func TestProfileRepositoryDefaultSeed(t *testing.T) {
	repo := NewProfileRepository(testDB(t))

	def := templates.DefaultBusinessProfile()
	got, err := repo.GetByID(def.ID)
	if err != nil {
		t.Fatalf("GetByID(default): %v", err)
	}
	if got.Name != def.Name {
		t.Errorf("default profile name = %q, want %q", got.Name, def.Name)
	}

	// Saving over the default id replaces the bundled profile.
	custom := def
	custom.Name = "My Studio"
	if err := repo.Save(&custom); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, _ = repo.GetByID(def.ID)
	if got.Name != "My Studio" {
		t.Errorf("after save, name = %q, want My Studio", got.Name)
	}

	profiles, err := repo.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(profiles) != 1 {
		t.Errorf("List returned %d profiles, want 1 (no duplicate default)", len(profiles))
	}
}

func TestSettingsRepositoryDefaults(t *testing.T) {
	repo := NewSettingsRepository(testDB(t))

	settings, err := repo.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if settings.Currency != "USD" {
		t.Errorf("fresh settings currency = %q, want USD", settings.Currency)
	}

	settings.Currency = "EUR"
	settings.Locale = "de-DE"
	if err := repo.Save(settings); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.Get()
	if err != nil {
		t.Fatalf("Get after save: %v", err)
	}
	if got.Currency != "EUR" || got.Locale != "de-DE" {
		t.Errorf("settings did not round-trip: %+v", got)
	}
}
