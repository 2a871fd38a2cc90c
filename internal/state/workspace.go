package state

import "invoicedesk/internal/models"

// Workspace gathers the documents an editing session works with: the invoice
// being edited plus the templates, business profiles and settings it resolves
// references against. It is a plain value owned by its caller; there is no
// shared global instance.
type Workspace struct {
	Invoice   *models.Invoice
	Templates []models.Template
	Profiles  []models.BusinessProfile
	Settings  models.AppSettings
}

// NewWorkspace builds a workspace over the given reference documents with no
// invoice open yet.
func NewWorkspace(settings models.AppSettings, templates []models.Template, profiles []models.BusinessProfile) *Workspace {
	return &Workspace{
		Templates: templates,
		Profiles:  profiles,
		Settings:  settings,
	}
}

// Open makes inv the current invoice and refreshes its derived totals.
func (w *Workspace) Open(inv *models.Invoice) {
	Recalculate(inv)
	w.Invoice = inv
}

// Apply runs the mutations against the current invoice. A workspace with no
// open invoice ignores the call.
func (w *Workspace) Apply(muts ...Mutation) {
	if w.Invoice == nil {
		return
	}
	Apply(w.Invoice, muts...)
}

// Template resolves the current invoice's template, falling back to the
// settings default. Returns nil when neither is present.
func (w *Workspace) Template() *models.Template {
	id := w.Settings.DefaultTemplateID
	if w.Invoice != nil && w.Invoice.TemplateID != "" {
		id = w.Invoice.TemplateID
	}
	if t := w.TemplateByID(id); t != nil {
		return t
	}
	return w.TemplateByID(w.Settings.DefaultTemplateID)
}

// TemplateByID returns the workspace template with the given id, or nil.
func (w *Workspace) TemplateByID(id string) *models.Template {
	for i := range w.Templates {
		if w.Templates[i].ID == id {
			return &w.Templates[i]
		}
	}
	return nil
}

// Profile resolves the current invoice's business profile, falling back to
// the settings default. Returns nil when neither is present.
func (w *Workspace) Profile() *models.BusinessProfile {
	id := w.Settings.DefaultBusinessProfileID
	if w.Invoice != nil && w.Invoice.BusinessProfileID != "" {
		id = w.Invoice.BusinessProfileID
	}
	if p := w.ProfileByID(id); p != nil {
		return p
	}
	return w.ProfileByID(w.Settings.DefaultBusinessProfileID)
}

// ProfileByID returns the workspace profile with the given id, or nil.
func (w *Workspace) ProfileByID(id string) *models.BusinessProfile {
	for i := range w.Profiles {
		if w.Profiles[i].ID == id {
			return &w.Profiles[i]
		}
	}
	return nil
}
