package templates

import (
	"testing"

	"invoicedesk/internal/render"
)

func TestDefaultsAreValidTemplates(t *testing.T) {
	defaults := Defaults()
	if len(defaults) == 0 {
		t.Fatal("no built-in templates")
	}

	seen := map[string]bool{}
	for _, tmpl := range defaults {
		if tmpl.ID == "" || tmpl.Name == "" {
			t.Errorf("template %+v missing id or name", tmpl)
		}
		if !tmpl.BuiltIn {
			t.Errorf("template %s must be flagged built-in", tmpl.ID)
		}
		if seen[tmpl.ID] {
			t.Errorf("duplicate template id %s", tmpl.ID)
		}
		seen[tmpl.ID] = true

		if err := render.Validate(tmpl.HTML); err != nil {
			t.Errorf("template %s has invalid markup: %v", tmpl.ID, err)
		}
	}
}

func TestByID(t *testing.T) {
	if got := ByID("clean-professional"); got == nil || got.ID != "clean-professional" {
		t.Errorf("ByID(clean-professional) = %+v", got)
	}
	if got := ByID("nope"); got != nil {
		t.Errorf("ByID(nope) = %+v, want nil", got)
	}

	// Callers get copies, not the shared definitions.
	a := ByID("clean-professional")
	a.Name = "mutated"
	if b := ByID("clean-professional"); b.Name == "mutated" {
		t.Error("ByID must return an independent copy")
	}
}

func TestDefaultBusinessProfile(t *testing.T) {
	p := DefaultBusinessProfile()
	if p.ID != "default" {
		t.Errorf("ID = %q, want default", p.ID)
	}
	if p.Name == "" || p.Color == "" {
		t.Errorf("profile missing name or color: %+v", p)
	}
}
