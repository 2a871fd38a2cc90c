package render

import (
	"strings"
	"testing"
)

func TestRenderVariables(t *testing.T) {
	data := map[string]interface{}{
		"name":  "Acme",
		"count": 3,
		"price": 19.5,
		"invoice": map[string]interface{}{
			"invoiceNumber": "INV-001",
		},
	}

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"simple", "Hello {{name}}", "Hello Acme"},
		{"integer", "{{count}} items", "3 items"},
		{"float", "{{price}}", "19.5"},
		{"dotted path", "#{{invoice.invoiceNumber}}", "#INV-001"},
		{"missing key", "[{{missing}}]", "[]"},
		{"missing dotted", "[{{invoice.missing}}]", "[]"},
		{"whitespace in tag", "{{ name }}", "Acme"},
		{"comment dropped", "a{{! note }}b", "ab"},
		{"triple stache treated raw", "{{{name}}}", "Acme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.template, data); got != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.template, got, tt.want)
			}
		})
	}
}

func TestRenderNoEscaping(t *testing.T) {
	data := map[string]interface{}{
		"workDetails": "<b>Site work</b> & cleanup",
		"symbol":      "€1.234,56",
	}
	got := Render("{{workDetails}} for {{symbol}}", data)
	want := "<b>Site work</b> & cleanup for €1.234,56"
	if got != want {
		t.Errorf("Render() = %q, want raw insertion %q", got, want)
	}
}

func TestRenderSections(t *testing.T) {
	tests := []struct {
		name     string
		template string
		data     map[string]interface{}
		want     string
	}{
		{
			"truthy string shows",
			"{{#note}}note: {{note}}{{/note}}",
			map[string]interface{}{"note": "hi"},
			"note: hi",
		},
		{
			"false hides",
			"{{#flag}}shown{{/flag}}",
			map[string]interface{}{"flag": false},
			"",
		},
		{
			"empty string hides",
			"{{#note}}shown{{/note}}",
			map[string]interface{}{"note": ""},
			"",
		},
		{
			"zero hides",
			"{{#n}}shown{{/n}}",
			map[string]interface{}{"n": 0},
			"",
		},
		{
			"missing hides",
			"{{#nope}}shown{{/nope}}",
			map[string]interface{}{},
			"",
		},
		{
			"list iterates with element context",
			"{{#items}}[{{name}}]{{/items}}",
			map[string]interface{}{"items": []map[string]interface{}{
				{"name": "a"}, {"name": "b"},
			}},
			"[a][b]",
		},
		{
			"empty list hides",
			"{{#items}}[{{name}}]{{/items}}",
			map[string]interface{}{"items": []map[string]interface{}{}},
			"",
		},
		{
			"map pushes context",
			"{{#client}}{{name}}{{/client}}",
			map[string]interface{}{"client": map[string]interface{}{"name": "Jo"}},
			"Jo",
		},
		{
			"outer scope visible inside section",
			"{{#items}}{{currency}}{{n}};{{/items}}",
			map[string]interface{}{
				"currency": "$",
				"items":    []interface{}{map[string]interface{}{"n": 1.0}, map[string]interface{}{"n": 2.0}},
			},
			"$1;$2;",
		},
		{
			"dotted section key",
			"{{#business.logoPath}}<img src=\"{{business.logoPath}}\">{{/business.logoPath}}",
			map[string]interface{}{"business": map[string]interface{}{"logoPath": "logo.png"}},
			`<img src="logo.png">`,
		},
		{
			"dotted section key falsy",
			"{{#business.logoPath}}shown{{/business.logoPath}}",
			map[string]interface{}{"business": map[string]interface{}{"logoPath": ""}},
			"",
		},
		{
			"inverted shows on falsy",
			"{{^items}}empty{{/items}}",
			map[string]interface{}{"items": []interface{}{}},
			"empty",
		},
		{
			"inverted hides on truthy",
			"{{^items}}empty{{/items}}",
			map[string]interface{}{"items": []interface{}{"x"}},
			"",
		},
		{
			"nested sections",
			"{{#a}}{{#b}}deep{{/b}}{{/a}}",
			map[string]interface{}{"a": true, "b": true},
			"deep",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.template, tt.data); got != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.template, got, tt.want)
			}
		})
	}
}

func TestRenderMalformedTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template string
	}{
		{"unclosed section", "{{#items}}no close"},
		{"mismatched close", "{{#a}}x{{/b}}"},
		{"stray close", "x{{/a}}"},
		{"unclosed tag", "{{name"},
		{"empty tag", "{{}}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.template, map[string]interface{}{})
			if !strings.HasPrefix(got, `<div class="error">Error rendering template:`) {
				t.Errorf("Render(%q) = %q, want inline error fragment", tt.template, got)
			}
			if Validate(tt.template) == nil {
				t.Errorf("Validate(%q) = nil, want error", tt.template)
			}
		})
	}
}

func TestValidateAcceptsGoodTemplate(t *testing.T) {
	tmpl := "{{#items}}{{name}}{{/items}}{{^items}}none{{/items}} {{totals.grandTotal}}"
	if err := Validate(tmpl); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}
