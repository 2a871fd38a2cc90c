package models

// Template is a stored invoice layout: branding, page layout defaults and
// the substitution markup the renderer fills in.
type Template struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Brand    TemplateBrand    `json:"brand"`
	Layout   TemplateLayout   `json:"layout"`
	Defaults TemplateDefaults `json:"defaults"`
	HTML     string           `json:"html"`
	CSS      string           `json:"css"`
	BuiltIn  bool             `json:"builtIn,omitempty"`
}

// TemplateBrand carries colors, fonts and the logo reference.
type TemplateBrand struct {
	PrimaryColor     string `json:"primaryColor"`
	AccentColor      string `json:"accentColor"`
	FontFamilyHeader string `json:"fontFamilyHeader"`
	FontFamilyBody   string `json:"fontFamilyBody"`
	LogoPath         string `json:"logoPath"`
}

// TemplateLayout carries page-level layout settings.
type TemplateLayout struct {
	HeaderStyle   string          `json:"headerStyle"`
	FooterText    string          `json:"footerText"`
	ShowSignature bool            `json:"showSignature"`
	Margins       TemplateMargins `json:"margins"`
}

// TemplateMargins are page margins in pixels.
type TemplateMargins struct {
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
}

// TemplateDefaults seed new invoices created from this template.
type TemplateDefaults struct {
	TaxRules []string `json:"taxRules"`
	Terms    string   `json:"terms"`
}

// BusinessProfile is the issuing business, referenced by invoices by id.
type BusinessProfile struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	TaxID       string `json:"taxId"`
	BankDetails string `json:"bankDetails"`
	LogoPath    string `json:"logoPath"`
	Color       string `json:"color"`
}

// AppSettings are the workspace-wide defaults applied to new invoices.
type AppSettings struct {
	Currency                 string `json:"currency"`
	Locale                   string `json:"locale"`
	DateFormat               string `json:"dateFormat"`
	InvoiceNumberPattern     string `json:"invoiceNumberPattern"`
	DefaultTaxes             []Tax  `json:"defaultTaxes"`
	DefaultFees              []Fee  `json:"defaultFees"`
	DefaultTemplateID        string `json:"defaultTemplateId"`
	DefaultBusinessProfileID string `json:"defaultBusinessProfileId"`
	AutosaveInterval         int    `json:"autosaveInterval"`
}

// DefaultSettings returns the settings used before any are stored.
func DefaultSettings() AppSettings {
	return AppSettings{
		Currency:                 "USD",
		Locale:                   "en-US",
		DateFormat:               "2006-01-02",
		InvoiceNumberPattern:     "INV-{YYYY}-{#####}",
		DefaultTaxes:             []Tax{},
		DefaultFees:              []Fee{},
		DefaultTemplateID:        "clean-professional",
		DefaultBusinessProfileID: "default",
		AutosaveInterval:         10000,
	}
}
