package models

import (
	"encoding/json"
	"testing"
)

func TestAmountUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"plain number", `42.5`, 42.5},
		{"integer", `7`, 7},
		{"negative", `-3.25`, -3.25},
		{"quoted number", `"19.99"`, 19.99},
		{"quoted with commas", `"1,234.56"`, 1234.56},
		{"quoted with currency prefix", `"$25.00"`, 25},
		{"quoted negative", `"-10.5"`, -10.5},
		{"empty string", `""`, 0},
		{"whitespace string", `"   "`, 0},
		{"null", `null`, 0},
		{"garbage string", `"abc"`, 0},
		{"lone minus", `"-"`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			if err := json.Unmarshal([]byte(tt.input), &a); err != nil {
				t.Fatalf("Unmarshal(%s) returned error: %v", tt.input, err)
			}
			if a.Float() != tt.want {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.input, a.Float(), tt.want)
			}
		})
	}
}

func TestAmountUnmarshalNeverErrors(t *testing.T) {
	inputs := []string{`{}`, `[]`, `true`, `"12.3.4"`, `"NaN"`}
	for _, input := range inputs {
		var a Amount
		if err := json.Unmarshal([]byte(input), &a); err != nil {
			t.Errorf("Unmarshal(%s) returned error: %v", input, err)
		}
	}
}

func TestAmountMarshal(t *testing.T) {
	data, err := json.Marshal(Amount(12.5))
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	if string(data) != "12.5" {
		t.Errorf("Marshal(12.5) = %s, want 12.5", data)
	}
}

func TestAmountRoundTripInItem(t *testing.T) {
	in := `{"id":"item_1","name":"Consulting","quantity":"2","unitPrice":"1,500.00"}`
	var it InvoiceItem
	if err := json.Unmarshal([]byte(in), &it); err != nil {
		t.Fatalf("Unmarshal item: %v", err)
	}
	if it.Quantity.Float() != 2 || it.UnitPrice.Float() != 1500 {
		t.Errorf("item decoded quantity=%v unitPrice=%v, want 2 and 1500", it.Quantity.Float(), it.UnitPrice.Float())
	}
}
