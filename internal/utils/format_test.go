package utils

import (
	"testing"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"ISO com Z", "2020-01-01T00:00:00Z", "01/01/2020"},
		{"ISO com offset", "2021-03-15T10:30:00-03:00", "15/03/2021"},
		{"ISO com milissegundos", "2022-12-31T23:59:59.000", "31/12/2022"},
		{"somente data", "2019-07-04", "04/07/2019"},
		{"formato compacto", "20200102000000", "02/01/2020"},
		{"N/A", "N/A", "N/A"},
		{"vazio", "", "N/A"},
		{"não interpretável", "ontem", "ontem"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDate(tt.input); got != tt.expected {
				t.Errorf("FormatDate(%q) = %q; expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"mil", "1000.00", "R$ 1.000,00"},
		{"centavos", "0.5", "R$ 0,50"},
		{"milhões", "1234567.891", "R$ 1.234.567,89"},
		{"inteiro", "42", "R$ 42,00"},
		{"N/A", "N/A", "N/A"},
		{"vazio", "", "N/A"},
		{"não numérico", "a definir", "a definir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCurrency(tt.input); got != tt.expected {
				t.Errorf("FormatCurrency(%q) = %q; expected %q", tt.input, got, tt.expected)
			}
		})
	}
}
