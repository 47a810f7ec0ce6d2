package utils

import (
	"testing"
)

func TestRemoveAccents(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Paraíba", "Paraiba"},
		{"São Paulo", "Sao Paulo"},
		{"Piauí", "Piaui"},
		{"Justiça Eleitoral", "Justica Eleitoral"},
		{"Goiás", "Goias"},
		{"", ""},
	}

	for _, test := range tests {
		result := RemoveAccents(test.input)
		if result != test.expected {
			t.Errorf("RemoveAccents(%q) = %q; expected %q", test.input, result, test.expected)
		}
	}
}

func TestNormalizarTexto(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Tribunal de Justiça do  Rio de Janeiro", "tribunal de justica do rio de janeiro"},
		{"  SÃO PAULO ", "sao paulo"},
		{"1ª Região", "1ª regiao"},
		{"", ""},
	}

	for _, test := range tests {
		result := NormalizarTexto(test.input)
		if result != test.expected {
			t.Errorf("NormalizarTexto(%q) = %q; expected %q", test.input, result, test.expected)
		}
	}
}

func TestContemTermo(t *testing.T) {
	tests := []struct {
		texto    string
		termo    string
		expected bool
	}{
		{"Tribunal de Justiça de São Paulo", "sao paulo", true},
		{"Tribunal Regional Eleitoral do Piauí", "PIAUI", true},
		{"Superior Tribunal de Justiça", "trabalho", false},
		{"Tribunal Regional Federal da 1ª Região", "", true},
	}

	for _, test := range tests {
		result := ContemTermo(test.texto, test.termo)
		if result != test.expected {
			t.Errorf("ContemTermo(%q, %q) = %v; expected %v", test.texto, test.termo, result, test.expected)
		}
	}
}
