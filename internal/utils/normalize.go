package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// RemoveAccents remove acentos e diacríticos.
// Exemplo: "Paraíba" -> "Paraiba", "São Paulo" -> "Sao Paulo"
func RemoveAccents(s string) string {
	if s == "" {
		return s
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, _ := transform.String(t, s)
	return normalized
}

// NormalizarTexto remove acentos, converte para minúsculas e colapsa espaços.
// Usado para comparar nomes de tribunais digitados pelo usuário.
func NormalizarTexto(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(RemoveAccents(s))), " ")
}

// ContemTermo indica se o texto contém o termo, ignorando acentos e caixa
func ContemTermo(texto, termo string) bool {
	return strings.Contains(NormalizarTexto(texto), NormalizarTexto(termo))
}
