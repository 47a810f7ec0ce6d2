package query

import (
	"regexp"
	"strings"
)

// IdentifierPattern é a gramática do número único CNJ: NNNNNNN-DD.AAAA.J.TR.OOOO
const IdentifierPattern = `\d{7}-\d{2}\.\d{4}\.\d\.\d{2}\.\d{4}`

var (
	identifierInText = regexp.MustCompile(`\b` + IdentifierPattern + `\b`)
	identifierExact  = regexp.MustCompile(`^` + IdentifierPattern + `$`)
)

// Extract retorna o primeiro número de processo CNJ encontrado no texto.
// Os dígitos verificadores não são conferidos.
func Extract(text string) (string, bool) {
	match := identifierInText.FindString(text)
	if match == "" {
		return "", false
	}
	return match, true
}

// IsIdentifier verifica se a string inteira é um número CNJ
func IsIdentifier(s string) bool {
	return identifierExact.MatchString(strings.TrimSpace(s))
}

// Segments separa o número nos cinco blocos delimitados por ponto:
// sequencial-DV, ano, ramo (J), tribunal (TR) e origem.
func Segments(identifier string) []string {
	return strings.Split(identifier, ".")
}
