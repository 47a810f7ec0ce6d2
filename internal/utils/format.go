package utils

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/prefeitura-rio/app-busca-processos/internal/models"
)

var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

// dateLayouts são os formatos de data vistos nas respostas do Datajud
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"20060102150405",
	"2006-01-02",
}

// FormatDate converte uma data ISO para dd/mm/aaaa.
// Valores que não podem ser interpretados são devolvidos sem alteração.
func FormatDate(s string) string {
	if s == "" || s == models.NotAvailable {
		return models.NotAvailable
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return s
}

// FormatCurrency formata um valor numérico em reais.
// Exemplo: "1000.00" -> "R$ 1.000,00"
func FormatCurrency(s string) string {
	if s == "" || s == models.NotAvailable {
		return models.NotAvailable
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return s
	}
	return brPrinter.Sprintf("R$ %v", number.Decimal(v, number.Scale(2)))
}
