// Package render apresenta resultados normalizados como Markdown, HTML ou texto.
package render

import (
	"fmt"
	"strings"

	"github.com/prefeitura-rio/app-busca-processos/internal/models"
	"github.com/prefeitura-rio/app-busca-processos/internal/utils"
)

// MaxMovements é o número de movimentações exibidas por processo
const MaxMovements = 5

const timestampLayout = "02/01/2006 15:04:05"

// Markdown gera o relatório legível de um resultado
func Markdown(result *models.NormalizedResult) string {
	var b strings.Builder

	b.WriteString("# Resultado da consulta ao Datajud\n\n")
	writeMetadata(&b, result)

	if len(result.Records) == 0 {
		b.WriteString("Nenhum processo encontrado.\n")
		return b.String()
	}

	for i, p := range result.Records {
		fmt.Fprintf(&b, "## Processo %d/%d: %s\n\n", i+1, len(result.Records), escape(p.Number))
		writeProcess(&b, p)
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeMetadata(b *strings.Builder, result *models.NormalizedResult) {
	md := result.Metadata

	processNumber := models.NotAvailable
	if md.ProcessNumber != nil {
		processNumber = *md.ProcessNumber
	}
	timestamp := models.NotAvailable
	if !md.Timestamp.IsZero() {
		timestamp = md.Timestamp.Format(timestampLayout)
	}

	field(b, "Consulta", orNA(md.Query))
	field(b, "Número do processo", processNumber)
	field(b, "Tribunal", strings.ToUpper(orNA(md.Court)))
	field(b, "Data da consulta", timestamp)
	field(b, "Total de resultados", fmt.Sprint(result.TotalHits))
	b.WriteString("\n")
}

func writeProcess(b *strings.Builder, p models.ProcessRecord) {
	field(b, "Classe", p.Class)
	field(b, "Assunto", p.Subject)
	field(b, "Data de ajuizamento", utils.FormatDate(p.FilingDate))
	field(b, "Valor da causa", utils.FormatCurrency(p.CaseValue))
	field(b, "Órgão julgador", p.JudgingBody)
	b.WriteString("\n")

	if len(p.Parties) > 0 {
		b.WriteString("### Partes\n\n")
		for _, party := range p.Parties {
			fmt.Fprintf(b, "- **%s:** %s%s\n", escape(party.Role), escape(party.Name), document(party.DocumentID))
			for _, lawyer := range party.Lawyers {
				fmt.Fprintf(b, "  - Advogado(a): %s%s\n", escape(lawyer.Name), document(lawyer.DocumentID))
			}
		}
		b.WriteString("\n")
	}

	if len(p.Movements) > 0 {
		b.WriteString("### Movimentações recentes\n\n")
		for i, m := range p.Movements {
			if i == MaxMovements {
				break
			}
			fmt.Fprintf(b, "%d. %s - %s", i+1, escape(utils.FormatDate(m.Date)), escape(m.Name))
			if m.Note != "" && m.Note != models.NotAvailable {
				fmt.Fprintf(b, ": %s", escape(m.Note))
			}
			b.WriteString("\n")
		}
		if rest := len(p.Movements) - MaxMovements; rest > 0 {
			if rest == 1 {
				b.WriteString("\n... e mais 1 movimentação\n")
			} else {
				fmt.Fprintf(b, "\n... e mais %d movimentações\n", rest)
			}
		}
		b.WriteString("\n")
	}
}

func field(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "- **%s:** %s\n", label, escape(value))
}

// markdownEscaper protege a marcação de valores vindos do usuário ou do Datajud.
// Quebras de linha viram espaço para o valor não abrir um novo bloco.
var markdownEscaper = strings.NewReplacer(
	"\\", "\\\\",
	"`", "\\`",
	"*", "\\*",
	"_", "\\_",
	"[", "\\[",
	"]", "\\]",
	"<", "\\<",
	">", "\\>",
	"&", "\\&",
	"!", "\\!",
	"~", "\\~",
	"^", "\\^",
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
)

// escape torna o texto literal dentro do relatório
func escape(s string) string {
	return markdownEscaper.Replace(s)
}

// document formata o documento entre parênteses, omitindo vazios
func document(doc string) string {
	if doc == "" || doc == models.NotAvailable {
		return ""
	}
	return " (" + escape(doc) + ")"
}

func orNA(s string) string {
	if s == "" {
		return models.NotAvailable
	}
	return s
}
