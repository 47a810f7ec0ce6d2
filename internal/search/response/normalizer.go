// Package response converte o JSON do Datajud no modelo normalizado de processos.
//
// A conversão nunca falha por falta de dados: cada campo escalar ausente recebe
// models.NotAvailable e listas ausentes viram listas vazias. A ordem de partes,
// advogados e movimentos é mantida exatamente como veio da API.
package response

import (
	"github.com/prefeitura-rio/app-busca-processos/internal/models"
)

// Normalize converte a resposta bruta em NormalizedResult (sem metadados)
func Normalize(raw map[string]interface{}) models.NormalizedResult {
	result := models.NormalizedResult{
		TotalHits: totalHits(raw),
		Records:   []models.ProcessRecord{},
	}

	for _, hit := range listAt(raw, "hits", "hits") {
		source := objectAt(asObject(hit), "_source")
		result.Records = append(result.Records, normalizeProcess(source))
	}

	return result
}

// totalHits lê hits.total.value; aceita também hits.total numérico
func totalHits(raw map[string]interface{}) int {
	if n, ok := intAt(raw, "hits", "total", "value"); ok && n >= 0 {
		return n
	}
	if n, ok := intAt(raw, "hits", "total"); ok && n >= 0 {
		return n
	}
	return 0
}

func normalizeProcess(source map[string]interface{}) models.ProcessRecord {
	record := models.ProcessRecord{
		Number:      stringAt(source, "numeroProcesso"),
		Class:       stringAt(source, "classe", "nome"),
		Subject:     stringAt(source, "assunto", "nome"),
		FilingDate:  stringAt(source, "dadosBasicos", "dataAjuizamento"),
		CaseValue:   stringAt(source, "dadosBasicos", "valorCausa"),
		JudgingBody: stringAt(source, "orgaoJulgador", "nome"),
		Parties:     []models.PartyRecord{},
		Movements:   []models.MovementRecord{},
	}

	for _, p := range listAt(source, "partes") {
		record.Parties = append(record.Parties, normalizeParty(asObject(p)))
	}

	for _, m := range listAt(source, "movimentos") {
		mov := asObject(m)
		record.Movements = append(record.Movements, models.MovementRecord{
			Date: stringAt(mov, "data"),
			Name: stringAt(mov, "nome"),
			Note: stringAt(mov, "complemento"),
		})
	}

	return record
}

func normalizeParty(party map[string]interface{}) models.PartyRecord {
	record := models.PartyRecord{
		Role:       stringAt(party, "tipo"),
		Name:       stringAt(party, "pessoa", "nome"),
		DocumentID: stringAt(party, "pessoa", "numeroDocumentoPrincipal"),
		Lawyers:    []models.LawyerRecord{},
	}

	for _, a := range listAt(party, "advogados") {
		lawyer := asObject(a)
		record.Lawyers = append(record.Lawyers, models.LawyerRecord{
			Name:       stringAt(lawyer, "pessoa", "nome"),
			DocumentID: stringAt(lawyer, "pessoa", "numeroDocumentoPrincipal"),
		})
	}

	return record
}
