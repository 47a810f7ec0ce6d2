package models

import "time"

// NotAvailable é o valor usado quando um campo não vem na resposta do Datajud
const NotAvailable = "N/A"

// NormalizedResult é o resultado normalizado de uma consulta ao Datajud
type NormalizedResult struct {
	TotalHits int             `json:"total_hits" example:"1"`
	Records   []ProcessRecord `json:"processes"`
	Metadata  QueryMetadata   `json:"metadata"`
}

// QueryMetadata descreve como a consulta foi resolvida
type QueryMetadata struct {
	// Texto original informado
	Query string `json:"query" example:"0000001-70.2020.1.01.0000"`
	// Número CNJ extraído do texto (null quando não encontrado)
	ProcessNumber *string `json:"process_number" example:"0000001-70.2020.1.01.0000"`
	// Código do tribunal consultado
	Court     string    `json:"court" example:"trf1"`
	Timestamp time.Time `json:"timestamp"`
}

// ProcessRecord representa um processo judicial
type ProcessRecord struct {
	Number      string           `json:"numero_processo"`
	Class       string           `json:"classe"`
	Subject     string           `json:"assunto"`
	FilingDate  string           `json:"data_ajuizamento"`
	CaseValue   string           `json:"valor_causa"`
	JudgingBody string           `json:"orgao_julgador"`
	Parties     []PartyRecord    `json:"partes"`
	Movements   []MovementRecord `json:"movimentos"`
}

// PartyRecord representa uma parte do processo
type PartyRecord struct {
	Role       string         `json:"tipo"`
	Name       string         `json:"nome"`
	DocumentID string         `json:"documento"`
	Lawyers    []LawyerRecord `json:"advogados"`
}

// LawyerRecord representa um advogado de uma parte
type LawyerRecord struct {
	Name       string `json:"nome"`
	DocumentID string `json:"documento"`
}

// MovementRecord representa uma movimentação processual
type MovementRecord struct {
	Date string `json:"data"`
	Name string `json:"nome"`
	Note string `json:"complemento"`
}
