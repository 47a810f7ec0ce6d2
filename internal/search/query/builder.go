package query

import (
	"encoding/json"
	"fmt"
)

// MaxResults é o limite fixo de documentos por consulta
const MaxResults = 100

// FieldProcessNumber é o campo usado na busca exata por número
const FieldProcessNumber = "numeroProcesso"

// DefaultFields são os campos da busca textual em múltiplos campos
var DefaultFields = []string{
	"classe.nome",
	"assunto.nome",
	"orgaoJulgador.nome",
	"dadosBasicos.valorCausa",
}

// Kind identifica a variante da consulta
type Kind string

const (
	KindExact       Kind = "exact"
	KindMultiField  Kind = "multi_field"
	KindSingleField Kind = "single_field"
)

// SearchQuery é a consulta estruturada enviada ao Datajud.
// Field vale para exact e single_field; Fields apenas para multi_field.
type SearchQuery struct {
	Kind   Kind
	Field  string
	Fields []string
	Value  string
	Limit  int
}

// BuildExact monta a consulta por número de processo
func BuildExact(identifier string) SearchQuery {
	return SearchQuery{
		Kind:  KindExact,
		Field: FieldProcessNumber,
		Value: identifier,
		Limit: MaxResults,
	}
}

// BuildMultiField monta a busca textual. Sem campos, usa DefaultFields.
func BuildMultiField(text string, fields ...string) SearchQuery {
	if len(fields) == 0 {
		fields = DefaultFields
	}
	cp := make([]string, len(fields))
	copy(cp, fields)

	return SearchQuery{
		Kind:   KindMultiField,
		Fields: cp,
		Value:  text,
		Limit:  MaxResults,
	}
}

// BuildSingleField monta a busca textual restrita a um campo
func BuildSingleField(text, field string) SearchQuery {
	return SearchQuery{
		Kind:  KindSingleField,
		Field: field,
		Value: text,
		Limit: MaxResults,
	}
}

// Body retorna o corpo Elasticsearch da consulta
func (q SearchQuery) Body() (map[string]interface{}, error) {
	var clause map[string]interface{}

	switch q.Kind {
	case KindExact:
		clause = map[string]interface{}{
			"bool": map[string]interface{}{
				"must": []interface{}{
					map[string]interface{}{
						"match": map[string]interface{}{q.Field: q.Value},
					},
				},
			},
		}
	case KindMultiField:
		clause = map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  q.Value,
				"fields": q.Fields,
			},
		}
	case KindSingleField:
		clause = map[string]interface{}{
			"match": map[string]interface{}{q.Field: q.Value},
		}
	default:
		return nil, fmt.Errorf("tipo de consulta desconhecido: %q", q.Kind)
	}

	return map[string]interface{}{
		"query": clause,
		"size":  q.Limit,
	}, nil
}

// MarshalJSON serializa a consulta no formato aceito pela API
func (q SearchQuery) MarshalJSON() ([]byte, error) {
	body, err := q.Body()
	if err != nil {
		return nil, err
	}
	return json.Marshal(body)
}
