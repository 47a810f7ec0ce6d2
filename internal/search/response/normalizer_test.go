package response

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prefeitura-rio/app-busca-processos/internal/models"
)

func loadFixture(t *testing.T, name string) map[string]interface{} {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	return raw
}

func decode(t *testing.T, s string) map[string]interface{} {
	t.Helper()
	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(s), &raw))
	return raw
}

func TestNormalizeSampleResponse(t *testing.T) {
	got := Normalize(loadFixture(t, "sample_response.json"))

	want := models.NormalizedResult{
		TotalHits: 1,
		Records: []models.ProcessRecord{
			{
				Number:      "0000001-70.2020.6.00.0000",
				Class:       "Habeas Corpus",
				Subject:     "Direito Penal",
				FilingDate:  "2020-01-01T00:00:00Z",
				CaseValue:   "1000.00",
				JudgingBody: "Tribunal Pleno",
				Parties: []models.PartyRecord{
					{
						Role:       "PACIENTE",
						Name:       "João da Silva",
						DocumentID: "123.456.789-00",
						Lawyers: []models.LawyerRecord{
							{Name: "Maria Advogada", DocumentID: "OAB/DF 12345"},
						},
					},
					{
						Role:       "AUTORIDADE COATORA",
						Name:       "Superior Tribunal de Justiça",
						DocumentID: "",
						Lawyers:    []models.LawyerRecord{},
					},
				},
				Movements: []models.MovementRecord{
					{Date: "2020-01-02T00:00:00Z", Name: "Conclusos para decisão", Note: ""},
					{Date: "2020-01-03T00:00:00Z", Name: "Decisão monocrática", Note: "Liminar deferida"},
				},
			},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeEmptyResponse(t *testing.T) {
	got := Normalize(loadFixture(t, "empty_response.json"))

	assert.Equal(t, 0, got.TotalHits)
	require.NotNil(t, got.Records)
	assert.Empty(t, got.Records)

	// lista vazia serializa como [] e não como null
	b, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"processes":[]`)
}

func TestNormalizeMissingFields(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want models.ProcessRecord
	}{
		{
			name: "source vazio",
			raw:  `{"hits":{"total":{"value":1},"hits":[{"_source":{}}]}}`,
			want: models.ProcessRecord{
				Number: "N/A", Class: "N/A", Subject: "N/A", FilingDate: "N/A",
				CaseValue: "N/A", JudgingBody: "N/A",
				Parties: []models.PartyRecord{}, Movements: []models.MovementRecord{},
			},
		},
		{
			name: "hit sem _source",
			raw:  `{"hits":{"total":{"value":1},"hits":[{"_id":"1"}]}}`,
			want: models.ProcessRecord{
				Number: "N/A", Class: "N/A", Subject: "N/A", FilingDate: "N/A",
				CaseValue: "N/A", JudgingBody: "N/A",
				Parties: []models.PartyRecord{}, Movements: []models.MovementRecord{},
			},
		},
		{
			name: "valores nulos",
			raw: `{"hits":{"hits":[{"_source":{
				"numeroProcesso":null,"classe":null,"assunto":{"nome":null},
				"dadosBasicos":{"valorCausa":null},"orgaoJulgador":{"nome":"1ª Vara"}
			}}]}}`,
			want: models.ProcessRecord{
				Number: "N/A", Class: "N/A", Subject: "N/A", FilingDate: "N/A",
				CaseValue: "N/A", JudgingBody: "1ª Vara",
				Parties: []models.PartyRecord{}, Movements: []models.MovementRecord{},
			},
		},
		{
			name: "parte e movimento incompletos",
			raw: `{"hits":{"hits":[{"_source":{
				"numeroProcesso":"1",
				"partes":[{"tipo":"AUTOR"},{"pessoa":{"nome":"Fulano"},"advogados":[{}]}],
				"movimentos":[{"nome":"Distribuído"}]
			}}]}}`,
			want: models.ProcessRecord{
				Number: "1", Class: "N/A", Subject: "N/A", FilingDate: "N/A",
				CaseValue: "N/A", JudgingBody: "N/A",
				Parties: []models.PartyRecord{
					{Role: "AUTOR", Name: "N/A", DocumentID: "N/A", Lawyers: []models.LawyerRecord{}},
					{Role: "N/A", Name: "Fulano", DocumentID: "N/A", Lawyers: []models.LawyerRecord{
						{Name: "N/A", DocumentID: "N/A"},
					}},
				},
				Movements: []models.MovementRecord{
					{Date: "N/A", Name: "Distribuído", Note: "N/A"},
				},
			},
		},
		{
			name: "item de lista que não é objeto",
			raw:  `{"hits":{"hits":[{"_source":{"movimentos":["texto", null]}}]}}`,
			want: models.ProcessRecord{
				Number: "N/A", Class: "N/A", Subject: "N/A", FilingDate: "N/A",
				CaseValue: "N/A", JudgingBody: "N/A",
				Parties: []models.PartyRecord{},
				Movements: []models.MovementRecord{
					{Date: "N/A", Name: "N/A", Note: "N/A"},
					{Date: "N/A", Name: "N/A", Note: "N/A"},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(decode(t, tt.raw))
			require.Len(t, got.Records, 1)
			if diff := cmp.Diff(tt.want, got.Records[0]); diff != "" {
				t.Errorf("record mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalizeNumericValues(t *testing.T) {
	raw := decode(t, `{"hits":{"hits":[{"_source":{
		"numeroProcesso":"1","dadosBasicos":{"valorCausa":1500.5}
	}}]}}`)

	got := Normalize(raw)
	require.Len(t, got.Records, 1)
	assert.Equal(t, "1500.5", got.Records[0].CaseValue)
}

func TestNormalizeJSONNumbers(t *testing.T) {
	dec := json.NewDecoder(strings.NewReader(`{"hits":{"total":{"value":1e2},"hits":[{"_source":{
		"numeroProcesso":"1","dadosBasicos":{"valorCausa":98765432109876543.21}
	}}]}}`))
	dec.UseNumber()
	var raw map[string]interface{}
	require.NoError(t, dec.Decode(&raw))

	got := Normalize(raw)
	assert.Equal(t, 100, got.TotalHits)
	require.Len(t, got.Records, 1)
	assert.Equal(t, "98765432109876543.21", got.Records[0].CaseValue)
}

func TestNormalizeTotalHits(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"objeto total", `{"hits":{"total":{"value":42,"relation":"gte"},"hits":[]}}`, 42},
		{"total numérico", `{"hits":{"total":7,"hits":[]}}`, 7},
		{"sem total", `{"hits":{"hits":[]}}`, 0},
		{"sem hits", `{}`, 0},
		{"total inválido", `{"hits":{"total":"muitos"}}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(decode(t, tt.raw))
			assert.Equal(t, tt.want, got.TotalHits)
			assert.NotNil(t, got.Records)
		})
	}
}

func TestNormalizePreservesOrder(t *testing.T) {
	raw := decode(t, `{"hits":{"total":{"value":3},"hits":[
		{"_source":{"numeroProcesso":"C","movimentos":[{"nome":"3"},{"nome":"1"},{"nome":"2"}]}},
		{"_source":{"numeroProcesso":"A"}},
		{"_source":{"numeroProcesso":"B"}}
	]}}`)

	got := Normalize(raw)
	require.Len(t, got.Records, 3)

	var numbers []string
	for _, r := range got.Records {
		numbers = append(numbers, r.Number)
	}
	assert.Equal(t, []string{"C", "A", "B"}, numbers)

	var movements []string
	for _, m := range got.Records[0].Movements {
		movements = append(movements, m.Name)
	}
	assert.Equal(t, []string{"3", "1", "2"}, movements)
}

func TestNormalizeIsDeterministic(t *testing.T) {
	raw := loadFixture(t, "sample_response.json")
	first := Normalize(raw)
	second := Normalize(raw)
	assert.True(t, cmp.Equal(first, second))
}
