// Package court mantém a tabela de classificação dos tribunais do Datajud.
//
// A tabela é montada uma única vez na inicialização e nunca é alterada depois,
// portanto um *Directory pode ser compartilhado entre goroutines sem locks.
package court

import (
	"fmt"
	"sync"
)

// EndpointPrefix é o prefixo dos índices da API pública do Datajud
const EndpointPrefix = "api_publica_"

// Descriptor descreve um tribunal e o segmento do endpoint na API
type Descriptor struct {
	Code     string  `json:"codigo"`
	Endpoint string  `json:"endpoint"`
	Name     string  `json:"nome"`
	Justice  Justice `json:"ramo"`
	// Nome do ramo, ex.: "Justiça Estadual"
	JusticeName string `json:"ramo_nome"`
	CourtID     string `json:"tr"`
}

// Directory mapeia (ramo, TR) e códigos de tribunal para descritores
type Directory struct {
	byJustice map[Justice]map[string]Descriptor
	byCode    map[string]Descriptor
	ordered   []Descriptor
}

// NewDirectory monta o diretório a partir das entradas informadas.
// Retorna erro se houver código ou par (ramo, TR) duplicado.
func NewDirectory(entries []entry) (*Directory, error) {
	d := &Directory{
		byJustice: make(map[Justice]map[string]Descriptor),
		byCode:    make(map[string]Descriptor, len(entries)),
		ordered:   make([]Descriptor, 0, len(entries)),
	}

	for _, e := range entries {
		if _, exists := d.byCode[e.Code]; exists {
			return nil, fmt.Errorf("código de tribunal duplicado: %s", e.Code)
		}
		courts, ok := d.byJustice[e.Justice]
		if !ok {
			courts = make(map[string]Descriptor)
			d.byJustice[e.Justice] = courts
		}
		if _, exists := courts[e.CourtID]; exists {
			return nil, fmt.Errorf("tribunal duplicado para J=%s TR=%s", e.Justice, e.CourtID)
		}

		desc := Descriptor{
			Code:        e.Code,
			Endpoint:    EndpointPrefix + e.Code,
			Name:        e.Name,
			Justice:     e.Justice,
			JusticeName: e.Justice.Label(),
			CourtID:     e.CourtID,
		}
		courts[e.CourtID] = desc
		d.byCode[e.Code] = desc
		d.ordered = append(d.ordered, desc)
	}

	return d, nil
}

var (
	defaultOnce sync.Once
	defaultDir  *Directory
)

// Default retorna o diretório com a tabela oficial de tribunais
func Default() *Directory {
	defaultOnce.Do(func() {
		dir, err := NewDirectory(defaultTable)
		if err != nil {
			panic(err)
		}
		defaultDir = dir
	})
	return defaultDir
}

// Lookup busca o tribunal pelo dígito de ramo e pelo TR de dois dígitos
func (d *Directory) Lookup(justiceType, courtID string) (Descriptor, bool) {
	courts, ok := d.byJustice[Justice(justiceType)]
	if !ok {
		return Descriptor{}, false
	}
	desc, ok := courts[courtID]
	return desc, ok
}

// EndpointFor retorna o segmento de endpoint de um código de tribunal
func (d *Directory) EndpointFor(code string) (string, bool) {
	desc, ok := d.byCode[code]
	if !ok {
		return "", false
	}
	return desc.Endpoint, true
}

// ByCode retorna o descritor completo de um código de tribunal
func (d *Directory) ByCode(code string) (Descriptor, bool) {
	desc, ok := d.byCode[code]
	return desc, ok
}

// All retorna uma cópia dos tribunais na ordem da tabela
func (d *Directory) All() []Descriptor {
	out := make([]Descriptor, len(d.ordered))
	copy(out, d.ordered)
	return out
}

// Len retorna a quantidade de tribunais
func (d *Directory) Len() int {
	return len(d.ordered)
}
