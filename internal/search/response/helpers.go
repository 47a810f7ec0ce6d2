package response

import (
	"encoding/json"
	"strconv"

	"github.com/prefeitura-rio/app-busca-processos/internal/models"
)

// stringAt percorre a cadeia de chaves e retorna o valor como texto.
// Qualquer elo ausente, nulo ou que não seja objeto resulta em "N/A".
func stringAt(m map[string]interface{}, path ...string) string {
	v, ok := valueAt(m, path...)
	if !ok {
		return models.NotAvailable
	}

	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return models.NotAvailable
		}
		return string(b)
	}
}

func valueAt(m map[string]interface{}, path ...string) (interface{}, bool) {
	var current interface{} = m
	for _, key := range path {
		obj, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = obj[key]
		if !ok || current == nil {
			return nil, false
		}
	}
	return current, true
}

// objectAt retorna o objeto no caminho, ou nil
func objectAt(m map[string]interface{}, path ...string) map[string]interface{} {
	v, ok := valueAt(m, path...)
	if !ok {
		return nil
	}
	obj, _ := v.(map[string]interface{})
	return obj
}

// listAt retorna a lista no caminho, ou nil
func listAt(m map[string]interface{}, path ...string) []interface{} {
	v, ok := valueAt(m, path...)
	if !ok {
		return nil
	}
	list, _ := v.([]interface{})
	return list
}

// asObject converte um item de lista em objeto; itens inválidos viram objeto vazio
func asObject(v interface{}) map[string]interface{} {
	if obj, ok := v.(map[string]interface{}); ok {
		return obj
	}
	return map[string]interface{}{}
}

func intAt(m map[string]interface{}, path ...string) (int, bool) {
	v, ok := valueAt(m, path...)
	if !ok {
		return 0, false
	}
	switch val := v.(type) {
	case float64:
		return int(val), true
	case int:
		return val, true
	case int64:
		return int(val), true
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return int(n), true
		}
		f, err := val.Float64()
		if err != nil {
			return 0, false
		}
		return int(f), true
	}
	return 0, false
}
