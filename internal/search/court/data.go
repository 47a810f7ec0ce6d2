package court

// Justice identifica o ramo da justiça (dígito J do número CNJ)
type Justice string

const (
	JusticeFederal   Justice = "1"
	JusticeState     Justice = "2"
	JusticeLabor     Justice = "3"
	JusticeElectoral Justice = "4"
	JusticeMilitary  Justice = "5"
	JusticeSuperior  Justice = "6"
)

// Label retorna o nome do ramo em português
func (j Justice) Label() string {
	switch j {
	case JusticeFederal:
		return "Justiça Federal"
	case JusticeState:
		return "Justiça Estadual"
	case JusticeLabor:
		return "Justiça do Trabalho"
	case JusticeElectoral:
		return "Justiça Eleitoral"
	case JusticeMilitary:
		return "Justiça Militar"
	case JusticeSuperior:
		return "Tribunais Superiores"
	}
	return "desconhecido"
}

// entry é uma linha da tabela de classificação
type entry struct {
	Justice Justice
	CourtID string // TR, dois dígitos com zero à esquerda
	Code    string
	Name    string
}

// defaultTable contém os tribunais atendidos pela API pública do Datajud.
// A Justiça Militar (J=5) ainda não possui endpoints mapeados.
var defaultTable = []entry{
	// Justiça Federal (TRF)
	{JusticeFederal, "01", "trf1", "Tribunal Regional Federal da 1ª Região"},
	{JusticeFederal, "02", "trf2", "Tribunal Regional Federal da 2ª Região"},
	{JusticeFederal, "03", "trf3", "Tribunal Regional Federal da 3ª Região"},
	{JusticeFederal, "04", "trf4", "Tribunal Regional Federal da 4ª Região"},
	{JusticeFederal, "05", "trf5", "Tribunal Regional Federal da 5ª Região"},
	{JusticeFederal, "06", "trf6", "Tribunal Regional Federal da 6ª Região"},

	// Justiça Estadual (TJ)
	{JusticeState, "01", "tjac", "Tribunal de Justiça do Acre"},
	{JusticeState, "02", "tjal", "Tribunal de Justiça de Alagoas"},
	{JusticeState, "03", "tjap", "Tribunal de Justiça do Amapá"},
	{JusticeState, "04", "tjam", "Tribunal de Justiça do Amazonas"},
	{JusticeState, "05", "tjba", "Tribunal de Justiça da Bahia"},
	{JusticeState, "06", "tjce", "Tribunal de Justiça do Ceará"},
	{JusticeState, "07", "tjdft", "Tribunal de Justiça do Distrito Federal e dos Territórios"},
	{JusticeState, "08", "tjes", "Tribunal de Justiça do Espírito Santo"},
	{JusticeState, "09", "tjgo", "Tribunal de Justiça de Goiás"},
	{JusticeState, "10", "tjma", "Tribunal de Justiça do Maranhão"},
	{JusticeState, "11", "tjmg", "Tribunal de Justiça de Minas Gerais"},
	{JusticeState, "12", "tjms", "Tribunal de Justiça de Mato Grosso do Sul"},
	{JusticeState, "13", "tjmt", "Tribunal de Justiça de Mato Grosso"},
	{JusticeState, "14", "tjpa", "Tribunal de Justiça do Pará"},
	{JusticeState, "15", "tjpb", "Tribunal de Justiça da Paraíba"},
	{JusticeState, "16", "tjpe", "Tribunal de Justiça de Pernambuco"},
	{JusticeState, "17", "tjpi", "Tribunal de Justiça do Piauí"},
	{JusticeState, "18", "tjpr", "Tribunal de Justiça do Paraná"},
	{JusticeState, "19", "tjrj", "Tribunal de Justiça do Rio de Janeiro"},
	{JusticeState, "20", "tjrn", "Tribunal de Justiça do Rio Grande do Norte"},
	{JusticeState, "21", "tjro", "Tribunal de Justiça de Rondônia"},
	{JusticeState, "22", "tjrr", "Tribunal de Justiça de Roraima"},
	{JusticeState, "23", "tjrs", "Tribunal de Justiça do Rio Grande do Sul"},
	{JusticeState, "24", "tjsc", "Tribunal de Justiça de Santa Catarina"},
	{JusticeState, "25", "tjse", "Tribunal de Justiça de Sergipe"},
	{JusticeState, "26", "tjsp", "Tribunal de Justiça de São Paulo"},
	{JusticeState, "27", "tjto", "Tribunal de Justiça do Tocantins"},

	// Justiça do Trabalho (TRT)
	{JusticeLabor, "01", "trt1", "Tribunal Regional do Trabalho da 1ª Região"},
	{JusticeLabor, "02", "trt2", "Tribunal Regional do Trabalho da 2ª Região"},
	{JusticeLabor, "03", "trt3", "Tribunal Regional do Trabalho da 3ª Região"},
	{JusticeLabor, "04", "trt4", "Tribunal Regional do Trabalho da 4ª Região"},
	{JusticeLabor, "05", "trt5", "Tribunal Regional do Trabalho da 5ª Região"},
	{JusticeLabor, "06", "trt6", "Tribunal Regional do Trabalho da 6ª Região"},
	{JusticeLabor, "07", "trt7", "Tribunal Regional do Trabalho da 7ª Região"},
	{JusticeLabor, "08", "trt8", "Tribunal Regional do Trabalho da 8ª Região"},
	{JusticeLabor, "09", "trt9", "Tribunal Regional do Trabalho da 9ª Região"},
	{JusticeLabor, "10", "trt10", "Tribunal Regional do Trabalho da 10ª Região"},
	{JusticeLabor, "11", "trt11", "Tribunal Regional do Trabalho da 11ª Região"},
	{JusticeLabor, "12", "trt12", "Tribunal Regional do Trabalho da 12ª Região"},
	{JusticeLabor, "13", "trt13", "Tribunal Regional do Trabalho da 13ª Região"},
	{JusticeLabor, "14", "trt14", "Tribunal Regional do Trabalho da 14ª Região"},
	{JusticeLabor, "15", "trt15", "Tribunal Regional do Trabalho da 15ª Região"},
	{JusticeLabor, "16", "trt16", "Tribunal Regional do Trabalho da 16ª Região"},
	{JusticeLabor, "17", "trt17", "Tribunal Regional do Trabalho da 17ª Região"},
	{JusticeLabor, "18", "trt18", "Tribunal Regional do Trabalho da 18ª Região"},
	{JusticeLabor, "19", "trt19", "Tribunal Regional do Trabalho da 19ª Região"},
	{JusticeLabor, "20", "trt20", "Tribunal Regional do Trabalho da 20ª Região"},
	{JusticeLabor, "21", "trt21", "Tribunal Regional do Trabalho da 21ª Região"},
	{JusticeLabor, "22", "trt22", "Tribunal Regional do Trabalho da 22ª Região"},
	{JusticeLabor, "23", "trt23", "Tribunal Regional do Trabalho da 23ª Região"},
	{JusticeLabor, "24", "trt24", "Tribunal Regional do Trabalho da 24ª Região"},

	// Justiça Eleitoral (TRE)
	{JusticeElectoral, "01", "tre-ac", "Tribunal Regional Eleitoral do Acre"},
	{JusticeElectoral, "02", "tre-al", "Tribunal Regional Eleitoral de Alagoas"},
	{JusticeElectoral, "03", "tre-ap", "Tribunal Regional Eleitoral do Amapá"},
	{JusticeElectoral, "04", "tre-am", "Tribunal Regional Eleitoral do Amazonas"},
	{JusticeElectoral, "05", "tre-ba", "Tribunal Regional Eleitoral da Bahia"},
	{JusticeElectoral, "06", "tre-ce", "Tribunal Regional Eleitoral do Ceará"},
	{JusticeElectoral, "07", "tre-dft", "Tribunal Regional Eleitoral do Distrito Federal"},
	{JusticeElectoral, "08", "tre-es", "Tribunal Regional Eleitoral do Espírito Santo"},
	{JusticeElectoral, "09", "tre-go", "Tribunal Regional Eleitoral de Goiás"},
	{JusticeElectoral, "10", "tre-ma", "Tribunal Regional Eleitoral do Maranhão"},
	{JusticeElectoral, "11", "tre-mg", "Tribunal Regional Eleitoral de Minas Gerais"},
	{JusticeElectoral, "12", "tre-ms", "Tribunal Regional Eleitoral de Mato Grosso do Sul"},
	{JusticeElectoral, "13", "tre-mt", "Tribunal Regional Eleitoral de Mato Grosso"},
	{JusticeElectoral, "14", "tre-pa", "Tribunal Regional Eleitoral do Pará"},
	{JusticeElectoral, "15", "tre-pb", "Tribunal Regional Eleitoral da Paraíba"},
	{JusticeElectoral, "16", "tre-pe", "Tribunal Regional Eleitoral de Pernambuco"},
	{JusticeElectoral, "17", "tre-pi", "Tribunal Regional Eleitoral do Piauí"},
	{JusticeElectoral, "18", "tre-pr", "Tribunal Regional Eleitoral do Paraná"},
	{JusticeElectoral, "19", "tre-rj", "Tribunal Regional Eleitoral do Rio de Janeiro"},
	{JusticeElectoral, "20", "tre-rn", "Tribunal Regional Eleitoral do Rio Grande do Norte"},
	{JusticeElectoral, "21", "tre-ro", "Tribunal Regional Eleitoral de Rondônia"},
	{JusticeElectoral, "22", "tre-rr", "Tribunal Regional Eleitoral de Roraima"},
	{JusticeElectoral, "23", "tre-rs", "Tribunal Regional Eleitoral do Rio Grande do Sul"},
	{JusticeElectoral, "24", "tre-sc", "Tribunal Regional Eleitoral de Santa Catarina"},
	{JusticeElectoral, "25", "tre-se", "Tribunal Regional Eleitoral de Sergipe"},
	{JusticeElectoral, "26", "tre-sp", "Tribunal Regional Eleitoral de São Paulo"},
	{JusticeElectoral, "27", "tre-to", "Tribunal Regional Eleitoral do Tocantins"},

	// Tribunais Superiores
	{JusticeSuperior, "00", "stf", "Supremo Tribunal Federal"},
	{JusticeSuperior, "01", "stj", "Superior Tribunal de Justiça"},
	{JusticeSuperior, "02", "tst", "Tribunal Superior do Trabalho"},
}
