// Package transfer implementa a exportação (CSV, JSON) e a importação (JSON)
// do estado de um mês, para backup e transferência entre instalações.
package transfer

import (
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-kpi-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Cabeçalho do CSV, na mesma ordem fixa das métricas
var csvHeader = []string{
	"Name",
	"Connects",
	"GeoData",
	"BuyerAppointments",
	"MarketAppraisals",
	"ListingsGenerated",
}

var (
	ErrMissingMonth      = errors.New("campo obrigatório ausente: month")
	ErrMissingTargets    = errors.New("campo obrigatório ausente: targets")
	ErrMissingAssociates = errors.New("campo obrigatório ausente: associates")
)

// MonthExport é o blob JSON de backup de um mês: {month, targets, associates}
type MonthExport struct {
	Month      string              `json:"month"`
	Targets    domain.TargetSet    `json:"targets"`
	Associates []*domain.Associate `json:"associates"`
}

// monthImport usa ponteiros para distinguir chave ausente de valor vazio
type monthImport struct {
	Month      *string              `json:"month"`
	Targets    *domain.TargetSet    `json:"targets"`
	Associates *[]*domain.Associate `json:"associates"`
}

// ExportCSV gera o CSV do mês: uma linha por associado, valores ausentes
// como zero. Todo campo sai entre aspas duplas, com aspas internas dobradas.
// Lista vazia de associados produz string vazia, sem cabeçalho.
func ExportCSV(state *domain.MonthState) string {
	if len(state.Associates) == 0 {
		return ""
	}

	lines := make([]string, 0, len(state.Associates)+1)
	lines = append(lines, csvRow(csvHeader))

	for _, associate := range state.Associates {
		row := make([]string, 0, len(csvHeader))
		row = append(row, associate.Name)
		for _, metric := range domain.MetricOrder {
			row = append(row, strconv.Itoa(associate.Metric(metric)))
		}
		lines = append(lines, csvRow(row))
	}

	return strings.Join(lines, "\n") + "\n"
}

func csvRow(fields []string) string {
	quoted := make([]string, 0, len(fields))
	for _, field := range fields {
		quoted = append(quoted, `"`+strings.ReplaceAll(field, `"`, `""`)+`"`)
	}
	return strings.Join(quoted, ",")
}

// ExportJSON serializa o mês no formato de backup {month, targets, associates}
func ExportJSON(month string, state *domain.MonthState) (string, error) {
	export := MonthExport{
		Month:      month,
		Targets:    state.Targets,
		Associates: state.Associates,
	}

	raw, err := json.MarshalToString(export)
	if err != nil {
		return "", errors.Wrap(err, "erro ao serializar exportação do mês")
	}

	return raw, nil
}

// ParseImport valida e decodifica um blob de importação. As três chaves
// month, targets e associates são obrigatórias; em blob malformado ou
// incompleto nenhum estado parcial é devolvido.
func ParseImport(payload []byte) (*MonthExport, error) {
	var raw monthImport
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, errors.Wrap(err, "JSON de importação inválido")
	}

	if raw.Month == nil {
		return nil, ErrMissingMonth
	}
	if raw.Targets == nil {
		return nil, ErrMissingTargets
	}
	if raw.Associates == nil {
		return nil, ErrMissingAssociates
	}

	if !domain.ValidMonthKey(*raw.Month) {
		return nil, errors.Errorf("identificador de mês inválido: %q", *raw.Month)
	}

	export := &MonthExport{
		Month:      *raw.Month,
		Targets:    *raw.Targets,
		Associates: *raw.Associates,
	}

	return export, nil
}

// ToMonthState converte o blob importado em um MonthState normalizado
func (e *MonthExport) ToMonthState() *domain.MonthState {
	state := &domain.MonthState{
		Targets:    e.Targets,
		Associates: e.Associates,
	}
	state.Normalize()

	return state
}
