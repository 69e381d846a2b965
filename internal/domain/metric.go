// Package domain contém os tipos centrais do acompanhamento mensal de KPIs
package domain

// Metric identifica um dos cinco indicadores acompanhados por associado
type Metric string

const (
	MetricConnects          Metric = "connects"
	MetricGeoData           Metric = "geoData"
	MetricBuyerAppointments Metric = "buyerAppointments"
	MetricMarketAppraisals  Metric = "marketAppraisals"
	MetricListingsGenerated Metric = "listingsGenerated"
)

// MetricOrder define a ordem fixa de exibição nos gráficos, no CSV e no resumo
var MetricOrder = []Metric{
	MetricConnects,
	MetricGeoData,
	MetricBuyerAppointments,
	MetricMarketAppraisals,
	MetricListingsGenerated,
}

var metricLabels = map[Metric]string{
	MetricConnects:          "Connects",
	MetricGeoData:           "Geo Data",
	MetricBuyerAppointments: "Buyer Appointments",
	MetricMarketAppraisals:  "Market Appraisals",
	MetricListingsGenerated: "Listings Generated",
}

// Label retorna o rótulo de exibição da métrica
func (m Metric) Label() string {
	if label, ok := metricLabels[m]; ok {
		return label
	}
	return string(m)
}

// Valid verifica se a métrica é um dos cinco indicadores conhecidos
func (m Metric) Valid() bool {
	_, ok := metricLabels[m]
	return ok
}

// ParseMetric converte uma string em Metric, validando o valor
func ParseMetric(raw string) (Metric, bool) {
	m := Metric(raw)
	return m, m.Valid()
}
