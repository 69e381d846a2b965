package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricLabel(t *testing.T) {
	assert.Equal(t, "Connects", MetricConnects.Label())
	assert.Equal(t, "Geo Data", MetricGeoData.Label())
	assert.Equal(t, "Buyer Appointments", MetricBuyerAppointments.Label())
	assert.Equal(t, "Market Appraisals", MetricMarketAppraisals.Label())
	assert.Equal(t, "Listings Generated", MetricListingsGenerated.Label())

	// Métrica desconhecida devolve o próprio valor como rótulo
	assert.Equal(t, "foo", Metric("foo").Label())
}

func TestParseMetric(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		valid bool
	}{
		{"Métrica conhecida é aceita", "connects", true},
		{"Nome de exibição não é identificador", "Connects", false},
		{"Métrica desconhecida é rejeitada", "revenue", false},
		{"String vazia é rejeitada", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metric, ok := ParseMetric(tt.raw)

			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.True(t, metric.Valid())
			}
		})
	}
}

func TestMetricOrder(t *testing.T) {
	// A ordem fixa é contrato do CSV, dos gráficos e do resumo
	expected := []Metric{
		MetricConnects,
		MetricGeoData,
		MetricBuyerAppointments,
		MetricMarketAppraisals,
		MetricListingsGenerated,
	}

	assert.Equal(t, expected, MetricOrder)
}
