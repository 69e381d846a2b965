package transfer

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-kpi-api/internal/domain"
)

func TestExportCSV(t *testing.T) {
	t.Run("Mês sem associados produz string vazia, sem cabeçalho", func(t *testing.T) {
		state := domain.NewMonthState()

		assert.Equal(t, "", ExportCSV(state))
	})

	t.Run("Todo campo sai entre aspas duplas", func(t *testing.T) {
		state := &domain.MonthState{
			Targets: domain.DefaultTargets(),
			Associates: []*domain.Associate{
				{
					ID:   "assoc_1",
					Name: "Ana Souza",
					Metrics: map[domain.Metric]int{
						domain.MetricConnects:          10,
						domain.MetricGeoData:           5,
						domain.MetricBuyerAppointments: 2,
						domain.MetricMarketAppraisals:  1,
						domain.MetricListingsGenerated: 3,
					},
				},
			},
		}

		csv := ExportCSV(state)

		expected := `"Name","Connects","GeoData","BuyerAppointments","MarketAppraisals","ListingsGenerated"` + "\n" +
			`"Ana Souza","10","5","2","1","3"` + "\n"
		assert.Equal(t, expected, csv)
	})

	t.Run("Vírgula e aspas no nome são escapadas", func(t *testing.T) {
		state := &domain.MonthState{
			Targets: domain.DefaultTargets(),
			Associates: []*domain.Associate{
				{ID: "assoc_1", Name: `a, b`},
				{ID: "assoc_2", Name: `a "q" b`},
			},
		}
		state.Normalize()

		csv := ExportCSV(state)

		assert.Contains(t, csv, `"a, b","0","0","0","0","0"`)
		assert.Contains(t, csv, `"a ""q"" b","0","0","0","0","0"`)
	})

	t.Run("Métricas ausentes saem como zero", func(t *testing.T) {
		state := &domain.MonthState{
			Targets: domain.DefaultTargets(),
			Associates: []*domain.Associate{
				{ID: "assoc_1", Name: "Bruno", Metrics: map[domain.Metric]int{domain.MetricConnects: 7}},
			},
		}

		csv := ExportCSV(state)

		assert.Contains(t, csv, `"Bruno","7","0","0","0","0"`)
	})
}

func TestExportJSONRoundTrip(t *testing.T) {
	state := &domain.MonthState{
		Targets: domain.DefaultTargets(),
		Associates: []*domain.Associate{
			{
				ID:   "assoc_1",
				Name: "Carla",
				Metrics: map[domain.Metric]int{
					domain.MetricConnects:          100,
					domain.MetricGeoData:           50,
					domain.MetricBuyerAppointments: 8,
					domain.MetricMarketAppraisals:  4,
					domain.MetricListingsGenerated: 2,
				},
			},
		},
	}

	raw, err := ExportJSON("2025-08", state)
	require.NoError(t, err)

	export, err := ParseImport([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, "2025-08", export.Month)
	assert.Equal(t, state.Targets, export.Targets)
	require.Len(t, export.Associates, 1)
	assert.Equal(t, "Carla", export.Associates[0].Name)
	assert.Equal(t, 100, export.Associates[0].Metrics[domain.MetricConnects])
}

func TestParseImport(t *testing.T) {
	tests := []struct {
		name        string
		payload     string
		expectedErr error
	}{
		{
			name:        "Chave month ausente é rejeitada",
			payload:     `{"targets":{},"associates":[]}`,
			expectedErr: ErrMissingMonth,
		},
		{
			name:        "Chave targets ausente é rejeitada",
			payload:     `{"month":"2025-08","associates":[]}`,
			expectedErr: ErrMissingTargets,
		},
		{
			name:        "Chave associates ausente é rejeitada",
			payload:     `{"month":"2025-08","targets":{}}`,
			expectedErr: ErrMissingAssociates,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			export, err := ParseImport([]byte(tt.payload))

			assert.Nil(t, export)
			assert.True(t, errors.Is(err, tt.expectedErr))
		})
	}

	t.Run("JSON malformado é rejeitado", func(t *testing.T) {
		export, err := ParseImport([]byte(`{not json`))

		assert.Nil(t, export)
		assert.Error(t, err)
	})

	t.Run("Identificador de mês inválido é rejeitado", func(t *testing.T) {
		export, err := ParseImport([]byte(`{"month":"agosto","targets":{},"associates":[]}`))

		assert.Nil(t, export)
		assert.Error(t, err)
	})

	t.Run("Blob completo é aceito com valores vazios", func(t *testing.T) {
		export, err := ParseImport([]byte(`{"month":"2025-08","targets":{},"associates":[]}`))

		require.NoError(t, err)
		assert.Equal(t, "2025-08", export.Month)
		assert.Empty(t, export.Associates)
	})
}

func TestToMonthState(t *testing.T) {
	export := &MonthExport{
		Month:   "2025-08",
		Targets: domain.TargetSet{domain.MetricConnects: 200},
		Associates: []*domain.Associate{
			{ID: "assoc_1", Name: "Ana"},
		},
	}

	state := export.ToMonthState()

	// A normalização completa as métricas ausentes do associado importado
	assert.Equal(t, 200, state.Targets[domain.MetricConnects])
	require.Len(t, state.Associates, 1)
	assert.Len(t, state.Associates[0].Metrics, len(domain.MetricOrder))
}
