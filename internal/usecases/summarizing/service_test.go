package summarizing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/sales-kpi-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-kpi-api/infrastructure/webhook"
	webhookmocks "github.com/vfg2006/sales-kpi-api/infrastructure/webhook/mocks"
	"github.com/vfg2006/sales-kpi-api/internal/domain"
	trackingmocks "github.com/vfg2006/sales-kpi-api/internal/usecases/tracking/mocks"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	tracker      *trackingmocks.MockTracker
	storeRepo    *repomocks.MockKPIStoreRepository
	settingsRepo *repomocks.MockEmailSettingsRepository
	client       *webhookmocks.MockClient
}

func newTestService(t *testing.T) (Dispatcher, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := serviceMocks{
		tracker:      trackingmocks.NewMockTracker(ctrl),
		storeRepo:    repomocks.NewMockKPIStoreRepository(ctrl),
		settingsRepo: repomocks.NewMockEmailSettingsRepository(ctrl),
		client:       webhookmocks.NewMockClient(ctrl),
	}

	return NewService(m.tracker, m.storeRepo, m.settingsRepo, m.client), m
}

func sampleState() *domain.MonthState {
	state := &domain.MonthState{
		Targets: domain.DefaultTargets(),
		Associates: []*domain.Associate{
			{ID: "assoc_1", Name: "Ana Souza"},
		},
	}
	state.Normalize()

	return state
}

func TestSendMonthlySummaryViaWebhook(t *testing.T) {
	service, m := newTestService(t)

	settings := domain.EmailSettings{
		To:            "equipe@exemplo.com",
		WebhookURL:    "https://hooks.exemplo.com/kpi",
		SendHourLocal: 18,
	}

	m.tracker.EXPECT().GetMonth("2025-08").Return(sampleState(), nil)
	m.settingsRepo.EXPECT().Get().Return(settings, nil)

	var sent webhook.SummaryPayload
	m.client.EXPECT().
		SendSummary(gomock.Any(), "https://hooks.exemplo.com/kpi", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, payload webhook.SummaryPayload) error {
			sent = payload
			return nil
		})

	result, err := service.SendMonthlySummary(context.Background(), "2025-08")

	require.NoError(t, err)
	assert.Equal(t, DeliveryWebhook, result.Delivery)
	assert.Equal(t, "Daily KPI Summary 2025-08", result.Subject)
	assert.Empty(t, result.MailtoURI)

	assert.Equal(t, "equipe@exemplo.com", sent.To)
	assert.Equal(t, "2025-08", sent.Month)
	assert.Contains(t, sent.Text, "KPI Summary 2025-08 (1 associates)")
	assert.Contains(t, sent.CSV, `"Ana Souza"`)
}

func TestSendMonthlySummaryWebhookFailure(t *testing.T) {
	service, m := newTestService(t)

	settings := domain.EmailSettings{
		To:            "equipe@exemplo.com",
		WebhookURL:    "https://hooks.exemplo.com/kpi",
		SendHourLocal: 18,
	}

	m.tracker.EXPECT().GetMonth("2025-08").Return(sampleState(), nil)
	m.settingsRepo.EXPECT().Get().Return(settings, nil)

	// Uma única tentativa, sem retentativa: a falha vai direto ao chamador
	m.client.EXPECT().
		SendSummary(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	result, err := service.SendMonthlySummary(context.Background(), "2025-08")

	assert.Nil(t, result)
	assert.Error(t, err)
}

func TestSendMonthlySummaryMailtoFallback(t *testing.T) {
	service, m := newTestService(t)

	settings := domain.EmailSettings{
		To:            "equipe@exemplo.com",
		SendHourLocal: 18,
	}

	m.tracker.EXPECT().GetMonth("2025-08").Return(sampleState(), nil)
	m.settingsRepo.EXPECT().Get().Return(settings, nil)

	result, err := service.SendMonthlySummary(context.Background(), "2025-08")

	require.NoError(t, err)
	assert.Equal(t, DeliveryMailto, result.Delivery)
	assert.Contains(t, result.MailtoURI, "mailto:equipe@exemplo.com?subject=")
	// Espaços codificados como %20, nunca como +
	assert.Contains(t, result.MailtoURI, "Daily%20KPI%20Summary%202025-08")
	assert.NotContains(t, result.MailtoURI, "+")
}

func TestSendScheduledSummary(t *testing.T) {
	withinWindow := time.Date(2025, 8, 29, 18, 10, 0, 0, time.UTC)
	outsideWindow := time.Date(2025, 8, 29, 12, 0, 0, 0, time.UTC)

	t.Run("Fora da janela é no-op, não falha", func(t *testing.T) {
		service, m := newTestService(t)

		m.settingsRepo.EXPECT().Get().Return(domain.EmailSettings{To: "a@b.com", WebhookURL: "https://hooks", SendHourLocal: 18}, nil)

		result, err := service.SendScheduledSummary(context.Background(), outsideWindow)

		require.NoError(t, err)
		assert.Equal(t, DeliveryNone, result.Delivery)
		assert.Equal(t, "2025-08", result.Month)
	})

	t.Run("Sem webhook configurado não há entrega em segundo plano", func(t *testing.T) {
		service, m := newTestService(t)

		m.settingsRepo.EXPECT().Get().Return(domain.EmailSettings{To: "a@b.com", SendHourLocal: 18}, nil)
		m.storeRepo.EXPECT().LoadStore().Return(domain.Store{}, nil)

		result, err := service.SendScheduledSummary(context.Background(), withinWindow)

		require.NoError(t, err)
		assert.Equal(t, DeliveryNone, result.Delivery)
		assert.Empty(t, result.MailtoURI)
	})

	t.Run("Dentro da janela relê o estado persistido e envia", func(t *testing.T) {
		service, m := newTestService(t)

		store := domain.Store{"2025-08": sampleState()}

		m.settingsRepo.EXPECT().Get().Return(domain.EmailSettings{To: "a@b.com", WebhookURL: "https://hooks", SendHourLocal: 18}, nil)
		m.storeRepo.EXPECT().LoadStore().Return(store, nil)
		m.client.EXPECT().SendSummary(gomock.Any(), "https://hooks", gomock.Any()).Return(nil)

		result, err := service.SendScheduledSummary(context.Background(), withinWindow)

		require.NoError(t, err)
		assert.Equal(t, DeliveryWebhook, result.Delivery)
		assert.Equal(t, "2025-08", result.Month)
	})

	t.Run("Mês corrente sem estado persistido usa o estado padrão", func(t *testing.T) {
		service, m := newTestService(t)

		m.settingsRepo.EXPECT().Get().Return(domain.EmailSettings{To: "a@b.com", WebhookURL: "https://hooks", SendHourLocal: 18}, nil)
		m.storeRepo.EXPECT().LoadStore().Return(domain.Store{}, nil)

		var sent webhook.SummaryPayload
		m.client.EXPECT().
			SendSummary(gomock.Any(), "https://hooks", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, payload webhook.SummaryPayload) error {
				sent = payload
				return nil
			})

		result, err := service.SendScheduledSummary(context.Background(), withinWindow)

		require.NoError(t, err)
		assert.Equal(t, DeliveryWebhook, result.Delivery)
		assert.Contains(t, sent.Text, "(0 associates)")
		assert.Equal(t, "", sent.CSV)
	})
}

func TestWithinSendWindow(t *testing.T) {
	day := func(hour, minute int) time.Time {
		return time.Date(2025, 8, 29, hour, minute, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		now      time.Time
		sendHour int
		expected bool
	}{
		{"Na hora exata", day(18, 0), 18, true},
		{"Trinta minutos antes ainda dentro", day(17, 30), 18, true},
		{"Trinta minutos depois ainda dentro", day(18, 30), 18, true},
		{"Trinta e um minutos antes já fora", day(17, 29), 18, false},
		{"Trinta e um minutos depois já fora", day(18, 31), 18, false},
		{"Meia-noite com envio configurado para 0h", day(0, 15), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WithinSendWindow(tt.now, tt.sendHour))
		})
	}
}

func TestBuildMailtoURI(t *testing.T) {
	uri := BuildMailtoURI("equipe@exemplo.com", "Daily KPI Summary 2025-08", "Connects: 10 / 300 (3%)\n")

	assert.Contains(t, uri, "mailto:equipe@exemplo.com?subject=Daily%20KPI%20Summary%202025-08&body=")
	assert.Contains(t, uri, "%3A%2010%20%2F%20300")
	assert.Contains(t, uri, "%0A")
	assert.NotContains(t, uri, "+")
}
