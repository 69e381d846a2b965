package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-kpi-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-kpi-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func testDefaults() domain.EmailSettings {
	return domain.EmailSettings{
		To:            "padrao@exemplo.com",
		SendHourLocal: 18,
	}
}

func TestEmailSettingsGet(t *testing.T) {
	t.Run("Chaves ausentes resultam nos padrões", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		state := mocks.NewMockAppStateRepository(ctrl)
		state.EXPECT().Get("summary_to").Return("", nil)
		state.EXPECT().Get("summary_webhook_url").Return("", nil)
		state.EXPECT().Get("summary_send_hour").Return("", nil)

		settings, err := NewEmailSettingsRepository(state, testDefaults()).Get()

		require.NoError(t, err)
		assert.Equal(t, "padrao@exemplo.com", settings.To)
		assert.Equal(t, "", settings.WebhookURL)
		assert.Equal(t, 18, settings.SendHourLocal)
	})

	t.Run("Valores persistidos substituem os padrões", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		state := mocks.NewMockAppStateRepository(ctrl)
		state.EXPECT().Get("summary_to").Return("equipe@exemplo.com", nil)
		state.EXPECT().Get("summary_webhook_url").Return("https://hooks.exemplo.com/kpi", nil)
		state.EXPECT().Get("summary_send_hour").Return("9", nil)

		settings, err := NewEmailSettingsRepository(state, testDefaults()).Get()

		require.NoError(t, err)
		assert.Equal(t, "equipe@exemplo.com", settings.To)
		assert.Equal(t, "https://hooks.exemplo.com/kpi", settings.WebhookURL)
		assert.Equal(t, 9, settings.SendHourLocal)
	})

	t.Run("Falha de leitura resulta silenciosamente nos padrões", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		state := mocks.NewMockAppStateRepository(ctrl)
		state.EXPECT().Get("summary_to").Return("", assert.AnError)

		settings, err := NewEmailSettingsRepository(state, testDefaults()).Get()

		require.NoError(t, err)
		assert.Equal(t, testDefaults(), settings)
	})

	t.Run("Hora persistida ilegível mantém o padrão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		state := mocks.NewMockAppStateRepository(ctrl)
		state.EXPECT().Get("summary_to").Return("", nil)
		state.EXPECT().Get("summary_webhook_url").Return("", nil)
		state.EXPECT().Get("summary_send_hour").Return("dezoito", nil)

		settings, err := NewEmailSettingsRepository(state, testDefaults()).Get()

		require.NoError(t, err)
		assert.Equal(t, 18, settings.SendHourLocal)
	})

	t.Run("Hora fora do intervalo volta ao padrão via normalização", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		state := mocks.NewMockAppStateRepository(ctrl)
		state.EXPECT().Get("summary_to").Return("", nil)
		state.EXPECT().Get("summary_webhook_url").Return("", nil)
		state.EXPECT().Get("summary_send_hour").Return("25", nil)

		settings, err := NewEmailSettingsRepository(state, testDefaults()).Get()

		require.NoError(t, err)
		assert.Equal(t, domain.DefaultSendHour, settings.SendHourLocal)
	})
}

func TestEmailSettingsSave(t *testing.T) {
	t.Run("Grava cada campo sob a própria chave", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		state := mocks.NewMockAppStateRepository(ctrl)
		state.EXPECT().Set("summary_to", "equipe@exemplo.com").Return(nil)
		state.EXPECT().Set("summary_webhook_url", "https://hooks.exemplo.com/kpi").Return(nil)
		state.EXPECT().Set("summary_send_hour", "9").Return(nil)

		err := NewEmailSettingsRepository(state, testDefaults()).Save(domain.EmailSettings{
			To:            "equipe@exemplo.com",
			WebhookURL:    "https://hooks.exemplo.com/kpi",
			SendHourLocal: 9,
		})

		assert.NoError(t, err)
	})

	t.Run("Configuração é normalizada antes de gravar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		state := mocks.NewMockAppStateRepository(ctrl)
		state.EXPECT().Set("summary_to", domain.DefaultSummaryRecipient).Return(nil)
		state.EXPECT().Set("summary_webhook_url", "").Return(nil)
		state.EXPECT().Set("summary_send_hour", "18").Return(nil)

		err := NewEmailSettingsRepository(state, testDefaults()).Save(domain.EmailSettings{SendHourLocal: 99})

		assert.NoError(t, err)
	})

	t.Run("Falha de escrita é propagada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		state := mocks.NewMockAppStateRepository(ctrl)
		state.EXPECT().Set("summary_to", gomock.Any()).Return(assert.AnError)

		err := NewEmailSettingsRepository(state, testDefaults()).Save(testDefaults())

		assert.Error(t, err)
	})
}
