package repository

import (
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-kpi-api/internal/domain"
)

const (
	summaryToKey       = "summary_to"
	summaryWebhookKey  = "summary_webhook_url"
	summarySendHourKey = "summary_send_hour"
)

// EmailSettingsRepository persiste a configuração de envio do resumo diário.
// Cada campo fica sob uma chave própria no armazenamento chave/valor.
type EmailSettingsRepository interface {
	Get() (domain.EmailSettings, error)
	Save(settings domain.EmailSettings) error
}

type emailSettingsRepository struct {
	state    AppStateRepository
	defaults domain.EmailSettings
}

func NewEmailSettingsRepository(state AppStateRepository, defaults domain.EmailSettings) EmailSettingsRepository {
	defaults.Normalize()

	return &emailSettingsRepository{
		state:    state,
		defaults: defaults,
	}
}

// Get lê a configuração persistida. Qualquer falha de leitura ou de parse
// resulta silenciosamente nos padrões — nunca em erro para o chamador.
func (r *emailSettingsRepository) Get() (domain.EmailSettings, error) {
	settings := r.defaults

	to, err := r.state.Get(summaryToKey)
	if err != nil {
		logrus.WithError(err).Warn("Falha ao ler configurações de e-mail, usando padrões")
		return r.defaults, nil
	}
	if to != "" {
		settings.To = to
	}

	webhookURL, err := r.state.Get(summaryWebhookKey)
	if err != nil {
		logrus.WithError(err).Warn("Falha ao ler URL do webhook, usando padrões")
		return r.defaults, nil
	}
	settings.WebhookURL = webhookURL

	rawHour, err := r.state.Get(summarySendHourKey)
	if err != nil {
		logrus.WithError(err).Warn("Falha ao ler hora de envio, usando padrões")
		return r.defaults, nil
	}
	if rawHour != "" {
		hour, err := strconv.Atoi(rawHour)
		if err != nil {
			logrus.WithField("send_hour", rawHour).Warn("Hora de envio persistida é inválida, usando padrão")
		} else {
			settings.SendHourLocal = hour
		}
	}

	settings.Normalize()

	return settings, nil
}

func (r *emailSettingsRepository) Save(settings domain.EmailSettings) error {
	settings.Normalize()

	if err := r.state.Set(summaryToKey, settings.To); err != nil {
		return err
	}

	if err := r.state.Set(summaryWebhookKey, settings.WebhookURL); err != nil {
		return err
	}

	return r.state.Set(summarySendHourKey, strconv.Itoa(settings.SendHourLocal))
}
