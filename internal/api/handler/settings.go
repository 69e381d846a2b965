package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/sales-kpi-api/infrastructure/repository"
	"github.com/vfg2006/sales-kpi-api/internal/domain"
	"github.com/vfg2006/sales-kpi-api/pkg/apiErrors"
	"github.com/vfg2006/sales-kpi-api/pkg/log"
)

// GetEmailSettings retorna a configuração de envio do resumo diário
func GetEmailSettings(repo repository.EmailSettingsRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		settings, err := repo.Get()
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao ler configurações de e-mail", nil)
			return
		}

		respondJSON(w, settings)
	})
}

// UpdateEmailSettings persiste a configuração de envio do resumo diário
func UpdateEmailSettings(repo repository.EmailSettingsRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var settings domain.EmailSettings
		if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		if settings.SendHourLocal < 0 || settings.SendHourLocal > 23 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Hora de envio deve estar entre 0 e 23", nil)
			return
		}

		if err := repo.Save(settings); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar configurações de e-mail", nil)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"send_hour":   settings.SendHourLocal,
			"has_webhook": settings.WebhookURL != "",
		}).Info("settings: configurações de e-mail atualizadas")

		settings.Normalize()
		respondJSON(w, settings)
	})
}
